// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dhmm

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Seq is a data format to represent a labeled sequence of observation
// symbols. We use it to read and write json data, one object per line:
//
//	{"id":"seq-0","obs":["1","3","2"],"labels":["hot","hot","cold"]}
//
// Labels are optional when the data is only decoded.
type Seq struct {
	ID     string   `json:"id"`
	Obs    []string `json:"obs"`
	Labels []string `json:"labels,omitempty"`
}

// Encode converts symbol and label names to ids. Returns nil labels when
// the sequence is not labeled.
func (s *Seq) Encode(states, symbols *Index) (obs, labels []int, e error) {

	obs, e = symbols.IDs(s.Obs)
	if e != nil {
		return nil, nil, fmt.Errorf("seq [%s] obs: %w", s.ID, e)
	}
	if len(s.Labels) == 0 {
		return obs, nil, nil
	}
	if len(s.Labels) != len(s.Obs) {
		return nil, nil, fmt.Errorf("seq [%s]: num labels [%d] doesn't match num obs [%d]", s.ID, len(s.Labels), len(s.Obs))
	}
	labels, e = states.IDs(s.Labels)
	if e != nil {
		return nil, nil, fmt.Errorf("seq [%s] labels: %w", s.ID, e)
	}
	return obs, labels, nil
}

// SeqReader reads a stream of JSON-encoded Seq values.
type SeqReader struct {
	reader io.Reader
	dec    *json.Decoder
}

// NewSeqReader creates a new SeqReader.
//
// Example to read sequences from a file (error handling ignored for brevity).
//
//	r, _ := os.Open(fn)         // Open file.
//	sr := NewSeqReader(r)       // Create reader.
//	seq, err := sr.Next()       // err is io.EOF after the last sequence.
//	_ = sr.Close()              // Closes the underlying file reader.
func NewSeqReader(reader io.Reader) *SeqReader {
	return &SeqReader{
		reader: reader,
		dec:    json.NewDecoder(bufio.NewReader(reader)),
	}
}

// Next returns the next sequence. Returns io.EOF when no more data is
// available.
func (sr *SeqReader) Next() (*Seq, error) {
	seq := new(Seq)
	if e := sr.dec.Decode(seq); e != nil {
		return nil, e
	}
	return seq, nil
}

// Close underlying reader if reader implements the io.Closer interface.
func (sr *SeqReader) Close() error {

	c, ok := sr.reader.(io.Closer)
	if ok {
		return c.Close()
	}
	return nil
}

// ReadSeqFile reads all sequences from a file.
func ReadSeqFile(fn string) ([]*Seq, error) {

	f, e := os.Open(fn)
	if e != nil {
		return nil, e
	}
	sr := NewSeqReader(f)
	defer sr.Close()

	var seqs []*Seq
	for {
		seq, e := sr.Next()
		if e == io.EOF {
			return seqs, nil
		}
		if e != nil {
			return nil, fmt.Errorf("file [%s] seq [%d]: %w", fn, len(seqs), e)
		}
		seqs = append(seqs, seq)
	}
}

// EncodeAll converts sequences to ids. All sequences must be labeled
// when labeled is true.
func EncodeAll(seqs []*Seq, states, symbols *Index, labeled bool) (obs, labels [][]int, e error) {

	obs = make([][]int, len(seqs))
	if labeled {
		labels = make([][]int, len(seqs))
	}
	for k, s := range seqs {
		o, l, e := s.Encode(states, symbols)
		if e != nil {
			return nil, nil, e
		}
		if labeled && l == nil {
			return nil, nil, fmt.Errorf("seq [%s] has no labels", s.ID)
		}
		obs[k] = o
		if labeled {
			labels[k] = l
		}
	}
	return obs, labels, nil
}

// JSONWriter writes values as JSON lines. Use it for Seq and Result values.
type JSONWriter struct {
	enc *json.Encoder
}

// NewJSONWriter creates a new JSONWriter.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{enc: json.NewEncoder(w)}
}

// Write encodes v on its own line.
func (jw *JSONWriter) Write(v interface{}) error {
	return jw.enc.Encode(v)
}
