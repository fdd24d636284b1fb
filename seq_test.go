// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dhmm

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seqData = `{"id":"s0","obs":["1","3","2"],"labels":["hot","hot","cold"]}
{"id":"s1","obs":["2"],"labels":["cold"]}
{"id":"s2","obs":["3","3"]}
`

func testIndexes(t *testing.T) (states, symbols *Index) {
	states, e := NewIndex([]string{"hot", "cold"})
	require.NoError(t, e)
	symbols, e = NewIndex([]string{"1", "2", "3"})
	require.NoError(t, e)
	return states, symbols
}

func TestSeqReader(t *testing.T) {

	sr := NewSeqReader(strings.NewReader(seqData))
	var ids []string
	for {
		seq, e := sr.Next()
		if e == io.EOF {
			break
		}
		require.NoError(t, e)
		t.Logf("seq: %+v", seq)
		ids = append(ids, seq.ID)
	}
	assert.Equal(t, []string{"s0", "s1", "s2"}, ids)
	assert.NoError(t, sr.Close())
}

func TestSeqEncode(t *testing.T) {

	states, symbols := testIndexes(t)

	s := &Seq{ID: "s0", Obs: []string{"1", "3", "2"}, Labels: []string{"hot", "hot", "cold"}}
	obs, labels, e := s.Encode(states, symbols)
	require.NoError(t, e)
	assert.Equal(t, []int{0, 2, 1}, obs)
	assert.Equal(t, []int{0, 0, 1}, labels)

	s = &Seq{ID: "s2", Obs: []string{"3"}}
	obs, labels, e = s.Encode(states, symbols)
	require.NoError(t, e)
	assert.Equal(t, []int{2}, obs)
	assert.Nil(t, labels)

	_, _, e = (&Seq{ID: "bad", Obs: []string{"4"}}).Encode(states, symbols)
	assert.Error(t, e)
	_, _, e = (&Seq{ID: "bad", Obs: []string{"1"}, Labels: []string{"warm"}}).Encode(states, symbols)
	assert.Error(t, e)
	_, _, e = (&Seq{ID: "bad", Obs: []string{"1"}, Labels: []string{"hot", "hot"}}).Encode(states, symbols)
	assert.Error(t, e)
}

func TestReadSeqFileAndEncodeAll(t *testing.T) {

	fn := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(fn, []byte(seqData), 0644))

	seqs, e := ReadSeqFile(fn)
	require.NoError(t, e)
	require.Len(t, seqs, 3)

	states, symbols := testIndexes(t)

	// s2 has no labels.
	_, _, e = EncodeAll(seqs, states, symbols, true)
	assert.Error(t, e)

	obs, labels, e := EncodeAll(seqs[:2], states, symbols, true)
	require.NoError(t, e)
	assert.Equal(t, [][]int{{0, 2, 1}, {1}}, obs)
	assert.Equal(t, [][]int{{0, 0, 1}, {1}}, labels)

	obs, labels, e = EncodeAll(seqs, states, symbols, false)
	require.NoError(t, e)
	assert.Len(t, obs, 3)
	assert.Nil(t, labels)
}

func TestJSONWriter(t *testing.T) {

	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	require.NoError(t, w.Write(&Seq{ID: "a", Obs: []string{"1"}}))
	require.NoError(t, w.Write(&Seq{ID: "b", Obs: []string{"2", "3"}, Labels: []string{"hot", "cold"}}))

	sr := NewSeqReader(&buf)
	s, e := sr.Next()
	require.NoError(t, e)
	assert.Equal(t, "a", s.ID)
	s, e = sr.Next()
	require.NoError(t, e)
	assert.Equal(t, []string{"hot", "cold"}, s.Labels)
	_, e = sr.Next()
	assert.Equal(t, io.EOF, e)
}
