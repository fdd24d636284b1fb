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
)

// Accuracy counts matching ref and hyp labels, position by position.
type Accuracy struct {
	Correct int
	Total   int
}

// Value returns the fraction of correct labels, zero when empty.
func (a Accuracy) Value() float64 {
	if a.Total == 0 {
		return 0
	}
	return float64(a.Correct) / float64(a.Total)
}

func (a Accuracy) String() string {
	return fmt.Sprintf("%.2f%% (%d/%d)", 100*a.Value(), a.Correct, a.Total)
}

// Add returns the sum of both counts.
func (a Accuracy) Add(b Accuracy) Accuracy {
	return Accuracy{Correct: a.Correct + b.Correct, Total: a.Total + b.Total}
}

// Score compares the reference and hypothesis of a result.
func Score(r Result) (Accuracy, error) {
	if len(r.Ref) != len(r.Hyp) {
		return Accuracy{}, fmt.Errorf("result [%s]: ref length [%d] doesn't match hyp length [%d]",
			r.BatchID, len(r.Ref), len(r.Hyp))
	}
	acc := Accuracy{Total: len(r.Ref)}
	for k, v := range r.Ref {
		if v == r.Hyp[k] {
			acc.Correct++
		}
	}
	return acc, nil
}

// ScoreResults scores a stream of JSON-encoded results. The callback, if
// not nil, is called with each result and its accuracy. Returns the total.
func ScoreResults(r io.Reader, fn func(Result, Accuracy)) (Accuracy, error) {

	var total Accuracy
	dec := json.NewDecoder(bufio.NewReader(r))
	for {
		var result Result
		e := dec.Decode(&result)
		if e == io.EOF {
			return total, nil
		}
		if e != nil {
			return total, e
		}
		acc, e := Score(result)
		if e != nil {
			return total, e
		}
		if fn != nil {
			fn(result, acc)
		}
		total = total.Add(acc)
	}
}
