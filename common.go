// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dhmm

import (
	"math"

	"github.com/golang/glog"
)

// Result is the decoder output for one sequence.
type Result struct {
	BatchID string   `json:"batchid"`
	Ref     []string `json:"ref,omitempty"`
	Hyp     []string `json:"hyp"`
	LogLike float64  `json:"loglike"`
}

// NewResult creates a Result. JSON can't represent -Inf so an impossible
// sequence is stored with LogLike = -math.MaxFloat64.
func NewResult(id string, ref, hyp []string, logLike float64) Result {
	if math.IsInf(logLike, -1) {
		logLike = -math.MaxFloat64
	}
	return Result{BatchID: id, Ref: ref, Hyp: hyp, LogLike: logLike}
}

// Impossible returns true if the decoded sequence has zero probability.
func (r Result) Impossible() bool {
	return r.LogLike == -math.MaxFloat64 || math.IsInf(r.LogLike, -1)
}

func Fatal(err error) {
	if err != nil {
		glog.Fatal(err)
	}
}
