// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package floatx provides helpers to allocate, copy and transform
// slices of float64 values used as probability tables.
package floatx

import (
	"math"
)

type Error string

func (err Error) Error() string { return string(err) }

const (
	ErrZeroLength = Error("floatx: zero length in slice definition")
	ErrLength     = Error("floatx: length mismatch")
)

// ApplyFunc transforms the value at index n.
type ApplyFunc func(n int, v float64) float64

// ApplyFunc2D transforms the value at row n1, column n2.
type ApplyFunc2D func(n1, n2 int, v float64) float64

// LogProb maps a probability to the log domain. Zero and negative values
// map to -Inf.
var LogProb = func(r int, v float64) float64 {
	if v > 0 {
		return math.Log(v)
	}
	return math.Inf(-1)
}

// LogProb2D is LogProb for 2D slices.
var LogProb2D = func(r, c int, v float64) float64 { return LogProb(r, v) }

// Exp maps a log probability back to the linear domain.
var Exp = func(r int, v float64) float64 { return math.Exp(v) }

func SetValueFunc(f float64) ApplyFunc {
	return func(r int, v float64) float64 { return f }
}

// MakeFloat2D allocates an n1 x n2 slice of zeros.
func MakeFloat2D(n1, n2 int) [][]float64 {

	s := make([][]float64, n1)
	for i := 0; i < n1; i++ {
		s[i] = make([]float64, n2)
	}

	return s
}

// Copy returns a copy of s.
func Copy(s []float64) []float64 {
	return append([]float64(nil), s...)
}

// Copy2D returns a deep copy of s. Rows are never shared with the input.
func Copy2D(s [][]float64) [][]float64 {

	out := make([][]float64, len(s))
	for i, row := range s {
		out[i] = Copy(row)
	}
	return out
}

// Shape2D returns the dimensions of a rectangular 2D slice. Returns
// ErrZeroLength when s has no rows and ErrLength when rows don't have the
// same number of columns.
func Shape2D(s [][]float64) (n1, n2 int, err error) {

	n1 = len(s)
	if n1 == 0 {
		return 0, 0, ErrZeroLength
	}
	n2 = len(s[0])
	for _, row := range s[1:] {
		if len(row) != n2 {
			return 0, 0, ErrLength
		}
	}
	return n1, n2, nil
}

// Apply function to 1D slice. If out slice is empty, the function is applied in place.
func Apply(fn ApplyFunc, in, out []float64) []float64 {

	if len(out) == 0 {
		out = in
	}
	for i, v := range in {
		out[i] = fn(i, v)
	}

	return out
}

// Apply function to 2D slice. If out slice is empty, the function is applied in place.
func Apply2D(fn ApplyFunc2D, in, out [][]float64) [][]float64 {

	if len(out) == 0 {
		out = in
	}
	for i, row := range in {
		for j, v := range row {
			out[i][j] = fn(i, j, v)
		}
	}

	return out
}

// Set all values to zero.
func Clear(s []float64) {

	Apply(SetValueFunc(0), s, nil)
}

// Set all values to zero.
func Clear2D(s [][]float64) {

	for _, slice := range s {
		Clear(slice)
	}
}

// ArgMax returns the index and value of the largest element in s. The
// first index wins ties. -Inf values are valid, so an all -Inf slice
// returns index 0. Panics with ErrZeroLength if s is empty.
func ArgMax(s []float64) (int, float64) {

	if len(s) == 0 {
		panic(ErrZeroLength)
	}
	idx, max := 0, s[0]
	for i := 1; i < len(s); i++ {
		if s[i] > max {
			idx, max = i, s[i]
		}
	}
	return idx, max
}
