// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatx

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestCopy2D(t *testing.T) {

	s2d := [][]float64{{11, 22}, {33, 44}, {55, 66}}
	c := Copy2D(s2d)
	c[1][0] = -1

	if s2d[1][0] != 33 {
		t.Fatalf("copy shares rows with input, got %v", s2d)
	}
	if !floats.Equal(c[2], s2d[2]) {
		t.Fatalf("Copy failed. expected %+v, got %+v", s2d[2], c[2])
	}
}

func TestShape2D(t *testing.T) {

	n1, n2, err := Shape2D([][]float64{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		t.Fatal(err)
	}
	if n1 != 2 || n2 != 3 {
		t.Fatalf("wrong shape [%d,%d], expected [2,3]", n1, n2)
	}

	if _, _, err := Shape2D(nil); err != ErrZeroLength {
		t.Fatalf("expected ErrZeroLength, got %v", err)
	}
	if _, _, err := Shape2D([][]float64{{1, 2}, {3}}); err != ErrLength {
		t.Fatalf("expected ErrLength, got %v", err)
	}
}

func TestLogProb(t *testing.T) {

	s := [][]float64{{1, 0}, {0.5, -2}}
	Apply2D(LogProb2D, s, nil)

	if s[0][0] != 0 {
		t.Errorf("log(1) = %f", s[0][0])
	}
	if !math.IsInf(s[0][1], -1) || !math.IsInf(s[1][1], -1) {
		t.Errorf("non-positive values must map to -Inf, got %v", s)
	}
	if math.Abs(s[1][0]-math.Log(0.5)) > 1e-12 {
		t.Errorf("log(0.5) = %f", s[1][0])
	}
}

func TestClear2D(t *testing.T) {

	s := [][]float64{{1, 2}, {3, 4}}
	Clear2D(s)
	for _, row := range s {
		if floats.Sum(row) != 0 {
			t.Fatalf("Clear2D failed: %v", s)
		}
	}
}

func TestArgMax(t *testing.T) {

	inf := math.Inf(-1)
	cases := []struct {
		in  []float64
		idx int
	}{
		{[]float64{1, 3, 2}, 1},
		{[]float64{-1, -1, -2}, 0},
		{[]float64{inf, 0.5, 0.5}, 1},
		{[]float64{inf, inf}, 0},
	}
	for _, c := range cases {
		if idx, _ := ArgMax(c.in); idx != c.idx {
			t.Errorf("ArgMax(%v) = %d, expected %d", c.in, idx, c.idx)
		}
	}
}

func TestExp(t *testing.T) {

	in := []float64{math.Inf(-1), 0, math.Log(0.25)}
	out := Apply(Exp, in, make([]float64, len(in)))
	if !floats.EqualApprox(out, []float64{0, 1, 0.25}, 1e-12) {
		t.Fatalf("wrong exp values %v", out)
	}
	if !math.IsInf(in[0], -1) || in[1] != 0 {
		t.Fatalf("input changed when out slice given, got %v", in)
	}
}
