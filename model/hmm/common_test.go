// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats"
)

const tolerance = 1e-9

var (
	examplePi = []float64{1, 0}
	exampleT  = [][]float64{{0.9, 0.1}, {0.1, 0.9}}
	exampleE  = [][]float64{{0.9, 0.1}, {0.1, 0.9}}
)

// Two states that tend to stay put and mostly emit their own id.
func makeExampleHMM(t *testing.T) *Model {
	m, err := FromTables(examplePi, exampleT, exampleE, Name("example"))
	fatalIf(t, err)
	return m
}

// A three state, four symbol model used to generate training data.
func makeWeatherHMM(t *testing.T) *Model {
	m, err := FromTables(
		[]float64{0.6, 0.3, 0.1},
		[][]float64{{0.7, 0.2, 0.1}, {0.3, 0.5, 0.2}, {0.2, 0.3, 0.5}},
		[][]float64{{0.6, 0.2, 0.1, 0.1}, {0.1, 0.5, 0.3, 0.1}, {0.05, 0.1, 0.25, 0.6}},
		Name("weather"))
	fatalIf(t, err)
	return m
}

// Random model with every probability > 0.
func makeRandHMM(t *testing.T, r *rand.Rand, ns, no int) *Model {
	dist := func(n int) []float64 {
		p := make([]float64, n)
		for i := range p {
			p[i] = 0.05 + r.Float64()
		}
		floats.Scale(1/floats.Sum(p), p)
		return p
	}
	pi := dist(ns)
	tp := make([][]float64, ns)
	ep := make([][]float64, ns)
	for i := 0; i < ns; i++ {
		tp[i] = dist(ns)
		ep[i] = dist(no)
	}
	m, err := FromTables(pi, tp, ep, Name("rand"))
	fatalIf(t, err)
	return m
}

func fatalIf(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}
