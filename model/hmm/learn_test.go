// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"testing"

	"github.com/akualab/dhmm"
	"github.com/akualab/dhmm/model"
	"gonum.org/v1/gonum/floats"
)

var (
	trainObs = [][]int{
		{0, 0, 1, 2},
		{1, 1, 0},
		{2, 0},
	}
	trainLabels = [][]int{
		{0, 0, 1, 1},
		{1, 1, 0},
		{0, 1},
	}
)

func TestLearnCounts(t *testing.T) {

	m, err := NewModel(3, 3)
	fatalIf(t, err)
	fatalIf(t, m.Learn(trainObs, trainLabels))

	// Sequences start in states 0, 1, 0.
	dhmm.CompareSliceFloat(t, []float64{2.0 / 3, 1.0 / 3, 0}, m.InitProbs(), "init probs", tolerance)

	// Transitions: 0->0, 0->1, 1->1 | 1->1, 1->0 | 0->1
	tp := m.TransProbs()
	dhmm.CompareSliceFloat(t, []float64{1.0 / 3, 2.0 / 3, 0}, tp[0], "trans probs [0]", tolerance)
	dhmm.CompareSliceFloat(t, []float64{1.0 / 3, 2.0 / 3, 0}, tp[1], "trans probs [1]", tolerance)
	dhmm.CompareSliceFloat(t, []float64{0, 0, 0}, tp[2], "trans probs [2]", tolerance)

	// Emissions, including the last position of each sequence:
	// state 0 emits 0, 0, 0, 2; state 1 emits 1, 2, 1, 1, 0.
	ep := m.EmissionProbs()
	dhmm.CompareSliceFloat(t, []float64{3.0 / 4, 0, 1.0 / 4}, ep[0], "emission probs [0]", tolerance)
	dhmm.CompareSliceFloat(t, []float64{1.0 / 5, 3.0 / 5, 1.0 / 5}, ep[1], "emission probs [1]", tolerance)
	dhmm.CompareSliceFloat(t, []float64{0, 0, 0}, ep[2], "emission probs [2]", tolerance)

	if m.LogDomain() {
		t.Fatal("learn must leave the model in the linear domain")
	}
}

func TestLearnNormalization(t *testing.T) {

	gen := NewGenerator(makeWeatherHMM(t), model.DefaultSeed)
	var obs, labels [][]int
	for k := 0; k < 50; k++ {
		o, s, err := gen.Next(1 + k%7)
		fatalIf(t, err)
		obs = append(obs, o)
		labels = append(labels, s)
	}

	m, err := NewModel(3, 4)
	fatalIf(t, err)
	fatalIf(t, m.Learn(obs, labels))

	dhmm.CompareFloats(t, 1, floats.Sum(m.InitProbs()), "sum init probs", tolerance)
	tp := m.TransProbs()
	ep := m.EmissionProbs()
	for i := 0; i < 3; i++ {
		if s := floats.Sum(tp[i]); s != 0 {
			dhmm.CompareFloats(t, 1, s, "sum trans probs", tolerance)
		}
		if s := floats.Sum(ep[i]); s != 0 {
			dhmm.CompareFloats(t, 1, s, "sum emission probs", tolerance)
		}
	}
}

// Sequences of length one never contribute transitions.
func TestLearnSingleLength(t *testing.T) {

	m, err := NewModel(2, 2)
	fatalIf(t, err)
	fatalIf(t, m.Learn([][]int{{0}, {1}, {1}}, [][]int{{1}, {0}, {1}}))

	for i, row := range m.TransProbs() {
		if floats.Sum(row) != 0 {
			t.Fatalf("trans probs row [%d] must be zero, got %v", i, row)
		}
	}
	dhmm.CompareSliceFloat(t, []float64{1.0 / 3, 2.0 / 3}, m.InitProbs(), "init probs", tolerance)
	ep := m.EmissionProbs()
	dhmm.CompareSliceFloat(t, []float64{0, 1}, ep[0], "emission probs [0]", tolerance)
	dhmm.CompareSliceFloat(t, []float64{0.5, 0.5}, ep[1], "emission probs [1]", tolerance)
}

// Learn replaces the previous parameters and resets the domain.
func TestLearnAfterDecode(t *testing.T) {

	m := makeExampleHMM(t)
	_, _, err := m.Viterbi([]int{0, 1})
	fatalIf(t, err)
	if !m.LogDomain() {
		t.Fatal("expected log domain after viterbi")
	}

	fatalIf(t, m.Learn([][]int{{1, 1}}, [][]int{{1, 1}}))
	if m.LogDomain() {
		t.Fatal("expected linear domain after learn")
	}
	dhmm.CompareSliceFloat(t, []float64{0, 1}, m.InitProbs(), "init probs", tolerance)
	dhmm.CompareSliceFloat(t, []float64{0, 0}, m.TransProbs()[0], "trans probs [0]", tolerance)
	dhmm.CompareSliceFloat(t, []float64{0, 1}, m.TransProbs()[1], "trans probs [1]", tolerance)
	dhmm.CompareSliceFloat(t, []float64{0, 0}, m.EmissionProbs()[0], "emission probs [0]", tolerance)
}

func TestLearnErrors(t *testing.T) {

	cases := []struct {
		name   string
		obs    [][]int
		labels [][]int
	}{
		{"no data", nil, nil},
		{"num sequences", [][]int{{0}}, [][]int{{0}, {1}}},
		{"seq length", [][]int{{0, 1}}, [][]int{{0}}},
		{"empty seq", [][]int{{0}, {}}, [][]int{{0}, {}}},
		{"label range", [][]int{{0, 1}}, [][]int{{0, 2}}},
		{"negative label", [][]int{{0}}, [][]int{{-1}}},
		{"obs range", [][]int{{0, 3}}, [][]int{{0, 1}}},
	}

	for _, c := range cases {
		m := makeExampleHMM(t)
		err := m.Learn(c.obs, c.labels)
		if !IsDomainError(err) {
			t.Errorf("%s: expected domain error, got [%v]", c.name, err)
			continue
		}
		t.Logf("%s: %s", c.name, err)

		// Model is untouched.
		dhmm.CompareSliceFloat(t, examplePi, m.InitProbs(), c.name+": init probs", tolerance)
		dhmm.CompareSliceFloat(t, exampleT[1], m.TransProbs()[1], c.name+": trans probs", tolerance)
		dhmm.CompareSliceFloat(t, exampleE[0], m.EmissionProbs()[0], c.name+": emission probs", tolerance)
	}
}

// Estimating from data generated by a model should recover its parameters.
func TestLearnFromGenerator(t *testing.T) {

	m0 := makeWeatherHMM(t)
	gen := NewGenerator(m0, model.DefaultSeed)

	numSeq, seqLen := 2000, 25
	obs := make([][]int, numSeq)
	labels := make([][]int, numSeq)
	for k := 0; k < numSeq; k++ {
		var err error
		obs[k], labels[k], err = gen.Next(seqLen)
		fatalIf(t, err)
	}

	m, err := NewModel(3, 4, Name("estimated"))
	fatalIf(t, err)
	fatalIf(t, m.Learn(obs, labels))

	tp0, tp := m0.TransProbs(), m.TransProbs()
	ep0, ep := m0.EmissionProbs(), m.EmissionProbs()
	for i := 0; i < 3; i++ {
		t.Logf("state [%d] trans: %v, estimated: %v", i, tp0[i], tp[i])
		t.Logf("state [%d] emission: %v, estimated: %v", i, ep0[i], ep[i])
		dhmm.CompareSliceFloat(t, tp0[i], tp[i], "error in trans probs", 0.02)
		dhmm.CompareSliceFloat(t, ep0[i], ep[i], "error in emission probs", 0.02)
	}
	dhmm.CompareSliceFloat(t, m0.InitProbs(), m.InitProbs(), "error in init probs", 0.03)
}
