// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hmm provides an implementation of discrete hidden Markov models.

States are labeled {0,1,...,N-1} and observations are symbols
{0,1,...,M-1}. The complete model is Φ = (A, B, π):

	π(i)   = P[q(0) = i]                   (init probs)
	a(i,j) = P[q(t+1) = j | q(t) = i]      (transition probs)
	b(i,k) = P[o(t) = k | q(t) = i]        (emission probs)

Parameters are estimated from labeled sequences using relative frequencies
(see Model.Learn) and decoded with the Viterbi algorithm (see Model.Viterbi).
Tables are kept as probabilities until the first decode, when they are
converted to the log domain once.
*/
package hmm

import (
	"sync"

	"github.com/akualab/dhmm/floatx"
	"github.com/akualab/dhmm/model"
	"github.com/golang/glog"
)

var _ model.Modeler = (*Model)(nil)

// Model is a discrete hidden Markov model.
type Model struct {

	// Model name.
	ModelName string

	// Number of hidden states. N
	ns int

	// Number of observation symbols. M
	no int

	// Initial state distribution. [ns]
	initProbs []float64

	// State-transition probability distribution matrix. [ns x ns]
	transProbs [][]float64

	// Observation probability distribution matrix. [ns x no]
	emissionProbs [][]float64

	// When true, the three tables hold natural logs.
	logDomain bool

	// Guards the tables and the domain flag.
	mu sync.RWMutex
}

// Option type is used to pass options to NewModel() and FromTables().
type Option func(*Model)

// Name is an option to set the model name.
func Name(name string) Option {
	return func(m *Model) { m.ModelName = name }
}

// NewModel creates an HMM with all probabilities set to zero. Use Learn to
// estimate the parameters.
func NewModel(nStates, nObs int, options ...Option) (*Model, error) {

	if nStates <= 0 {
		return nil, configErrorf("num states must be positive, got [%d]", nStates)
	}
	if nObs <= 0 {
		return nil, configErrorf("num observation symbols must be positive, got [%d]", nObs)
	}

	m := &Model{
		ModelName:     "HMM",
		ns:            nStates,
		no:            nObs,
		initProbs:     make([]float64, nStates),
		transProbs:    floatx.MakeFloat2D(nStates, nStates),
		emissionProbs: floatx.MakeFloat2D(nStates, nObs),
	}
	for _, option := range options {
		option(m)
	}

	glog.V(1).Infof("New HMM [%s]. Num states = %d, num symbols = %d.", m.ModelName, nStates, nObs)
	return m, nil
}

// FromTables creates an HMM from probability tables. Tables must be in the
// linear domain and are copied; later changes to the arguments don't affect
// the model. Only the shapes are validated.
//
//	initProbs:     π(i) = initProbs[i]
//	transProbs:    a(i,j) = transProbs[i][j]
//	emissionProbs: b(i,k) = emissionProbs[i][k]
func FromTables(initProbs []float64, transProbs, emissionProbs [][]float64, options ...Option) (*Model, error) {

	ns := len(initProbs)
	if ns == 0 {
		return nil, configErrorf("initProbs is empty")
	}

	if len(transProbs) != ns {
		return nil, configErrorf("num rows of transProbs [%d] doesn't match num states [%d]", len(transProbs), ns)
	}
	for i, row := range transProbs {
		if len(row) != ns {
			return nil, configErrorf("num cols of transProbs row [%d] is [%d], expected [%d]", i, len(row), ns)
		}
	}

	nr, no, err := floatx.Shape2D(emissionProbs)
	if err != nil {
		return nil, configErrorf("bad emissionProbs shape: %s", err)
	}
	if nr != ns {
		return nil, configErrorf("num rows of emissionProbs [%d] doesn't match num states [%d]", nr, ns)
	}
	if no == 0 {
		return nil, configErrorf("emissionProbs has no columns")
	}

	m, err := NewModel(ns, no, options...)
	if err != nil {
		return nil, err
	}
	copy(m.initProbs, initProbs)
	m.transProbs = floatx.Copy2D(transProbs)
	m.emissionProbs = floatx.Copy2D(emissionProbs)

	if glog.V(2) {
		glog.Infof("Init. State Probs:    %v.", m.initProbs)
		glog.Infof("Trans. Probs:         %v.", m.transProbs)
		glog.Infof("Emission Probs:       %v.", m.emissionProbs)
	}
	return m, nil
}

// Name returns the name of the model.
func (m *Model) Name() string { return m.ModelName }

// NStates returns the number of hidden states.
func (m *Model) NStates() int { return m.ns }

// NObs returns the number of observation symbols.
func (m *Model) NObs() int { return m.no }

// LogDomain returns true when the tables hold log probabilities.
func (m *Model) LogDomain() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.logDomain
}

// InitProbs returns a copy of the initial state distribution in the
// current domain.
func (m *Model) InitProbs() []float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return floatx.Copy(m.initProbs)
}

// TransProbs returns a copy of the transition matrix in the current domain.
func (m *Model) TransProbs() [][]float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return floatx.Copy2D(m.transProbs)
}

// EmissionProbs returns a copy of the emission matrix in the current domain.
func (m *Model) EmissionProbs() [][]float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return floatx.Copy2D(m.emissionProbs)
}

// Reset sets all probabilities to zero and returns the model to the
// linear domain.
func (m *Model) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()
}

func (m *Model) reset() {
	floatx.Clear(m.initProbs)
	floatx.Clear2D(m.transProbs)
	floatx.Clear2D(m.emissionProbs)
	m.logDomain = false
}
