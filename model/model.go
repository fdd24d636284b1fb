// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model defines the interfaces implemented by the sequence models in
// dhmm. Observations and hidden states are integer ids, 0 <= id < N.
package model

const (
	// DefaultSeed provided for model implementation.
	DefaultSeed = 33
)

// A Modeler type is a complete implementation of a discrete sequence model.
type Modeler interface {

	// The model name.
	Name() string

	// Number of hidden states.
	NStates() int

	// Number of distinct observation symbols.
	NObs() int

	Trainer
	Decoder
	Scorer
}

// A Trainer type can do supervised statistical learning.
type Trainer interface {

	// Estimates model parameters from observation sequences and the
	// corresponding state labels. Replaces all previous parameters.
	Learn(observations, labels [][]int) error

	// Clears all model parameters.
	Reset()
}

// Decoder returns the most likely hidden state sequence and its log
// likelihood given an observation sequence.
type Decoder interface {
	Viterbi(observation []int) (states []int, logLike float64, err error)
}

// Scorer computes the joint log probability of an observation sequence and
// a state sequence.
type Scorer interface {
	PathLogProb(observation, states []int) (float64, error)
}
