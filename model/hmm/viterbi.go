// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"fmt"

	"github.com/akualab/dhmm/floatx"
	"github.com/golang/glog"
)

// The viterbi algorithm computes the probable sequence of states for an HMM.
// These are the equations in log scale:
//
//	delta(t, j) = max_{q(0),...,q(t-1)} log P(q(0),...,q(t-1), q(t)=j, o(0),...,o(t))
//
// Recursion in log scale   delta(t, j) [T x N]
//
//	delta(0, j) = π(j) + b(j, o(0))                             j in [0, N-1]
//	delta(t, j) = max_k [ delta(t-1, k) + a(k, j) ] + b(j, o(t))  j in [0, N-1], t in [1, T-1]
//	index(t, j) = argmax_k [ delta(t-1, k) + a(k, j) ]            j in [0, N-1], t in [1, T-1]
//
// Decoding z* is the output sequence [T]
//
//	z*(T-1) = argmax_j delta(T-1, j)
//	z*(t)   = index(t+1, z*(t+1))  t in [0, T-2]
//	logProb = max_j delta(T-1, j)
//
// Ties in argmax go to the lowest state index. When every candidate is -Inf
// the lowest index is used too, so the returned path is always well
// defined. In that case logProb is -Inf: the observation is impossible under
// the model.
//
// The first call converts the model to the log domain (see ConvertToLog).
// Invalid observations are rejected before the conversion.
func (m *Model) Viterbi(observation []int) (bt []int, logViterbiProb float64, e error) {

	if e = m.checkObservation(observation); e != nil {
		return
	}

	m.rlockLog()
	defer m.mu.RUnlock()

	N := m.ns
	T := len(observation)

	// Allocate delta, index and bt
	delta := floatx.MakeFloat2D(T, N)
	index := make([][]int, T)
	for t := 0; t < T; t++ {
		index[t] = make([]int, N)
		for i := range index[t] {
			index[t][i] = -1
		}
	}
	bt = make([]int, T)

	// Init delta
	o := observation[0]
	for i := 0; i < N; i++ {
		delta[0][i] = m.emissionProbs[i][o] + m.initProbs[i]
	}

	// Recursion
	scores := make([]float64, N)
	for t := 1; t < T; t++ {
		o = observation[t]
		for j := 0; j < N; j++ {
			for k := 0; k < N; k++ {
				scores[k] = delta[t-1][k] + m.transProbs[k][j]
			}
			argmax, max := floatx.ArgMax(scores)
			delta[t][j] = m.emissionProbs[j][o] + max
			index[t][j] = argmax
		}
	}

	// Decoding
	bt[T-1], logViterbiProb = floatx.ArgMax(delta[T-1])
	for t := T - 2; t >= 0; t-- {
		k := index[t+1][bt[t+1]]
		if k < 0 || k >= N {
			panic(fmt.Sprintf("hmm: viterbi found no predecessor for state [%d] at time [%d]", bt[t+1], t+1))
		}
		bt[t] = k
	}

	if glog.V(3) {
		glog.Infof("hmm [%s] viterbi T: %d, logProb: %f, path: %v", m.ModelName, T, logViterbiProb, bt)
	}
	return
}

func (m *Model) checkObservation(observation []int) error {
	if len(observation) == 0 {
		return domainErrorf("empty observation sequence")
	}
	for t, o := range observation {
		if o < 0 || o >= m.no {
			return domainErrorf("position [%d]: observation [%d] out of range [0,%d)", t, o, m.no)
		}
	}
	return nil
}
