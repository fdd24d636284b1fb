// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import "github.com/akualab/dhmm/floatx"

// PathLogProb returns the joint log probability of the observation sequence
// and the state sequence:
//
//	log P(O, Q) = π(q(0)) + b(q(0), o(0)) + sum_{t=1}^{T-1} [ a(q(t-1), q(t)) + b(q(t), o(t)) ]
//
// Works in either domain and never converts the model.
func (m *Model) PathLogProb(observation, states []int) (float64, error) {

	if err := m.checkObservation(observation); err != nil {
		return 0, err
	}
	if len(states) != len(observation) {
		return 0, domainErrorf("num states [%d] doesn't match num observations [%d]", len(states), len(observation))
	}
	for t, s := range states {
		if s < 0 || s >= m.ns {
			return 0, domainErrorf("position [%d]: state [%d] out of range [0,%d)", t, s, m.ns)
		}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	logp := func(v float64) float64 {
		if m.logDomain {
			return v
		}
		return floatx.LogProb(0, v)
	}

	s := states[0]
	sum := logp(m.initProbs[s]) + logp(m.emissionProbs[s][observation[0]])
	for t := 1; t < len(states); t++ {
		s = states[t]
		sum += logp(m.transProbs[states[t-1]][s]) + logp(m.emissionProbs[s][observation[t]])
	}
	return sum, nil
}
