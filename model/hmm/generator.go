// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"fmt"
	"math/rand"

	"github.com/akualab/dhmm/model"
)

// Generator generates random observations using an hmm model.
// Not safe to use with multiple goroutines.
type Generator struct {
	hmm *Model
	r   *rand.Rand
}

// NewGenerator returns an hmm data generator. The model may be in either
// domain.
func NewGenerator(hmm *Model, seed int64) *Generator {
	return &Generator{
		hmm: hmm,
		r:   rand.New(rand.NewSource(seed)),
	}
}

// Next returns a random observation sequence of length n and the hidden
// state sequence that emitted it. Fails if a distribution used for sampling
// doesn't sum to one.
func (gen *Generator) Next(n int) (observation, states []int, err error) {

	if n <= 0 {
		return nil, nil, fmt.Errorf("sequence length must be positive, got [%d]", n)
	}

	m := gen.hmm
	m.mu.RLock()
	defer m.mu.RUnlock()

	draw := model.RandIntFromDist
	if m.logDomain {
		draw = model.RandIntFromLogDist
	}

	observation = make([]int, n)
	states = make([]int, n)

	s, e := draw(m.initProbs, gen.r)
	if e != nil {
		return nil, nil, fmt.Errorf("init probs: %w", e)
	}
	for t := 0; t < n; t++ {
		if t > 0 {
			s, e = draw(m.transProbs[s], gen.r)
			if e != nil {
				return nil, nil, fmt.Errorf("trans probs for state [%d]: %w", states[t-1], e)
			}
		}
		o, e := draw(m.emissionProbs[s], gen.r)
		if e != nil {
			return nil, nil, fmt.Errorf("emission probs for state [%d]: %w", s, e)
		}
		states[t] = s
		observation[t] = o
	}
	return observation, states, nil
}
