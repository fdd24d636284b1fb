// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"math"

	"github.com/golang/glog"
	"gonum.org/v1/gonum/floats"
)

// Learn estimates the model parameters from labeled sequences. All previous
// parameters are discarded. For K sequences:
//
//	π(i)   = #{k: q_k(0) = i} / K
//	a(i,j) = #(i -> j) / max(1, #(i -> *))
//	b(i,k) = #(i emits k) / max(1, #(i emits *))
//
// Every position of every sequence contributes one emission count. Rows for
// states that never occur (or never transition) stay all zero.
//
// The input is checked before anything is modified; on error the model is
// unchanged. After Learn the tables are in the linear domain.
func (m *Model) Learn(observations, groundTruths [][]int) error {

	if err := m.checkTraining(observations, groundTruths); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()

	var numFrames int
	for k, obs := range observations {
		labels := groundTruths[k]
		m.initProbs[labels[0]]++
		for j := 0; j < len(labels)-1; j++ {
			m.transProbs[labels[j]][labels[j+1]]++
		}
		for j, s := range labels {
			m.emissionProbs[s][obs[j]]++
		}
		numFrames += len(obs)
	}

	floats.Scale(1/float64(len(observations)), m.initProbs)
	for i := 0; i < m.ns; i++ {
		normalize(m.transProbs[i])
		if !normalize(m.emissionProbs[i]) {
			glog.Warningf("hmm [%s]: state [%d] has no training observations", m.ModelName, i)
		}
	}

	glog.Infof("hmm [%s] trained with %d sequences, %d frames", m.ModelName, len(observations), numFrames)
	if glog.V(2) {
		glog.Infof("Init. State Probs:    %v.", m.initProbs)
		glog.Infof("Trans. Probs:         %v.", m.transProbs)
		glog.Infof("Emission Probs:       %v.", m.emissionProbs)
	}
	return nil
}

// Divides row by max(1, sum(row)). Returns false if the row was all zero.
func normalize(row []float64) bool {
	z := floats.Sum(row)
	floats.Scale(1/math.Max(1, z), row)
	return z > 0
}

func (m *Model) checkTraining(observations, groundTruths [][]int) error {

	if len(observations) == 0 {
		return domainErrorf("no training sequences")
	}
	if len(observations) != len(groundTruths) {
		return domainErrorf("num observation sequences [%d] doesn't match num label sequences [%d]",
			len(observations), len(groundTruths))
	}
	for k, obs := range observations {
		labels := groundTruths[k]
		if len(obs) != len(labels) {
			return domainErrorf("sequence [%d]: num observations [%d] doesn't match num labels [%d]",
				k, len(obs), len(labels))
		}
		if len(obs) == 0 {
			return domainErrorf("sequence [%d] is empty", k)
		}
		for j, s := range labels {
			if s < 0 || s >= m.ns {
				return domainErrorf("sequence [%d], position [%d]: label [%d] out of range [0,%d)", k, j, s, m.ns)
			}
			if o := obs[j]; o < 0 || o >= m.no {
				return domainErrorf("sequence [%d], position [%d]: observation [%d] out of range [0,%d)", k, j, o, m.no)
			}
		}
	}
	return nil
}
