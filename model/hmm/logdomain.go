// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"github.com/akualab/dhmm/floatx"
	"github.com/golang/glog"
)

// ConvertToLog converts the probability tables to the log domain. Zero
// probabilities become -Inf. Does nothing if the model is already in the log
// domain. Viterbi calls it automatically; call it explicitly to pay the
// conversion cost up front.
func (m *Model) ConvertToLog() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.logDomain {
		return
	}
	m.convertToLog()
}

// Must hold the write lock. Not idempotent, check m.logDomain first.
func (m *Model) convertToLog() {
	floatx.Apply(floatx.LogProb, m.initProbs, nil)
	floatx.Apply2D(floatx.LogProb2D, m.transProbs, nil)
	floatx.Apply2D(floatx.LogProb2D, m.emissionProbs, nil)
	m.logDomain = true
	glog.V(2).Infof("hmm [%s] converted to log domain", m.ModelName)
}

// rlockLog returns with the read lock held and the tables in the log
// domain. The caller must release the read lock.
func (m *Model) rlockLog() {
	for {
		m.mu.RLock()
		if m.logDomain {
			return
		}
		m.mu.RUnlock()
		m.ConvertToLog()
	}
}
