// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"fmt"
	"math/rand"

	"github.com/akualab/dhmm/floatx"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

const distTolerance = 0.001

// Generates a random number given a discrete prob distribution.
// This is not optimal but should work for testing
func RandIntFromDist(dist []float64, r *rand.Rand) (int, error) {
	N := len(dist)
	if N == 0 {
		return -1, fmt.Errorf("Error prob distribution has len 0")
	}
	if cum := floats.Sum(dist); !scalar.EqualWithinAbs(cum, 1.0, distTolerance) {
		return -1, fmt.Errorf("Distribution doesn't sum to 1 [%f]", cum)
	}
	ran := r.Float64()
	cum := 0.0
	for i := 0; i < N; i++ {
		cum = cum + dist[i]
		if ran < cum {
			return i, nil
		}
	}
	return N - 1, nil
}

// A similar function from above but using log prob.
func RandIntFromLogDist(dist []float64, r *rand.Rand) (int, error) {
	if len(dist) == 0 {
		return RandIntFromDist(nil, r)
	}
	p := floatx.Apply(floatx.Exp, dist, make([]float64, len(dist)))
	return RandIntFromDist(p, r)
}
