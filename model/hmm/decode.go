// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"context"
	"fmt"
	"runtime"

	"github.com/akualab/dhmm/model"
	"golang.org/x/sync/errgroup"
)

// Decoded is the Viterbi result for one observation sequence.
type Decoded struct {
	States  []int
	LogLike float64
}

// DecodeAll runs the decoder on each observation sequence using up to
// workers goroutines (runtime.NumCPU() if workers <= 0). Results are in the
// same order as the input. Stops at the first error.
func DecodeAll(ctx context.Context, dec model.Decoder, observations [][]int, workers int) ([]Decoded, error) {

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Decoded, len(observations))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for k := range observations {
		k := k
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			states, logLike, err := dec.Viterbi(observations[k])
			if err != nil {
				return fmt.Errorf("sequence [%d]: %w", k, err)
			}
			results[k] = Decoded{States: states, LogLike: logLike}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
