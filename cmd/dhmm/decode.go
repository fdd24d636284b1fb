// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"io"

	"github.com/akualab/dhmm"
	"github.com/akualab/dhmm/model/hmm"
	"github.com/golang/glog"
	"github.com/urfave/cli"
)

var decodeCommand = cli.Command{
	Name:      "decode",
	ShortName: "d",
	Usage:     "Finds the most likely state sequence for each observation sequence.",
	Description: `runs the viterbi decoder.

The model tables are read from the config file. Sequence labels,
when present, are written as references in the results file.

model:
  states: [hot, cold]
  symbols: ["1", "2", "3"]
  init_probs: [0.8, 0.2]
  trans_probs: [[0.7, 0.3], [0.4, 0.6]]
  emission_probs: [[0.2, 0.4, 0.4], [0.5, 0.4, 0.1]]

ex:
 $ dhmm decode -d data.json -r results.json
`,
	Action: decodeAction,
	Flags: []cli.Flag{
		cli.StringFlag{Name: "data-set, d", Usage: "the file with the sequences to decode"},
		cli.StringFlag{Name: "results-file, r", Usage: "output results file"},
		cli.IntFlag{Name: "workers, w", Usage: "number of concurrent decoders, defaults to num cpus"},
	},
}

func decodeAction(c *cli.Context) (err error) {

	// Validate parameters. Command flags overwrite config file params.
	requiredStringParam(c, "data-set", &config.DataSet)
	stringParam(c, "results-file", &config.ResultsFile)

	m, states, symbols, e := buildModel(config.Model, true)
	if e != nil {
		return e
	}
	logModel(m, states, symbols)

	seqs, e := dhmm.ReadSeqFile(config.DataSet)
	if e != nil {
		return e
	}
	glog.Infof("read [%d] sequences from [%s]", len(seqs), config.DataSet)

	w, done, e := createOrStdout(config.ResultsFile, "results")
	if e != nil {
		return e
	}
	defer closeInto(&err, done)

	acc, e := decodeSeqs(context.Background(), m, seqs, states, symbols, w, c.Int("workers"))
	if e != nil {
		return e
	}
	if acc.Total > 0 {
		glog.Infof("accuracy: %s", acc)
	}
	return nil
}

// Decodes sequences and writes one result per sequence. Returns the
// accuracy over the labeled sequences.
func decodeSeqs(ctx context.Context, dec *hmm.Model, seqs []*dhmm.Seq, states, symbols *dhmm.Index, w io.Writer, workers int) (dhmm.Accuracy, error) {

	var acc dhmm.Accuracy
	obs, _, e := dhmm.EncodeAll(seqs, states, symbols, false)
	if e != nil {
		return acc, e
	}
	decoded, e := hmm.DecodeAll(ctx, dec, obs, workers)
	if e != nil {
		return acc, e
	}

	jw := dhmm.NewJSONWriter(w)
	var numImpossible int
	for k, d := range decoded {
		r := dhmm.NewResult(seqs[k].ID, seqs[k].Labels, states.Names(d.States), d.LogLike)
		if r.Impossible() {
			numImpossible++
			glog.V(1).Infof("seq [%s] has zero probability under model [%s]", r.BatchID, dec.Name())
		}
		if e := jw.Write(r); e != nil {
			return acc, e
		}
		glog.V(3).Infof("seq [%s] hyp: %v, loglike: %f", r.BatchID, r.Hyp, d.LogLike)
		if len(r.Ref) == 0 {
			continue
		}
		a, e := dhmm.Score(r)
		if e != nil {
			return acc, e
		}
		acc = acc.Add(a)
	}
	if numImpossible > 0 {
		glog.Warningf("[%d] out of [%d] sequences have zero probability", numImpossible, len(decoded))
	}
	return acc, nil
}
