// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"github.com/akualab/dhmm"
	"github.com/golang/glog"
	"github.com/urfave/cli"
)

var trainCommand = cli.Command{
	Name:      "train",
	ShortName: "t",
	Usage:     "Estimates model parameters using labeled data.",
	Description: `runs supervised trainer.

Probabilities are estimated by counting initial states, transitions,
and emissions in the labeled sequences. Tables in the config file
are ignored. A sample config file will look like this:

model:
  name: weather
  states: [hot, cold]
  symbols: ["1", "2", "3"]
data_set: train.json
eval_set: test.json

ex:
 $ dhmm train -d train.json -e test.json -r results.json
`,
	Action: trainAction,
	Flags: []cli.Flag{
		cli.StringFlag{Name: "data-set, d", Usage: "the file with the labeled training sequences"},
		cli.StringFlag{Name: "eval-set, e", Usage: "the file with sequences to decode after training"},
		cli.StringFlag{Name: "results-file, r", Usage: "output results file for the eval set"},
		cli.IntFlag{Name: "workers, w", Usage: "number of concurrent decoders, defaults to num cpus"},
	},
}

func trainAction(c *cli.Context) (err error) {

	// Validate parameters. Command flags overwrite config file params.
	requiredStringParam(c, "data-set", &config.DataSet)
	stringParam(c, "eval-set", &config.EvalSet)
	stringParam(c, "results-file", &config.ResultsFile)

	m, states, symbols, e := buildModel(config.Model, false)
	if e != nil {
		return e
	}

	seqs, e := dhmm.ReadSeqFile(config.DataSet)
	if e != nil {
		return e
	}
	obs, labels, e := dhmm.EncodeAll(seqs, states, symbols, true)
	if e != nil {
		return e
	}
	glog.Infof("training model [%s] with [%d] sequences from [%s]", m.Name(), len(seqs), config.DataSet)
	if e := m.Learn(obs, labels); e != nil {
		return e
	}
	logModel(m, states, symbols)

	if len(config.EvalSet) == 0 {
		return nil
	}
	evalSeqs, e := dhmm.ReadSeqFile(config.EvalSet)
	if e != nil {
		return e
	}
	glog.Infof("decoding [%d] sequences from [%s]", len(evalSeqs), config.EvalSet)

	w, done, e := createOrStdout(config.ResultsFile, "results")
	if e != nil {
		return e
	}
	defer closeInto(&err, done)

	acc, e := decodeSeqs(context.Background(), m, evalSeqs, states, symbols, w, c.Int("workers"))
	if e != nil {
		return e
	}
	if acc.Total > 0 {
		glog.Infof("eval set accuracy: %s", acc)
	}
	return nil
}
