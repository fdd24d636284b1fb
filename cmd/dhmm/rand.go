// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/akualab/dhmm"
	"github.com/akualab/dhmm/model"
	"github.com/akualab/dhmm/model/hmm"
	"github.com/golang/glog"
	"github.com/urfave/cli"
)

const (
	defaultMaxLength    = 20
	defaultNumSequences = 100
)

var randCommand = cli.Command{
	Name:      "rand",
	ShortName: "r",
	Usage:     "Generates random labeled sequences.",
	Description: `samples sequences from the model in the config file.

Sequence lengths are uniform in [1, max_length].

generator:
  seed: 33
  max_length: 20
  num_sequences: 100

ex:
 $ dhmm rand -n 500 -o train.json
`,
	Action: randAction,
	Flags: []cli.Flag{
		cli.StringFlag{Name: "out, o", Usage: "output data file"},
		cli.IntFlag{Name: "num-sequences, n", Usage: "number of sequences"},
		cli.IntFlag{Name: "max-length, l", Usage: "max length of a sequence"},
		cli.Int64Flag{Name: "seed", Usage: "random seed"},
	},
}

func randAction(c *cli.Context) (err error) {

	gc := config.Generator
	if intParam(c, "num-sequences", &gc.NumSequences) == ErrNoConfigValue {
		gc.NumSequences = defaultNumSequences
	}
	if intParam(c, "max-length", &gc.MaxLength) == ErrNoConfigValue {
		gc.MaxLength = defaultMaxLength
	}
	if s := c.Int64("seed"); s != 0 {
		gc.Seed = s
	}
	if gc.Seed == 0 {
		gc.Seed = model.DefaultSeed
	}

	m, states, symbols, e := buildModel(config.Model, true)
	if e != nil {
		return e
	}

	w, done, e := createOrStdout(c.String("out"), "data")
	if e != nil {
		return e
	}
	defer closeInto(&err, done)

	glog.Infof("generating [%d] sequences from model [%s] with seed [%d]", gc.NumSequences, m.Name(), gc.Seed)
	return generate(m, states, symbols, gc, w)
}

func generate(m *hmm.Model, states, symbols *dhmm.Index, gc dhmm.GeneratorConfig, w io.Writer) error {

	if gc.NumSequences < 0 || gc.MaxLength <= 0 {
		return fmt.Errorf("bad generator config: num sequences [%d], max length [%d]", gc.NumSequences, gc.MaxLength)
	}
	gen := hmm.NewGenerator(m, gc.Seed)
	r := rand.New(rand.NewSource(gc.Seed))
	jw := dhmm.NewJSONWriter(w)
	for k := 0; k < gc.NumSequences; k++ {
		obs, labels, e := gen.Next(1 + r.Intn(gc.MaxLength))
		if e != nil {
			return e
		}
		s := &dhmm.Seq{
			ID:     fmt.Sprintf("%s-%d", m.Name(), k),
			Obs:    symbols.Names(obs),
			Labels: states.Names(labels),
		}
		if e := jw.Write(s); e != nil {
			return e
		}
	}
	return nil
}
