// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/akualab/dhmm"
	"github.com/golang/glog"
	"github.com/urfave/cli"
)

var scoreCommand = cli.Command{
	Name:      "score",
	ShortName: "s",
	Usage:     "Scores results.",
	Description: `computes state label accuracy.

Compares the reference and hypothesis labels of each result.

ex:
 $ dhmm score -r results.json -t score.txt
 `,
	Action: scoreAction,
	Flags: []cli.Flag{
		cli.StringFlag{Name: "results-file, r", Usage: "the input file with results to be analyzed"},
		cli.StringFlag{Name: "score-file, t", Usage: "output score file"},
	},
}

func scoreAction(c *cli.Context) (err error) {

	// Validate parameters. Command flags overwrite config file params.
	requiredStringParam(c, "results-file", &config.ResultsFile)
	stringParam(c, "score-file", &config.ScoreFile)

	w, done, e := createOrStdout(config.ScoreFile, "score")
	if e != nil {
		return e
	}
	defer closeInto(&err, done)

	// Open results file to start reading.
	resultsFile, e := os.Open(config.ResultsFile)
	if e != nil {
		return e
	}
	defer resultsFile.Close()

	return writeScores(resultsFile, w)
}

func writeScores(r io.Reader, w io.Writer) error {

	total, e := dhmm.ScoreResults(r, func(result dhmm.Result, acc dhmm.Accuracy) {
		fmt.Fprintf(w, "ID: %s, acc: %s\n", result.BatchID, acc)
		glog.V(3).Infof("\nREF: %v", result.Ref)
		glog.V(3).Infof("\nHYP: %v", result.Hyp)
	})
	if e != nil {
		return e
	}
	_, e = fmt.Fprintf(w, "\nAVG: acc: %s\n", total)
	return e
}
