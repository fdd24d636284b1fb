// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dhmm

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the configuration read by the dhmm command.
//
//	model:
//	  name: weather
//	  states: [hot, cold]
//	  symbols: ["1", "2", "3"]
//	  init_probs: [0.8, 0.2]
//	  trans_probs: [[0.7, 0.3], [0.4, 0.6]]
//	  emission_probs: [[0.2, 0.4, 0.4], [0.5, 0.4, 0.1]]
//	data_set: train.json
//	eval_set: test.json
//	results_file: results.json
//	generator:
//	  seed: 33
//	  max_length: 20
//	  num_sequences: 100
type Config struct {
	Model       ModelConfig     `yaml:"model"`
	DataSet     string          `yaml:"data_set,omitempty"`
	EvalSet     string          `yaml:"eval_set,omitempty"`
	ResultsFile string          `yaml:"results_file,omitempty"`
	ScoreFile   string          `yaml:"score_file,omitempty"`
	Generator   GeneratorConfig `yaml:"generator,omitempty"`
}

// ModelConfig has the state and symbol names and, optionally, the
// probability tables of a discrete HMM.
type ModelConfig struct {
	Name          string      `yaml:"name,omitempty"`
	States        []string    `yaml:"states"`
	Symbols       []string    `yaml:"symbols"`
	InitProbs     []float64   `yaml:"init_probs,omitempty"`
	TransProbs    [][]float64 `yaml:"trans_probs,omitempty"`
	EmissionProbs [][]float64 `yaml:"emission_probs,omitempty"`
}

// GeneratorConfig controls random data generation.
type GeneratorConfig struct {
	Seed         int64 `yaml:"seed,omitempty"`
	MaxLength    int   `yaml:"max_length,omitempty"`
	NumSequences int   `yaml:"num_sequences,omitempty"`
}

// ReadConfig reads a YAML config file.
func ReadConfig(fn string) (*Config, error) {

	f, e := os.Open(fn)
	if e != nil {
		return nil, e
	}
	defer f.Close()
	return ReadConfigReader(f)
}

// ReadConfigReader reads YAML config from an io.Reader.
func ReadConfigReader(r io.Reader) (*Config, error) {

	b, e := io.ReadAll(r)
	if e != nil {
		return nil, e
	}
	config := &Config{}
	if e = yaml.Unmarshal(b, config); e != nil {
		return nil, fmt.Errorf("bad config: %w", e)
	}
	return config, nil
}

// HasTables returns true if the config includes probability tables.
func (mc ModelConfig) HasTables() bool {
	return len(mc.InitProbs) > 0 || len(mc.TransProbs) > 0 || len(mc.EmissionProbs) > 0
}

// Check verifies that state and symbol names are defined and unique and
// that the tables, if present, have one row per state.
func (mc ModelConfig) Check() error {

	if len(mc.States) == 0 {
		return fmt.Errorf("model has no states")
	}
	if len(mc.Symbols) == 0 {
		return fmt.Errorf("model has no symbols")
	}
	if _, e := NewIndex(mc.States); e != nil {
		return fmt.Errorf("states: %w", e)
	}
	if _, e := NewIndex(mc.Symbols); e != nil {
		return fmt.Errorf("symbols: %w", e)
	}
	if !mc.HasTables() {
		return nil
	}
	ns := len(mc.States)
	if len(mc.InitProbs) != ns || len(mc.TransProbs) != ns || len(mc.EmissionProbs) != ns {
		return fmt.Errorf("tables must have [%d] rows, init_probs has [%d], trans_probs has [%d], emission_probs has [%d]",
			ns, len(mc.InitProbs), len(mc.TransProbs), len(mc.EmissionProbs))
	}
	for i, row := range mc.EmissionProbs {
		if len(row) != len(mc.Symbols) {
			return fmt.Errorf("emission_probs row [%d] has [%d] values, expected [%d]", i, len(row), len(mc.Symbols))
		}
	}
	return nil
}
