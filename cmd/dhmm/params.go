// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/akualab/dhmm"
	"github.com/akualab/dhmm/model/hmm"
	"github.com/golang/glog"
	"github.com/urfave/cli"
)

// ErrNoConfigValue is returned when a param is not set in the config file
// nor with a command flag.
var ErrNoConfigValue = errors.New("no value in config file or command flag")

// Sets p to the value of the flag when the flag is set. Returns
// ErrNoConfigValue when the param has no value.
func stringParam(c *cli.Context, name string, p *string) error {
	if v := c.String(name); len(v) > 0 {
		*p = v
	}
	if len(*p) == 0 {
		return ErrNoConfigValue
	}
	return nil
}

func requiredStringParam(c *cli.Context, name string, p *string) {
	if e := stringParam(c, name, p); e != nil {
		dhmm.Fatal(fmt.Errorf("missing required parameter [%s]", name))
	}
}

// Same as stringParam for int params. Zero means not set.
func intParam(c *cli.Context, name string, p *int) error {
	if v := c.Int(name); v != 0 {
		*p = v
	}
	if *p == 0 {
		return ErrNoConfigValue
	}
	return nil
}

// Opens fn for writing. Writes to stdout when fn is empty. The returned
// func closes the file.
func createOrStdout(fn, what string) (*os.File, func() error, error) {
	if len(fn) == 0 {
		glog.Infof("no %s file specified, writing to stdout", what)
		return os.Stdout, func() error { return nil }, nil
	}
	f, e := os.Create(fn)
	if e != nil {
		return nil, nil, e
	}
	return f, f.Close, nil
}

// Calls done and keeps its error in err unless err is already set.
func closeInto(err *error, done func() error) {
	if e := done(); *err == nil {
		*err = e
	}
}

// Builds the state and symbol indexes of a model config and a model.
// When withTables is true, the model is built from the config tables.
func buildModel(mc dhmm.ModelConfig, withTables bool) (m *hmm.Model, states, symbols *dhmm.Index, e error) {

	if e = mc.Check(); e != nil {
		return nil, nil, nil, e
	}
	if states, e = dhmm.NewIndex(mc.States); e != nil {
		return nil, nil, nil, fmt.Errorf("states: %w", e)
	}
	if symbols, e = dhmm.NewIndex(mc.Symbols); e != nil {
		return nil, nil, nil, fmt.Errorf("symbols: %w", e)
	}
	name := mc.Name
	if len(name) == 0 {
		name = appName
	}

	if !withTables {
		m, e = hmm.NewModel(states.Len(), symbols.Len(), hmm.Name(name))
		return m, states, symbols, e
	}
	if !mc.HasTables() {
		return nil, nil, nil, errors.New("model probability tables missing in config file")
	}
	m, e = hmm.FromTables(mc.InitProbs, mc.TransProbs, mc.EmissionProbs, hmm.Name(name))
	return m, states, symbols, e
}

// Logs model tables using state and symbol names.
func logModel(m *hmm.Model, states, symbols *dhmm.Index) {

	pi := m.InitProbs()
	tp := m.TransProbs()
	ep := m.EmissionProbs()
	glog.Infof("model [%s] states: %v, symbols: %v", m.Name(), states.Names(seq(states.Len())), symbols.Names(seq(symbols.Len())))
	for i := 0; i < m.NStates(); i++ {
		glog.Infof("state [%s] init: %.4f, trans: %.4f, emission: %.4f", states.Names([]int{i})[0], pi[i], tp[i], ep[i])
	}
}

func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}
