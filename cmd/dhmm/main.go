// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dhmm trains discrete hidden Markov models from labeled sequences
// and decodes observation sequences with the Viterbi algorithm.
//
//	$ dhmm rand -n 500 -o train.json
//	$ dhmm train -d train.json -e test.json -r results.json
//	$ dhmm score -r results.json
package main

import (
	"flag"
	"os"
	osuser "os/user"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/akualab/dhmm"
	"github.com/golang/glog"
	"github.com/urfave/cli"
)

const (
	appName    = "dhmm"
	appVersion = "0.1"
)

// Properties of dhmm.
type Properties struct {
	Workspace string `toml:"workspace_dir"`
	LogDir    string `toml:"log_dir"`
}

var (
	config *dhmm.Config
	props  *Properties
)

func main() {

	// -v sets the glog level.
	cli.VersionFlag = cli.BoolFlag{Name: "version", Usage: "print the version"}

	app := cli.NewApp()
	app.Name = appName
	app.Usage = "discrete hidden Markov model toolkit"
	app.Version = appVersion
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config-file, c", Value: "config.yaml", Usage: "yaml config file"},
		cli.StringFlag{Name: "log-dir", Usage: "log output dir, overwrites properties file"},
		cli.StringFlag{Name: "log-level, v", Value: "0", Usage: "enable V-leveled logging at the specified level"},
		cli.BoolTFlag{Name: "log-stderr", Usage: "logs are written to standard error instead of files"},
	}
	app.Before = initApp
	app.Commands = []cli.Command{
		trainCommand,
		decodeCommand,
		scoreCommand,
		randCommand,
	}

	err := app.Run(os.Args)
	glog.Flush()
	if err != nil {
		glog.Fatal(err)
	}
}

// Reads properties and config file and sets up logging.
func initApp(c *cli.Context) error {

	var err error
	props, err = readProperties()
	if err != nil {
		return err
	}
	if err = initGlog(c); err != nil {
		return err
	}
	checkDir(props.Workspace)

	fn := c.GlobalString("config-file")
	config, err = dhmm.ReadConfig(fn)
	if os.IsNotExist(err) {
		glog.V(1).Infof("no config file [%s]", fn)
		config, err = &dhmm.Config{}, nil
	}
	if err != nil {
		return err
	}

	glog.V(1).Info("app properties: ", *props)
	glog.V(1).Info("app version: ", appVersion)
	glog.V(2).Infof("config: %+v", *config)
	return nil
}

// Reads toml properties from $DHMM_PROPERTIES or ~/.config/dhmm/properties.toml.
// A missing file is not an error.
func readProperties() (*Properties, error) {

	p := new(Properties)
	propPath := os.Getenv("DHMM_PROPERTIES")
	if len(propPath) == 0 {
		u, e := osuser.Current()
		if e != nil {
			return p, nil
		}
		propPath = filepath.Join(u.HomeDir, ".config", appName, "properties.toml")
	}
	if _, e := toml.DecodeFile(propPath, p); e != nil {
		if os.IsNotExist(e) {
			return p, nil
		}
		return nil, e
	}
	return p, nil
}

func initGlog(c *cli.Context) error {

	// glog registers its flags on the default flag set.
	if err := flag.CommandLine.Parse(nil); err != nil {
		return err
	}
	if err := flag.Set("v", c.GlobalString("log-level")); err != nil {
		return err
	}
	if c.GlobalBool("log-stderr") {
		return flag.Set("logtostderr", "true")
	}

	logDir := c.GlobalString("log-dir")
	if len(logDir) == 0 {
		logDir = props.LogDir
	}
	if len(logDir) == 0 {
		logDir = "log"
	}
	checkDir(logDir)
	return flag.Set("log_dir", logDir)
}

// Creates dir if it doesn't exist.
func checkDir(path string) {

	if len(path) == 0 {
		return
	}
	e := os.MkdirAll(path, 0755)
	if e != nil {
		glog.Fatal(e)
	}
}
