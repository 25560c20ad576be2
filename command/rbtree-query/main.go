// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/rbtree/diagnostics"
	"github.com/bitmark-inc/rbtree/fault"
	"github.com/bitmark-inc/rbtree/rbtree"
	"github.com/bitmark-inc/rbtree/visual"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "descending", HasArg: getoptions.NO_ARGUMENT, Short: 'd'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(options["descending"]) > 0 {
		theConfiguration.Order = orderDescending
	}
	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	less, err := orderFunction(theConfiguration.Order)
	if nil != err {
		log.Criticalf("order: %q error: %s", theConfiguration.Order, err)
		exitwithstatus.Message("%s: order: %q error: %s", program, theConfiguration.Order, err)
	}

	reporter := diagnostics.New(logger.New("tree"), theConfiguration.FatalAssertions)
	defer reporter.Summary()

	tree := rbtree.New(less)
	tree.SetReporter(reporter)

	stats, err := runQueries(os.Stdin, os.Stdout, tree, logger.New("query"))
	log.Infof("requests: %d  inserted: %d  erased: %d  queries: %d  invalid: %d",
		stats.requests, stats.inserted, stats.erased, stats.queries, stats.invalid)
	if nil != err {
		log.Errorf("query error: %s", err)
		exitwithstatus.Message("%s: query error: %s", program, err)
	}

	if "" != theConfiguration.DumpFile {
		if err := dumpTree(theConfiguration.DumpFile, tree); nil != err {
			log.Errorf("dump: %q error: %s", theConfiguration.DumpFile, err)
			exitwithstatus.Message("%s: dump: %q error: %s", program, theConfiguration.DumpFile, err)
		}
		log.Infof("dumped: %d keys to: %q", tree.Len(), theConfiguration.DumpFile)
	}
}

// write the final tree as a DOT graph
func dumpTree(fileName string, tree *rbtree.Tree[int64]) error {
	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if nil != err {
		return err
	}
	err = visual.WriteDot(f, tree, visual.Options{Name: "query"})
	if cerr := f.Close(); nil == err {
		err = cerr
	}
	return err
}
