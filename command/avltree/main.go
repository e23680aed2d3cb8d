// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
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
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "remove", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'r'},
		{Long: "remove-all", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'R'},
		{Long: "dump", HasArg: getoptions.NO_ARGUMENT, Short: 'd'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [--remove=N] [--remove-all=N] [--dump] [--watch] [FILE]", program)
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	configurationFile := ""
	switch len(options["config-file"]) {
	case 0:
	case 1:
		configurationFile = options["config-file"][0]
	default:
		exitwithstatus.Message("%s: %s", program, fault.ErrMultipleConfigFiles)
	}

	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if verbose {
		masterConfiguration.Logging.Console = true
		masterConfiguration.Logging.Levels = LoglevelMap{
			logger.DefaultTag: "debug",
		}
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	inputFile := masterConfiguration.Input
	switch len(arguments) {
	case 0:
	case 1:
		inputFile = arguments[0]
	default:
		exitwithstatus.Message("%s: %s", program, fault.ErrTooManyArguments)
	}
	if "" == inputFile {
		exitwithstatus.Message("%s: %s", program, fault.ErrRequiredInputFile)
	}

	req := request{
		dump:  len(options["dump"]) > 0,
		check: verbose,
	}
	req.remove, err = parseValueOptions(options["remove"])
	if nil != err {
		exitwithstatus.Message("%s: --remove: %s", program, err)
	}
	req.removeAll, err = parseValueOptions(options["remove-all"])
	if nil != err {
		exitwithstatus.Message("%s: --remove-all: %s", program, err)
	}

	var out io.Writer = os.Stdout
	if quiet {
		out = io.Discard
	}

	if err := run(log, out, inputFile, req); nil != err {
		exitwithstatus.Message("%s: input file: %q  error: %s", program, inputFile, err)
	}

	if len(options["watch"]) > 0 {
		err := watch(log, out, inputFile, req)
		if nil != err && fault.ErrWatchedFileRemoved != err {
			exitwithstatus.Message("%s: watch: %q  error: %s", program, inputFile, err)
		}
	}
}

// one complete load and report
func run(log *logger.L, out io.Writer, inputFile string, req request) error {
	tree, err := buildTree(log, inputFile, req)
	if nil != err {
		return err
	}
	defer tree.Destroy()

	return report(out, tree, req.dump)
}

// rebuild the report on every change until removal or a signal
func watch(log *logger.L, out io.Writer, inputFile string, req request) error {
	watcher, err := newFileWatcher(inputFile, logger.New(fileWatcherLoggerPrefix))
	if nil != err {
		return err
	}
	if err := watcher.Start(); nil != err {
		return err
	}
	defer watcher.Stop()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	log.Infof("watching: %q", inputFile)
	for {
		select {
		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			return nil

		case <-watcher.RemoveChannel():
			return fault.ErrWatchedFileRemoved

		case <-watcher.ChangeChannel():
			log.Info("input changed, rebuilding")
			if err := run(log, out, inputFile, req); nil != err {
				// a partly written file is reported and the next write retried
				log.Errorf("rebuild failed: %s", err)
			}
		}
	}
}

// integer values from repeated options
func parseValueOptions(items []string) ([]int, error) {
	values := make([]int, 0, len(items))
	for _, s := range items {
		v, err := parseInteger(s)
		if nil != err {
			return nil, fault.ErrInvalidRemoveValue
		}
		values = append(values, v)
	}
	return values, nil
}
