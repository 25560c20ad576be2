// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/rbtree/configuration"
	"github.com/bitmark-inc/rbtree/fault"
	"github.com/bitmark-inc/rbtree/rbtree"
	"github.com/bitmark-inc/rbtree/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the configuration file
	defaultOrder         = orderAscending

	defaultLogDirectory = "log"
	defaultLogFile      = "rbtree-query.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

const (
	orderAscending  = "ascending"
	orderDescending = "descending"
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - the query harness settings
type Configuration struct {
	DataDirectory   string               `gluamapper:"data_directory" json:"data_directory"`
	Order           string               `gluamapper:"order" json:"order"`
	FatalAssertions bool                 `gluamapper:"fatal_assertions" json:"fatal_assertions"`
	DumpFile        string               `gluamapper:"dump_file" json:"dump_file"`
	Logging         logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory:   defaultDataDirectory,
		Order:           defaultOrder,
		FatalAssertions: false,
		DumpFile:        "", // no graph dump by default

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	options.Order = strings.ToLower(options.Order)
	if _, err := orderFunction(options.Order); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.ErrDataDirectory
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = util.EnsureAbsolute(dataDirectory, options.DataDirectory)

	// create the data directory if it does not already exist
	if err := util.EnsureDirectory(options.DataDirectory); nil != err {
		return nil, err
	}

	if !util.IsPlainName(options.Logging.File) {
		return nil, fault.ErrInvalidPlainName
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.DumpFile {
		options.DumpFile = util.EnsureAbsolute(options.DataDirectory, options.DumpFile)
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = util.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := util.EnsureDirectory(options.Logging.Directory); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// the key ordering selected by name
func orderFunction(order string) (rbtree.LessFunc[int64], error) {
	switch order {
	case orderAscending:
		return func(a int64, b int64) bool {
			return a < b
		}, nil
	case orderDescending:
		return func(a int64, b int64) bool {
			return a > b
		}, nil
	default:
		return nil, fault.ErrInvalidOrder
	}
}
