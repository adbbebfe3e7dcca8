// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlstore/avl"
	"github.com/bitmark-inc/avlstore/configuration"
	"github.com/bitmark-inc/avlstore/fault"
	"github.com/bitmark-inc/avlstore/hashtable"
	"github.com/bitmark-inc/avlstore/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultPolicy = "owned-clone"
	defaultHash   = hashtable.HashPJW

	defaultLogDirectory = "log"
	defaultLogFile      = "avlstore.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"script":          "info",
		logger.DefaultTag: "critical",
	}
)

// Configuration - the avlstore configuration file
type Configuration struct {
	DataDirectory string                  `gluamapper:"data_directory" json:"data_directory"`
	Policy        string                  `gluamapper:"policy" json:"policy"`
	Table         hashtable.Configuration `gluamapper:"table" json:"table"`
	Logging       logger.Configuration    `gluamapper:"logging" json:"logging"`

	policy avl.Policy
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Policy:        defaultPolicy,

		Table: hashtable.Configuration{
			Buckets:   hashtable.DefaultBuckets,
			Hash:      defaultHash,
			NodeLimit: 0,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	options.policy, err = avl.ParsePolicy(options.Policy)
	if nil != err {
		return nil, fmt.Errorf("policy: %q error: %w", options.Policy, err)
	}
	options.Policy = options.policy.String()

	if _, err := hashtable.HashByName(options.Table.Hash); nil != err {
		return nil, fmt.Errorf("hash: %q error: %w  use one of: %v", options.Table.Hash, err, hashtable.HashNames())
	}
	if options.Table.Buckets < 1 {
		return nil, fmt.Errorf("buckets: %d error: %w", options.Table.Buckets, fault.ErrBucketCount)
	}
	if options.Table.NodeLimit < 0 {
		return nil, fmt.Errorf("node_limit: %d error: %w", options.Table.NodeLimit, fault.ErrNodeLimit)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = util.EnsureAbsolute(dataDirectory, options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// the log file must be a simple name within the log directory
	if !util.IsPlainName(options.Logging.File) {
		return nil, fmt.Errorf("files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = util.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := util.EnsureDirectory(options.Logging.Directory); nil != err {
		return nil, err
	}

	// done
	return options, nil
}
