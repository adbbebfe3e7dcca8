// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
)

// a minimal configuration for the sample-config command
const sampleConfiguration = `-- avlstore.conf  -*- mode: lua -*-

local M = {}

-- "." means the same directory as this file
M.data_directory = arg["data"] or "."

-- owned-clone, owned-move or borrowed
M.policy = "owned-clone"

M.table = {
    buckets = 211,
    -- pjw, fnv1a, xxhash or sha3
    hash = "pjw",
    -- zero for no limit
    node_limit = 0,
}

M.logging = {
    directory = "log",
    file = "avlstore.log",
    size = 1048576,
    count = 10,
    console = false,
    levels = {
        DEFAULT = "info",
    },
}

return M
`

// setup command handler
//
// commands that do not need the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "sample-config", "sample":
		fmt.Print(sampleConfiguration)

	case "help", "h", "?":
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--define NAME=VALUE]... --config-file=FILE [[command|run] SCRIPT...]\n"+
			"\n"+
			"  sample-config              (sample) - display a sample configuration\n"+
			"  config-test                (cfg)    - just check the configuration file\n"+
			"  run [SCRIPT...]                     - execute scripts, stdin if none, same as no command\n"+
			"  version                    (v)      - display the version\n",
			program)

	default:
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// configuration command handler
//
// commands that only examine the configuration
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "run"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	default: // scripts are run by main
		return false
	}

	return true
}
