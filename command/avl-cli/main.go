// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlstore/hashtable"
)

type metadata struct {
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "explore AVL trees and bucket hashing"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "tree",
			Usage:     "build a tree of integers, draw it and check its balance",
			ArgsUsage: "NUMBER...\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "delete, d",
					Usage: " delete `NUMBER` after all inserts (may be repeated)",
				},
				cli.BoolFlag{
					Name:  "descending",
					Usage: " list the traversal in descending order",
				},
			},
			Action: runTree,
		},
		{
			Name:      "hash",
			Usage:     "display the hash and bucket of each key",
			ArgsUsage: "KEY...\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "buckets, b",
					Value: hashtable.DefaultBuckets,
					Usage: " number of buckets `COUNT`",
				},
				cli.StringFlag{
					Name:  "function, f",
					Value: hashtable.HashPJW,
					Usage: " hash function `NAME` [pjw|fnv1a|xxhash|sha3]",
				},
			},
			Action: runHash,
		},
		{
			Name:  "distribution",
			Usage: "fill a table with numeric keys and summarise the buckets",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "buckets, b",
					Value: hashtable.DefaultBuckets,
					Usage: " number of buckets `COUNT`",
				},
				cli.StringFlag{
					Name:  "function, f",
					Value: hashtable.HashPJW,
					Usage: " hash function `NAME` [pjw|fnv1a|xxhash|sha3]",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 10000,
					Usage: " number of keys `COUNT`",
				},
				cli.IntFlag{
					Name:  "key-size, k",
					Value: 4,
					Usage: " bytes per key `SIZE` [1..8]",
				},
			},
			Action: runDistribution,
		},
		{
			Name:  "version",
			Usage: "display avl-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata = map[string]interface{}{
			"config": &metadata{
				verbose: c.GlobalBool("verbose"),
				e:       c.App.ErrWriter,
				w:       c.App.Writer,
			},
		}
		return nil
	}

	return app
}
