// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlstore/avl"
	"github.com/bitmark-inc/avlstore/hashtable"
)

// create an empty table from the common flags
func makeTable(c *cli.Context) (*hashtable.Table[int], error) {
	configuration := &hashtable.Configuration{
		Buckets: c.Int("buckets"),
		Hash:    c.String("function"),
	}
	if configuration.Buckets < 1 {
		return nil, fmt.Errorf("buckets: %d must be positive", configuration.Buckets)
	}
	return hashtable.NewFromConfiguration[int](configuration, avl.Borrowed, nil)
}

func runHash(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == c.NArg() {
		return fmt.Errorf("at least one key is required")
	}

	h, err := hashtable.HashByName(c.String("function"))
	if nil != err {
		return err
	}
	table, err := makeTable(c)
	if nil != err {
		return err
	}

	type hashed struct {
		Key    string `json:"key"`
		Hash   string `json:"hash"`
		Bucket int    `json:"bucket"`
	}
	out := make([]hashed, 0, c.NArg())
	for _, s := range c.Args() {
		key := hashtable.StringKey(s)
		out = append(out, hashed{
			Key:    s,
			Hash:   fmt.Sprintf("%016x", h(key.Bytes())),
			Bucket: table.BucketIndex(key),
		})
	}

	if m.verbose {
		fmt.Fprintf(m.e, "function: %s  buckets: %d\n", c.String("function"), table.Buckets())
	}
	return printJson(m.w, out)
}
