// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlstore/avl"
)

type intCapabilities struct{}

func (intCapabilities) Compare(a int, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}
func (intCapabilities) Clone(e int) int { return e }
func (intCapabilities) Destroy(e int)   {}

func parseNumbers(items []string) ([]int, error) {
	numbers := make([]int, len(items))
	for i, s := range items {
		n, err := strconv.Atoi(s)
		if nil != err {
			return nil, fmt.Errorf("number: %q error: %s", s, err)
		}
		numbers[i] = n
	}
	return numbers, nil
}

func runTree(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == c.NArg() {
		return fmt.Errorf("at least one number is required")
	}

	inserts, err := parseNumbers(c.Args())
	if nil != err {
		return err
	}
	deletes, err := parseNumbers(c.StringSlice("delete"))
	if nil != err {
		return err
	}

	tree := avl.New[int](intCapabilities{}, avl.Borrowed)
	for _, n := range inserts {
		added := tree.Insert(n)
		if m.verbose {
			fmt.Fprintf(m.e, "insert: %d  added: %t  height: %d\n", n, added, tree.Height())
		}
	}
	for _, n := range deletes {
		removed := tree.Remove(n)
		if m.verbose {
			fmt.Fprintf(m.e, "delete: %d  removed: %t  height: %d\n", n, removed, tree.Height())
		}
	}

	depth := tree.Print(m.w, true)

	check := "ok"
	if err := tree.Check(); nil != err {
		check = err.Error()
	}

	out := struct {
		Count     int    `json:"count"`
		Height    int    `json:"height"`
		Depth     int    `json:"depth"`
		Traversal []int  `json:"traversal"`
		Check     string `json:"check"`
	}{
		Count:     tree.Count(),
		Height:    tree.Height(),
		Depth:     depth,
		Traversal: tree.ToSequence(!c.Bool("descending")).Items(),
		Check:     check,
	}
	return printJson(m.w, out)
}
