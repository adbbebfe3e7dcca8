// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlstore/hashtable"
)

type distribution struct {
	Function  string  `json:"function"`
	Buckets   int     `json:"buckets"`
	Keys      int     `json:"keys"`
	Empty     int     `json:"empty"`
	Smallest  int     `json:"smallest"`
	Largest   int     `json:"largest"`
	Mean      float64 `json:"mean"`
	Deviation float64 `json:"deviation"`
	MaxHeight int     `json:"max_height"`
	Heights   []int   `json:"heights"`
}

func runDistribution(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	if count < 0 {
		return fmt.Errorf("count: %d must not be negative", count)
	}
	keySize := c.Int("key-size")

	table, err := makeTable(c)
	if nil != err {
		return err
	}

	for i := 0; i < count; i += 1 {
		key, err := hashtable.Uint64Key(uint64(i), keySize)
		if nil != err {
			return err
		}
		table.Insert(key, i)
	}
	if err := table.Check(); nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "inserted: %s keys into: %s buckets\n", humanize.Comma(int64(table.Count())), humanize.Comma(int64(table.Buckets())))
	}

	return printJson(m.w, summarise(c.String("function"), table.BucketSizes(), table.BucketHeights(), table.Count()))
}

// statistics of the bucket sizes, Heights[h] counts buckets whose
// tree has height h
func summarise(function string, sizes []int, heights []int, keys int) distribution {
	d := distribution{
		Function: function,
		Buckets:  len(sizes),
		Keys:     keys,
		Smallest: math.MaxInt32,
	}
	for i, size := range sizes {
		if 0 == size {
			d.Empty += 1
		}
		if size < d.Smallest {
			d.Smallest = size
		}
		if size > d.Largest {
			d.Largest = size
		}
		if heights[i] > d.MaxHeight {
			d.MaxHeight = heights[i]
		}
	}
	if 0 == len(sizes) {
		d.Smallest = 0
		return d
	}

	d.Heights = make([]int, d.MaxHeight+1)
	for _, h := range heights {
		d.Heights[h] += 1
	}

	d.Mean = float64(keys) / float64(len(sizes))
	sum := 0.0
	for _, size := range sizes {
		diff := float64(size) - d.Mean
		sum += diff * diff
	}
	d.Deviation = math.Sqrt(sum / float64(len(sizes)))
	return d
}
