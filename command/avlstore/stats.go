// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// summary of the table shape and value ownership
type tableStats struct {
	Entries     int `json:"entries"`
	Buckets     int `json:"buckets"`
	UsedBuckets int `json:"used_buckets"`
	Largest     int `json:"largest"`
	MaxHeight   int `json:"max_height"`
	Nodes       int `json:"nodes"`
	FreeNodes   int `json:"free_nodes"`
	Clones      int `json:"clones"`
	Destroys    int `json:"destroys"`
	Operations  int `json:"operations"`
}

func (s *session) collectStats() tableStats {
	st := tableStats{
		Entries:    s.table.Count(),
		Buckets:    s.table.Buckets(),
		Clones:     s.values.clones,
		Destroys:   s.values.destroys,
		Operations: s.operations,
	}
	st.Nodes, st.FreeNodes = s.table.Nodes()

	heights := s.table.BucketHeights()
	for i, size := range s.table.BucketSizes() {
		if size > 0 {
			st.UsedBuckets += 1
		}
		if size > st.Largest {
			st.Largest = size
		}
		if heights[i] > st.MaxHeight {
			st.MaxHeight = heights[i]
		}
	}
	return st
}

func (s *session) stats(arguments []string) error {
	st := s.collectStats()
	fmt.Fprintf(s.w, "entries:    %s\n", humanize.Comma(int64(st.Entries)))
	fmt.Fprintf(s.w, "buckets:    %s  used: %s\n", humanize.Comma(int64(st.Buckets)), humanize.Comma(int64(st.UsedBuckets)))
	fmt.Fprintf(s.w, "largest:    %s  max height: %d\n", humanize.Comma(int64(st.Largest)), st.MaxHeight)
	fmt.Fprintf(s.w, "nodes:      %s  free: %s\n", humanize.Comma(int64(st.Nodes)), humanize.Comma(int64(st.FreeNodes)))
	fmt.Fprintf(s.w, "clones:     %s  destroys: %s\n", humanize.Comma(int64(st.Clones)), humanize.Comma(int64(st.Destroys)))
	fmt.Fprintf(s.w, "operations: %s\n", humanize.Comma(int64(st.Operations)))
	return nil
}
