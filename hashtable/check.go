// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashtable

import (
	"fmt"

	"github.com/bitmark-inc/avlstore/fault"
)

// Check - verify every bucket tree, that each key is in the bucket
// it hashes to and that the total count agrees
func (t *Table[V]) Check() error {
	total := 0
	for i, bucket := range t.buckets {
		if err := bucket.Check(); nil != err {
			return fmt.Errorf("bucket: %d: %w", i, err)
		}
		var err error
		bucket.Walk(true, func(e *entry[V]) bool {
			if j := t.BucketIndex(e.key); j != i {
				err = fmt.Errorf("%w: key: %s in bucket: %d  expected: %d", fault.ErrTreeCorrupt, e.key, i, j)
				return false
			}
			return true
		})
		if nil != err {
			return err
		}
		total += bucket.Count()
	}
	if total != t.count {
		return fmt.Errorf("%w: entry count: %d  expected: %d", fault.ErrTreeCorrupt, total, t.count)
	}
	return nil
}

// BucketSizes - number of entries in each bucket
func (t *Table[V]) BucketSizes() []int {
	sizes := make([]int, len(t.buckets))
	for i, bucket := range t.buckets {
		sizes[i] = bucket.Count()
	}
	return sizes
}

// BucketHeights - tree height of each bucket
func (t *Table[V]) BucketHeights() []int {
	heights := make([]int, len(t.buckets))
	for i, bucket := range t.buckets {
		heights[i] = bucket.Height()
	}
	return heights
}

// Nodes - node totals of the allocator shared by all buckets
func (t *Table[V]) Nodes() (total int, free int) {
	return t.alloc.Total(), t.alloc.Free()
}
