// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashtable

import (
	"github.com/bitmark-inc/avlstore/avl"
)

// Copy - independent table with the same buckets, hash and policy
//
// every entry is duplicated and, unless the table is Borrowed, every
// value is cloned
func (t *Table[V]) Copy() *Table[V] {
	alloc := avl.NewAllocator[*entry[V]](t.alloc.Limit())
	c := &Table[V]{
		buckets: make([]*avl.Tree[*entry[V]], len(t.buckets)),
		hash:    t.hash,
		count:   t.count,
		policy:  t.policy,
		values:  t.values,
		alloc:   alloc,
	}
	for i, bucket := range t.buckets {
		c.buckets[i] = bucket.CopyWithAllocator(alloc)
	}
	return c
}

// Clear - remove every entry, owned values are destroyed
func (t *Table[V]) Clear() {
	for _, bucket := range t.buckets {
		bucket.Clear()
	}
	t.count = 0
}
