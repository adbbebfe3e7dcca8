// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashtable

import (
	"github.com/bitmark-inc/avlstore/sequence"
)

// Keys - all keys, bucket by bucket
func (t *Table[V]) Keys() *sequence.List[Key] {
	keys := sequence.New[Key](t.count)
	t.each(func(e *entry[V]) {
		keys.Append(e.key)
	})
	return keys
}

// Values - all values in the same order as Keys
//
// the values are not copied, for an owning table they remain valid
// only until their entry is replaced or removed
func (t *Table[V]) Values() *sequence.List[V] {
	values := sequence.New[V](t.count)
	t.each(func(e *entry[V]) {
		values.Append(e.value)
	})
	return values
}

// Pairs - all key/value pairs in the same order as Keys
func (t *Table[V]) Pairs() *sequence.List[Pair[V]] {
	pairs := sequence.New[Pair[V]](t.count)
	t.each(func(e *entry[V]) {
		pairs.Append(Pair[V]{
			Key:   e.key,
			Value: e.value,
		})
	})
	return pairs
}

// the bucket sequences joined in bucket order
func (t *Table[V]) entries() *sequence.List[*entry[V]] {
	all := sequence.New[*entry[V]](t.count)
	for _, bucket := range t.buckets {
		all.Concat(bucket.ToSequence(true))
	}
	return all
}

func (t *Table[V]) each(fn func(e *entry[V])) {
	t.entries().Each(func(_ int, e *entry[V]) bool {
		fn(e)
		return true
	})
}
