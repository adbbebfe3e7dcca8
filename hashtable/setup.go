// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashtable

import (
	"github.com/bitmark-inc/avlstore/avl"
	"github.com/bitmark-inc/avlstore/fault"
)

// DefaultBuckets - a prime so that simple hashes spread well
const DefaultBuckets = 211

// Options - parameters fixed when a table is created
//
// Buckets: zero selects DefaultBuckets
// Hash: nil selects PJW
// NodeLimit: maximum live entries over all buckets, zero for no limit
// Values: may only be nil for a Borrowed table
type Options[V any] struct {
	Buckets   int
	Hash      HashFunc
	NodeLimit int
	Policy    avl.Policy
	Values    ValueHandler[V]
}

// Configuration - table section of a configuration file
type Configuration struct {
	Buckets   int    `gluamapper:"buckets" json:"buckets"`
	Hash      string `gluamapper:"hash" json:"hash"`
	NodeLimit int    `gluamapper:"node_limit" json:"node_limit"`
}

// Table - fixed array of bucket trees
type Table[V any] struct {
	buckets []*avl.Tree[*entry[V]]
	hash    HashFunc
	count   int
	policy  avl.Policy
	values  ValueHandler[V]
	alloc   *avl.Allocator[*entry[V]]
}

// New - create an empty table
func New[V any](options Options[V]) (*Table[V], error) {
	n := options.Buckets
	if 0 == n {
		n = DefaultBuckets
	} else if n < 0 {
		return nil, fault.ErrBucketCount
	}

	if options.NodeLimit < 0 {
		return nil, fault.ErrNodeLimit
	}

	if !options.Policy.Valid() {
		return nil, fault.ErrUnknownPolicy
	}

	if nil == options.Values && avl.Borrowed != options.Policy {
		return nil, fault.ErrNilValueHandler
	}

	h := options.Hash
	if nil == h {
		h = PJW
	}

	t := &Table[V]{
		hash:   h,
		policy: options.Policy,
		values: options.Values,
		alloc:  avl.NewAllocator[*entry[V]](options.NodeLimit),
	}
	t.buckets = t.makeBuckets(n, t.alloc)
	return t, nil
}

// NewFromConfiguration - create an empty table from a configuration
// file section
func NewFromConfiguration[V any](configuration *Configuration, policy avl.Policy, values ValueHandler[V]) (*Table[V], error) {
	h, err := HashByName(configuration.Hash)
	if nil != err {
		return nil, err
	}
	return New(Options[V]{
		Buckets:   configuration.Buckets,
		Hash:      h,
		NodeLimit: configuration.NodeLimit,
		Policy:    policy,
		Values:    values,
	})
}

// the bucket trees always take ownership of the entry itself, the
// table policy decides what happens to the value inside it
func (t *Table[V]) makeBuckets(n int, alloc *avl.Allocator[*entry[V]]) []*avl.Tree[*entry[V]] {
	caps := &entryCapabilities[V]{
		policy: t.policy,
		values: t.values,
	}
	buckets := make([]*avl.Tree[*entry[V]], n)
	for i := range buckets {
		buckets[i] = avl.NewWithAllocator[*entry[V]](caps, avl.OwnedMove, alloc)
	}
	return buckets
}

// Count - total entries over all buckets
func (t *Table[V]) Count() int {
	return t.count
}

// Buckets - number of buckets
func (t *Table[V]) Buckets() int {
	return len(t.buckets)
}

// Policy - value ownership policy
func (t *Table[V]) Policy() avl.Policy {
	return t.policy
}

// BucketIndex - the bucket that holds key
func (t *Table[V]) BucketIndex(key Key) int {
	return int(t.hash(key.data) % uint64(len(t.buckets)))
}

func (t *Table[V]) bucket(key Key) *avl.Tree[*entry[V]] {
	return t.buckets[t.BucketIndex(key)]
}
