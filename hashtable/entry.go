// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashtable

import (
	"fmt"

	"github.com/bitmark-inc/avlstore/avl"
)

// ValueHandler - ownership operations for values held by a table
type ValueHandler[V any] interface {
	Clone(v V) V
	Destroy(v V)
}

// Pair - exported copy of a table entry
type Pair[V any] struct {
	Key   Key
	Value V
}

// the element stored in a bucket tree
type entry[V any] struct {
	key   Key
	value V
}

// bucket tree capabilities: entries are ordered by key alone and
// the value is cloned or destroyed only when the table owns it
type entryCapabilities[V any] struct {
	policy avl.Policy
	values ValueHandler[V]
}

func (c *entryCapabilities[V]) Compare(a *entry[V], b *entry[V]) int {
	return a.key.Compare(b.key)
}

// keys are immutable so the clone can share the key bytes
func (c *entryCapabilities[V]) Clone(e *entry[V]) *entry[V] {
	value := e.value
	if c.policy.Owns() {
		value = c.values.Clone(value)
	}
	return &entry[V]{
		key:   e.key,
		value: value,
	}
}

func (c *entryCapabilities[V]) Destroy(e *entry[V]) {
	if c.policy.Owns() {
		c.values.Destroy(e.value)
	}
}

// String - conversion for fmt package
func (e *entry[V]) String() string {
	return fmt.Sprintf("%s: %v", e.key, e.value)
}
