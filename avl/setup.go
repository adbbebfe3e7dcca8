// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlstore/fault"
)

// Capabilities - the element operations a tree requires
//
// Compare returns -1, 0, +1 for a < b, a == b, a > b and must be a
// total order that does not change for the lifetime of the tree.
// Destroy must be a harmless no-op for an element the tree does not
// own.
type Capabilities[E any] interface {
	Compare(a E, b E) int
	Clone(e E) E
	Destroy(e E)
}

// Tree - type to hold the root node of a tree
type Tree[E any] struct {
	root   *node[E]
	count  int
	height int
	caps   Capabilities[E]
	policy Policy
	alloc  *Allocator[E]
}

// New - create an initially empty tree with its own allocator
func New[E any](caps Capabilities[E], policy Policy) *Tree[E] {
	return NewWithAllocator(caps, policy, NewAllocator[E](0))
}

// NewWithAllocator - create an initially empty tree whose nodes come
// from a possibly shared allocator
func NewWithAllocator[E any](caps Capabilities[E], policy Policy, alloc *Allocator[E]) *Tree[E] {
	if nil == caps {
		fault.PanicWithError("avl.New", fault.ErrNilCapabilities)
	}
	if !policy.Valid() {
		fault.PanicWithError("avl.New", fault.ErrUnknownPolicy)
	}
	if nil == alloc {
		alloc = NewAllocator[E](0)
	}
	return &Tree[E]{
		root:   nil,
		count:  0,
		height: 0,
		caps:   caps,
		policy: policy,
		alloc:  alloc,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[E]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[E]) Count() int {
	return tree.count
}

// Height - height of the tree, zero when empty
func (tree *Tree[E]) Height() int {
	return tree.height
}

// Policy - the ownership policy of the tree
func (tree *Tree[E]) Policy() Policy {
	return tree.policy
}

// Allocator - the allocator the tree takes its nodes from
func (tree *Tree[E]) Allocator() *Allocator[E] {
	return tree.alloc
}

// Clear - destroy all elements and return all nodes to the allocator
func (tree *Tree[E]) Clear() {
	tree.destroy(tree.root)
	tree.root = nil
	tree.count = 0
	tree.height = 0
}

// post-order so children are released before their parent
func (tree *Tree[E]) destroy(p *node[E]) {
	if nil == p {
		return
	}
	tree.destroy(p.left)
	tree.destroy(p.right)
	tree.release(p.element)
	tree.alloc.freeNode(p)
}

// give up an element according to the policy
func (tree *Tree[E]) release(e E) {
	if tree.policy.Owns() {
		tree.caps.Destroy(e)
	}
}
