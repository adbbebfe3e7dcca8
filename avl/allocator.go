// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avlstore/fault"
)

// a node in the tree
type node[E any] struct {
	left    *node[E] // left sub-tree
	right   *node[E] // right sub-tree, also the free list link
	element E        // owned according to the tree policy
	height  int      // 1 + max(left height, right height)
}

// Allocator - source of nodes for one or more trees
//
// reclaimed nodes are kept in a free list and reused, an optional
// limit on live nodes turns exhaustion into a hard failure
type Allocator[E any] struct {
	pool       *node[E] // linked list of reclaimed nodes
	limit      int      // maximum live nodes, 0 => unlimited
	totalNodes int      // total nodes created
	freeNodes  int      // number of nodes in the pool
}

// NewAllocator - create an allocator, a limit of zero is unlimited
func NewAllocator[E any](limit int) *Allocator[E] {
	if limit < 0 {
		limit = 0
	}
	return &Allocator[E]{
		limit: limit,
	}
}

// Limit - maximum number of live nodes, zero if unlimited
func (a *Allocator[E]) Limit() int {
	return a.limit
}

// Total - number of nodes ever created
func (a *Allocator[E]) Total() int {
	return a.totalNodes
}

// Free - number of nodes waiting in the pool
func (a *Allocator[E]) Free() int {
	return a.freeNodes
}

// Live - number of nodes currently held by trees
func (a *Allocator[E]) Live() int {
	return a.totalNodes - a.freeNodes
}

// allocate a new node, reuses reclaimed nodes if any are available
//
// this runs before any link is changed so a failure leaves every
// tree using this allocator intact
func (a *Allocator[E]) newNode(e E) *node[E] {
	if a.limit > 0 && a.Live() >= a.limit {
		fault.PanicWithError(fmt.Sprintf("allocate node: %d live of limit: %d", a.Live(), a.limit), fault.ErrAllocationFailure)
	}
	if nil == a.pool {
		if 0 != a.freeNodes {
			fault.Panicf("allocator: pool corrupt: %d free nodes not in pool", a.freeNodes)
		}
		a.totalNodes += 1
		return &node[E]{
			element: e,
			height:  1,
		}
	}
	p := a.pool
	a.pool = p.right
	p.right = nil // ensure freelist pointer is cleared
	p.left = nil
	p.element = e
	p.height = 1
	a.freeNodes -= 1
	return p
}

// reclaim a node and keep it in a pool
func (a *Allocator[E]) freeNode(p *node[E]) {
	var zero E
	p.left = nil
	p.element = zero
	p.height = 0
	p.right = a.pool // use as free list pointer
	a.freeNodes += 1
	a.pool = p
}
