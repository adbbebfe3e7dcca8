// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Copy - deep copy of the tree with a new allocator having the same
// limit
func (tree *Tree[E]) Copy() *Tree[E] {
	return tree.CopyWithAllocator(NewAllocator[E](tree.alloc.limit))
}

// CopyWithAllocator - deep copy of the tree taking nodes from alloc
//
// every element is cloned and the node structure is rebuilt with the
// same shape so the copy shares nothing with the original
func (tree *Tree[E]) CopyWithAllocator(alloc *Allocator[E]) *Tree[E] {
	t := NewWithAllocator(tree.caps, tree.policy, alloc)
	t.root = tree.copyFrom(tree.root, alloc)
	t.count = tree.count
	t.height = tree.height
	return t
}

func (tree *Tree[E]) copyFrom(p *node[E], alloc *Allocator[E]) *node[E] {
	if nil == p {
		return nil
	}
	n := alloc.newNode(tree.caps.Clone(p.element))
	n.left = tree.copyFrom(p.left, alloc)
	n.right = tree.copyFrom(p.right, alloc)
	n.height = p.height
	return n
}
