// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new element into the tree, an existing equal
// element is destroyed and replaced
//
// returns true if a node was added, false if an element was replaced
func (tree *Tree[E]) Insert(e E) bool {
	if OwnedClone == tree.policy {
		e = tree.caps.Clone(e)
	}
	added := false
	tree.root, added = tree.insert(e, tree.root)
	if added {
		tree.count += 1
		tree.height = tree.root.nodeHeight()
	}
	return added
}

// internal routine for insert
func (tree *Tree[E]) insert(e E, p *node[E]) (*node[E], bool) {
	if nil == p { // insert new node
		return tree.alloc.newNode(e), true
	}
	added := false
	switch c := tree.caps.Compare(e, p.element); {
	case c < 0: // e < p.element
		p.left, added = tree.insert(e, p.left)
	case c > 0: // e > p.element
		p.right, added = tree.insert(e, p.right)
	default:
		tree.release(p.element)
		p.element = e
		return p, false
	}
	if !added {
		return p, false
	}

	p.update()

	// the side of the child that e went below distinguishes the
	// single from the double rotation
	switch b := p.balance(); {
	case b < -1: // left branch has grown
		if tree.caps.Compare(e, p.left.element) > 0 {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		// single LL rotation
		return rotateRight(p), true
	case b > 1: // right branch has grown
		if tree.caps.Compare(e, p.right.element) < 0 {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		// single RR rotation
		return rotateLeft(p), true
	}
	return p, true
}
