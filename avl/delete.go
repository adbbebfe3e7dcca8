// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes the element equal to key from the tree
//
// returns true if an element was removed, false if key was absent
func (tree *Tree[E]) Remove(key E) bool {
	removed := false
	tree.root, removed = tree.delete(key, tree.root, true)
	if removed {
		tree.count -= 1
		tree.height = tree.root.nodeHeight()
	}
	return removed
}

// internal delete routine
//
// release is false when deleting a successor whose element has
// already been moved into another node
func (tree *Tree[E]) delete(key E, p *node[E], release bool) (*node[E], bool) {
	if nil == p { // key not in tree
		return nil, false
	}
	removed := false
	switch c := tree.caps.Compare(key, p.element); {
	case c < 0: // key < p.element
		p.left, removed = tree.delete(key, p.left, release)
	case c > 0: // key > p.element
		p.right, removed = tree.delete(key, p.right, release)
	default: // found: delete p
		if release {
			tree.release(p.element)
		}
		if nil == p.left || nil == p.right {
			child := p.left
			if nil == child {
				child = p.right
			}
			tree.alloc.freeNode(p) // return deleted node to pool
			return child, true
		}

		// two children: take over the successor's element, then
		// remove the successor node from the right sub-tree
		successor := p.right.first()
		p.element = successor.element
		p.right, _ = tree.delete(successor.element, p.right, false)
		removed = true
	}
	if !removed {
		return p, false
	}
	return rebalance(p), true
}
