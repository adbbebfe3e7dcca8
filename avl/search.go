// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Get - find the element equal to key
func (tree *Tree[E]) Get(key E) (E, bool) {
	p := tree.search(key, tree.root)
	if nil == p {
		var zero E
		return zero, false
	}
	return p.element, true
}

func (tree *Tree[E]) search(key E, p *node[E]) *node[E] {
	if nil == p {
		return nil
	}

	switch c := tree.caps.Compare(key, p.element); {
	case c < 0: // key < p.element
		return tree.search(key, p.left)
	case c > 0: // key > p.element
		return tree.search(key, p.right)
	default:
		return p
	}
}
