// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a possibly absent sub-tree
func (p *node[E]) nodeHeight() int {
	if nil == p {
		return 0
	}
	return p.height
}

// recompute the cached height from the children
func (p *node[E]) update() {
	lh := p.left.nodeHeight()
	rh := p.right.nodeHeight()
	if lh > rh {
		p.height = 1 + lh
	} else {
		p.height = 1 + rh
	}
}

// height(right) - height(left)
func (p *node[E]) balance() int {
	if nil == p {
		return 0
	}
	return p.right.nodeHeight() - p.left.nodeHeight()
}

// single right rotation, returns the new sub-tree root
//
//	    p            l
//	   / \          / \
//	  l   c   =>   a   p
//	 / \              / \
//	a   b            b   c
func rotateRight[E any](p *node[E]) *node[E] {
	l := p.left
	p.left = l.right
	l.right = p
	p.update()
	l.update()
	return l
}

// single left rotation, returns the new sub-tree root
//
//	  p                r
//	 / \              / \
//	a   r     =>     p   c
//	   / \          / \
//	  b   c        a   b
func rotateLeft[E any](p *node[E]) *node[E] {
	r := p.right
	p.right = r.left
	r.left = p
	p.update()
	r.update()
	return r
}

// delete: tree balancer, the rotation is chosen from the balance of
// the heavier child
func rebalance[E any](p *node[E]) *node[E] {
	p.update()
	switch b := p.balance(); {
	case b < -1:
		if p.left.balance() > 0 {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		return rotateRight(p)
	case b > 1:
		if p.right.balance() < 0 {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		return rotateLeft(p)
	}
	return p
}
