// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlstore/fault"
	"github.com/bitmark-inc/avlstore/sequence"
)

// Min - return the element with the lowest value
func (tree *Tree[E]) Min() (E, error) {
	if nil == tree.root {
		var zero E
		return zero, fault.ErrEmptyTree
	}
	return tree.root.first().element, nil
}

// internal: lowest node in a sub-tree
func (p *node[E]) first() *node[E] {
	for p.left != nil {
		p = p.left
	}
	return p
}

// Max - return the element with the highest value
func (tree *Tree[E]) Max() (E, error) {
	if nil == tree.root {
		var zero E
		return zero, fault.ErrEmptyTree
	}
	return tree.root.last().element, nil
}

// internal: highest node in a sub-tree
func (p *node[E]) last() *node[E] {
	for p.right != nil {
		p = p.right
	}
	return p
}

// Walk - visit elements in ascending (or descending) order until fn
// returns false
func (tree *Tree[E]) Walk(ascending bool, fn func(e E) bool) {
	tree.root.walk(ascending, fn)
}

func (p *node[E]) walk(ascending bool, fn func(e E) bool) bool {
	if nil == p {
		return true
	}
	first, second := p.left, p.right
	if !ascending {
		first, second = p.right, p.left
	}
	return first.walk(ascending, fn) && fn(p.element) && second.walk(ascending, fn)
}

// AppendTo - push every element in traversal order onto s
func (tree *Tree[E]) AppendTo(s sequence.Appender[E], ascending bool) {
	tree.Walk(ascending, func(e E) bool {
		s.Append(e)
		return true
	})
}

// ToSequence - a fresh list of all elements in traversal order
//
// the elements are shared with the tree, not cloned
func (tree *Tree[E]) ToSequence(ascending bool) *sequence.List[E] {
	s := sequence.New[E](tree.count)
	tree.AppendTo(s, ascending)
	return s
}
