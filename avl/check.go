// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avlstore/fault"
)

// Check - verify heights, balance, ordering and counts
func (tree *Tree[E]) Check() error {
	height, n, err := tree.checkNode(tree.root)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: node count: %d  expected: %d", fault.ErrTreeCorrupt, n, tree.count)
	}
	if height != tree.height {
		return fmt.Errorf("%w: tree height: %d  expected: %d", fault.ErrTreeCorrupt, tree.height, height)
	}

	first := true
	var previous E
	tree.Walk(true, func(e E) bool {
		if !first && tree.caps.Compare(previous, e) >= 0 {
			err = fmt.Errorf("%w: order: %v is not before: %v", fault.ErrTreeCorrupt, previous, e)
			return false
		}
		first = false
		previous = e
		return true
	})
	return err
}

// internal: consistency checker, returns height and node count
func (tree *Tree[E]) checkNode(p *node[E]) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	lh, ln, err := tree.checkNode(p.left)
	if nil != err {
		return 0, 0, err
	}
	rh, rn, err := tree.checkNode(p.right)
	if nil != err {
		return 0, 0, err
	}
	h := 1 + lh
	if rh > lh {
		h = 1 + rh
	}
	if h != p.height {
		return 0, 0, fmt.Errorf("%w: height: %d  expected: %d  at: %v", fault.ErrTreeCorrupt, p.height, h, p.element)
	}
	if b := rh - lh; b < -1 || b > 1 {
		return 0, 0, fmt.Errorf("%w: balance: %+d  at: %v", fault.ErrTreeCorrupt, b, p.element)
	}
	return h, 1 + ln + rn, nil
}
