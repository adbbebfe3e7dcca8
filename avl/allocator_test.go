// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlstore/avl"
	"github.com/bitmark-inc/avlstore/fault"
)

func TestAllocatorReusesNodes(t *testing.T) {
	a := avl.NewAllocator[int](0)
	tree := avl.NewWithAllocator[int](intCapabilities{}, avl.OwnedMove, a)

	for i := 0; i < 10; i += 1 {
		tree.Insert(i)
	}
	for i := 0; i < 5; i += 1 {
		tree.Remove(i)
	}
	assert.Equal(t, 10, a.Total(), "wrong total")
	assert.Equal(t, 5, a.Free(), "wrong free")
	assert.Equal(t, 5, a.Live(), "wrong live")

	for i := 20; i < 23; i += 1 {
		tree.Insert(i)
	}
	assert.Equal(t, 10, a.Total(), "pool not reused")
	assert.Equal(t, 2, a.Free(), "wrong free after reuse")
	assert.NoError(t, tree.Check(), "reused nodes corrupt tree")
	assert.Equal(t, []int{5, 6, 7, 8, 9, 20, 21, 22}, tree.ToSequence(true).Items(), "wrong content")
}

func TestSharedAllocator(t *testing.T) {
	a := avl.NewAllocator[int](0)
	t1 := avl.NewWithAllocator[int](intCapabilities{}, avl.OwnedMove, a)
	t2 := avl.NewWithAllocator[int](intCapabilities{}, avl.OwnedMove, a)

	t1.Insert(1)
	t1.Insert(2)
	t2.Insert(3)
	assert.Equal(t, 3, a.Live(), "wrong live count")

	t1.Clear()
	t2.Insert(4)
	assert.Equal(t, 3, a.Total(), "cleared nodes not shared")
	assert.Equal(t, []int{3, 4}, t2.ToSequence(true).Items(), "wrong content")
}

// exhaustion is a hard failure that leaves the tree intact
func TestAllocationFailure(t *testing.T) {
	a := avl.NewAllocator[int](3)
	tree := avl.NewWithAllocator[int](intCapabilities{}, avl.OwnedMove, a)

	tree.Insert(2)
	tree.Insert(1)
	tree.Insert(3)

	assert.PanicsWithValue(t, fault.ErrAllocationFailure, func() {
		tree.Insert(4)
	}, "limit not enforced")

	assert.Equal(t, 3, tree.Count(), "count changed by failed insert")
	assert.NoError(t, tree.Check(), "tree corrupted by failed insert")
	assert.Equal(t, []int{1, 2, 3}, tree.ToSequence(true).Items(), "content changed")

	// overwrite needs no node
	assert.False(t, tree.Insert(3), "overwrite at limit")

	// space is available again after a remove
	tree.Remove(1)
	assert.True(t, tree.Insert(4), "insert after remove")
	assert.Equal(t, 3, a.Limit(), "wrong limit")
}
