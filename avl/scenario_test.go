// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlstore/avl"
)

type intCapabilities struct{}

func (intCapabilities) Compare(a int, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}
func (intCapabilities) Clone(e int) int { return e }
func (intCapabilities) Destroy(e int)   {}

func newIntTree(values ...int) *avl.Tree[int] {
	tree := avl.New[int](intCapabilities{}, avl.OwnedMove)
	for _, v := range values {
		tree.Insert(v)
	}
	return tree
}

func TestInsertInOrder(t *testing.T) {
	tree := newIntTree(5, 3, 8, 1, 4, 7, 9)

	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, tree.ToSequence(true).Items(), "wrong traversal")
	assert.Equal(t, []int{9, 8, 7, 5, 4, 3, 1}, tree.ToSequence(false).Items(), "wrong reverse traversal")
	assert.Equal(t, 7, tree.Count(), "wrong count")
	assert.Equal(t, 3, tree.Height(), "wrong height")
	require.NoError(t, tree.Check(), "unbalanced")
}

func TestRemoveRoot(t *testing.T) {
	tree := newIntTree(5, 3, 8, 1, 4, 7, 9)

	assert.True(t, tree.Remove(5), "remove of root failed")
	assert.Equal(t, []int{1, 3, 4, 7, 8, 9}, tree.ToSequence(true).Items(), "wrong traversal")
	assert.Equal(t, 6, tree.Count(), "wrong count")
	require.NoError(t, tree.Check(), "unbalanced")

	_, found := tree.Get(5)
	assert.False(t, found, "removed key found")
	for _, v := range []int{1, 3, 4, 7, 8, 9} {
		e, found := tree.Get(v)
		assert.True(t, found, "missing: %d", v)
		assert.Equal(t, v, e, "wrong element")
	}

	assert.False(t, tree.Remove(5), "second remove succeeded")
	assert.Equal(t, 6, tree.Count(), "count changed by absent remove")
}

// each of the four rotation shapes on a three node tree
func TestRotations(t *testing.T) {
	shapes := []struct {
		name   string
		insert []int
	}{
		{"left-left", []int{3, 2, 1}},
		{"left-right", []int{3, 1, 2}},
		{"right-right", []int{1, 2, 3}},
		{"right-left", []int{1, 3, 2}},
	}

	for _, s := range shapes {
		tree := newIntTree(s.insert...)
		assert.Equal(t, 2, tree.Height(), "%s: not rotated", s.name)
		assert.Equal(t, []int{1, 2, 3}, tree.ToSequence(true).Items(), "%s: wrong order", s.name)
		assert.NoError(t, tree.Check(), "%s: unbalanced", s.name)
	}
}

// ascending inserts would make a list without rebalancing
func TestSequentialHeight(t *testing.T) {
	tree := newIntTree()
	for i := 0; i < 1023; i += 1 {
		tree.Insert(i)
	}
	assert.Equal(t, 10, tree.Height(), "ascending inserts not balanced")
	require.NoError(t, tree.Check(), "unbalanced")

	for i := 0; i < 1023; i += 2 {
		require.True(t, tree.Remove(i), "remove: %d", i)
		require.NoError(t, tree.Check(), "unbalanced after remove: %d", i)
	}
	assert.Equal(t, 511, tree.Count(), "wrong count")
}

func TestCopyIsIndependent(t *testing.T) {
	tree := newIntTree(5, 3, 8, 1, 4, 7, 9)
	c := tree.Copy()

	assert.Equal(t, tree.Count(), c.Count(), "count differs")
	assert.Equal(t, tree.Height(), c.Height(), "height differs")
	assert.NotSame(t, tree.Allocator(), c.Allocator(), "allocator shared")
	require.NoError(t, c.Check(), "copy unbalanced")

	tree.Remove(5)
	tree.Remove(1)
	tree.Insert(100)

	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, c.ToSequence(true).Items(), "copy changed by source")
	assert.Equal(t, []int{3, 4, 7, 8, 9, 100}, tree.ToSequence(true).Items(), "source wrong")

	c.Clear()
	assert.Equal(t, 6, tree.Count(), "source changed by clearing copy")
}

func TestClear(t *testing.T) {
	tree := newIntTree(5, 3, 8, 1, 4, 7, 9)
	tree.Clear()

	assert.True(t, tree.IsEmpty(), "not empty")
	assert.Equal(t, 0, tree.Count(), "count not reset")
	assert.Equal(t, 0, tree.Height(), "height not reset")
	assert.Equal(t, 7, tree.Allocator().Free(), "nodes not returned to pool")

	tree.Insert(2)
	assert.Equal(t, []int{2}, tree.ToSequence(true).Items(), "tree not usable after clear")
}
