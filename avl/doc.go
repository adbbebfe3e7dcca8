// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree over any element type
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches its height and the balance factor
// height(right) - height(left) is kept in {-1, 0, +1} by single or
// double rotations on the way back up from an insert or delete.
//
// Elements are ordered by a caller supplied Capabilities bundle
// which also provides Clone and Destroy.  Whether the tree clones,
// takes over or merely borrows its elements is fixed by the Policy
// given to New.  Inserting an element that compares equal to a stored
// one replaces the stored element.
//
// Delete of a node with two children moves only the element of the
// in-order successor into the node and then deletes the successor
// node, node links are never copied.
package avl
