// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hashtable - a fixed size hash table whose buckets are AVL
// trees
//
// A key is hashed to select one of the buckets and the operation is
// then carried out by that bucket's tree, so a bucket holding many
// colliding keys is still searched in logarithmic time.  The number
// of buckets never changes after creation.
//
// Keys, values and pairs are exported bucket by bucket, ascending
// within each bucket, so the overall order follows the hash and is
// not sorted by key.
//
// Note: a table is not thread safe.
package hashtable
