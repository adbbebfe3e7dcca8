// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sequence - an ordered, indexable list used to export the
// contents of trees and tables
//
// Items keep the order in which they were appended, so a tree
// traversal appended here can be walked forwards or backwards and
// several traversals can be concatenated.
//
// Note: a list is not thread safe.
package sequence
