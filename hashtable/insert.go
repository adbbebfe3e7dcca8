// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashtable

import (
	"github.com/bitmark-inc/avlstore/avl"
)

// Insert - add or replace the value for key
//
// returns:
//   true  - key was added
//   false - key was already present and its value was replaced
func (t *Table[V]) Insert(key Key, value V) bool {
	if avl.OwnedClone == t.policy {
		value = t.values.Clone(value)
	}
	added := t.bucket(key).Insert(&entry[V]{
		key:   key,
		value: value,
	})
	if added {
		t.count += 1
	}
	return added
}
