// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashtable

// Remove - delete key, an owned value is destroyed
//
// returns false if key was not present
func (t *Table[V]) Remove(key Key) bool {
	removed := t.bucket(key).Remove(&entry[V]{key: key})
	if removed {
		t.count -= 1
	}
	return removed
}
