// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashtable

// Get - find the value stored for key
func (t *Table[V]) Get(key Key) (V, bool) {
	e, found := t.bucket(key).Get(&entry[V]{key: key})
	if !found {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Has - true if key is present
func (t *Table[V]) Has(key Key) bool {
	_, found := t.bucket(key).Get(&entry[V]{key: key})
	return found
}
