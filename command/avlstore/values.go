// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

// ownership callbacks for string values, counted for the stats
// command
type stringValues struct {
	clones   int
	destroys int
}

func (v *stringValues) Clone(s string) string {
	v.clones += 1
	return string([]byte(s))
}

func (v *stringValues) Destroy(s string) {
	v.destroys += 1
}
