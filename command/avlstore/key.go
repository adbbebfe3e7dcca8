// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avlstore/fault"
	"github.com/bitmark-inc/avlstore/hashtable"
)

// key prefixes for script arguments
const (
	intPrefix = "int:"
	hexPrefix = "hex:"
)

// convert a script argument to a table key
//
//   int:SIZE:NUMBER  little endian NUMBER truncated to SIZE bytes
//   hex:DIGITS       raw bytes
//   anything else    the bytes of the string
func parseKey(s string) (hashtable.Key, error) {
	switch {
	case strings.HasPrefix(s, intPrefix):
		fields := strings.SplitN(strings.TrimPrefix(s, intPrefix), ":", 2)
		if 2 != len(fields) {
			return hashtable.Key{}, fault.ErrInvalidKey
		}
		size, err := strconv.Atoi(fields[0])
		if nil != err {
			return hashtable.Key{}, fault.ErrInvalidKey
		}
		n, err := strconv.ParseUint(fields[1], 0, 64)
		if nil != err {
			return hashtable.Key{}, fault.ErrInvalidKey
		}
		return hashtable.Uint64Key(n, size)

	case strings.HasPrefix(s, hexPrefix):
		b, err := hex.DecodeString(strings.TrimPrefix(s, hexPrefix))
		if nil != err {
			return hashtable.Key{}, fault.ErrInvalidKey
		}
		return hashtable.MakeKey(b, 1, len(b))

	default:
		return hashtable.StringKey(s), nil
	}
}
