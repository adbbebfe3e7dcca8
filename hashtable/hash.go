// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashtable

import (
	"encoding/binary"
	"hash/fnv"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/avlstore/fault"
)

// HashFunc - map key bytes to an unsigned value, must be deterministic
type HashFunc func(data []byte) uint64

// names for configuration files
const (
	HashPJW    = "pjw"
	HashFNV1a  = "fnv1a"
	HashXXHash = "xxhash"
	HashSHA3   = "sha3"
)

var hashFunctions = map[string]HashFunc{
	HashPJW:    PJW,
	HashFNV1a:  FNV1a,
	HashXXHash: XXHash,
	HashSHA3:   SHA3,
}

// HashByName - find a hash function, blank selects PJW
func HashByName(name string) (HashFunc, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if "" == name {
		return PJW, nil
	}
	h, ok := hashFunctions[name]
	if !ok {
		return nil, fault.ErrUnknownHash
	}
	return h, nil
}

// HashNames - sorted list of the available hash function names
func HashNames() []string {
	names := make([]string, 0, len(hashFunctions))
	for name := range hashFunctions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PJW - the classic P. J. Weinberger hash over 32 bit words
func PJW(data []byte) uint64 {
	h := uint32(0)
	for _, b := range data {
		h = (h << 4) + uint32(b)
		if high := h & 0xf0000000; 0 != high {
			h ^= high >> 24
			h &^= high
		}
	}
	return uint64(h)
}

// FNV1a - 64 bit FNV-1a
func FNV1a(data []byte) uint64 {
	h := fnv.New64a()
	h.Write(data)
	return h.Sum64()
}

// XXHash - 64 bit xxHash
func XXHash(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// SHA3 - first eight bytes of SHA3-256
func SHA3(data []byte) uint64 {
	digest := sha3.Sum256(data)
	return binary.BigEndian.Uint64(digest[:8])
}
