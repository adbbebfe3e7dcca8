// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashtable

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"

	"github.com/bitmark-inc/avlstore/fault"
)

// maximum size of a numeric key
const uint64Size = 8

// Key - normalised table key
//
// only the keySize*keyLen significant bytes of the caller's buffer
// are kept, so any trailing bytes beyond the declared width never
// influence hashing or comparison
type Key struct {
	data   []byte
	size   int // bytes per element
	length int // number of elements
}

// MakeKey - normalise keyLen elements of keySize bytes from buffer
func MakeKey(buffer []byte, keySize int, keyLen int) (Key, error) {
	if keySize < 1 {
		return Key{}, fault.ErrKeySize
	}
	if keyLen < 0 || keyLen > len(buffer)/keySize {
		return Key{}, fault.ErrKeyLength
	}
	n := keySize * keyLen
	data := make([]byte, n)
	copy(data, buffer[:n])
	return Key{
		data:   data,
		size:   keySize,
		length: keyLen,
	}, nil
}

// Uint64Key - numeric key of keySize bytes taken from the low order
// bytes of value
func Uint64Key(value uint64, keySize int) (Key, error) {
	if keySize < 1 || keySize > uint64Size {
		return Key{}, fault.ErrKeySize
	}
	buffer := make([]byte, uint64Size)
	binary.LittleEndian.PutUint64(buffer, value)
	return MakeKey(buffer, keySize, 1)
}

// StringKey - one byte per element key
func StringKey(s string) Key {
	data := []byte(s)
	return Key{
		data:   data,
		size:   1,
		length: len(data),
	}
}

// Bytes - copy of the significant bytes
func (key Key) Bytes() []byte {
	b := make([]byte, len(key.data))
	copy(b, key.data)
	return b
}

// Size - bytes per element
func (key Key) Size() int {
	return key.size
}

// Len - number of elements
func (key Key) Len() int {
	return key.length
}

// Uint64 - little endian value of the first eight significant bytes
func (key Key) Uint64() uint64 {
	buffer := make([]byte, uint64Size)
	copy(buffer, key.data)
	return binary.LittleEndian.Uint64(buffer)
}

// Compare - byte by byte over the common prefix, then the shorter
// key is the lower
func (key Key) Compare(other Key) int {
	return bytes.Compare(key.data, other.data)
}

// String - conversion for fmt package
func (key Key) String() string {
	return hex.EncodeToString(key.data)
}
