// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAllocationFailure    = ProcessError("node allocation failed")
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBucketCount          = InvalidError("bucket count is invalid")
	ErrEmptyTree            = InvalidError("tree is empty")
	ErrInvalidCommand       = InvalidError("invalid command")
	ErrInvalidConfiguration = InvalidError("configuration did not return a table")
	ErrInvalidKey           = InvalidError("invalid key")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyLength            = InvalidError("key length is invalid")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrKeySize              = InvalidError("key size is invalid")
	ErrNilCapabilities      = InvalidError("capabilities are nil")
	ErrNilValueHandler      = InvalidError("value handler is nil")
	ErrNodeLimit            = InvalidError("node limit is invalid")
	ErrTreeCorrupt          = ProcessError("tree is corrupt")
	ErrUnknownHash          = NotFoundError("hash function is unknown")
	ErrUnknownPolicy        = NotFoundError("ownership policy is unknown")
	ErrWrongArgumentCount   = InvalidError("wrong number of arguments")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
