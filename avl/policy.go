// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"

	"github.com/bitmark-inc/avlstore/fault"
)

// Policy - element ownership chosen when a tree is created
type Policy int

// ownership policies
const (
	OwnedClone Policy = iota // clone on insert, destroy on overwrite/remove/clear
	OwnedMove                // take the element as is, destroy on overwrite/remove/clear
	Borrowed                 // never destroy, the caller keeps ownership
)

var policyNames = map[Policy]string{
	OwnedClone: "owned-clone",
	OwnedMove:  "owned-move",
	Borrowed:   "borrowed",
}

// ParsePolicy - convert a configuration name to a policy
func ParsePolicy(name string) (Policy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, s := range policyNames {
		if s == name {
			return p, nil
		}
	}
	return OwnedClone, fault.ErrUnknownPolicy
}

// String - conversion for fmt package
func (p Policy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}
	return "unknown"
}

// Valid - true for one of the defined policies
func (p Policy) Valid() bool {
	_, ok := policyNames[p]
	return ok
}

// Owns - true if the tree destroys the elements it holds
func (p Policy) Owns() bool {
	return OwnedClone == p || OwnedMove == p
}
