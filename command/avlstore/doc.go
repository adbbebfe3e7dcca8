// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlstore - run scripts of table operations against an in-memory
// hash table of AVL tree buckets
//
// Each script line is one command:
//
//   insert KEY VALUE...   add or replace a value
//   get KEY               display a value
//   remove KEY            delete a key
//   count                 number of entries
//   keys                  all keys in bucket order
//   values                all values in bucket order
//   pairs                 one "KEY VALUE" line per entry
//   print                 the whole table
//   buckets               size and height of each non-empty bucket
//   check                 verify the table structure
//   clear                 remove every entry
//   stats                 summary of the table
//
// A KEY is a plain string, hex:DIGITS for raw bytes or
// int:SIZE:NUMBER for a little endian number of SIZE bytes.  Blank
// lines and lines starting with "#" are ignored.
package main
