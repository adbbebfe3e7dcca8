// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashtable

import (
	"fmt"
	"io"
	"strings"
)

// Print - write the table as {k: v, ...} one entry per line
//
// keyFormat is applied to the key bytes and valueFormat to the value
// e.g. Print(w, "%s", "%d")
func (t *Table[V]) Print(w io.Writer, keyFormat string, valueFormat string) error {
	if 0 == t.count {
		_, err := io.WriteString(w, "{}\n")
		return err
	}
	b := strings.Builder{}
	b.WriteString("{\n")
	t.each(func(e *entry[V]) {
		b.WriteString("  ")
		fmt.Fprintf(&b, keyFormat, e.key.data)
		b.WriteString(": ")
		fmt.Fprintf(&b, valueFormat, e.value)
		b.WriteString(",\n")
	})
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// PrintKeys - write the keys as [a, b, ...]
func (t *Table[V]) PrintKeys(w io.Writer, format string) error {
	items := make([]string, 0, t.count)
	t.each(func(e *entry[V]) {
		items = append(items, fmt.Sprintf(format, e.key.data))
	})
	return printList(w, items)
}

// PrintValues - write the values as [a, b, ...]
func (t *Table[V]) PrintValues(w io.Writer, format string) error {
	items := make([]string, 0, t.count)
	t.each(func(e *entry[V]) {
		items = append(items, fmt.Sprintf(format, e.value))
	})
	return printList(w, items)
}

func printList(w io.Writer, items []string) error {
	_, err := fmt.Fprintf(w, "[%s]\n", strings.Join(items, ", "))
	return err
}
