// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sequence

// Appender - anything that can receive items in order
type Appender[E any] interface {
	Append(E)
}

// List - ordered sequence of items
type List[E any] struct {
	items []E
}

// New - create an empty list with room for capacity items
func New[E any](capacity int) *List[E] {
	if capacity < 0 {
		capacity = 0
	}
	return &List[E]{
		items: make([]E, 0, capacity),
	}
}

// Append - add an item to the end of the list
func (l *List[E]) Append(e E) {
	l.items = append(l.items, e)
}

// Len - number of items in the list
func (l *List[E]) Len() int {
	return len(l.items)
}

// At - item at a zero based index
func (l *List[E]) At(index int) (E, bool) {
	if index < 0 || index >= len(l.items) {
		var zero E
		return zero, false
	}
	return l.items[index], true
}

// Concat - append all items of other to the end of this list
// and return this list, other is not modified
func (l *List[E]) Concat(other *List[E]) *List[E] {
	if nil != other {
		l.items = append(l.items, other.items...)
	}
	return l
}

// Each - visit items first to last, stop early if fn returns false
func (l *List[E]) Each(fn func(index int, e E) bool) {
	for i, e := range l.items {
		if !fn(i, e) {
			return
		}
	}
}

// EachReverse - visit items last to first, stop early if fn returns false
func (l *List[E]) EachReverse(fn func(index int, e E) bool) {
	for i := len(l.items) - 1; i >= 0; i -= 1 {
		if !fn(i, l.items[i]) {
			return
		}
	}
}

// Items - copy of the items in order
func (l *List[E]) Items() []E {
	result := make([]E, len(l.items))
	copy(result, l.items)
	return result
}
