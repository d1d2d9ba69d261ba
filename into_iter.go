// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package arrayvec

import "iter"

// IntoIter creates a consuming iterator over the vector's elements.
// The storage moves into the iterator: the vector is left empty with
// capacity 0.
//
// Elements not yielded by the time the iterator is dropped are dropped with it:
//
//	it := vec.IntoIter()
//	defer it.Drop()
//	for val, ok := it.Next(); ok; val, ok = it.Next() {
//		// val is owned by the caller
//	}
func (v *Vec[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{slots: v.slots, length: v.length}
	v.slots, v.length = nil, 0
	return it
}

// IntoIter yields the elements of a consumed Vec by value, once each,
// in index order. It cannot be rewound.
//
// Slots [read, length) are still live and owned by the iterator.
type IntoIter[T any] struct {
	slots  store[T]
	read   int
	length int
}

// Next moves the next element out of the iterator.
// ok is false once every element has been yielded.
func (it *IntoIter[T]) Next() (val T, ok bool) {
	if it.read == it.length {
		return
	}
	val = it.slots.take(it.read)
	it.read++
	return val, true
}

// Len returns the number of elements not yet yielded.
func (it *IntoIter[T]) Len() int {
	return it.length - it.read
}

// Drop drops the elements not yet yielded. Calling Drop again,
// or after exhaustion, does nothing.
func (it *IntoIter[T]) Drop() {
	read := it.read
	it.read = it.length
	it.slots.destroyRange(read, it.length)
}

// Seq returns an iter.Seq[T] that moves the remaining elements out.
// Whatever is left when the range loop ends, including on break,
// is dropped.
func (it *IntoIter[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer it.Drop()
		for {
			val, ok := it.Next()
			if !ok || !yield(val) {
				return
			}
		}
	}
}
