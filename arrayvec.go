// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

// Package arrayvec provides Vec, a growable sequence with a fixed capacity.
//
// The backing storage is allocated once, by New or handed in through Wrap,
// and never grows. Slots [0, Len) hold live values, slots [Len, Cap) hold the
// zero value. Values moved out of a Vec belong to the caller; values the Vec
// discards itself (Truncate, Clear, Drop, an abandoned IntoIter or Drain) have
// their Drop method called exactly once, in index order, if they implement
// Dropper.
//
// A Vec is a single-owner value. Not thread-safe.
//
// Example usage:
//
//	vec := arrayvec.New[int](4)
//	vec.Push(1)
//	vec.Push(2)
//	if err := vec.Insert(0, 9); err != nil {
//		// err is *arrayvec.CapacityError[int] or *arrayvec.IndexError
//	}
//	for i, val := range vec.All {
//		fmt.Println(i, val)
//	}
//	vec.Drop()
package arrayvec

import (
	"errors"
	"fmt"
)

// Vec is a vector backed by a fixed block of slots.
// The zero value is an empty Vec with capacity 0.
type Vec[T any] struct {
	slots  store[T]
	length int
}

// New returns an empty Vec holding at most capacity elements.
func New[T any](capacity int) *Vec[T] {
	if capacity < 0 {
		panic(errors.New("arrayvec: negative capacity"))
	}
	return &Vec[T]{slots: make(store[T], capacity)}
}

// Wrap returns an empty Vec that uses buf[:cap(buf)] as its storage.
// The contents of buf are cleared. buf must not be used directly afterwards.
//
//	var buf [16]Event
//	vec := arrayvec.Wrap(buf[:])
func Wrap[T any](buf []T) *Vec[T] {
	slots := buf[:cap(buf)]
	clear(slots)
	return &Vec[T]{slots: slots}
}

func (v *Vec[T]) Len() int { return v.length }

func (v *Vec[T]) Cap() int { return len(v.slots) }

// Remaining returns the number of elements that can still be pushed.
func (v *Vec[T]) Remaining() int { return len(v.slots) - v.length }

func (v *Vec[T]) Empty() bool { return v.length == 0 }

func (v *Vec[T]) Full() bool { return v.length >= len(v.slots) }

// Push appends val. If the vector is full it returns a *CapacityError
// holding val and leaves the vector unchanged.
func (v *Vec[T]) Push(val T) error {
	if v.Full() {
		return &CapacityError[T]{Value: val}
	}
	v.slots.write(v.length, val)
	v.length++
	assertLen("Push", v.length, len(v.slots))
	return nil
}

// MustPush is like Push but panics if the vector is full.
func (v *Vec[T]) MustPush(val T) {
	if err := v.Push(val); err != nil {
		fail("Push", err)
	}
}

// Pop removes and returns the last element.
// ok is false if the vector is empty.
func (v *Vec[T]) Pop() (val T, ok bool) {
	if v.length == 0 {
		return
	}
	v.length--
	return v.slots.take(v.length), true
}

// Insert places val at index, shifting [index, Len) one slot to the right.
// An index outside [0, Len] is reported as *IndexError before a full
// vector is reported as *CapacityError. On error the vector is unchanged.
func (v *Vec[T]) Insert(index int, val T) error {
	if index < 0 || index > v.length {
		return &IndexError{Method: "Insert", Index: index, Len: v.length}
	}
	if v.Full() {
		return &CapacityError[T]{Value: val}
	}
	for i := v.length; i > index; i-- {
		v.slots.move(i, i-1)
	}
	v.slots.write(index, val)
	v.length++
	assertLen("Insert", v.length, len(v.slots))
	return nil
}

// MustInsert is like Insert but panics on error.
func (v *Vec[T]) MustInsert(index int, val T) {
	if err := v.Insert(index, val); err != nil {
		fail("Insert", err)
	}
}

// Remove takes the element at index and shifts the rest left,
// preserving order.
func (v *Vec[T]) Remove(index int) (val T, err error) {
	if index < 0 || index >= v.length {
		err = &IndexError{Method: "Remove", Index: index, Len: v.length}
		return
	}
	val = v.slots.take(index)
	for i := index + 1; i < v.length; i++ {
		v.slots.move(i-1, i)
	}
	v.length--
	assertLen("Remove", v.length, len(v.slots))
	return
}

// MustRemove is like Remove but panics on error.
func (v *Vec[T]) MustRemove(index int) T {
	val, err := v.Remove(index)
	if err != nil {
		fail("Remove", err)
	}
	return val
}

// SwapRemove takes the element at index and moves the last element into
// its place. It runs in constant time and does not preserve order.
func (v *Vec[T]) SwapRemove(index int) (val T, err error) {
	if index < 0 || index >= v.length {
		err = &IndexError{Method: "SwapRemove", Index: index, Len: v.length}
		return
	}
	val = v.slots.take(index)
	last := v.length - 1
	if index != last {
		v.slots.move(index, last)
	}
	v.length = last
	assertLen("SwapRemove", v.length, len(v.slots))
	return
}

// Truncate keeps the first n elements and drops the rest.
// It does nothing if n >= Len. A negative n is treated as 0.
func (v *Vec[T]) Truncate(n int) {
	n = max(n, 0)
	if n >= v.length {
		return
	}
	end := v.length
	v.length = n
	v.slots.destroyRange(n, end)
}

// Clear drops every element.
func (v *Vec[T]) Clear() {
	v.Truncate(0)
}

// Drop ends the life of the vector's contents: every live element is
// dropped in ascending order. The vector stays usable and empty.
func (v *Vec[T]) Drop() {
	v.Clear()
}

// At returns a pointer to the element at index.
// It panics if index is outside [0, Len), like slice indexing.
// The pointer is valid until the next call that moves elements.
func (v *Vec[T]) At(index int) *T {
	return &v.Slice()[index]
}

// Get returns the element at index. ok is false if index is out of range.
func (v *Vec[T]) Get(index int) (val T, ok bool) {
	if index < 0 || index >= v.length {
		return
	}
	return v.slots[index], true
}

// Slice returns the live elements. Its capacity is clipped to its length,
// so appending to it copies instead of writing into the vector's free slots.
func (v *Vec[T]) Slice() []T {
	return v.slots[:v.length:v.length]
}

// All implements iter.Seq2[int, T], yielding index and element in order.
func (v *Vec[T]) All(yield func(index int, val T) bool) {
	for i := 0; i < v.length; i++ {
		if !yield(i, v.slots[i]) {
			return
		}
	}
}

// Values implements iter.Seq[T], yielding elements in order.
func (v *Vec[T]) Values(yield func(val T) bool) {
	for i := 0; i < v.length; i++ {
		if !yield(v.slots[i]) {
			return
		}
	}
}

// String formats the live elements like a slice.
func (v *Vec[T]) String() string {
	return fmt.Sprint(v.Slice())
}
