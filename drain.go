// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package arrayvec

import "iter"

// Drain removes [start, end) from the vector and returns an iterator that
// yields the removed elements by value, from either end.
//
// While the Drain is live the vector's length is start; the elements after
// end are hidden and must not be touched through the vector. Drop (or Seq
// running to completion) drops any unyielded elements and moves the tail
// back, giving the vector length Len-(end-start).
func (v *Vec[T]) Drain(start, end int) (*Drain[T], error) {
	if start < 0 || start > end {
		return nil, &IndexError{Method: "Drain", Index: start, Len: v.length}
	}
	if end > v.length {
		return nil, &IndexError{Method: "Drain", Index: end, Len: v.length}
	}
	d := &Drain[T]{
		vec:       v,
		head:      start,
		tail:      end,
		start:     start,
		tailStart: end,
		tailLen:   v.length - end,
	}
	v.length = start
	return d, nil
}

// Drain is the iterator returned by Vec.Drain.
type Drain[T any] struct {
	vec *Vec[T]
	// unyielded part of the drained range
	head, tail int
	// where the tail goes back to
	start int
	// the hidden elements after the drained range
	tailStart, tailLen int
}

// Next moves the front element of the drained range out.
func (d *Drain[T]) Next() (val T, ok bool) {
	if d.head == d.tail {
		return
	}
	val = d.vec.slots.take(d.head)
	d.head++
	return val, true
}

// NextBack moves the back element of the drained range out.
func (d *Drain[T]) NextBack() (val T, ok bool) {
	if d.head == d.tail {
		return
	}
	d.tail--
	return d.vec.slots.take(d.tail), true
}

// Len returns the number of drained elements not yet yielded.
func (d *Drain[T]) Len() int {
	return d.tail - d.head
}

// Drop drops the unyielded elements and restores the vector.
// Calling it again does nothing.
func (d *Drain[T]) Drop() {
	vec := d.vec
	if vec == nil {
		return
	}
	d.vec = nil
	head, tail := d.head, d.tail
	d.head = d.tail

	defer func() {
		if d.start != d.tailStart {
			for i := range d.tailLen {
				vec.slots.move(d.start+i, d.tailStart+i)
			}
		}
		vec.length = d.start + d.tailLen
		assertLen("Drain", vec.length, len(vec.slots))
	}()
	vec.slots.destroyRange(head, tail)
}

// Seq returns an iter.Seq[T] over the unyielded elements, front to back.
// The Drain is dropped when the range loop ends.
func (d *Drain[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer d.Drop()
		for {
			val, ok := d.Next()
			if !ok || !yield(val) {
				return
			}
		}
	}
}
