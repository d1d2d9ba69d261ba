// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package arrayvec

// Dropper is implemented by elements that need to release something when the
// container discards them. Drop is called exactly once per discarded element.
//
// The method must be in the method set of the element type itself: store
// pointers for types whose Drop has a pointer receiver.
type Dropper interface {
	Drop()
}

func drop[T any](val T) {
	if d, ok := any(val).(Dropper); ok {
		d.Drop()
	}
}

// store is the backing block of slots. It knows nothing about the live
// length; callers own that bookkeeping and must fix it up right after
// calling take or move.
//
// A vacant slot always holds the zero value.
type store[T any] []T

// write initializes a vacant slot.
func (s store[T]) write(i int, val T) {
	assertVacant("write", &s[i])
	s[i] = val
}

// take moves the value out of a live slot, leaving it vacant.
func (s store[T]) take(i int) (val T) {
	var zero T
	val, s[i] = s[i], zero
	return
}

// move relocates a live slot into a vacant one.
func (s store[T]) move(dst, src int) {
	s.write(dst, s.take(src))
}

// destroy drops a live slot. The slot is vacant before Drop runs.
func (s store[T]) destroy(i int) {
	drop(s.take(i))
}

// destroyRange destroys [from, to) in ascending order.
// If a Drop panics, the rest of the range is still destroyed before the
// panic continues, so no slot is left occupied.
func (s store[T]) destroyRange(from, to int) {
	i := from
	defer func() {
		if i < to {
			s.destroyRange(i+1, to)
		}
	}()
	for ; i < to; i++ {
		s.destroy(i)
	}
}
