package arrayvec

import (
	"cmp"
	"iter"
	"slices"
)

// Of returns a full Vec whose capacity equals len(items).
func Of[T any](items ...T) *Vec[T] {
	vec := New[T](len(items))
	vec.ExtendFromSlice(items)
	return vec
}

// FromSlice returns a Vec of the given capacity holding a copy of src.
// If src does not fit, no Vec is built and the error wraps both
// ErrSourceTooLarge and a *CapacityError[[]T] holding src.
func FromSlice[T any](capacity int, src []T) (*Vec[T], error) {
	if len(src) > capacity {
		return nil, tooLarge(src)
	}
	vec := New[T](capacity)
	vec.ExtendFromSlice(src)
	return vec, nil
}

// Collect drains seq into a new Vec of the given capacity.
// If seq yields more than capacity elements, Collect stops pulling, discards
// the partial Vec and returns an error wrapping ErrSourceTooLarge and a
// *CapacityError[[]T] holding every element pulled so far, in order.
func Collect[T any](capacity int, seq iter.Seq[T]) (*Vec[T], error) {
	vec := New[T](capacity)
	for val := range seq {
		if err := vec.Push(val); err != nil {
			return nil, tooLarge(append(vec.Slice(), val))
		}
	}
	return vec, nil
}

// Extend pushes the elements of seq in order, pulling lazily.
// On the first element that does not fit it stops, leaving the elements
// already pushed in place, and returns the count pushed with a
// *CapacityError holding the rejected element. The rest of seq is not pulled.
func (v *Vec[T]) Extend(seq iter.Seq[T]) (n int, err error) {
	for val := range seq {
		if err = v.Push(val); err != nil {
			return
		}
		n++
	}
	return
}

// ExtendFromSlice appends all of src or nothing. If src does not fit it
// returns a *CapacityError[[]T] holding src.
func (v *Vec[T]) ExtendFromSlice(src []T) error {
	if len(src) > v.Remaining() {
		return &CapacityError[[]T]{Value: src}
	}
	for _, val := range src {
		v.slots.write(v.length, val)
		v.length++
	}
	return nil
}

// Clone returns a Vec with the same capacity and a shallow copy of the
// live elements.
func (v *Vec[T]) Clone() *Vec[T] {
	vec := New[T](v.Cap())
	vec.ExtendFromSlice(v.Slice())
	return vec
}

// CloneFunc is like Clone but duplicates each element with clone.
// If clone fails or panics, the elements cloned so far are dropped and
// no Vec is returned.
func (v *Vec[T]) CloneFunc(clone func(T) (T, error)) (_ *Vec[T], err error) {
	vec := New[T](v.Cap())
	done := false
	defer func() {
		if !done {
			vec.Drop()
		}
	}()

	for i := range v.length {
		var val T
		if val, err = clone(v.slots[i]); err != nil {
			return
		}
		vec.slots.write(vec.length, val)
		vec.length++
	}
	done = true
	return vec, nil
}

// Equal reports whether a and b hold the same elements in the same order.
// Capacities are not compared.
func Equal[T comparable](a, b *Vec[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

func EqualFunc[T, U any](a *Vec[T], b *Vec[U], eq func(T, U) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Compare compares the live elements of a and b lexicographically.
func Compare[T cmp.Ordered](a, b *Vec[T]) int {
	return slices.Compare(a.Slice(), b.Slice())
}

func CompareFunc[T, U any](a *Vec[T], b *Vec[U], compare func(T, U) int) int {
	return slices.CompareFunc(a.Slice(), b.Slice(), compare)
}
