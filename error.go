package arrayvec

import (
	"errors"
	"fmt"
)

var (
	ErrCapacity       = errors.New("insufficient capacity")
	ErrOutOfRange     = errors.New("out of range")
	ErrSourceTooLarge = errors.New("source too large")
)

// CapacityError is returned when an operation needs more slots than remain.
// Value holds whatever could not be stored: the rejected element for
// Push, Insert and Extend, or the whole input for the bulk operations.
type CapacityError[T any] struct {
	Value T
}

func (err *CapacityError[T]) Error() string {
	return ErrCapacity.Error()
}

func (err *CapacityError[T]) Unwrap() error {
	return ErrCapacity
}

// IndexError is returned when an index is outside the valid range of the
// method that received it. The vector is left untouched.
type IndexError struct {
	Method string
	Index  int
	Len    int
}

func (err *IndexError) Error() string {
	return fmt.Sprintf("arrayvec: Vec.%s(): index %d is out of bounds in vector of length %d",
		err.Method, err.Index, err.Len)
}

func (err *IndexError) Unwrap() error {
	return ErrOutOfRange
}

func tooLarge[T any](rejected []T) error {
	return fmt.Errorf("%w: %w", ErrSourceTooLarge, &CapacityError[[]T]{Value: rejected})
}

// fail panics for the Must variants. An *IndexError already names its method.
func fail(method string, err error) {
	if _, ok := err.(*IndexError); ok {
		panic(err)
	}
	panic(fmt.Errorf("arrayvec: Vec.%s(): %w", method, err))
}
