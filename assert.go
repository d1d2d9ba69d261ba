//go:build debug

package arrayvec

import (
	"fmt"
	"reflect"
)

// assertVacant panics if the slot does not hold the zero value.
// A slot outside the live prefix must never hold anything else.
// Only enabled with -tags debug.
func assertVacant[T any](method string, slot *T) {
	if !reflect.ValueOf(slot).Elem().IsZero() {
		panic(fmt.Sprintf("%s: write into occupied slot", method))
	}
}

// assertLen panics if length is outside [0, capacity].
// Only enabled with -tags debug.
func assertLen(method string, length, capacity int) {
	if length < 0 || length > capacity {
		panic(fmt.Sprintf("%s: length %d outside [0, %d]", method, length, capacity))
	}
}
