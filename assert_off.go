//go:build !debug

package arrayvec

// assertVacant is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertVacant[T any](string, *T) {}

// assertLen is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertLen(string, int, int) {}
