package internal

import (
	"runtime"

	"github.com/pkg/errors"
)

// Threading errors through every comparator and arithmetic helper would add a
// ton of noise to the geometry code. Instead, we use panics, and the public
// API recovers to convert to an error.

type HullError error

var (
	ErrNotANumber         = errors.New("not a number")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrHullUnderflow      = errors.New("hull stack underflow")
	ErrDegenerateTriangle = errors.New("degenerate triangle")
)

// Panic with a HullError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

// Panic with a HullError that wraps one of the sentinel errors above, so
// that callers can still match on it with errors.Is.
func throw(err error, format string, args ...interface{}) {
	panic(errors.Wrapf(err, format, args...))
}

// Convert a recovered panic back into an error. Runtime errors (nil
// dereferences, bad indexes) also satisfy the error interface, but they are
// bugs rather than hull failures, so they keep panicking.
func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if _, ok := r.(runtime.Error); ok {
			panic(r)
		}
		if hullError, ok := r.(HullError); ok {
			return hullError
		}
		panic(r)
	}
	return nil
}
