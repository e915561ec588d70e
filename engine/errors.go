package engine

import "github.com/pkg/errors"

// Threading errors through every recursive trapezoidation and triangulation
// call would add a lot of ceremony for invariant violations that should be
// unreachable in a correctly threaded segment set. Instead, internal code
// panics with an invariantError, and the public API recovers it at the
// boundary and turns it into a plain bool/false return, matching the rest
// of the package's explicit, exception-free error model.
type invariantError struct {
	error
}

func fatalf(format string, args ...interface{}) {
	panic(invariantError{errors.Errorf(format, args...)})
}

// recoverInvariant converts a panicking invariantError into a non-nil
// error; any other panic value is re-raised, since it represents a real bug
// rather than a documented assertion.
func recoverInvariant(r interface{}) error {
	if r == nil {
		return nil
	}
	if ie, ok := r.(invariantError); ok {
		return ie.error
	}
	panic(r)
}
