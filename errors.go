package unimatch

import (
	"fmt"
)

// CompileError wraps an engine syntax error with the offending pattern.
//
// It is the only error the facade returns: everything else that can go
// wrong is either a normal "no match" outcome (reported as an explicit
// absence, never an error) or a broken internal invariant (reported by
// panicking).
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("unimatch: compiling pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying engine error.
func (e *CompileError) Unwrap() error {
	return e.Err
}
