// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrNoEquations indicates a solve pass over an empty list.
	ErrNoEquations = errors.New("solver: no equations")

	// ErrIndexOutOfRange indicates a Session index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("solver: equation index out of range")
)

// EquationError identifies the equation that stopped a solve pass or was
// refused by Session.Add. Err wraps the underlying *equation.ParseError.
type EquationError struct {
	Index    int    // position in the list (0-based)
	Equation string // text as submitted
	Err      error
}

// Error implements error.
func (e *EquationError) Error() string {
	return fmt.Sprintf("solver: equation %d: %v", e.Index+1, e.Err)
}

// Unwrap exposes the parse error for errors.Is / errors.As.
func (e *EquationError) Unwrap() error { return e.Err }
