// SPDX-License-Identifier: MIT

package equation

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyEquation indicates blank input.
	ErrEmptyEquation = errors.New("equation: empty equation")

	// ErrMalformedEquation indicates a missing or duplicate "=" or an empty left side.
	ErrMalformedEquation = errors.New("equation: equation must contain exactly one '=' with a non-empty left side")

	// ErrInvalidConstant indicates that the right-hand side is not a single numeric literal.
	ErrInvalidConstant = errors.New("equation: right-hand side must be a number")

	// ErrUnrecognizedToken indicates characters on the left side that form no term.
	ErrUnrecognizedToken = errors.New("equation: unrecognized token")
)

// ParseError reports why one equation could not be parsed.
// Err is always one of the package sentinels; match it with errors.Is.
type ParseError struct {
	Equation string // input as given by the caller
	Detail   string // offending fragment, empty when not applicable
	Err      error
}

// Error implements error.
func (e *ParseError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v (in %q)", e.Err, e.Equation)
	}

	return fmt.Sprintf("%v: %q (in %q)", e.Err, e.Detail, e.Equation)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }

func parseErrorf(eq string, sentinel error, detail string) *ParseError {
	return &ParseError{Equation: eq, Detail: detail, Err: sentinel}
}
