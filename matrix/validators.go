// SPDX-License-Identifier: MIT

// Package matrix - centralized validators.
// Kernels call these instead of repeating shape checks inline, so every
// shape violation surfaces as the same sentinel.
package matrix

import "fmt"

// validatorErrorf tags a sentinel with the validator name.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil returns ErrNilMatrix when m is a nil interface or a typed
// nil *Dense.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape requires a and b to be non-nil with identical dimensions.
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRectangular checks that rows is non-empty and every row has the
// same positive length. It returns that length.
//
// Errors:
//   - ErrInvalidDimensions when there are no rows or the first row is empty.
//   - ErrDimensionMismatch when any row's length differs from the first.
func ValidateRectangular(rows [][]float64) (int, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, validatorErrorf("ValidateRectangular", ErrInvalidDimensions)
	}
	cols := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return 0, fmt.Errorf("ValidateRectangular: row %d has %d entries, want %d: %w",
				i, len(rows[i]), cols, ErrDimensionMismatch)
		}
	}

	return cols, nil
}
