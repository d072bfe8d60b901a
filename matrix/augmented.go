// SPDX-License-Identifier: MIT

// Package matrix - augmented matrix construction.
//
// An augmented matrix [A | b] is an ordinary Dense whose last column holds
// the right-hand side. It is built once the final width is known, so the
// buffer is allocated exactly once and never grows.

package matrix

import "fmt"

const ctxNewAugmented = "NewAugmented"

// NewAugmented copies rows into a freshly allocated Dense.
// MAIN DESCRIPTION:
//   - Dense ingestion of row-major [][]float64 with rectangular validation.
//
// Implementation:
//   - Stage 1: reject zero rows or zero columns (ErrInvalidDimensions).
//   - Stage 2: verify every row has len(rows[0]) entries (ErrDimensionMismatch).
//   - Stage 3: allocate and copy through Set so the NaN/Inf policy applies.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewAugmented(rows [][]float64) (*Dense, error) {
	cols, err := ValidateRectangular(rows)
	if err != nil {
		return nil, matrixErrorf(ctxNewAugmented, err)
	}
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, matrixErrorf(ctxNewAugmented, err)
	}
	var i, j int
	for i = 0; i < len(rows); i++ {
		for j = 0; j < cols; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, fmt.Errorf("%s: %w", ctxNewAugmented, err)
			}
		}
	}

	return m, nil
}

// Coefficients returns the number of coefficient columns of an augmented
// matrix, i.e. Cols()-1.
func (m *Dense) Coefficients() int { return m.c - 1 }

// RHS returns the right-hand-side entry of row i.
func (m *Dense) RHS(i int) (float64, error) {
	return m.At(i, m.c-1)
}
