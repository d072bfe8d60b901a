// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations on Dense.
//
// These are the three primitives every elimination kernel is built from:
// swap two rows, scale a row by a non-zero factor, add a multiple of one row
// to another. Scale and axpy loops are delegated to gonum/floats, which
// operates on the live row slices of the flat buffer (no copies).
//
// AI-Hints:
//   - Kernels that need many row ops should validate indices once and then
//     call the row primitives; each primitive re-checks bounds in O(1).

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	ctxSwapRows     = "SwapRows"
	ctxScaleRow     = "ScaleRow"
	ctxAddScaledRow = "AddScaledRow"
	ctxArgMaxAbs    = "ArgMaxAbs"
)

// checkRow validates a row index against m.
func (m *Dense) checkRow(tag string, i int) error {
	if i < 0 || i >= m.r {
		return fmt.Errorf("Dense.%s: row %d of %d: %w", tag, i, m.r, ErrOutOfRange)
	}

	return nil
}

// SwapRows exchanges rows i and j in place. Swapping a row with itself is a no-op.
// Complexity: O(c).
func (m *Dense) SwapRows(i, j int) error {
	if err := m.checkRow(ctxSwapRows, i); err != nil {
		return err
	}
	if err := m.checkRow(ctxSwapRows, j); err != nil {
		return err
	}
	if i == j {
		return nil
	}
	ri, rj := m.row(i), m.row(j)
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}

	return nil
}

// ScaleRow multiplies every entry of row i by alpha.
//
// Errors:
//   - ErrOutOfRange for a bad index.
//   - ErrZeroScale when alpha == 0.
//   - ErrNaNInf when alpha is not finite.
//
// Complexity: O(c).
func (m *Dense) ScaleRow(i int, alpha float64) error {
	if err := m.checkRow(ctxScaleRow, i); err != nil {
		return err
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return matrixErrorf("Dense."+ctxScaleRow, ErrNaNInf)
	}
	if alpha == 0 {
		return matrixErrorf("Dense."+ctxScaleRow, ErrZeroScale)
	}
	floats.Scale(alpha, m.row(i))

	return nil
}

// AddScaledRow performs row[dst] += alpha * row[src].
// dst == src scales the row by (1+alpha).
// Complexity: O(c).
func (m *Dense) AddScaledRow(dst, src int, alpha float64) error {
	if err := m.checkRow(ctxAddScaledRow, dst); err != nil {
		return err
	}
	if err := m.checkRow(ctxAddScaledRow, src); err != nil {
		return err
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return matrixErrorf("Dense."+ctxAddScaledRow, ErrNaNInf)
	}
	if alpha == 0 {
		return nil
	}
	if dst == src {
		floats.Scale(1+alpha, m.row(dst))
		return nil
	}
	floats.AddScaled(m.row(dst), alpha, m.row(src))

	return nil
}

// ArgMaxAbs scans column col over rows [from, Rows()) and returns the row
// holding the largest absolute value together with that magnitude.
// Ties resolve to the lowest row index.
//
// Errors:
//   - ErrOutOfRange when col is invalid or from is outside [0, Rows()).
//
// Complexity: O(r).
func (m *Dense) ArgMaxAbs(col, from int) (row int, mag float64, err error) {
	if col < 0 || col >= m.c {
		return 0, 0, fmt.Errorf("Dense.%s: col %d of %d: %w", ctxArgMaxAbs, col, m.c, ErrOutOfRange)
	}
	if err = m.checkRow(ctxArgMaxAbs, from); err != nil {
		return 0, 0, err
	}
	row = from
	mag = math.Abs(m.data[from*m.c+col])
	for i := from + 1; i < m.r; i++ {
		if v := math.Abs(m.data[i*m.c+col]); v > mag {
			row, mag = i, v
		}
	}

	return row, mag, nil
}

// FirstAbove scans column col over rows [from, Rows()) and returns the first
// row whose absolute value is >= eps, or -1 when none qualifies.
// Complexity: O(r).
func (m *Dense) FirstAbove(col, from int, eps float64) (int, error) {
	if col < 0 || col >= m.c {
		return -1, fmt.Errorf("Dense.FirstAbove: col %d of %d: %w", col, m.c, ErrOutOfRange)
	}
	if err := m.checkRow("FirstAbove", from); err != nil {
		return -1, err
	}
	for i := from; i < m.r; i++ {
		if math.Abs(m.data[i*m.c+col]) >= eps {
			return i, nil
		}
	}

	return -1, nil
}
