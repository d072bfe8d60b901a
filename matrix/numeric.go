// SPDX-License-Identifier: MIT

// Package matrix - numeric cleanup and tolerance comparison.
//
// Elimination leaves floating-point residue (1e-17 where a zero belongs,
// 2.0000000000000004 where a 2 belongs). Cleanup snaps near-zero entries to
// exactly zero and rounds the rest to a fixed number of decimal places so
// structural queries (is this entry zero? is it one?) become exact.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Snap sets every entry with |v| < eps to exactly 0 (negative zero included).
// Complexity: O(r*c).
func (m *Dense) Snap(eps float64) {
	for k, v := range m.data {
		if math.Abs(v) < eps {
			m.data[k] = 0
		}
	}
}

// Round rounds every entry to places decimal places (half away from zero).
// Complexity: O(r*c).
func (m *Dense) Round(places int) {
	for k, v := range m.data {
		m.data[k] = scalar.Round(v, places)
	}
}

// Cleanup applies Snap, then Round, then Snap again so that rounding can
// neither resurrect residue nor leave a negative zero behind.
// Complexity: O(r*c).
func (m *Dense) Cleanup(opts ...Option) {
	o := NewOptions(opts...)
	m.Snap(o.eps)
	m.Round(o.precision)
	m.Snap(o.eps)
	for k, v := range m.data {
		if v == 0 {
			m.data[k] = 0 // drop the sign bit of -0
		}
	}
}

// AllClose reports whether a and b have the same shape and every pair of
// entries differs by at most tol.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch from ValidateSameShape.
//
// Complexity: O(r*c).
func AllClose(a, b Matrix, tol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for k := range da.data {
			if !scalar.EqualWithinAbs(da.data[k], db.data[k], tol) {
				return false, nil
			}
		}
		return true, nil
	}
	var i, j int
	var va, vb float64
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			va, _ = a.At(i, j)
			vb, _ = b.At(i, j)
			if !scalar.EqualWithinAbs(va, vb, tol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsZero reports |v| < eps.
func IsZero(v, eps float64) bool { return math.Abs(v) < eps }

// IsOne reports |v-1| < eps.
func IsOne(v, eps float64) bool { return math.Abs(v-1) < eps }
