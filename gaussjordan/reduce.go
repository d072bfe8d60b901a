// SPDX-License-Identifier: MIT

package gaussjordan

import (
	"github.com/katalvlaran/linsys/matrix"
)

// Reduce returns the RREF of m. m itself is not modified.
//
// Stages:
//
//	Stage 1 (Validate): m must be non-nil (Dense guarantees ≥ 1 column).
//	Stage 2 (Prepare):  clone m; cursors r = c = 0.
//	Stage 3 (Sweep):    for each column, choose a pivot row per Strategy; a
//	                    column whose best |entry| is below eps advances c only.
//	                    Otherwise swap, scale the pivot to exactly 1 and zero
//	                    column c in every other row.
//	Stage 4 (Cleanup):  snap |v| < eps to 0 and round to Precision places.
//
// The sweep performs at most min(R, C-1) pivot steps and always terminates.
//
// Complexity: O(min(R, C-1)·R·C) time, O(R·C) memory.
func Reduce(m *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, gjErrorf("Reduce", err)
	}
	o := gatherOptions(opts)

	a := m.Copy()
	rows, cols := a.Shape()
	var (
		r, c, p int
		mag, v  float64
		err     error
	)
	for r < rows && c < cols-1 {
		// Stage 3a: pivot search.
		switch o.Strategy {
		case FirstNonZero:
			if p, err = a.FirstAbove(c, r, o.Epsilon); err != nil {
				return nil, gjErrorf("Reduce", err)
			}
		default:
			if p, mag, err = a.ArgMaxAbs(c, r); err != nil {
				return nil, gjErrorf("Reduce", err)
			}
			if mag < o.Epsilon {
				p = -1
			}
		}
		if p < 0 {
			c++ // no usable pivot in this column
			continue
		}

		// Stage 3b: swap into place and normalize.
		if err = a.SwapRows(r, p); err != nil {
			return nil, gjErrorf("Reduce", err)
		}
		v, _ = a.At(r, c)
		if err = a.ScaleRow(r, 1/v); err != nil {
			return nil, gjErrorf("Reduce", err)
		}
		_ = a.Set(r, c, 1) // exact 1 regardless of 1/v rounding

		// Stage 3c: eliminate column c above and below.
		for i := 0; i < rows; i++ {
			if i == r {
				continue
			}
			f, _ := a.At(i, c)
			if f == 0 {
				continue
			}
			if err = a.AddScaledRow(i, r, -f); err != nil {
				return nil, gjErrorf("Reduce", err)
			}
			_ = a.Set(i, c, 0)
		}

		if o.OnPivot != nil {
			o.OnPivot(Step{Row: r, Col: c, From: p, Pivot: v})
		}
		r++
		c++
	}

	// Stage 4: numeric cleanup.
	a.Cleanup(matrix.WithEpsilon(o.Epsilon), matrix.WithPrecision(o.Precision))

	return a, nil
}
