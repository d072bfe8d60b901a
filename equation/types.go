// SPDX-License-Identifier: MIT

package equation

import (
	"fmt"

	"github.com/katalvlaran/linsys/matrix"
)

// Term is one (column, coefficient) pair of a Row.
type Term struct {
	Column int
	Coeff  float64
}

// Row is the sparse form of one parsed equation.
//   - Terms are sorted by Column, one entry per distinct variable that appears
//     in the equation (a variable whose coefficients cancel keeps a 0 entry).
//   - RHS is the right-hand literal minus the left-side constants.
//   - Width is the registry size right after this equation was parsed; it is
//     the dense width of the row at that moment.
type Row struct {
	Terms []Term
	RHS   float64
	Width int
}

// Coefficient returns the coefficient of column col (0 when absent).
func (r Row) Coefficient(col int) float64 {
	for _, t := range r.Terms {
		if t.Column == col {
			return t.Coeff
		}
	}

	return 0
}

// Dense expands the row into width coefficient slots plus the RHS.
// Columns the equation never mentions are zero.
//
// Errors:
//   - matrix.ErrDimensionMismatch when width is smaller than the row's Width.
func (r Row) Dense(width int) ([]float64, error) {
	if width < r.Width {
		return nil, fmt.Errorf("Row.Dense: width %d < row width %d: %w", width, r.Width, matrix.ErrDimensionMismatch)
	}
	out := make([]float64, width+1)
	for _, t := range r.Terms {
		out[t.Column] = t.Coeff
	}
	out[width] = r.RHS

	return out, nil
}

// Values is Dense at the row's own width.
func (r Row) Values() []float64 {
	out, _ := r.Dense(r.Width)
	return out
}
