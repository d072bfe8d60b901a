// SPDX-License-Identifier: MIT

package equation

import (
	"fmt"

	"github.com/katalvlaran/linsys/matrix"
)

// ParseAll parses every equation against one fresh Registry.
// The first failure aborts the batch; its index is returned with the error
// so callers can point at the offending input.
func ParseAll(equations []string) ([]Row, *Registry, int, error) {
	reg := NewRegistry()
	rows := make([]Row, 0, len(equations))
	for i, eq := range equations {
		row, err := Parse(eq, reg)
		if err != nil {
			return nil, nil, i, err
		}
		rows = append(rows, row)
	}

	return rows, reg, -1, nil
}

// Assemble pads rows to reg.Len() coefficient columns and builds the
// augmented matrix [A | b]. Rows parsed before a variable was first seen get
// a zero in that variable's column.
//
// Errors:
//   - matrix.ErrInvalidDimensions when rows is empty.
//   - matrix.ErrDimensionMismatch when a row is wider than the registry
//     (rows parsed against a different registry).
func Assemble(rows []Row, reg *Registry) (*matrix.Dense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("Assemble: %w", matrix.ErrInvalidDimensions)
	}
	width := reg.Len()
	dense := make([][]float64, len(rows))
	for i, r := range rows {
		d, err := r.Dense(width)
		if err != nil {
			return nil, fmt.Errorf("Assemble: row %d: %w", i, err)
		}
		dense[i] = d
	}

	return matrix.NewAugmented(dense)
}
