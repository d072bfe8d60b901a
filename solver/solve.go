// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/linsys/equation"
	"github.com/katalvlaran/linsys/gaussjordan"
)

// Solve parses equations against one fresh variable registry, assembles the
// augmented matrix, reduces it and classifies the result.
//
// Errors:
//   - ErrNoEquations when equations is empty.
//   - *EquationError (wrapping *equation.ParseError) for the first equation
//     that fails to parse; nothing after it is examined.
//   - matrix sentinels from assembly or reduction, wrapped.
func Solve(equations []string, opts ...Option) (*Report, error) {
	if len(equations) == 0 {
		return nil, ErrNoEquations
	}

	rows, reg, idx, err := equation.ParseAll(equations)
	if err != nil {
		return nil, &EquationError{Index: idx, Equation: equations[idx], Err: err}
	}

	m, err := equation.Assemble(rows, reg)
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}

	res, err := gaussjordan.Solve(m, reg.Names(), opts...)
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}

	return &Report{
		Equations: append([]string{}, equations...),
		Matrix:    m.RowsCopy(),
		Result:    *res,
	}, nil
}
