// SPDX-License-Identifier: MIT

package gaussjordan

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/linsys/matrix"
)

// FindConflict returns the first row whose coefficient entries are all zero
// while its right-hand side is not, i.e. a row reading 0 = k, k ≠ 0.
// Complexity: O(R·C).
func FindConflict(rref *matrix.Dense, eps float64) (Conflict, bool) {
	rows, cols := rref.Shape()
	v := cols - 1
	var i, j int
	var x float64
outer:
	for i = 0; i < rows; i++ {
		for j = 0; j < v; j++ {
			if x, _ = rref.At(i, j); !matrix.IsZero(x, eps) {
				continue outer
			}
		}
		if rhs, _ := rref.RHS(i); !matrix.IsZero(rhs, eps) {
			return Conflict{Row: i, RHS: rhs}, true
		}
	}

	return Conflict{}, false
}

// PivotColumns reports the clean basis columns of an RREF buffer.
// A coefficient column c is a pivot column when some row's leading non-zero
// coefficient sits in c, equals 1, and every other row is zero in c.
// The result is sorted by column; each column appears once.
//
// PivotColumns is a pure query; it does not assume rref came from Reduce.
// Complexity: O(R·C + R²).
func PivotColumns(rref *matrix.Dense, eps float64) []Pivot {
	rows, cols := rref.Shape()
	v := cols - 1
	seen := make(map[int]bool)
	pivots := make([]Pivot, 0, rows)
	var i, j, k int
	var x float64
	for i = 0; i < rows; i++ {
		lead := -1
		for j = 0; j < v; j++ {
			if x, _ = rref.At(i, j); !matrix.IsZero(x, eps) {
				lead = j
				break
			}
		}
		if lead < 0 || seen[lead] || !matrix.IsOne(x, eps) {
			continue
		}
		clean := true
		for k = 0; k < rows && clean; k++ {
			if k == i {
				continue
			}
			if y, _ := rref.At(k, lead); !matrix.IsZero(y, eps) {
				clean = false
			}
		}
		if clean {
			seen[lead] = true
			pivots = append(pivots, Pivot{Row: i, Col: lead})
		}
	}
	sort.Slice(pivots, func(a, b int) bool { return pivots[a].Col < pivots[b].Col })

	return pivots
}

// Classify inspects an RREF buffer and describes its solution set.
// names[j] is the variable of coefficient column j.
//
// Order of checks:
//  1. Inconsistent: any 0 = k row (dominates everything else).
//  2. IdentitiesOnly: no variables at all.
//  3. UniqueSolution: rank == number of variables.
//  4. InfiniteSolutions: otherwise; non-pivot columns are free.
//
// Errors:
//   - matrix.ErrNilMatrix for nil input.
//   - matrix.ErrDimensionMismatch when len(names) != Cols()-1.
func Classify(rref *matrix.Dense, names []string, opts ...Option) (*Result, error) {
	if err := matrix.ValidateNotNil(rref); err != nil {
		return nil, gjErrorf("Classify", err)
	}
	o := gatherOptions(opts)
	v := rref.Coefficients()
	if len(names) != v {
		return nil, gjErrorf("Classify", fmt.Errorf("%d names for %d columns: %w", len(names), v, matrix.ErrDimensionMismatch))
	}

	res := &Result{
		Variables: append([]string{}, names...),
		RREF:      rref.RowsCopy(),
		Pivots:    []int{},
	}

	if conflict, ok := FindConflict(rref, o.Epsilon); ok {
		res.Classification = Inconsistent
		res.Conflict = &conflict
		return res, nil
	}
	if v == 0 {
		res.Classification = IdentitiesOnly
		return res, nil
	}

	pivots := PivotColumns(rref, o.Epsilon)
	pivotRow := make(map[int]int, len(pivots))
	for _, p := range pivots {
		res.Pivots = append(res.Pivots, p.Col)
		pivotRow[p.Col] = p.Row
	}
	res.Rank = len(pivots)

	if res.Rank == v {
		res.Classification = UniqueSolution
		res.Solutions = make([]Solution, v)
		for j := 0; j < v; j++ {
			rhs, _ := rref.RHS(pivotRow[j])
			res.Solutions[j] = Solution{Variable: names[j], Kind: Constant, Value: rhs}
		}
		return res, nil
	}

	res.Classification = InfiniteSolutions
	var freeCols []int
	for j := 0; j < v; j++ {
		if _, ok := pivotRow[j]; !ok {
			freeCols = append(freeCols, j)
			res.Free = append(res.Free, names[j])
		}
	}
	res.Solutions = make([]Solution, v)
	for j := 0; j < v; j++ {
		row, ok := pivotRow[j]
		if !ok {
			res.Solutions[j] = Solution{Variable: names[j], Kind: Free}
			continue
		}
		rhs, _ := rref.RHS(row)
		sol := Solution{Variable: names[j], Kind: Constant, Value: rhs}
		for _, fc := range freeCols {
			coef, _ := rref.At(row, fc)
			if matrix.IsZero(coef, o.Epsilon) {
				continue
			}
			sol.Terms = append(sol.Terms, FreeTerm{Variable: names[fc], Coeff: -coef})
		}
		if len(sol.Terms) > 0 {
			sol.Kind = Expression
		}
		res.Solutions[j] = sol
	}

	return res, nil
}

// Solve is Reduce followed by Classify with the same options.
func Solve(m *matrix.Dense, names []string, opts ...Option) (*Result, error) {
	rref, err := Reduce(m, opts...)
	if err != nil {
		return nil, err
	}

	return Classify(rref, names, opts...)
}
