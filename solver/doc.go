// Package solver runs one complete solve pass over a list of equation strings:
// parse, assemble, reduce, classify.
//
// The solver package provides:
//
//   - Solve, a one-shot facade returning a Report (assembled matrix, RREF and
//     per-variable solutions). A parse failure aborts the pass and is returned
//     as *EquationError naming the offending equation.
//   - Session, an ordered list of equations that are validated when added and
//     re-parsed from scratch on every Solve. Variable columns are numbered by
//     first appearance across the current list, so removing an equation may
//     renumber them.
//
// Numeric policy options are shared with gaussjordan.
//
//	rep, err := solver.Solve([]string{"2x + y = 5", "x - y = 1"})
//	if err != nil { ... }
//	fmt.Print(rep.Text())
package solver
