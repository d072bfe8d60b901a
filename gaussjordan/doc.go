// Package gaussjordan reduces an augmented matrix [A | b] to reduced
// row-echelon form (RREF) and classifies the linear system it encodes.
//
// 🚀 What is inside?
//
//	Reduce       : Gauss–Jordan elimination with partial pivoting (default) or
//	                first-non-zero pivoting, followed by snap-to-zero and
//	                rounding so structural queries are exact.
//	PivotColumns : pure query over an RREF buffer: which columns are clean
//	                basis columns.
//	Classify     : Inconsistent, UniqueSolution, InfiniteSolutions or
//	                IdentitiesOnly, with one Solution per named variable.
//	FormatMatrix : fixed-width ".3f" dump with "|" before the last column.
//	FormatReport : human-readable classification and solution lines.
//
// Algorithm outline (Reduce):
//  1. r, c := 0, 0
//  2. while r < R and c < C-1:
//     pick pivot row p in [r, R) (largest |m[p][c]| or first |m[p][c]| ≥ eps);
//     if none qualifies, c++ and continue;
//     swap p↔r, scale row r so m[r][c] == 1,
//     eliminate column c from every other row, r++, c++.
//  3. Cleanup: |v| < eps → 0, round to Precision decimal places.
//
// Complexity:
//
//	Time   = O(min(R, C-1) · R · C)
//	Memory = O(R · C) (one clone of the input)
//
// Errors:
//   - matrix.ErrNilMatrix         : nil input.
//   - matrix.ErrDimensionMismatch : variable names disagree with the matrix width.
package gaussjordan
