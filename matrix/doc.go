// Package matrix provides the owned dense buffer used to hold augmented
// coefficient matrices during elimination.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 buffer with bounds-checked At/Set/Row that
//     return sentinel errors instead of panicking.
//   - NewAugmented, which ingests [][]float64 and rejects ragged input with
//     ErrDimensionMismatch.
//   - Elementary row operations (SwapRows, ScaleRow, AddScaledRow) and pivot
//     search helpers (ArgMaxAbs, FirstAbove).
//   - Numeric cleanup (Snap, Round, Cleanup) and tolerance comparison (AllClose).
//
// Shape is fixed at construction. Nothing in this package grows a matrix.
//
// See the examples in this package and gaussjordan for usage patterns.
package matrix
