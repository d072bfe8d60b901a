// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // attempt to create with zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
	r, c := m.Shape()
	require.Equal(t, rows, r)
	require.Equal(t, cols, c)
	require.Equal(t, cols-1, m.Coefficients())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)                          // negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                           // column index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, 1.23)                       // row index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(0, -1, 4.56)                      // negative column index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetRejectsNaNInf verifies the default finite-only numeric policy.
func TestSetRejectsNaNInf(t *testing.T) {
	m, err := matrix.NewDense(1, 2)
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 1, math.Inf(-1)), matrix.ErrNaNInf)
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)

	rhs, err := m.RHS(1)
	require.NoError(t, err)
	require.Equal(t, 7.89, rhs)
}

// TestRowReturnsCopy ensures Row() hands out an independent slice.
func TestRowReturnsCopy(t *testing.T) {
	m := mustAugmented(t, [][]float64{{1, 2, 3}})

	row, err := m.Row(0)
	require.NoError(t, err)
	row[0] = 99

	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v, "mutating the copy must not touch the matrix")
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_ = m.Set(0, 0, 1.0)
	_ = m.Set(1, 1, 2.0)

	clone := m.Clone()
	_ = clone.Set(0, 0, 3.0) // modify the clone, but not the original

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal)

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := mustAugmented(t, [][]float64{{1, 2}, {3, 4}})

	expected := "[1, 2]\n[3, 4]\n"
	require.Equal(t, expected, m.String())
}

// TestRowsCopy verifies the [][]float64 export.
func TestRowsCopy(t *testing.T) {
	in := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m := mustAugmented(t, in)

	out := m.RowsCopy()
	require.Equal(t, in, out)
	out[0][0] = -1
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
}
