package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCleanupSnapsAndRounds verifies the post-elimination scrub.
func TestCleanupSnapsAndRounds(t *testing.T) {
	m := mustAugmented(t, [][]float64{
		{1e-12, -1e-15, 2.0000000000000004},
		{0.1 + 0.2, -3.9999999999, 1},
	})

	m.Cleanup()

	assert.Equal(t, 0.0, mustAt(t, m, 0, 0))
	assert.False(t, math.Signbit(mustAt(t, m, 0, 1)), "negative zero must be normalized")
	assert.Equal(t, 2.0, mustAt(t, m, 0, 2))
	assert.Equal(t, 0.3, mustAt(t, m, 1, 0))
	assert.Equal(t, -4.0, mustAt(t, m, 1, 1))
}

// TestCleanupOptions checks that precision and epsilon are honored.
func TestCleanupOptions(t *testing.T) {
	m := mustAugmented(t, [][]float64{{1.23456, 0.004}})

	m.Cleanup(matrix.WithPrecision(2), matrix.WithEpsilon(0.01))

	assert.Equal(t, 1.23, mustAt(t, m, 0, 0))
	assert.Equal(t, 0.0, mustAt(t, m, 0, 1))
}

// TestOptionsPanicOnNonsense ensures programmer errors panic with a stable message.
func TestOptionsPanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { matrix.WithEpsilon(-1) })
	assert.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	assert.Panics(t, func() { matrix.WithPrecision(-1) })

	o := matrix.NewOptions()
	assert.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
	assert.Equal(t, matrix.DefaultPrecision, o.Precision())
}

// TestAllClose covers equal, near, far and mismatched shapes.
func TestAllClose(t *testing.T) {
	a := mustAugmented(t, [][]float64{{1, 2}, {3, 4}})
	b := mustAugmented(t, [][]float64{{1, 2 + 1e-12}, {3, 4}})
	c := mustAugmented(t, [][]float64{{1, 2.1}, {3, 4}})
	d := mustAugmented(t, [][]float64{{1, 2}})

	ok, err := matrix.AllClose(a, b, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, c, 1e-9)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, d, 1e-9)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.AllClose(nil, a, 1e-9)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestIsZeroIsOne checks the tolerance predicates.
func TestIsZeroIsOne(t *testing.T) {
	assert.True(t, matrix.IsZero(1e-10, 1e-9))
	assert.False(t, matrix.IsZero(1e-9, 1e-9))
	assert.True(t, matrix.IsOne(1+1e-12, 1e-9))
	assert.False(t, matrix.IsOne(0.999, 1e-9))
}
