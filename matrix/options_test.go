// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewOptions_Defaults verifies the documented numeric policy.
func TestNewOptions_Defaults(t *testing.T) {
	o := matrix.NewOptions()
	require.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
	require.Equal(t, matrix.DefaultPrecision, o.Precision())
}

// TestNewOptions_Overrides applies options in order; the last one wins.
func TestNewOptions_Overrides(t *testing.T) {
	o := matrix.NewOptions(matrix.WithEpsilon(1e-6), matrix.WithPrecision(3), matrix.WithPrecision(4))
	require.Equal(t, 1e-6, o.Epsilon())
	require.Equal(t, 4, o.Precision())
}

// TestOptions_PanicOnNonsense covers the programmer-error guards.
func TestOptions_PanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { matrix.WithEpsilon(-1e-9) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { matrix.WithEpsilon(math.Inf(1)) })
	require.Panics(t, func() { matrix.WithPrecision(-1) })
}
