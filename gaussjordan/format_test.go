package gaussjordan_test

import (
	"testing"

	"github.com/katalvlaran/linsys/gaussjordan"
	"github.com/stretchr/testify/require"
)

func TestFormatMatrix(t *testing.T) {
	got := gaussjordan.FormatMatrix([][]float64{{1, 0, 2}, {0, 1, -1}})
	require.Equal(t, ""+
		"   1.000    0.000 |    2.000\n"+
		"   0.000    1.000 |   -1.000\n", got)

	// A single column has no separator.
	require.Equal(t, "  5.000\n", gaussjordan.FormatMatrix([][]float64{{5}}))
	require.Equal(t, "", gaussjordan.FormatMatrix(nil))
}

func TestFormatReport(t *testing.T) {
	solve := func(rows [][]float64, names ...string) *gaussjordan.Result {
		res, err := gaussjordan.Solve(mustAugmented(t, rows), names)
		require.NoError(t, err)
		return res
	}

	cases := []struct {
		name string
		res  *gaussjordan.Result
		want string
	}{
		{
			name: "unique",
			res:  solve([][]float64{{2, 1, 5}, {1, -1, 1}}, "x", "y"),
			want: "The system has a UNIQUE SOLUTION:\nx = 2.000\ny = 1.000\n",
		},
		{
			name: "infinite",
			res:  solve([][]float64{{1, 1, 2}, {2, 2, 4}}, "x", "y"),
			want: "The system has INFINITELY MANY SOLUTIONS.\nFree variables: y\n\nx = 2.000 -1.000y\n",
		},
		{
			name: "inconsistent",
			res:  solve([][]float64{{1, 1, 1}, {1, 1, 2}}, "x", "y"),
			want: "The system is INCONSISTENT (no solution).\n(found a row of the form [ 0 ... 0 | k ] with k = 1.000 ≠ 0)\n",
		},
		{
			name: "identities",
			res:  solve([][]float64{{0}}),
			want: "The system is consistent (e.g. 0 = 0) and has no variables.\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, gaussjordan.FormatReport(tc.res))
		})
	}
}
