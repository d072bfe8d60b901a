package gaussjordan_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linsys/gaussjordan"
	"github.com/katalvlaran/linsys/matrix"
	"github.com/stretchr/testify/require"
)

// mustAugmented builds an augmented Dense or fails the test.
func mustAugmented(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewAugmented(rows)
	if err != nil {
		tb.Fatalf("NewAugmented(%v): %v", rows, err)
	}

	return m
}

// randomAugmented returns an r×(c) matrix with entries in [-10, 10).
func randomAugmented(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*20 - 10
		}
	}

	return mustAugmented(tb, rows)
}

func TestReduce_TwoByTwo(t *testing.T) {
	m := mustAugmented(t, [][]float64{{2, 1, 5}, {1, -1, 1}})

	rref, err := gaussjordan.Reduce(m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0, 2}, {0, 1, 1}}, rref.RowsCopy())

	// Input is untouched.
	require.Equal(t, [][]float64{{2, 1, 5}, {1, -1, 1}}, m.RowsCopy())
}

func TestReduce_RankDeficient(t *testing.T) {
	m := mustAugmented(t, [][]float64{{1, 1, 2}, {2, 2, 4}})

	rref, err := gaussjordan.Reduce(m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 1, 2}, {0, 0, 0}}, rref.RowsCopy())
}

func TestReduce_ZeroColumnSkipped(t *testing.T) {
	// x never appears; y and z are determined.
	m := mustAugmented(t, [][]float64{{0, 1, 1, 3}, {0, 1, -1, 1}})

	rref, err := gaussjordan.Reduce(m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 1, 0, 2}, {0, 0, 1, 1}}, rref.RowsCopy())
}

func TestReduce_NoCoefficientColumns(t *testing.T) {
	m := mustAugmented(t, [][]float64{{0}, {-2}})

	rref, err := gaussjordan.Reduce(m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0}, {-2}}, rref.RowsCopy())
}

func TestReduce_NilMatrix(t *testing.T) {
	_, err := gaussjordan.Reduce(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestReduce_Idempotent(t *testing.T) {
	cases := []*matrix.Dense{
		mustAugmented(t, [][]float64{{1, 1, 2}, {2, 2, 4}}),
		mustAugmented(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}}),
		randomAugmented(t, 4, 5, 7),
		randomAugmented(t, 6, 7, 42),
	}
	for _, m := range cases {
		once, err := gaussjordan.Reduce(m)
		require.NoError(t, err)
		twice, err := gaussjordan.Reduce(once)
		require.NoError(t, err)
		require.Equal(t, once.RowsCopy(), twice.RowsCopy())
	}
}

func TestReduce_PivotsAreOnes(t *testing.T) {
	m := randomAugmented(t, 5, 6, 3)

	rref, err := gaussjordan.Reduce(m)
	require.NoError(t, err)

	pivots := gaussjordan.PivotColumns(rref, matrix.DefaultEpsilon)
	require.Len(t, pivots, 5)
	last := -1
	for i, p := range pivots {
		require.Equal(t, i, p.Row)
		require.Greater(t, p.Col, last)
		last = p.Col
		v, _ := rref.At(p.Row, p.Col)
		require.Equal(t, 1.0, v)
	}
}

func TestReduce_Strategies(t *testing.T) {
	rows := [][]float64{{1, 2, 3}, {4, 5, 6}}

	var partial, first []gaussjordan.Step
	a, err := gaussjordan.Reduce(mustAugmented(t, rows),
		gaussjordan.WithOnPivot(func(s gaussjordan.Step) { partial = append(partial, s) }))
	require.NoError(t, err)
	b, err := gaussjordan.Reduce(mustAugmented(t, rows),
		gaussjordan.WithPivotStrategy(gaussjordan.FirstNonZero),
		gaussjordan.WithOnPivot(func(s gaussjordan.Step) { first = append(first, s) }))
	require.NoError(t, err)

	ok, err := matrix.AllClose(a, b, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = matrix.AllClose(a, mustAugmented(t, [][]float64{{1, 0, -1}, {0, 1, 2}}), 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	require.Len(t, partial, 2)
	require.Len(t, first, 2)
	require.Equal(t, 1, partial[0].From) // |4| > |1|
	require.Equal(t, 4.0, partial[0].Pivot)
	require.Equal(t, 0, first[0].From)
	require.Equal(t, 1.0, first[0].Pivot)
}

func TestReduce_OnPivotOrder(t *testing.T) {
	var steps []gaussjordan.Step
	_, err := gaussjordan.Reduce(
		mustAugmented(t, [][]float64{{2, 1, 5}, {1, -1, 1}}),
		gaussjordan.WithOnPivot(func(s gaussjordan.Step) { steps = append(steps, s) }),
	)
	require.NoError(t, err)
	require.Equal(t, []gaussjordan.Step{
		{Row: 0, Col: 0, From: 0, Pivot: 2},
		{Row: 1, Col: 1, From: 1, Pivot: -1.5},
	}, steps)
}

func TestReduce_EpsilonTreatsTinyAsZero(t *testing.T) {
	// With a coarse tolerance the 1e-6 entry is not a usable pivot.
	m := mustAugmented(t, [][]float64{{1e-6, 1}})

	rref, err := gaussjordan.Reduce(m, gaussjordan.WithEpsilon(1e-3))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 1}}, rref.RowsCopy())

	rref, err = gaussjordan.Reduce(m)
	require.NoError(t, err)
	v, _ := rref.At(0, 1)
	require.InDelta(t, 1e6, v, 1e-6)
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { gaussjordan.WithEpsilon(0) })
	require.Panics(t, func() { gaussjordan.WithEpsilon(-1) })
	require.Panics(t, func() { gaussjordan.WithPrecision(-1) })
	require.Panics(t, func() { gaussjordan.WithPivotStrategy(gaussjordan.PivotStrategy(9)) })
}

func TestParsePivotStrategy(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want gaussjordan.PivotStrategy
		ok   bool
	}{
		{"partial", gaussjordan.PartialPivot, true},
		{"", gaussjordan.PartialPivot, true},
		{"first", gaussjordan.FirstNonZero, true},
		{"complete", gaussjordan.PartialPivot, false},
	} {
		got, ok := gaussjordan.ParsePivotStrategy(tc.in)
		require.Equal(t, tc.ok, ok, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}
	require.Equal(t, "first", gaussjordan.FirstNonZero.String())
	require.Equal(t, "partial", gaussjordan.PartialPivot.String())
}
