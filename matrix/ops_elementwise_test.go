// Package matrix_test: elementwise transforms, predicates and axis scaling.
package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/composes/matrix"
	"github.com/stretchr/testify/require"
)

func TestPlog(t *testing.T) {
	m := MustRows(t, [][]float64{{0.5, 1, math.E}, {-3, 0, 1}})
	alias := m // same *Dense
	m.Plog()
	requireValues(t, [][]float64{{0, 0, 1}, {0, 0, 0}}, alias) // in place, visible via alias
}

func TestToOnes(t *testing.T) {
	m := MustRows(t, [][]float64{{-1, 0, 2}})
	m.ToOnes()
	requireValues(t, [][]float64{{0, 0, 1}}, m)
}

func TestNonNegative(t *testing.T) {
	m := MustRows(t, [][]float64{{-1, 0, 2}})

	pure := m.GetNonNegative()
	requireValues(t, [][]float64{{0, 0, 2}}, pure)
	requireValues(t, [][]float64{{-1, 0, 2}}, m) // receiver untouched

	m.ToNonNegative()
	requireValues(t, [][]float64{{0, 0, 2}}, m)
}

func TestAssertPositive(t *testing.T) {
	require.NoError(t, MustRows(t, [][]float64{{0, 1}, {2, 3}}).AssertPositive())

	err := MustRows(t, [][]float64{{1, -0.1}}).AssertPositive()
	require.ErrorIs(t, err, matrix.ErrNegativeEntry)
	require.ErrorIs(t, err, matrix.ErrValue)
	require.Contains(t, err.Error(), "expected non-negative matrix")

	require.Error(t, MustRows(t, [][]float64{{math.NaN()}}).AssertPositive())
}

func TestIsMostlyPositive(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want bool
	}{
		{"majority", [][]float64{{1, 1, -1}}, true},
		{"exact half", [][]float64{{1, -1}}, false},
		{"zeros are not positive", [][]float64{{1, 0, 0}}, false},
		{"all negative", [][]float64{{-1}, {-2}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, MustRows(t, tc.rows).IsMostlyPositive())
		})
	}
}

func TestScaleRows(t *testing.T) {
	ones := MustRows(t, [][]float64{{1, 1}, {1, 1}})
	want := [][]float64{{2, 2}, {3, 3}}

	flat, err := ones.ScaleRows(matrix.Flat(2, 3)) // (r,) read as a column
	require.NoError(t, err)
	requireValues(t, want, flat)

	col, err := ones.ScaleRows(matrix.Column(2, 3))
	require.NoError(t, err)
	requireValues(t, want, col)

	// a Dense column vector works through AsArray
	dcol := MustRows(t, [][]float64{{2}, {3}})
	viaDense, err := ones.ScaleRows(dcol.AsArray())
	require.NoError(t, err)
	requireValues(t, want, viaDense)

	requireValues(t, [][]float64{{1, 1}, {1, 1}}, ones) // pure
}

func TestScaleColumns(t *testing.T) {
	ones := MustRows(t, [][]float64{{1, 1}, {1, 1}})
	want := [][]float64{{2, 3}, {2, 3}}

	flat, err := ones.ScaleColumns(matrix.Flat(2, 3))
	require.NoError(t, err)
	requireValues(t, want, flat)

	row, err := ones.ScaleColumns(matrix.RowVector(2, 3))
	require.NoError(t, err)
	requireValues(t, want, row)
}

func TestScaleShapeErrors(t *testing.T) {
	m := threeByTwo(t)

	_, err := m.ScaleRows(matrix.RowVector(1, 2, 3)) // (1, 3) is not a column
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "inconsistent shapes")
	require.Contains(t, err.Error(), "(3, 2)")
	require.Contains(t, err.Error(), "(1, 3)")

	_, err = m.ScaleRows(matrix.Flat(1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "(2,)")

	_, err = m.ScaleColumns(matrix.Column(1, 2)) // (2, 1) is not a row
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestScaleRejectsNonArray(t *testing.T) {
	m := threeByTwo(t)

	_, err := m.ScaleRows(nil)
	require.ErrorIs(t, err, matrix.ErrNotArray)
	require.ErrorIs(t, err, matrix.ErrType)

	_, err = m.ScaleColumns(matrix.Array{}) // zero value carries no shape
	require.ErrorIs(t, err, matrix.ErrNotArray)

	_, err = matrix.NewArray([]float64{1, 2, 3}, 2, 2)
	require.ErrorIs(t, err, matrix.ErrNotArray)

	_, err = matrix.NewArray([]float64{1}, 1, 1, 1)
	require.ErrorIs(t, err, matrix.ErrNotArray)
}

func TestAllClose(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})

	ok, err := a.AllClose(MustRows(t, [][]float64{{1 + 1e-9, 2}, {3, 4 - 1e-9}}))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = a.AllClose(MustRows(t, [][]float64{{1.1, 2}, {3, 4}}))
	require.NoError(t, err)
	require.False(t, ok)

	// different shapes are simply not close
	ok, err = a.AllClose(MustRows(t, [][]float64{{1, 2}}))
	require.NoError(t, err)
	require.False(t, ok)

	// receiver tolerances apply
	loose := MustRows(t, [][]float64{{1, 2}, {3, 4}}, matrix.WithTolerances(0.2, 0))
	ok, err = loose.AllClose(MustRows(t, [][]float64{{1.1, 2}, {3, 4}}))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAllCloseNonFinite(t *testing.T) {
	inf := MustRows(t, [][]float64{{math.Inf(1), math.Inf(-1)}})
	ok, err := inf.AllClose(MustRows(t, [][]float64{{math.Inf(1), math.Inf(-1)}}))
	require.NoError(t, err)
	require.True(t, ok)

	nan := MustRows(t, [][]float64{{math.NaN(), 1}})
	ok, err = nan.AllClose(nan)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestAllCloseNearZero: around zero the absolute term decides, so the
// comparison tolerates 1e-8 scale differences and rejects larger ones.
func TestAllCloseNearZero(t *testing.T) {
	zero := MustRows(t, [][]float64{{0}})

	ok, err := zero.AllClose(MustRows(t, [][]float64{{5e-9}}))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = zero.AllClose(MustRows(t, [][]float64{{5e-8}}))
	require.NoError(t, err)
	require.False(t, ok)
}

// TestMultiplyMatchesLoop compares the Hadamard kernel with an independent
// element loop over seeded random inputs.
func TestMultiplyMatchesLoop(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 10; trial++ {
		r, c := 1+rng.Intn(6), 1+rng.Intn(6)
		a, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		b, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		require.NoError(t, a.Apply(func(_, _ int, _ float64) float64 { return rng.Float64()*2 - 1 }))
		require.NoError(t, b.Apply(func(_, _ int, _ float64) float64 { return rng.Float64()*2 - 1 }))

		got, err := a.Multiply(b)
		require.NoError(t, err)
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				x, _ := a.At(i, j)
				y, _ := b.At(i, j)
				v, _ := got.At(i, j)
				require.Equal(t, x*y, v, "trial %d at (%d,%d)", trial, i, j)
			}
		}
	}
}
