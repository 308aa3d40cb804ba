// SPDX-License-Identifier: MIT
// Package matrix_test: truncated SVD and pseudo-inverse.
//
// Purpose:
//   - Component count = min(rank, k, cols), with exactly one warning on truncation.
//   - Descending non-negative S, orthonormal U, faithful reconstruction.
//   - Canonical sign and determinism.

package matrix_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/composes/matrix"
	"github.com/katalvlaran/composes/policy"
	"github.com/stretchr/testify/require"
)

func TestSVDFullRank(t *testing.T) {
	logger, buf := captureLogger()
	a := threeByTwo(t, matrix.WithLogger(logger))

	u, s, v, err := a.SVD(2)
	require.NoError(t, err)
	require.Len(t, s, 2)
	require.Equal(t, 3, u.Rows())
	require.Equal(t, 2, u.Cols())
	require.Equal(t, 2, v.Rows())
	require.Equal(t, 2, v.Cols())
	require.InDelta(t, 9.525518091565107, s[0], 1e-9)
	require.InDelta(t, 0.5143005806586431, s[1], 1e-9)
	require.Empty(t, buf.String(), "no truncation, no warning")

	// UᵀU = I
	utu, err := u.Transpose().Mul(u)
	require.NoError(t, err)
	requireValues(t, [][]float64{{1, 0}, {0, 1}}, utu)

	back, err := matrix.Reconstruct(u, s, v)
	require.NoError(t, err)
	ok, err := back.AllClose(a)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSVDSingleComponentSign(t *testing.T) {
	u, s, v, err := threeByTwo(t).SVD(1)
	require.NoError(t, err)
	require.Len(t, s, 1)
	requireValues(t, [][]float64{{0.22984769640007152}, {0.5247448187602937}, {0.8196419411205159}}, u)
	requireValues(t, [][]float64{{0.6196294838293404}, {0.7848944532670524}}, v)
	require.True(t, u.IsMostlyPositive())
}

func TestSVDExceedsColumns(t *testing.T) {
	logger, buf := captureLogger()
	a := threeByTwo(t, matrix.WithLogger(logger))

	u, s, v, err := a.SVD(5)
	require.NoError(t, err)
	require.Len(t, s, 2)
	require.Equal(t, 2, u.Cols())
	require.Equal(t, 2, v.Cols())

	out := buf.String()
	require.Contains(t, out, "exceeds column count")
	require.Contains(t, out, "truncated_to=2")
	require.Equal(t, 1, strings.Count(out, "\n"), "exactly one warning")
}

func TestSVDExceedsRank(t *testing.T) {
	logger, buf := captureLogger()
	rank1 := MustRows(t, [][]float64{{1, 2}, {2, 4}, {3, 6}}, matrix.WithLogger(logger))

	u, s, v, err := rank1.SVD(2)
	require.NoError(t, err)
	require.Len(t, s, 1)
	require.Equal(t, 1, u.Cols())
	require.Equal(t, 1, v.Cols())
	require.Contains(t, buf.String(), "exceeds rank")

	back, err := matrix.Reconstruct(u, s, v)
	require.NoError(t, err)
	ok, err := back.AllClose(rank1)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestSVDWarningPriority: k above both rank and cols reports the column count only.
func TestSVDWarningPriority(t *testing.T) {
	logger, buf := captureLogger()
	rank1 := MustRows(t, [][]float64{{1, 2}, {2, 4}, {3, 6}}, matrix.WithLogger(logger))

	_, s, _, err := rank1.SVD(3)
	require.NoError(t, err)
	require.Len(t, s, 1)
	require.Contains(t, buf.String(), "exceeds column count")
	require.NotContains(t, buf.String(), "exceeds rank")
}

func TestSVDRankToleranceOption(t *testing.T) {
	a := threeByTwo(t, matrix.WithRankTolerance(1), matrix.WithLogger(nil))
	_, s, _, err := a.SVD(2)
	require.NoError(t, err)
	require.Len(t, s, 1) // 0.514 falls below the threshold
}

func TestSVDZeroMatrix(t *testing.T) {
	z := MustRows(t, [][]float64{{0, 0}, {0, 0}}, matrix.WithLogger(nil))

	u, s, v, err := z.SVD(1)
	require.NoError(t, err)
	require.Empty(t, s)
	require.Equal(t, 2, u.Rows())
	require.Equal(t, 0, u.Cols())
	require.Equal(t, 0, v.Cols())

	back, err := matrix.Reconstruct(u, s, v)
	require.NoError(t, err)
	requireValues(t, [][]float64{{0, 0}, {0, 0}}, back)
}

func TestSVDZeroReduction(t *testing.T) {
	for _, k := range []int{0, -1} {
		_, _, _, err := threeByTwo(t).SVD(k)
		require.ErrorIs(t, err, matrix.ErrZeroReduction)
		require.ErrorIs(t, err, matrix.ErrValue)
	}
}

func TestSVDDeterministic(t *testing.T) {
	a := MustRows(t, [][]float64{{4, -1, 2}, {0, 3, -5}, {1, 1, 1}, {-2, 6, 0}})
	u1, s1, v1, err := a.SVD(3)
	require.NoError(t, err)
	u2, s2, v2, err := a.SVD(3)
	require.NoError(t, err)

	require.Equal(t, s1, s2)
	require.Equal(t, u1.RawData(), u2.RawData())
	require.Equal(t, v1.RawData(), v2.RawData())
	for i := 1; i < len(s1); i++ {
		require.GreaterOrEqual(t, s1[i-1], s1[i], "descending")
	}
	for _, sv := range s1 {
		require.GreaterOrEqual(t, sv, 0.0)
	}
}

func TestPinv(t *testing.T) {
	a := threeByTwo(t)
	p, err := a.Pinv()
	require.NoError(t, err)
	require.Equal(t, 2, p.Rows())
	require.Equal(t, 3, p.Cols())

	// full column rank: A⁺A = I
	pa, err := p.Mul(a)
	require.NoError(t, err)
	requireValues(t, [][]float64{{1, 0}, {0, 1}}, pa)

	// A·A⁺·A = A
	apa, err := a.Mul(p)
	require.NoError(t, err)
	apa, err = apa.Mul(a)
	require.NoError(t, err)
	ok, err := apa.AllClose(a)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestPinvRankDeficient(t *testing.T) {
	pol := policy.Default()
	pol.PinvRCond = 1e-10
	rank1 := MustRows(t, [][]float64{{1, 2}, {2, 4}}, matrix.WithPolicy(pol))
	p, err := rank1.Pinv()
	require.NoError(t, err)
	// pinv of x·yᵀ is y·xᵀ / (|x|²|y|²) = A/25
	requireValues(t, [][]float64{{0.04, 0.08}, {0.08, 0.16}}, p)
}
