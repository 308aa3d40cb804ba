// SPDX-License-Identifier: MIT
// Package matrix_test: option validation and propagation.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/composes/matrix"
	"github.com/katalvlaran/composes/policy"
	"github.com/stretchr/testify/require"
)

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { matrix.WithRankTolerance(-1) })
	require.Panics(t, func() { matrix.WithRankTolerance(math.NaN()) })
	require.Panics(t, func() { matrix.WithTolerances(math.Inf(1), 0) })
	require.Panics(t, func() { matrix.WithTolerances(0, -1e-8) })
	require.Panics(t, func() { matrix.WithPolicy(policy.Policy{RankTolerance: -1}) })

	require.NotPanics(t, func() { matrix.WithRankTolerance(0) })
	require.NotPanics(t, func() { matrix.WithLogger(nil) })
}

func TestDefaultPolicy(t *testing.T) {
	m := MustRows(t, [][]float64{{1}})
	require.Equal(t, policy.Default(), m.Options().Policy())
}

// TestOptionsPropagate: derived matrices keep the receiver's options.
func TestOptionsPropagate(t *testing.T) {
	m := threeByTwo(t, matrix.WithRankTolerance(0.25), matrix.WithTolerances(1e-3, 1e-4))
	want := m.Options().Policy()
	require.Equal(t, 0.25, want.RankTolerance)
	require.Equal(t, 1e-3, want.RelTolerance)
	require.Equal(t, 1e-4, want.AbsTolerance)

	sum, err := m.Add(m)
	require.NoError(t, err)
	u, _, _, err := m.SVD(1)
	require.NoError(t, err)
	p, err := m.Pinv()
	require.NoError(t, err)

	for _, d := range []*matrix.Dense{m.Scale(2), m.Transpose(), m.GetNonNegative(), sum, u, p, m.ToSparseMatrix().ToDenseMatrix(false)} {
		require.Equal(t, want, d.Options().Policy())
	}
}

func TestWithLoggerNilSilences(t *testing.T) {
	m := threeByTwo(t, matrix.WithLogger(nil))
	_, s, _, err := m.SVD(10) // would warn
	require.NoError(t, err)
	require.Len(t, s, 2)
}
