// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the kernel tests.
//   - Capture slog output so warnings can be asserted on.

package matrix_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/katalvlaran/composes/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Binary Dense operations must reject it with ErrTypeMismatch.
type hide struct{ matrix.Matrix }

// MustRows builds a *Dense from row slices or fails the test.
func MustRows(t *testing.T, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseRows(rows, opts...)
	require.NoError(t, err)

	return m
}

// requireValues compares m against want (row-major) within 1e-9.
func requireValues(t *testing.T, want [][]float64, m *matrix.Dense) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	require.Equal(t, len(want[0]), m.Cols(), "cols")
	for i := range want {
		for j := range want[i] {
			got, err := m.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, want[i][j], got, 1e-9, "at (%d,%d)", i, j)
		}
	}
}

// captureLogger returns a text logger writing into the returned buffer.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

// threeByTwo is a full-rank, all-positive 3×2 fixture.
func threeByTwo(t *testing.T, opts ...matrix.Option) *matrix.Dense {
	t.Helper()

	return MustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, opts...)
}
