// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Norms and norm-derived helpers: Frobenius norm, per-axis Euclidean
//     norms, norm-ordered permutations and row normalization.
//
// Design:
//   - NormAxis goes through Multiply so there is a single elementwise-multiply
//     code path; everything else composes NormAxis, Sum and ScaleRows.

package matrix

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Norm returns the Frobenius norm √(Σ m[i,j]²).
func (m *Dense) Norm() float64 {
	if len(m.data) == 0 {
		return 0
	}

	return mat.Norm(m.Raw(), 2)
}

// NormAxis returns per-column (ColumnWise, 1×c) or per-row (RowWise, r×1)
// Euclidean norms, computed as sqrt(sum(m ⊙ m, axis)).
// Errors: ErrBadAxis for any other axis.
func (m *Dense) NormAxis(axis Axis) (*Dense, error) {
	sq, err := m.Multiply(m)
	if err != nil {
		return nil, matrixErrorf(opNormAxis, err)
	}
	sums, err := sq.Sum(axis)
	if err != nil {
		return nil, matrixErrorf(opNormAxis, err)
	}
	for idx, v := range sums.data {
		sums.data[idx] = math.Sqrt(v)
	}

	return sums, nil
}

// SortedPermutation returns row (RowWise) or column (ColumnWise) indices
// ordered by descending Euclidean norm. Ties keep index order.
func (m *Dense) SortedPermutation(axis Axis) ([]int, error) {
	norms, err := m.NormAxis(axis)
	if err != nil {
		return nil, matrixErrorf(opSortedPerm, err)
	}
	perm := make([]int, len(norms.data))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return norms.data[perm[a]] > norms.data[perm[b]]
	})

	return perm, nil
}

// NormalizeRows scales each row to unit L1 or L2 norm and returns the
// original per-row norms. Degenerate rows (norm==0) stay zero.
//
// Implementation:
//   - Stage 1: per-row norms (L2 via NormAxis, L1 via Σ|x|).
//   - Stage 2: scale factors 1/norm (or 1 for zero rows), applied with ScaleRows.
//
// Errors:
//   - ErrUnknownNorm for a kind other than L1 or L2.
func (m *Dense) NormalizeRows(kind NormKind) (*Dense, []float64, error) {
	norms := make([]float64, m.r)
	switch kind {
	case L1:
		for i := 0; i < m.r; i++ {
			var acc float64
			for _, v := range m.data[i*m.c : (i+1)*m.c] {
				acc += math.Abs(v)
			}
			norms[i] = acc
		}
	case L2:
		n, err := m.NormAxis(RowWise)
		if err != nil {
			return nil, nil, matrixErrorf(opNormalize, err)
		}
		copy(norms, n.data)
	default:
		return nil, nil, matrixErrorf(opNormalize, fmt.Errorf("%w: %d", ErrUnknownNorm, int(kind)))
	}

	scale := make([]float64, m.r)
	for i, n := range norms {
		if n > 0 {
			scale[i] = 1.0 / n
		} else {
			scale[i] = 1.0
		}
	}
	out, err := m.ScaleRows(Column(scale...))
	if err != nil {
		return nil, nil, matrixErrorf(opNormalize, err)
	}

	return out, norms, nil
}
