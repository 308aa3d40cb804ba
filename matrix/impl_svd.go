// SPDX-License-Identifier: MIT
// Package matrix: rank-aware truncated SVD and the Moore–Penrose pseudo-inverse.
//
// Purpose:
//   - Reduce a matrix to its top-k singular subspace without ever returning
//     more components than the matrix actually carries (numerical rank).
//   - Fix the sign ambiguity of the decomposition so that repeated runs on
//     equal input produce comparable factors.
//
// Numeric policy:
//   - Rank threshold: Options.Policy().RankTolerance (default 1e-12).
//   - Pinv cutoff:    Options.Policy().PinvRCond * max(s) (default 1e-15).
//
// Both routines rely on gonum's LAPACK-backed mat.SVD (thin factorization).

package matrix

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Warning messages (stable strings for log pipelines).
const (
	msgSVDExceedsCols = "svd: reduced dimension exceeds column count"
	msgSVDExceedsRank = "svd: reduced dimension exceeds rank"
)

// SVD computes the truncated singular value decomposition m ≈ U·diag(S)·Vᵀ.
// MAIN DESCRIPTION:
//   - Returns U (r×k'), S (k' values, descending, non-negative) and V (c×k'),
//     where k' = min(rank, reducedDimension, Cols()).
//
// Implementation:
//   - Stage 1: reject reducedDimension <= 0 (ErrZeroReduction).
//   - Stage 2: thin SVD via gonum; V is returned, not Vᵀ.
//   - Stage 3: rank = #{s > RankTolerance}; truncate to k'.
//   - Stage 4: warn when the request is truncated. The column-count warning
//     takes priority; at most one warning is emitted per call.
//   - Stage 5: sign normalization: unless U is mostly positive (strictly
//     positive entries are a strict majority), negate both U and V. S is never negated.
//
// Behavior highlights:
//   - Graceful degradation: over-large requests are truncated and logged, not rejected.
//   - Deterministic sign convention independent of the LAPACK routine's choice.
//   - A rank-0 matrix yields r×0 and c×0 factors and an empty S.
//
// Errors:
//   - ErrZeroReduction (ValueKind) for reducedDimension <= 0.
//   - ErrFactorization (ValueKind) if gonum fails to converge.
//
// Complexity:
//   - Time O(min(r,c)·r·c), Space O(r·c).
func (m *Dense) SVD(reducedDimension int) (*Dense, []float64, *Dense, error) {
	if reducedDimension <= 0 {
		return nil, nil, nil, matrixErrorf(opSVD, fmt.Errorf("%w: requested %d", ErrZeroReduction, reducedDimension))
	}
	if m.c == 0 {
		return nil, nil, nil, matrixErrorf(opSVD, ErrInvalidDimensions)
	}

	var svd mat.SVD
	if ok := svd.Factorize(m.Raw(), mat.SVDThin); !ok {
		return nil, nil, nil, matrixErrorf(opSVD, ErrFactorization)
	}
	s := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	rank := numericalRank(s, m.opts.pol.RankTolerance)
	noCols := min(rank, reducedDimension, m.c)

	if reducedDimension > m.c {
		m.opts.log().Warn(msgSVDExceedsCols,
			slog.Int("cols", m.c),
			slog.Int("rank", rank),
			slog.Int("requested", reducedDimension),
			slog.Int("truncated_to", noCols),
		)
	} else if reducedDimension > rank {
		m.opts.log().Warn(msgSVDExceedsRank,
			slog.Int("rank", rank),
			slog.Int("requested", reducedDimension),
			slog.Int("truncated_to", noCols),
		)
	}

	uk := m.leadingColumns(&u, noCols)
	vk := m.leadingColumns(&v, noCols)
	sk := append([]float64(nil), s[:noCols]...)

	if !uk.IsMostlyPositive() {
		negateInPlace(uk.data)
		negateInPlace(vk.data)
	}

	return uk, sk, vk, nil
}

// numericalRank counts singular values strictly greater than tol.
func numericalRank(s []float64, tol float64) int {
	rank := 0
	for _, sv := range s {
		if sv > tol {
			rank++
		}
	}

	return rank
}

// leadingColumns copies the first k columns of g into a Dense inheriting m's options.
func (m *Dense) leadingColumns(g *mat.Dense, k int) *Dense {
	rows, _ := g.Dims()
	out := newDenseZeroOK(rows, k, m.opts)
	for i := 0; i < rows; i++ {
		for j := 0; j < k; j++ {
			out.data[i*k+j] = g.At(i, j)
		}
	}

	return out
}

// negateInPlace flips the sign of every element.
func negateInPlace(data []float64) {
	for idx := range data {
		data[idx] = -data[idx]
	}
}

// Pinv returns the Moore–Penrose pseudo-inverse (c×r).
//
// Implementation:
//   - Thin SVD m = U·diag(s)·Vᵀ; pinv = V·diag(1/s)·Uᵀ where singular values
//     at or below PinvRCond·max(s) contribute 0.
//
// Errors:
//   - ErrFactorization (ValueKind) if gonum fails to converge.
func (m *Dense) Pinv() (*Dense, error) {
	if len(m.data) == 0 {
		return nil, matrixErrorf(opPinv, ErrInvalidDimensions)
	}

	var svd mat.SVD
	if ok := svd.Factorize(m.Raw(), mat.SVDThin); !ok {
		return nil, matrixErrorf(opPinv, ErrFactorization)
	}
	s := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	cutoff := m.opts.pol.PinvRCond * floats.Max(s)
	inv := make([]float64, len(s))
	for k, sv := range s {
		if sv > cutoff {
			inv[k] = 1 / sv
		}
	}

	// Scale the columns of V by 1/s, then multiply by Uᵀ.
	vr, vc := v.Dims()
	for i := 0; i < vr; i++ {
		for k := 0; k < vc; k++ {
			v.Set(i, k, v.At(i, k)*inv[k])
		}
	}
	var p mat.Dense
	p.Mul(&v, u.T())

	return m.fromGonumResult(&p), nil
}
