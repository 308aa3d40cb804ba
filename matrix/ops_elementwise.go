// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise transforms and predicates on Dense: axis scaling, positive
//     log, non-negativity projections, binarization, approximate equality.
//
// Design:
//   - Pure family returns a fresh *Dense: ScaleRows, ScaleColumns, GetNonNegative.
//   - In-place family mutates the receiver and returns nothing: Plog,
//     ToNonNegative, ToOnes. Any other reference to the same *Dense observes
//     the mutation.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 or i→j); O(r*c) time.

package matrix

import (
	"math"
)

// ewScaleRows computes out[i,j] = m[i,j] * scale[i].
func (m *Dense) ewScaleRows(scale []float64) *Dense {
	out := m.derive(m.r, m.c)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		sf := scale[i] // scale factor for row i
		for j := 0; j < m.c; j++ {
			out.data[base+j] = m.data[base+j] * sf
		}
	}

	return out
}

// ewScaleCols computes out[i,j] = m[i,j] * scale[j].
func (m *Dense) ewScaleCols(scale []float64) *Dense {
	out := m.derive(m.r, m.c)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			out.data[base+j] = m.data[base+j] * scale[j]
		}
	}

	return out
}

// ScaleRows multiplies row i by a[i].
// Accepted shapes: (r, 1) or (r,); a flat array is read as a column.
//
// Errors:
//   - ErrNotArray (TypeKind) when a is nil or malformed.
//   - ErrDimensionMismatch (ValueKind) naming both shapes otherwise.
func (m *Dense) ScaleRows(a ArrayLike) (*Dense, error) {
	if err := assertArray(a); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	// A flat (r,) argument holds the same row-major values as an (r, 1) column.
	shape := a.Shape()
	ok := (len(shape) == 1 && shape[0] == m.r) ||
		(len(shape) == 2 && shape[0] == m.r && shape[1] == 1)
	if !ok {
		return nil, matrixErrorf(opScaleRows, shapeMismatch([]int{m.r, m.c}, shape))
	}

	return m.ewScaleRows(a.Values()), nil
}

// ScaleColumns multiplies column j by a[j].
// Accepted shapes: (1, c) or (c,). The flat form is used as is and broadcast
// across rows; it is not reshaped.
//
// Errors: as ScaleRows.
func (m *Dense) ScaleColumns(a ArrayLike) (*Dense, error) {
	if err := assertArray(a); err != nil {
		return nil, matrixErrorf(opScaleColumns, err)
	}
	shape := a.Shape()
	ok := (len(shape) == 1 && shape[0] == m.c) ||
		(len(shape) == 2 && shape[0] == 1 && shape[1] == m.c)
	if !ok {
		return nil, matrixErrorf(opScaleColumns, shapeMismatch([]int{m.r, m.c}, shape))
	}

	return m.ewScaleCols(a.Values()), nil
}

// Plog applies the positive log in place: entries below 1 are floored to 1,
// then the natural log is taken, so every entry < 1 ends up exactly 0.
func (m *Dense) Plog() {
	for idx, v := range m.data {
		if v < 1.0 {
			v = 1.0
		}
		m.data[idx] = math.Log(v)
	}
}

// AssertPositive returns ErrNegativeEntry unless every entry is >= 0.
// NaN entries fail the check. Pure; the receiver is not modified.
func (m *Dense) AssertPositive() error {
	for _, v := range m.data {
		if !(v >= 0) {
			return matrixErrorf(opAssertPos, ErrNegativeEntry)
		}
	}

	return nil
}

// GetNonNegative returns a copy with negative entries replaced by 0.
func (m *Dense) GetNonNegative() *Dense {
	out := m.derive(m.r, m.c)
	for idx, v := range m.data {
		if v > 0 {
			out.data[idx] = v
		}
	}

	return out
}

// ToNonNegative replaces negative entries by 0 in place.
func (m *Dense) ToNonNegative() {
	for idx, v := range m.data {
		if !(v > 0) {
			m.data[idx] = 0
		}
	}
}

// ToOnes binarizes in place: strictly positive → 1, everything else → 0.
func (m *Dense) ToOnes() {
	for idx, v := range m.data {
		if v > 0 {
			m.data[idx] = 1
		} else {
			m.data[idx] = 0
		}
	}
}

// countPositive returns the number of strictly positive entries.
func (m *Dense) countPositive() int {
	n := 0
	for _, v := range m.data {
		if v > 0 {
			n++
		}
	}

	return n
}

// IsMostlyPositive reports whether strictly positive entries are a strict
// majority of all entries. An empty matrix is never mostly positive.
func (m *Dense) IsMostlyPositive() bool {
	return 2*m.countPositive() > len(m.data)
}

// AllClose checks element-wise |m-other| ≤ atol + rtol*|other| with the
// receiver's policy tolerances (defaults rtol=1e-5, atol=1e-8).
// Returns (false, nil) for different shapes.
// NaN is never close to anything; +Inf is close to +Inf, -Inf to -Inf.
//
// Errors:
//   - ErrNilMatrix / ErrTypeMismatch (TypeKind) when other is not a *Dense.
func (m *Dense) AllClose(other Matrix) (bool, error) {
	o, err := assertSameType(other)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if m.r != o.r || m.c != o.c {
		return false, nil
	}

	return ewAllClose(m.data, o.data, m.opts.pol.RelTolerance, m.opts.pol.AbsTolerance), nil
}

// ewAllClose is the flat kernel behind AllClose. Lengths must match.
func ewAllClose(a, b []float64, rtol, atol float64) bool {
	for idx := range a {
		av, bv := a[idx], b[idx]
		if math.IsNaN(av) || math.IsNaN(bv) {
			return false
		}
		if math.IsInf(av, 0) || math.IsInf(bv, 0) {
			if av != bv {
				return false
			}
			continue
		}
		// Check |a-b| ≤ atol + rtol*|b|.
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false // early-exit on first violation
		}
	}

	return true
}
