// SPDX-License-Identifier: MIT
// Package matrix: structural and algebraic kernels on Dense.
//
// Purpose:
//   - Elementwise multiply (Hadamard), stacking, sums, products, transpose.
//   - Define operation tags and the shared error wrapper.
//
// Notes:
//   - Every binary kernel validates its operand first (assertSameType, then
//     shape) and only then allocates; receivers are never mutated here.
//   - Flat-slice work is delegated to gonum/floats; the matrix product to
//     gonum/mat (BLAS) through views sharing the result buffer.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNewDense     = "NewDense"
	opNewSparse    = "NewSparse"
	opNewArray     = "NewArray"
	opMultiply     = "Multiply"
	opVStack       = "VStack"
	opHStack       = "HStack"
	opAdd          = "Add"
	opSub          = "Sub"
	opMul          = "Mul"
	opSum          = "Sum"
	opSVD          = "SVD"
	opPinv         = "Pinv"
	opScaleRows    = "ScaleRows"
	opScaleColumns = "ScaleColumns"
	opAssertPos    = "AssertPositive"
	opAllClose     = "AllClose"
	opNormAxis     = "NormAxis"
	opSortedPerm   = "SortedPermutation"
	opNormalize    = "NormalizeRows"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// binarySameShape runs the shared operand checks: variant, then shape.
func (m *Dense) binarySameShape(other Matrix, tag string) (*Dense, error) {
	o, err := assertSameType(other)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err = ValidateSameShape(m, o); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return o, nil
}

// Multiply computes the elementwise (Hadamard) product m ⊙ other.
//
// Errors:
//   - ErrNilMatrix / ErrTypeMismatch (TypeKind) when other is not a *Dense.
//   - ErrDimensionMismatch (ValueKind) naming both shapes when they differ.
//
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Multiply(other Matrix) (*Dense, error) {
	o, err := m.binarySameShape(other, opMultiply)
	if err != nil {
		return nil, err
	}
	out := m.derive(m.r, m.c)
	floats.MulTo(out.data, m.data, o.data)

	return out, nil
}

// VStack returns m with other's rows appended below.
// Column counts are checked by the concatenation itself.
func (m *Dense) VStack(other Matrix) (*Dense, error) {
	o, err := assertSameType(other)
	if err != nil {
		return nil, matrixErrorf(opVStack, err)
	}
	if o.c != m.c {
		return nil, matrixErrorf(opVStack, fmt.Errorf("%w: all the input array dimensions except for the concatenation axis must match: %s %s",
			ErrDimensionMismatch, shapeString([]int{m.r, m.c}), shapeString([]int{o.r, o.c})))
	}
	out := m.derive(m.r+o.r, m.c)
	copy(out.data, m.data)
	copy(out.data[len(m.data):], o.data)

	return out, nil
}

// HStack returns m with other's columns appended on the right.
func (m *Dense) HStack(other Matrix) (*Dense, error) {
	o, err := assertSameType(other)
	if err != nil {
		return nil, matrixErrorf(opHStack, err)
	}
	if o.r != m.r {
		return nil, matrixErrorf(opHStack, fmt.Errorf("%w: all the input array dimensions except for the concatenation axis must match: %s %s",
			ErrDimensionMismatch, shapeString([]int{m.r, m.c}), shapeString([]int{o.r, o.c})))
	}
	cols := m.c + o.c
	out := m.derive(m.r, cols)
	for i := 0; i < m.r; i++ {
		copy(out.data[i*cols:], m.data[i*m.c:(i+1)*m.c])
		copy(out.data[i*cols+m.c:], o.data[i*o.c:(i+1)*o.c])
	}

	return out, nil
}

// Add computes the element-wise sum m + other.
func (m *Dense) Add(other Matrix) (*Dense, error) {
	o, err := m.binarySameShape(other, opAdd)
	if err != nil {
		return nil, err
	}
	out := m.derive(m.r, m.c)
	floats.AddTo(out.data, m.data, o.data)

	return out, nil
}

// Sub computes the element-wise difference m - other.
func (m *Dense) Sub(other Matrix) (*Dense, error) {
	o, err := m.binarySameShape(other, opSub)
	if err != nil {
		return nil, err
	}
	out := m.derive(m.r, m.c)
	floats.SubTo(out.data, m.data, o.data)

	return out, nil
}

// Mul performs the matrix product m × other.
//
// Errors:
//   - TypeKind on variant mismatch.
//   - ErrDimensionMismatch when m.Cols() != other.Rows().
//
// Complexity: Time O(r*n*c), Space O(r*c).
func (m *Dense) Mul(other Matrix) (*Dense, error) {
	o, err := assertSameType(other)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if m.c != o.r {
		return nil, matrixErrorf(opMul, fmt.Errorf("%w: shapes %s and %s not aligned",
			ErrDimensionMismatch, shapeString([]int{m.r, m.c}), shapeString([]int{o.r, o.c})))
	}
	out := m.derive(m.r, o.c)
	if m.c == 0 || o.c == 0 {
		return out, nil // empty inner or outer dimension (rank-0 SVD factors)
	}
	out.Raw().Mul(m.Raw(), o.Raw()) // the view writes straight into out.data

	return out, nil
}

// Scale returns alpha*m.
func (m *Dense) Scale(alpha float64) *Dense {
	out := m.derive(m.r, m.c)
	floats.ScaleTo(out.data, alpha, m.data)

	return out
}

// Neg returns -m.
func (m *Dense) Neg() *Dense { return m.Scale(-1) }

// Transpose returns a new c×r matrix.
func (m *Dense) Transpose() *Dense {
	out := m.derive(m.c, m.r)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[base+j]
		}
	}

	return out
}

// Sum reduces along axis: ColumnWise → 1×c column sums, RowWise → r×1 row sums.
// Errors: ErrBadAxis for any other axis.
func (m *Dense) Sum(axis Axis) (*Dense, error) {
	switch axis {
	case ColumnWise:
		out := m.derive(1, m.c)
		for i := 0; i < m.r; i++ {
			floats.Add(out.data, m.data[i*m.c:(i+1)*m.c])
		}
		return out, nil
	case RowWise:
		out := m.derive(m.r, 1)
		for i := 0; i < m.r; i++ {
			out.data[i] = floats.Sum(m.data[i*m.c : (i+1)*m.c])
		}
		return out, nil
	default:
		return nil, matrixErrorf(opSum, fmt.Errorf("%w: %d", ErrBadAxis, int(axis)))
	}
}

// SumAll returns the sum of all entries.
func (m *Dense) SumAll() float64 { return floats.Sum(m.data) }
