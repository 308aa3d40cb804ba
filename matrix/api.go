// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical method.
//
// Determinism & Policy:
//   - Facades never change the numeric policy of the underlying kernels.
//   - Variant conversion happens only where documented (TruncatedSVD).

package matrix

import "fmt"

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	I, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape and options as m.
func ZerosLike(m *Dense) *Dense { return m.derive(m.r, m.c) }

// Hadamard is an alias for a.Multiply(b) over any Dense-backed operands.
func Hadamard(a, b Matrix) (*Dense, error) {
	d, err := assertSameType(a)
	if err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	return d.Multiply(b)
}

// Stack vertically stacks ms in order (ms[0] on top).
// Errors: ErrInvalidDimensions for no input; otherwise as VStack.
func Stack(ms ...Matrix) (*Dense, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opVStack, ErrInvalidDimensions)
	}
	acc, err := assertSameType(ms[0])
	if err != nil {
		return nil, matrixErrorf(opVStack, err)
	}
	for k := 1; k < len(ms); k++ {
		if acc, err = acc.VStack(ms[k]); err != nil {
			return nil, fmt.Errorf("operand %d: %w", k, err)
		}
	}

	return acc, nil
}

// TruncatedSVD reduces any Matrix variant: it normalizes m to Dense
// (a sparse input is materialized with a warning) and calls SVD.
func TruncatedSVD(m Matrix, reducedDimension int, opts ...Option) (u *Dense, s []float64, v *Dense, err error) {
	d, err := NewDenseFrom(m, opts...)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opSVD, err)
	}

	return d.SVD(reducedDimension)
}

// Reconstruct returns U·diag(s)·Vᵀ, the inverse step of SVD.
// Errors: ErrNilMatrix for a nil factor; ErrDimensionMismatch when U, s and V
// disagree on the number of components.
func Reconstruct(u *Dense, s []float64, v *Dense) (*Dense, error) {
	if err := ValidateNotNil(u); err != nil {
		return nil, matrixErrorf(opMul, fmt.Errorf("U: %w", err))
	}
	if err := ValidateNotNil(v); err != nil {
		return nil, matrixErrorf(opMul, fmt.Errorf("V: %w", err))
	}
	if u.c != len(s) || v.c != len(s) {
		return nil, matrixErrorf(opMul, fmt.Errorf("%w: U has %d, S has %d, V has %d components",
			ErrDimensionMismatch, u.c, len(s), v.c))
	}
	us := u.ewScaleCols(s)

	return us.Mul(v.Transpose())
}
