// SPDX-License-Identifier: MIT

// Package matrix: construction dispatch and the dense <-> sparse boundary.
//
// Purpose:
//   - Normalize heterogeneous inputs (variants, gonum matrices, slices,
//     arrays) into the canonical 2-D Dense buffer, one explicit path each.
//   - Make the costly sparse → dense materialization observable: it always
//     logs a warning, since it is usually unintended.
//
// Each side of the boundary knows only the other's existence: Dense hands
// its buffer to NewSparseFromDense, Sparse materializes itself through
// ToDenseMatrix. Neither reads the other's internals.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const msgSparseToDense = "convert sparse matrix to dense matrix"

// NewDenseFrom builds a Dense from another Matrix variant.
//
// Behavior highlights:
//   - *Sparse: logs a warning, then materializes the full dense buffer.
//   - any other variant (including *Dense): adopts the buffer returned by its
//     ToDenseMatrix(false). For a *Dense source the buffer is SHARED, not copied.
//   - Without opts the result keeps the source's options when it has any.
//
// Errors:
//   - ErrNilMatrix (TypeKind) for nil input.
//   - ErrInvalidDimensions (ValueKind) for an empty source.
func NewDenseFrom(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNewDense, err)
	}
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return nil, matrixErrorf(opNewDense, fmt.Errorf("%w: cannot initialize empty matrix", ErrInvalidDimensions))
	}

	o, inherited := sourceOptions(m)
	if len(opts) > 0 || !inherited {
		o = gatherOptions(opts...)
	}

	if sp, ok := m.(*Sparse); ok {
		o.log().Warn(msgSparseToDense,
			"rows", sp.Rows(),
			"cols", sp.Cols(),
			"nnz", sp.Nnz(),
		)
	}

	src := m.ToDenseMatrix(false)

	return &Dense{r: src.r, c: src.c, data: src.data, opts: o}, nil
}

// sourceOptions returns the options carried by known variants.
func sourceOptions(m Matrix) (Options, bool) {
	switch v := m.(type) {
	case *Dense:
		return v.opts, true
	case *Sparse:
		return v.opts, true
	default:
		return Options{}, false
	}
}

// DenseOf is the tagged constructor overload set. Supported inputs:
//
//	*Dense, *Sparse, Matrix      → NewDenseFrom (sparse warns)
//	mat.Matrix (gonum)           → element copy
//	[][]float64                  → NewDenseRows (copy)
//	[]float64                    → NewVector (1×n copy)
//	Array                        → (n,) as 1×n, (r,c) as r×c (copy)
//
// Anything else fails with ErrUnsupportedInput (TypeKind) naming the Go type.
func DenseOf(data interface{}, opts ...Option) (*Dense, error) {
	switch v := data.(type) {
	case Matrix:
		if isNil(v) {
			return nil, matrixErrorf(opNewDense, fmt.Errorf("%w, received %T", ErrUnsupportedInput, data))
		}
		return NewDenseFrom(v, opts...)
	case mat.Matrix:
		return denseFromGonum(v, opts...)
	case [][]float64:
		return NewDenseRows(v, opts...)
	case []float64:
		return NewVector(v, opts...)
	case Array:
		if err := assertArray(v); err != nil {
			return nil, matrixErrorf(opNewDense, err)
		}
		if len(v.shape) == 1 {
			return NewVector(v.data, opts...)
		}
		if v.shape[0] == 0 || v.shape[1] == 0 {
			return nil, matrixErrorf(opNewDense, fmt.Errorf("%w: cannot initialize empty matrix", ErrInvalidDimensions))
		}
		return NewDenseData(v.shape[0], v.shape[1], append([]float64(nil), v.data...), opts...)
	default:
		return nil, matrixErrorf(opNewDense, fmt.Errorf("%w, received %T", ErrUnsupportedInput, data))
	}
}

// denseFromGonum copies any gonum matrix element by element.
func denseFromGonum(g mat.Matrix, opts ...Option) (*Dense, error) {
	if isNil(g) {
		return nil, matrixErrorf(opNewDense, fmt.Errorf("%w, received %T", ErrUnsupportedInput, g))
	}
	r, c := g.Dims()
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf(opNewDense, fmt.Errorf("%w: cannot initialize empty matrix", ErrInvalidDimensions))
	}
	buf := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			buf[i*c+j] = g.At(i, j)
		}
	}

	return NewDenseData(r, c, buf, opts...)
}

// fromGonumResult copies a gonum result into a Dense inheriting m's options.
func (m *Dense) fromGonumResult(g mat.Matrix) *Dense { return denseFromGonumOpts(g, m.opts) }

// denseFromGonumOpts copies g element by element into a fresh Dense carrying o.
func denseFromGonumOpts(g mat.Matrix, o Options) *Dense {
	r, c := g.Dims()
	out := &Dense{r: r, c: c, data: make([]float64, r*c), opts: o}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = g.At(i, j)
		}
	}

	return out
}

// ToDenseMatrix returns m itself, or a deep copy when copy is true.
// Callers must not rely on independence unless they request a copy.
func (m *Dense) ToDenseMatrix(copy bool) *Dense {
	if copy {
		return m.Copy()
	}

	return m
}

// ToSparseMatrix hands the dense buffer to the sparse constructor.
// The compression strategy is owned by the sparse side.
func (m *Dense) ToSparseMatrix() *Sparse {
	return NewSparseFromDense(m)
}
