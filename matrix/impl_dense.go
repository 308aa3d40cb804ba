// SPDX-License-Identifier: MIT

// Package matrix - Dense backend: row-major buffer, constructors, accessors.
//
// Purpose:
//   - Hold a semantic space as one flat []float64, element (i,j) at i*cols + j.
//   - Reject empty input at construction; accessors return errors, never panic.
//   - Keep the buffer always 2-D: vectors are r×1 or 1×c, never flat.
//
// AI-Hints:
//   - Hot kernels operate on the flat data slice directly.
//   - Raw() exposes a gonum *mat.Dense sharing the same buffer for LAPACK-backed routines.
//
// Cost:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/Copy: O(r*c); Raw: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxApply   = "Apply"   // method tag used in error wrappers
	ctxRowsAt  = "RowsAt"  // method tag used in error wrappers
	ctxReshape = "Reshape" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// Fields:
//   - r, c: dimensions (≥1; zero columns only for rank-0 SVD factors)
//   - data: flat storage, len == r*c
//   - opts: numeric policy and logger, inherited by every derived matrix
type Dense struct {
	r, c int
	data []float64
	opts Options
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ Algebra      = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and resolve options.
//
// Errors:
//   - ErrInvalidDimensions (ValueKind).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opNewDense, fmt.Errorf("%w: got (%d, %d)", ErrInvalidDimensions, rows, cols))
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), opts: gatherOptions(opts...)}, nil
}

// NewDenseData wraps a flat row-major buffer (no copy) as an rows×cols Dense.
// Errors:
//   - ErrInvalidDimensions if rows<=0 or cols<=0.
//   - ErrDimensionMismatch if len(data) != rows*cols.
//   - ErrNaNInf if WithFiniteCheck is set and data holds NaN/±Inf.
func NewDenseData(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opNewDense, fmt.Errorf("%w: got (%d, %d)", ErrInvalidDimensions, rows, cols))
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(opNewDense, fmt.Errorf("%w: %d values for shape (%d, %d)", ErrDimensionMismatch, len(data), rows, cols))
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		if err := validateFinite(data); err != nil {
			return nil, matrixErrorf(opNewDense, err)
		}
	}

	return &Dense{r: rows, c: cols, data: data, opts: o}, nil
}

// NewDenseRows copies a slice of rows into a new Dense.
// Errors:
//   - ErrInvalidDimensions for zero rows or zero columns.
//   - ErrDimensionMismatch for ragged rows.
func NewDenseRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opNewDense, fmt.Errorf("%w: cannot initialize empty matrix", ErrInvalidDimensions))
	}
	r, c := len(rows), len(rows[0])
	buf := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opNewDense, fmt.Errorf("%w: row %d has %d values, want %d", ErrDimensionMismatch, i, len(row), c))
		}
		buf = append(buf, row...)
	}

	return NewDenseData(r, c, buf, opts...)
}

// NewVector copies a flat slice into a 1×n Dense (flat input is never kept 1-D).
func NewVector(values []float64, opts ...Option) (*Dense, error) {
	if len(values) == 0 {
		return nil, matrixErrorf(opNewDense, fmt.Errorf("%w: cannot initialize empty matrix", ErrInvalidDimensions))
	}

	return NewDenseData(1, len(values), append([]float64(nil), values...), opts...)
}

// newDenseZeroOK is an internal constructor that allows rows==0 or cols==0.
// Used for the factors of a rank-deficient SVD truncated to zero components.
func newDenseZeroOK(rows, cols int, opts Options) *Dense {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), opts: opts}
}

// derive allocates a zero rows×cols Dense inheriting m's options.
func (m *Dense) derive(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), opts: m.opts}
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Options returns the options carried by m.
func (m *Dense) Options() Options { return m.opts }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Errors: ErrOutOfRange for bounds; ErrNaNInf for non-finite v under WithFiniteCheck.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.opts.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Nnz counts the non-zero entries. Complexity: O(r*c).
func (m *Dense) Nnz() int {
	n := 0
	for _, v := range m.data {
		if v != 0 {
			n++
		}
	}

	return n
}

// Clone returns a deep copy (new buffer, same options) as a Matrix.
func (m *Dense) Clone() Matrix { return m.Copy() }

// Copy returns a deep copy with its concrete type.
func (m *Dense) Copy() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, opts: m.opts}
}

// RawData returns the flat row-major buffer (no copy). Mutations are visible in m.
func (m *Dense) RawData() []float64 { return m.data }

// Raw returns a gonum view sharing m's buffer. Writes through the view are visible in m.
// Panics (gonum) for zero-column SVD factors; public constructors never produce those.
func (m *Dense) Raw() *mat.Dense { return mat.NewDense(m.r, m.c, m.data) }

// AsArray returns m as a 2-D Array sharing the buffer, so a Dense column or
// row vector can be passed to ScaleRows/ScaleColumns.
func (m *Dense) AsArray() Array { return Array{shape: []int{m.r, m.c}, data: m.data} }

// RowsAt returns a copy holding the selected rows, in the given order.
// Errors: ErrInvalidDimensions for an empty selection, ErrOutOfRange for a bad index.
func (m *Dense) RowsAt(idx ...int) (*Dense, error) {
	if len(idx) == 0 {
		return nil, matrixErrorf(ctxRowsAt, ErrInvalidDimensions)
	}
	out := m.derive(len(idx), m.c)
	for k, i := range idx {
		if i < 0 || i >= m.r {
			return nil, denseErrorf(ctxRowsAt, i, 0, ErrOutOfRange)
		}
		copy(out.data[k*m.c:(k+1)*m.c], m.data[i*m.c:(i+1)*m.c])
	}

	return out, nil
}

// Reshape returns a copy with the same row-major values and a new shape.
// Errors: ErrInvalidDimensions for non-positive dims, ErrDimensionMismatch if rows*cols differs.
func (m *Dense) Reshape(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(ctxReshape, ErrInvalidDimensions)
	}
	if rows*cols != len(m.data) {
		return nil, matrixErrorf(ctxReshape, shapeMismatch([]int{m.r, m.c}, []int{rows, cols}))
	}
	out := m.Copy()
	out.r, out.c = rows, cols

	return out, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// Under WithFiniteCheck a non-finite result aborts with ErrNaNInf; elements
// written before the error remain updated.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.opts.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Not for hot paths; intended for logs, debugging and examples.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
