// SPDX-License-Identifier: MIT

// Package matrix - Sparse backend (CSR) over github.com/james-bowman/sparse.
//
// Sparse is the counterpart backend at the conversion boundary: it wraps a
// sparse.CSR holding only the non-zero entries. It supports reading and
// conversion, nothing numeric beyond that; all algebra lives on Dense.
//
// Storage order:
//   - Entries are stored row by row with ascending columns, so Do and String
//     are deterministic regardless of how the input was ordered.
//
// Cost:
//   - NewSparse: O(nnz log nnz); At: O(nnz_row); ToDenseMatrix: O(r*c + nnz).

package matrix

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/james-bowman/sparse"
)

// Sparse is a CSR matrix of float64 values.
type Sparse struct {
	csr  *sparse.CSR
	opts Options
}

var (
	_ Matrix       = (*Sparse)(nil)
	_ fmt.Stringer = (*Sparse)(nil)
)

// NewSparse builds a rows×cols CSR matrix from triplets.
// Duplicate (i,j) entries are summed; entries that end up zero are dropped.
// Errors: ErrInvalidDimensions for non-positive dims, ErrOutOfRange for a bad triplet.
func NewSparse(rows, cols int, entries []Triplet, opts ...Option) (*Sparse, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opNewSparse, fmt.Errorf("%w: got (%d, %d)", ErrInvalidDimensions, rows, cols))
	}
	o := gatherOptions(opts...)

	// Stage 1: accumulate into a dictionary of keys (duplicates summed).
	dok := sparse.NewDOK(rows, cols)
	for _, t := range entries {
		if t.I < 0 || t.I >= rows || t.J < 0 || t.J >= cols {
			return nil, matrixErrorf(opNewSparse, fmt.Errorf("%w: (%d,%d) in (%d, %d)", ErrOutOfRange, t.I, t.J, rows, cols))
		}
		if o.validateNaNInf && isNonFinite(t.V) {
			return nil, matrixErrorf(opNewSparse, ErrNaNInf)
		}
		dok.Set(t.I, t.J, dok.At(t.I, t.J)+t.V)
	}

	// Stage 2: drop zeros and order by (row, col); map iteration is unordered.
	kept := make([]Triplet, 0, dok.NNZ())
	dok.DoNonZero(func(i, j int, v float64) {
		if v != 0 {
			kept = append(kept, Triplet{I: i, J: j, V: v})
		}
	})
	slices.SortFunc(kept, func(a, b Triplet) int {
		if c := cmp.Compare(a.I, b.I); c != 0 {
			return c
		}
		return cmp.Compare(a.J, b.J)
	})

	// Stage 3: COO in row-major order compresses to CSR keeping that order.
	ri := make([]int, len(kept))
	ci := make([]int, len(kept))
	vs := make([]float64, len(kept))
	for k, t := range kept {
		ri[k], ci[k], vs[k] = t.I, t.J, t.V
	}

	return &Sparse{csr: sparse.NewCOO(rows, cols, ri, ci, vs).ToCSR(), opts: o}, nil
}

// NewSparseFromDense compresses a Dense into CSR, keeping its options.
func NewSparseFromDense(d *Dense) *Sparse {
	rows, cols := d.Shape()
	data := d.RawData()
	indptr := make([]int, rows+1)
	var indices []int
	var values []float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := data[i*cols+j]; v != 0 {
				indices = append(indices, j)
				values = append(values, v)
			}
		}
		indptr[i+1] = len(values)
	}

	return &Sparse{csr: sparse.NewCSR(rows, cols, indptr, indices, values), opts: d.Options()}
}

// Rows returns the row count.
func (s *Sparse) Rows() int {
	r, _ := s.csr.Dims()

	return r
}

// Cols returns the column count.
func (s *Sparse) Cols() int {
	_, c := s.csr.Dims()

	return c
}

// Shape returns (Rows, Cols).
func (s *Sparse) Shape() (rows, cols int) { return s.csr.Dims() }

// Nnz returns the number of stored entries.
func (s *Sparse) Nnz() int { return s.csr.NNZ() }

// Options returns the options carried by s.
func (s *Sparse) Options() Options { return s.opts }

// At returns the value at (i, j); missing entries read as 0.
func (s *Sparse) At(i, j int) (float64, error) {
	r, c := s.csr.Dims()
	if i < 0 || i >= r || j < 0 || j >= c {
		return 0, fmt.Errorf("Sparse.%s(%d,%d): %w", ctxAt, i, j, ErrOutOfRange)
	}

	return s.csr.At(i, j), nil
}

// Do visits stored entries in row-major order; stops when f returns false.
func (s *Sparse) Do(f func(i, j int, v float64) bool) {
	stopped := false
	s.csr.DoNonZero(func(i, j int, v float64) {
		if !stopped && !f(i, j, v) {
			stopped = true
		}
	})
}

// Clone returns a deep copy.
func (s *Sparse) Clone() Matrix {
	r, c := s.csr.Dims()
	indptr := make([]int, r+1)
	indices := make([]int, 0, s.csr.NNZ())
	values := make([]float64, 0, s.csr.NNZ())
	s.csr.DoNonZero(func(i, j int, v float64) {
		indices = append(indices, j)
		values = append(values, v)
		indptr[i+1] = len(values)
	})
	for i := 0; i < r; i++ {
		indptr[i+1] = max(indptr[i+1], indptr[i]) // carry over empty rows
	}

	return &Sparse{csr: sparse.NewCSR(r, c, indptr, indices, values), opts: s.opts}
}

// ToDenseMatrix materializes the full r×c buffer. The result is always a
// fresh allocation, so copy has no further effect here.
func (s *Sparse) ToDenseMatrix(copy bool) *Dense {
	return denseFromGonumOpts(s.csr.ToDense(), s.opts)
}

// ToSparseMatrix returns s itself.
func (s *Sparse) ToSparseMatrix() *Sparse { return s }

// String renders stored entries as "(i, j)\tv" lines, scipy style.
func (s *Sparse) String() string {
	var b strings.Builder
	s.Do(func(i, j int, v float64) bool {
		fmt.Fprintf(&b, "(%d, %d)\t%g\n", i, j, v)
		return true
	})

	return b.String()
}
