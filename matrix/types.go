// SPDX-License-Identifier: MIT

// Package matrix: capability interfaces and small domain types.
// This file contains ONLY types; errors and options live in dedicated files.
package matrix

// Matrix is the backend-neutral surface shared by every storage variant
// (Dense, Sparse). It is deliberately small: it is what one backend needs to
// know about another in order to convert between them.
//
// Complexity notes: all methods are expected O(1) except Clone, Nnz and the
// conversions (O(r*c) for dense, O(nnz) for sparse).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// Shape returns (Rows, Cols).
	Shape() (rows, cols int)

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i or j is outside the matrix.
	At(i, j int) (float64, error)

	// Nnz returns the number of stored non-zero entries.
	Nnz() int

	// Clone returns a deep copy of the matrix in the same variant.
	Clone() Matrix

	// ToDenseMatrix converts to the dense variant. For *Dense the receiver
	// itself is returned unless copy is true.
	ToDenseMatrix(copy bool) *Dense

	// ToSparseMatrix converts to the sparse variant.
	ToSparseMatrix() *Sparse
}

// Algebra is the full capability set of the matrix layer.
// Binary operations take a Matrix so that a foreign variant is reported at
// run time as ErrTypeMismatch rather than rejected by the compiler; this keeps
// heterogeneous pipelines (holding []Matrix) honest about what they combine.
//
// Two operation families coexist and are named apart:
//   - pure:     return a new *Dense, receiver untouched;
//   - in-place: Plog, ToNonNegative, ToOnes mutate the receiver and return nothing.
type Algebra interface {
	Matrix

	Multiply(other Matrix) (*Dense, error)
	VStack(other Matrix) (*Dense, error)
	SVD(reducedDimension int) (u *Dense, s []float64, v *Dense, err error)
	ScaleRows(a ArrayLike) (*Dense, error)
	ScaleColumns(a ArrayLike) (*Dense, error)
	AssertPositive() error
	GetNonNegative() *Dense
	IsMostlyPositive() bool
	AllClose(other Matrix) (bool, error)
	Norm() float64
	NormAxis(axis Axis) (*Dense, error)
	Pinv() (*Dense, error)

	Plog()
	ToNonNegative()
	ToOnes()
}

// Axis selects the reduction direction of Sum, NormAxis and SortedPermutation.
type Axis int

const (
	// ColumnWise reduces over rows and yields one value per column (1×c).
	ColumnWise Axis = 0

	// RowWise reduces over columns and yields one value per row (r×1).
	RowWise Axis = 1
)

// String implements fmt.Stringer.
func (a Axis) String() string {
	switch a {
	case ColumnWise:
		return "ColumnWise"
	case RowWise:
		return "RowWise"
	default:
		return "Axis(?)"
	}
}

// NormKind selects the row norm used by NormalizeRows.
type NormKind int

const (
	// L1 is Σ|x|.
	L1 NormKind = iota + 1
	// L2 is √(Σx²).
	L2
)

// Triplet is one (row, col, value) entry used to build a Sparse matrix.
type Triplet struct {
	I, J int
	V    float64
}
