// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors. Every failure belongs
// to exactly one of two kinds:
//
//   - ErrType:  operand/argument has an unacceptable variant or Go type.
//   - ErrValue: operand has the right type but an invalid shape/value/content.
//
// Specific sentinels wrap their kind, so callers may match either the precise
// condition or only the kind via errors.Is. Operations wrap sentinels with an
// operation tag (see matrixErrorf); no kernel panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs.

// Error kinds.
var (
	// ErrType is the kind of every type/variant violation.
	ErrType = errors.New("matrix: type error")

	// ErrValue is the kind of every shape/value violation.
	ErrValue = errors.New("matrix: value error")
)

// kindError builds a sentinel that reports msg and matches kind via errors.Is.
func kindError(kind error, msg string) error {
	return fmt.Errorf("%w: %s", kind, msg)
}

// ValueKind sentinels.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// (empty matrices are rejected at construction).
	ErrInvalidDimensions = kindError(ErrValue, "dimensions must be > 0")

	// ErrDimensionMismatch indicates incompatible shapes between operands
	// or between a buffer and its declared shape.
	ErrDimensionMismatch = kindError(ErrValue, "dimension mismatch")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = kindError(ErrValue, "index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// (only when the finite-check policy is enabled).
	ErrNaNInf = kindError(ErrValue, "NaN or Inf encountered")

	// ErrNegativeEntry is returned by AssertPositive when any entry is < 0.
	ErrNegativeEntry = kindError(ErrValue, "expected non-negative matrix")

	// ErrZeroReduction rejects SVD requests for a non-positive reduced dimension.
	ErrZeroReduction = kindError(ErrValue, "cannot reduce to dimensionality 0")

	// ErrBadAxis indicates an axis other than ColumnWise or RowWise.
	ErrBadAxis = kindError(ErrValue, "invalid axis")

	// ErrUnknownNorm indicates a NormKind other than L1 or L2.
	ErrUnknownNorm = kindError(ErrValue, "unknown norm kind")

	// ErrFactorization indicates that the SVD routine failed to converge.
	ErrFactorization = kindError(ErrValue, "svd factorization failed")
)

// TypeKind sentinels.
var (
	// ErrTypeMismatch indicates that a binary operation received an operand of
	// a different concrete variant than its receiver.
	ErrTypeMismatch = kindError(ErrType, "operand variant mismatch")

	// ErrUnsupportedInput indicates a constructor input of an unsupported Go type.
	ErrUnsupportedInput = kindError(ErrType, "expected matrix-like type")

	// ErrNotArray indicates that a scaling argument is nil or not a well-formed array.
	ErrNotArray = kindError(ErrType, "expected array-like argument")

	// ErrNilMatrix indicates that a nil Matrix was passed as an operand.
	ErrNilMatrix = kindError(ErrType, "nil matrix")
)
