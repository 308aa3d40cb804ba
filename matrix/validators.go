// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Keep kernels minimal by delegating nil/variant/shape/array checks here.
//  - Return sentinel errors wrapped only with a validator tag so call sites can
//    add their operation tag uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and O(1) except the finite scan.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Variant → Shape.

package matrix

import (
	"fmt"
	"math"
	"reflect"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports whether m is nil, including a typed nil pointer in an interface.
func isNil(m interface{}) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)

	return v.Kind() == reflect.Ptr && v.IsNil()
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix (TypeKind) for nil or typed-nil operands.
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions; the error names both shapes.
// Assumes a and b are not nil.
func ValidateSameShape(a, b Matrix) error {
	ar, ac := a.Shape()
	br, bc := b.Shape()
	if ar != br || ac != bc {
		return validatorErrorf("ValidateSameShape", shapeMismatch([]int{ar, ac}, []int{br, bc}))
	}

	return nil
}

// assertSameType checks that other is a non-nil *Dense and returns it.
// This is the variant-match assertion every binary Dense operation relies on.
func assertSameType(other Matrix) (*Dense, error) {
	if isNil(other) {
		return nil, validatorErrorf("assertSameType", ErrNilMatrix)
	}
	d, ok := other.(*Dense)
	if !ok {
		return nil, validatorErrorf("assertSameType", fmt.Errorf("%w: expected *matrix.Dense, received %T", ErrTypeMismatch, other))
	}

	return d, nil
}

// assertArray checks that a is a non-nil, well-formed array: one or two
// non-negative dimensions whose product equals the number of values.
func assertArray(a ArrayLike) error {
	if isNil(a) {
		return validatorErrorf("assertArray", ErrNotArray)
	}
	shape := a.Shape()
	if len(shape) != 1 && len(shape) != 2 {
		return validatorErrorf("assertArray", fmt.Errorf("%w: %d-dimensional", ErrNotArray, len(shape)))
	}
	n := 1
	for _, s := range shape {
		if s < 0 {
			return validatorErrorf("assertArray", fmt.Errorf("%w: negative dimension", ErrNotArray))
		}
		n *= s
	}
	if n != len(a.Values()) {
		return validatorErrorf("assertArray", fmt.Errorf("%w: shape %s holds %d values", ErrNotArray, shapeString(shape), len(a.Values())))
	}

	return nil
}

// validateFinite returns ErrNaNInf at the first non-finite value.
func validateFinite(data []float64) error {
	for idx, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf("validateFinite", fmt.Errorf("%w: at flat index %d", ErrNaNInf, idx))
		}
	}

	return nil
}
