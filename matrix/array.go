// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ArrayLike is anything carrying a numeric buffer with an explicit shape.
// Shape has length 1 for flat arrays (n,) and length 2 for (r, c).
// Values are row-major and must have exactly prod(Shape) elements.
type ArrayLike interface {
	Shape() []int
	Values() []float64
}

// Array is a shaped numeric array, flat or 2-D.
// The zero value is not a valid array (ErrNotArray).
type Array struct {
	shape []int
	data  []float64
}

var _ ArrayLike = Array{}

// Flat returns a 1-D array of shape (len(values),).
func Flat(values ...float64) Array {
	return Array{shape: []int{len(values)}, data: values}
}

// Column returns a 2-D array of shape (len(values), 1).
func Column(values ...float64) Array {
	return Array{shape: []int{len(values), 1}, data: values}
}

// RowVector returns a 2-D array of shape (1, len(values)).
func RowVector(values ...float64) Array {
	return Array{shape: []int{1, len(values)}, data: values}
}

// NewArray wraps data with an explicit shape (one or two dimensions).
// Returns ErrNotArray when the shape is malformed or does not match len(data).
func NewArray(data []float64, shape ...int) (Array, error) {
	a := Array{shape: append([]int(nil), shape...), data: data}
	if err := assertArray(a); err != nil {
		return Array{}, matrixErrorf(opNewArray, err)
	}

	return a, nil
}

// Shape returns a copy of the array shape.
func (a Array) Shape() []int { return append([]int(nil), a.shape...) }

// Values returns the backing buffer (no copy).
func (a Array) Values() []float64 { return a.data }

// shapeString renders a shape the way numpy does: (3,) or (3, 1).
func shapeString(shape []int) string {
	if len(shape) == 1 {
		return "(" + strconv.Itoa(shape[0]) + ",)"
	}
	parts := make([]string, len(shape))
	for i, s := range shape {
		parts[i] = strconv.Itoa(s)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// shapeMismatch wraps ErrDimensionMismatch with both shapes named.
func shapeMismatch(a, b []int) error {
	return fmt.Errorf("%w: inconsistent shapes: %s %s", ErrDimensionMismatch, shapeString(a), shapeString(b))
}
