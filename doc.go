// Package composes is the numeric core of a compositional distributional
// semantics toolkit: a matrix abstraction over dense and sparse backends with
// the linear-algebra primitives composition models are built from.
//
// What is inside?
//
//	matrix/  Matrix/Algebra interfaces, Dense and Sparse backends, elementwise
//	         transforms, stacking, norms, pseudo-inverse and rank-aware
//	         truncated SVD with sign normalization.
//	policy/  numeric tolerances (rank threshold, all-close pair, pinv cutoff)
//	         with koanf-backed loading from maps, the environment and YAML.
//
// Quick example:
//
//	m, _ := matrix.NewDenseRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
//	u, s, v, _ := m.SVD(1) // top singular direction, canonical sign
//
//	go get github.com/katalvlaran/composes
package composes
