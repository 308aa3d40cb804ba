// Package matrix is a small, polymorphic matrix layer for compositional
// distributional semantics pipelines.
//
// What & Why:
//
//	Composition models repeatedly combine word and phrase spaces with a handful
//	of numeric primitives: elementwise products, stacking, axis scaling,
//	log dampening, non-negativity projections, norms, the pseudo-inverse and,
//	above all, dimensionality reduction by truncated SVD. This package offers
//	those primitives over a uniform Matrix surface with two backends:
//
//	  - Dense:  row-major flat buffer; implements the whole Algebra set.
//	  - Sparse: CSR container used at the conversion boundary.
//
// Operation families:
//
//	Pure operations return a fresh *Dense and never touch the receiver.
//	Plog, ToNonNegative and ToOnes mutate the receiver in place and return
//	nothing; ToDenseMatrix(false) returns the receiver itself. Holding two
//	references to the same *Dense across an in-place call observes the change
//	through both.
//
// SVD:
//
//	SVD(k) returns at most min(rank, k, cols) components, where rank counts
//	singular values above the policy's rank tolerance. Over-large requests are
//	truncated and reported through the configured slog.Logger, never as errors.
//	The factors carry a canonical sign: U is negated (together with V) unless
//	a strict majority of its entries is positive.
//
// Errors:
//
//	Every failure matches either ErrType (wrong variant or Go type) or
//	ErrValue (bad shape or content) under errors.Is, plus a precise sentinel
//	such as ErrDimensionMismatch.
//
// Configuration:
//
//	Tolerances come from the policy package and can be overridden per matrix
//	with WithPolicy, WithRankTolerance or WithTolerances; derived matrices
//	inherit them.
package matrix
