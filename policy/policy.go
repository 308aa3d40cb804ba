// SPDX-License-Identifier: MIT

// Package policy is the single source of truth for numeric tolerances used by
// the matrix package.
//
// Purpose:
//   - Name every tolerance (rank threshold, all-close pair, pinv cutoff) instead
//     of scattering magic numbers across kernels.
//   - Let tests and callers override them explicitly, either by building a
//     Policy by hand or by loading one from a map / the environment (koanf).
//
// Determinism:
//   - A Policy is a plain value; nothing here reads global state after Load returns.
package policy

import (
	"errors"
	"fmt"
	"math"
)

// Defaults.
const (
	// DefaultRankTolerance is the threshold above which a singular value
	// counts towards the numerical rank.
	DefaultRankTolerance = 1e-12

	// DefaultRelTolerance is the relative term of the all-close comparison.
	DefaultRelTolerance = 1e-5

	// DefaultAbsTolerance is the absolute term of the all-close comparison.
	DefaultAbsTolerance = 1e-8

	// DefaultPinvRCond is the relative cutoff for small singular values in the
	// pseudo-inverse: values <= PinvRCond*max(s) are treated as zero.
	DefaultPinvRCond = 1e-15
)

// Configuration keys (koanf paths).
const (
	KeyRankTolerance = "rank_tolerance"
	KeyRelTolerance  = "rtol"
	KeyAbsTolerance  = "atol"
	KeyPinvRCond     = "pinv_rcond"
)

// ErrInvalidPolicy is returned when a tolerance is negative, NaN or infinite.
var ErrInvalidPolicy = errors.New("policy: invalid tolerance")

// Policy groups the numeric tolerances shared by all matrix operations.
type Policy struct {
	RankTolerance float64 `koanf:"rank_tolerance"`
	RelTolerance  float64 `koanf:"rtol"`
	AbsTolerance  float64 `koanf:"atol"`
	PinvRCond     float64 `koanf:"pinv_rcond"`
}

// Default returns the policy built from the Default* constants.
func Default() Policy {
	return Policy{
		RankTolerance: DefaultRankTolerance,
		RelTolerance:  DefaultRelTolerance,
		AbsTolerance:  DefaultAbsTolerance,
		PinvRCond:     DefaultPinvRCond,
	}
}

// Validate checks that every tolerance is finite and non-negative.
// The returned error names the first offending key.
func (p Policy) Validate() error {
	checks := [...]struct {
		key string
		val float64
	}{
		{KeyRankTolerance, p.RankTolerance},
		{KeyRelTolerance, p.RelTolerance},
		{KeyAbsTolerance, p.AbsTolerance},
		{KeyPinvRCond, p.PinvRCond},
	}
	for _, c := range checks {
		if math.IsNaN(c.val) || math.IsInf(c.val, 0) || c.val < 0 {
			return fmt.Errorf("%s=%v: %w", c.key, c.val, ErrInvalidPolicy)
		}
	}

	return nil
}

// defaultsMap mirrors Default() as a flat koanf map.
func defaultsMap() map[string]interface{} {
	d := Default()

	return map[string]interface{}{
		KeyRankTolerance: d.RankTolerance,
		KeyRelTolerance:  d.RelTolerance,
		KeyAbsTolerance:  d.AbsTolerance,
		KeyPinvRCond:     d.PinvRCond,
	}
}
