// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of numeric policy and diagnostics.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective configuration.
//
// Design goals:
//   - Deterministic behavior: no global mutable state, no implicit randomness.
//   - Tolerances come from the policy package (single source of truth).
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Options travel with a Dense: every matrix derived from a receiver
//     inherits the receiver's Options, so a tolerance set once at construction
//     applies to the whole operation chain.
//   - Warnings (sparse materialization, SVD truncation) go to the configured
//     *slog.Logger; the default is slog.Default().
package matrix

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/composes/policy"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRankToleranceInvalid = "matrix: WithRankTolerance: tol must be finite, non-negative"
	panicTolerancesInvalid    = "matrix: WithTolerances: rtol and atol must be finite, non-negative"
	panicPolicyInvalid        = "matrix: WithPolicy: invalid policy"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	pol            policy.Policy // numeric tolerances
	logger         *slog.Logger  // warning sink; nil means slog.Default()
	validateNaNInf bool          // reject NaN/Inf on ingestion
}

// defaultOptions returns the zero-configuration Options.
func defaultOptions() Options {
	return Options{
		pol:            policy.Default(),
		logger:         nil, // resolved lazily to slog.Default() so SetDefault is honored
		validateNaNInf: false,
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// log returns the configured logger, falling back to slog.Default().
func (o Options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}

	return slog.Default()
}

// Policy returns the numeric policy in effect.
func (o Options) Policy() policy.Policy { return o.pol }

// WithPolicy replaces the whole numeric policy.
// Panics if p fails policy.Validate (programmer error).
func WithPolicy(p policy.Policy) Option {
	if err := p.Validate(); err != nil {
		panic(panicPolicyInvalid + ": " + err.Error())
	}

	return func(o *Options) { o.pol = p }
}

// WithRankTolerance sets the singular-value threshold used for numerical rank.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into the policy.
//
// Notes:
//   - tol=0 counts every strictly positive singular value, which exposes
//     floating-point noise as rank; keep the default unless you know better.
func WithRankTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicRankToleranceInvalid)
	}

	return func(o *Options) { o.pol.RankTolerance = tol }
}

// WithTolerances sets the relative and absolute all-close tolerances.
func WithTolerances(rtol, atol float64) Option {
	if isNonFinite(rtol) || isNonFinite(atol) || rtol < 0 || atol < 0 {
		panic(panicTolerancesInvalid)
	}

	return func(o *Options) {
		o.pol.RelTolerance = rtol
		o.pol.AbsTolerance = atol
	}
}

// WithLogger routes warnings to l. A nil logger silences warnings.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}

	return func(o *Options) { o.logger = l }
}

// WithFiniteCheck makes constructors reject NaN and ±Inf input with ErrNaNInf.
func WithFiniteCheck() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
