// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for sparse assembly and the
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies them in order.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDropTolerance is the magnitude at or below which an assembled
	// entry is treated as structurally absent. Zero keeps every non-zero value
	// and drops only exact zeros (exact cancellation).
	DefaultDropTolerance = 0.0

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const panicDropToleranceInvalid = "matrix: WithDropTolerance: tol must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (last-writer-wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	dropTol        float64 // >= 0; DefaultDropTolerance
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithDropTolerance drops assembled entries with |v| <= tol.
// Panics when tol is NaN, ±Inf or negative (programmer error).
//
// AI-Hints:
//   - Leave at zero for flow matrices: tiny coefficients are real (and become
//     large weights after a log transform), only exact zeros carry no edge.
func WithDropTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicDropToleranceInvalid)
	}

	return func(o *Options) { o.dropTol = tol }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation on ingestion.
// Use only in controlled experiments; the path kernels assume finite weights.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions resolves user setters over the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		dropTol:        DefaultDropTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// dropped reports whether v is structurally absent under tol.
func dropped(v, tol float64) bool { return math.Abs(v) <= tol }
