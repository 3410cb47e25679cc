// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Options are resolved once at construction and stored on the Matrix.
//     Clone carries them; existing matrices never observe later options.
//   - The NaN/Inf guard covers per-element writes (Set, Apply, staged builder
//     elements, FromRows, gonum import). FillWith and Identity write values chosen by the
//     caller or by the type's own identities and never fail.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles finite-value validation on element writes.
	// Off by default: integer element types can never hold NaN/Inf, and float
	// callers opt in explicitly.
	DefaultValidateNaNInf = false

	// DefaultEpsilon is the tolerance used by Equal. Zero means exact equality.
	DefaultEpsilon = 0.0
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool    // DefaultValidateNaNInf
	eps            float64 // >= 0; DefaultEpsilon
}

// WithValidateNaNInf enables strict finite-value validation.
// When enabled, Set, Apply, Builder.Finalize (staged elements), FromRows and FromGonum
// reject NaN and ±Inf with ErrNaNInf and leave the matrix untouched.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (the default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithEpsilon sets the absolute tolerance used by Equal.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid (programmer error).
//
// Complexity:
//   - Time O(1), Space O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		eps:            DefaultEpsilon,
	}
}

// gatherOptions applies user-provided setters on top of defaults.
// Setters run in order; last-writer-wins. Nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o)
	}

	return o
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
