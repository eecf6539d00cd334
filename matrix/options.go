// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy. This file
// defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural
	// checks (triangular invariants, symmetry, breakdown detection upstream).
	DefaultEpsilon = 1e-12

	// DefaultValidateNaNInf toggles strict finite-value validation on
	// ingestion paths that opt into the numeric policy.
	DefaultValidateNaNInf = false
)

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective numeric policy after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// Epsilon returns the resolved structural tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether strict finite-value validation is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the numeric tolerance eps used by structural checks.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid (programmer error).
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Prefer small positive eps (e.g. 1e-12 for float64 kernels); relax only
//     for noisy or pre-scaled data.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation on ingestion.
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (the default; the kernels
// in this library deliberately let nonfinite values propagate so singular
// inputs surface the way the algorithms naturally expose them).
// Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// ---------- Option Resolution ----------

// NewOptions resolves option setters against documented defaults.
// Implementation:
//   - Stage 1: start from the Default* constants (single source of truth).
//   - Stage 2: apply opts in order; last-writer-wins semantics.
//
// Determinism:
//   - Stable for a given sequence of opts.
//
// Complexity:
//   - Time O(k) for k=len(opts), Space O(1).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry for every ...Option consumer in the
// library (triangular, eigen and krylov re-export their own option types but
// resolve numeric policy through here).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
