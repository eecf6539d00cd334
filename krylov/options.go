// SPDX-License-Identifier: MIT

// Package krylov: functional configuration. Mirrors the matrix package
// convention: documented defaults, WithX constructors that panic only on
// programmer error, gatherOptions resolver with last-writer-wins semantics.

package krylov

import "math"

// DefaultBreakdownTol is the orthogonalization-residual threshold below
// which the Krylov subspace is considered exhausted (breakdown). Absolute,
// applied to ‖w‖₂ after modified Gram-Schmidt.
const DefaultBreakdownTol = 1e-12

const panicBreakdownTolInvalid = "krylov: WithBreakdownTol: tol must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	breakdownTol float64
}

// WithBreakdownTol overrides the breakdown detection threshold. A zero tol
// disables detection of near-breakdowns and stops only on an exactly zero
// residual. Panics on NaN, ±Inf or negative tol (programmer error).
func WithBreakdownTol(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicBreakdownTolInvalid)
	}

	return func(o *options) { o.breakdownTol = tol }
}

// gatherOptions applies user-provided setters on top of defaults.
func gatherOptions(user ...Option) options {
	o := options{breakdownTol: DefaultBreakdownTol}
	for _, set := range user {
		set(&o)
	}

	return o
}
