// SPDX-License-Identifier: MIT

// Package eigen: sentinel errors. Higher-level wrappers attach an op tag via
// matrix.OpErrorf; match with errors.Is.

package eigen

import "errors"

var (
	// ErrBadIterations signals a non-positive iteration count.
	ErrBadIterations = errors.New("eigen: iteration count must be positive")

	// ErrBadStartVector signals a caller-supplied starting vector whose
	// length does not match the matrix dimension or whose ∞-norm is zero.
	ErrBadStartVector = errors.New("eigen: starting vector has wrong length or zero norm")

	// ErrNoConvergence signals that Jacobi exhausted its sweep budget before
	// the largest off-diagonal magnitude dropped below tolerance.
	ErrNoConvergence = errors.New("eigen: jacobi did not converge within the sweep budget")
)
