// SPDX-License-Identifier: MIT
// Package lu: sentinel error set. Matched via errors.Is; wrapped with
// operation tags at kernel boundaries.

package lu

import "errors"

var (
	// ErrSingular is returned by the unpivoted Factor when an exact-zero
	// pivot appears during elimination. The pivoted paths (PivotedFactor,
	// Solve, Inverse) never return it: there, singularity degrades into
	// nonfinite values that propagate through the results.
	ErrSingular = errors.New("lu: singular matrix")

	// ErrNotBijection signals that an index sequence offered as a
	// permutation is not a bijection on {0,…,n−1}.
	ErrNotBijection = errors.New("lu: permutation is not a bijection")

	// ErrNilPermutation indicates a nil *Permutation receiver or argument.
	ErrNilPermutation = errors.New("lu: nil permutation")
)
