// SPDX-License-Identifier: MIT

// Package krylov: sentinel errors. Higher-level wrappers attach an op tag
// via matrix.OpErrorf; match with errors.Is.

package krylov

import "errors"

var (
	// ErrBadSubspaceDim signals a non-positive Krylov subspace dimension.
	ErrBadSubspaceDim = errors.New("krylov: subspace dimension must be positive")

	// ErrZeroStart signals a starting vector (or right-hand side) with zero
	// Euclidean norm; it generates no subspace to work in.
	ErrZeroStart = errors.New("krylov: starting vector has zero norm")
)
