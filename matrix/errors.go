// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions; panics
// are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	// Constructors must validate before allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub with different shapes, Mul where a.Cols != b.Rows, or a
	// vector whose length does not match the relevant matrix dimension.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRaggedRows signals that a [][]float64 source has rows of unequal
	// length and therefore cannot form a dense matrix.
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrNilVector indicates that a nil []float64 argument was supplied where a
	// vector is required.
	ErrNilVector = errors.New("matrix: nil vector")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (ingestion, Set, etc.).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrEmptyVector indicates a zero-length vector where at least one element
	// is required (norms, argmax).
	ErrEmptyVector = errors.New("matrix: empty vector")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured numeric policy (epsilon).
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")
)
