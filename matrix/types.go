// SPDX-License-Identifier: MIT
// Package matrix: public interface surface.

package matrix

// Matrix is the minimal read/write contract every dense kernel accepts.
// Implementations must be value-like: Clone returns a deep copy, and no
// method retains references into caller-supplied storage.
//
// The canonical implementation is *Dense; kernels detect it to unlock flat
// slice fast-paths and fall back to At/Set otherwise.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
	// At returns the element at (row, col) or ErrOutOfRange.
	At(row, col int) (float64, error)
	// Set assigns the element at (row, col) or returns ErrOutOfRange.
	Set(row, col int, v float64) error
	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
