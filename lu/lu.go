// SPDX-License-Identifier: MIT
// Package lu: unpivoted outer-product factorization.

package lu

import (
	"github.com/katalvlaran/numera/matrix"
	"github.com/katalvlaran/numera/triangular"
)

// Operation tags for unified error wrapping.
const (
	opFactor        = "Factor"
	opPivotedFactor = "PivotedFactor"
)

// Factor computes the unpivoted LU factorization A = L·U by rank-one
// (outer-product) elimination, with L unit lower triangular and U upper
// triangular.
//
// Implementation:
//   - Stage 1: validate A non-nil and square; clone into a private working
//     matrix (the caller's data is never touched).
//   - Stage 2: at step k, the k-th row of the working matrix becomes row k of
//     U, the k-th column scaled by the pivot becomes column k of L, and the
//     outer product L[:,k]·U[k,:] is subtracted from the remaining block.
//   - Stage 3: materialize typed triangular factors (the dead triangles hold
//     exact zeros by construction).
//
// Behavior highlights:
//   - No pivoting. An exact-zero pivot during elimination is detected and
//     reported as ErrSingular; near-zero pivots pass through and degrade the
//     result numerically. Callers needing robustness use PivotedFactor or
//     validate conditioning upstream.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrSingular.
//
// Determinism:
//   - Fixed k→j→i elimination order; identical results for identical inputs.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Factor(a matrix.Matrix) (*triangular.Lower, *triangular.Upper, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, nil, matrix.OpErrorf(opFactor, err)
	}
	n := a.Rows()

	// Private working copy in nested-slice form for direct indexing.
	work := cloneRows(a)

	l, err := triangular.NewLower(n)
	if err != nil {
		return nil, nil, matrix.OpErrorf(opFactor, err)
	}
	u, err := triangular.NewUpper(n)
	if err != nil {
		return nil, nil, matrix.OpErrorf(opFactor, err)
	}

	var k, i, j int
	var pivot, ljk float64
	for k = 0; k < n; k++ {
		pivot = work[k][k]
		if pivot == 0 {
			return nil, nil, matrix.OpErrorf(opFactor, ErrSingular)
		}

		// Row k of the working matrix is row k of U.
		for j = k; j < n; j++ {
			_ = u.Set(k, j, work[k][j]) // live triangle by loop bounds
		}
		// Column k scaled by the pivot is column k of L (unit diagonal).
		_ = l.Set(k, k, 1.0)
		for j = k + 1; j < n; j++ {
			ljk = work[j][k] / pivot
			_ = l.Set(j, k, ljk)
			// Subtract the outer-product contribution from the rest of row j.
			for i = k; i < n; i++ {
				work[j][i] -= ljk * work[k][i]
			}
		}
	}

	return l, u, nil
}

// cloneRows copies m into a fresh nested [][]float64 working buffer.
func cloneRows(m matrix.Matrix) [][]float64 {
	rows, cols := m.Rows(), m.Cols()

	// Fast path: slice the flat Dense backing row by row.
	if d, ok := m.(*matrix.Dense); ok {
		out := make([][]float64, rows)
		for i := 0; i < rows; i++ {
			r, _ := d.Row(i) // Row already returns a fresh copy
			out[i] = r
		}

		return out
	}

	out := make([][]float64, rows)
	var v float64
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			v, _ = m.At(i, j)
			out[i][j] = v
		}
	}

	return out
}
