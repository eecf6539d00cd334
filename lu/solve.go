// SPDX-License-Identifier: MIT
// Package lu: factorization-based solves. The dense entry points used by
// root-finding, BVP and pipeline callers that hold a matrix and a right-hand
// side and want x back without managing factors themselves.

package lu

import (
	"github.com/katalvlaran/numera/matrix"
	"github.com/katalvlaran/numera/triangular"
)

const (
	opSolve   = "Solve"
	opInverse = "Inverse"
)

// Solve computes x with A·x = b via the partially-pivoted factorization:
// A[p,:] = L·U, then L·y = b[p] by forward substitution and U·x = y by back
// substitution.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNilVector, matrix.ErrDimensionMismatch.
//   - Singular inputs are not trapped here: the nonfinite values produced by
//     the degenerate pivot division propagate into x (documented caller
//     responsibility, same as the triangular layer).
//
// Complexity:
//   - Time O(n^3) dominated by the factorization, Space O(n^2).
func Solve(a matrix.Matrix, b []float64) ([]float64, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, matrix.OpErrorf(opSolve, err)
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrix.OpErrorf(opSolve, err)
	}

	l, u, p, err := PivotedFactor(a)
	if err != nil {
		return nil, matrix.OpErrorf(opSolve, err)
	}

	bp, err := p.ApplyVec(b)
	if err != nil {
		return nil, matrix.OpErrorf(opSolve, err)
	}
	y, err := triangular.ForwardSub(l, bp)
	if err != nil {
		return nil, matrix.OpErrorf(opSolve, err)
	}
	x, err := triangular.BackSub(u, y)
	if err != nil {
		return nil, matrix.OpErrorf(opSolve, err)
	}

	return x, nil
}

// Inverse computes A⁻¹ explicitly: one pivoted factorization, then a forward
// and back substitution per canonical basis column.
//
// Implementation:
//   - Stage 1: validate and factor once (A[p,:] = L·U).
//   - Stage 2: for each column c, solve L·y = e_c[p] and U·x = y, writing x
//     into column c of the result.
//
// Notes:
//   - If only A⁻¹·b is needed, prefer Solve — forming the inverse costs n
//     triangular solve pairs and loses accuracy on ill-conditioned inputs.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(a matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, matrix.OpErrorf(opInverse, err)
	}
	n := a.Rows()

	l, u, p, err := PivotedFactor(a)
	if err != nil {
		return nil, matrix.OpErrorf(opInverse, err)
	}

	inv, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, matrix.OpErrorf(opInverse, err)
	}

	// e is the canonical basis column, rebuilt in place per iteration.
	e := make([]float64, n)
	var col, i int
	for col = 0; col < n; col++ {
		for i = range e {
			e[i] = 0
		}
		e[col] = 1

		ep, err := p.ApplyVec(e)
		if err != nil {
			return nil, matrix.OpErrorf(opInverse, err)
		}
		y, err := triangular.ForwardSub(l, ep)
		if err != nil {
			return nil, matrix.OpErrorf(opInverse, err)
		}
		x, err := triangular.BackSub(u, y)
		if err != nil {
			return nil, matrix.OpErrorf(opInverse, err)
		}

		for i = 0; i < n; i++ {
			_ = inv.Set(i, col, x[i]) // indices valid by construction
		}
	}

	return inv, nil
}
