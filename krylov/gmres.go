// SPDX-License-Identifier: MIT

package krylov

import (
	"math"

	"github.com/katalvlaran/numera/matrix"
	"github.com/katalvlaran/numera/triangular"
)

const opGMRES = "krylov.GMRES"

// GMRES approximates the solution of A·x = b by minimizing ‖b − A·x‖ over
// the Krylov subspace generated by b with m Arnoldi steps.
//
// Implementation:
//   - Stage 1: validate and run Arnoldi from b, producing Q and the
//     Hessenberg projection H (possibly truncated by breakdown).
//   - Stage 2: reduce the least-squares problem min ‖β·e₁ − H·y‖ (β = ‖b‖)
//     incrementally with Givens rotations: column k of H is rotated by the
//     previous k−1 rotations, a new rotation annihilates its subdiagonal,
//     and the rotated right-hand side s yields the step-k residual norm as
//     |s[k+1]| with no extra solve.
//   - Stage 3: back-substitute the rotated (now upper-triangular) system
//     for y and form x = Q[:,1:k]·y.
//
// Behavior highlights:
//   - Breakdown before step m means the subspace contains the exact
//     solution; GMRES solves within it and the final residual is ≈ 0.
//   - m = n on a nonsingular system reproduces the exact solution.
//   - No restarts: an undersized m returns the best approximation within
//     the requested subspace, not an error.
//
// Inputs: a — n×n matrix, never mutated; b — length-n right-hand side,
// never mutated; m — Krylov dimension.
// Returns: GMRESResult with X, the residual history (Residuals[0] = ‖b‖,
// one entry per completed step, non-increasing) and the realized step
// count.
// Errors: ErrBadSubspaceDim, ErrZeroStart, matrix sentinels for a nil or
// non-square a or a length mismatch.
// Determinism: fixed loop order, no randomness.
// Complexity: Time O(m·n²) dominated by Arnoldi, Space O(m·n).
func GMRES(a matrix.Matrix, b []float64, m int, opts ...Option) (GMRESResult, error) {
	// Stage 1: Krylov basis from b. Arnoldi validates a, b and m.
	basis, err := Arnoldi(a, b, m, opts...)
	if err != nil {
		return GMRESResult{}, matrix.OpErrorf(opGMRES, err)
	}
	beta, err := matrix.Norm2(b)
	if err != nil {
		return GMRESResult{}, matrix.OpErrorf(opGMRES, err)
	}

	// Stage 2: incremental Givens reduction of the Hessenberg system.
	width := basis.Steps   // columns of H = realized steps
	rows := basis.H.Rows() // width+1 normally, width after breakdown

	s := make([]float64, width+1) // rotated right-hand side β·e₁
	s[0] = beta
	givs := make([]givens, width)
	hcol := make([]float64, width+1) // current column work buffer

	r, err := triangular.NewUpper(width)
	if err != nil {
		return GMRESResult{}, matrix.OpErrorf(opGMRES, err)
	}

	residuals := make([]float64, 0, width+1)
	residuals = append(residuals, beta) // residual before any step

	var sub float64
	for j := 0; j < width; j++ {
		// Load column j; a breakdown-truncated H has no subdiagonal in its
		// final column, which is exactly a zero rotation target.
		for i := 0; i <= j; i++ {
			hcol[i], _ = basis.H.At(i, j) // in range by loop construction
		}
		sub = 0
		if j+1 < rows {
			sub, _ = basis.H.At(j+1, j)
		}
		hcol[j+1] = sub

		// Previous rotations, then the new one annihilating the
		// subdiagonal, applied to both the column and the right-hand side.
		for i := 0; i < j; i++ {
			hcol[i], hcol[i+1] = rotvec(hcol[i], hcol[i+1], givs[i])
		}
		givs[j] = drotg(hcol[j], hcol[j+1])
		hcol[j], hcol[j+1] = rotvec(hcol[j], hcol[j+1], givs[j])
		s[j], s[j+1] = rotvec(s[j], s[j+1], givs[j])

		for i := 0; i <= j; i++ {
			_ = r.Set(i, j, hcol[i])
		}

		residuals = append(residuals, math.Abs(s[j+1]))
	}

	// Stage 3: y from the rotated triangular system, then x = Q[:,1:k]·y.
	y, err := triangular.BackSub(r, s[:width])
	if err != nil {
		return GMRESResult{}, matrix.OpErrorf(opGMRES, err)
	}

	n := a.Rows()
	x := make([]float64, n)
	var col []float64
	for j := 0; j < width; j++ {
		col, _ = basis.Q.Col(j) // in range by loop construction
		_ = matrix.AddScaled(x, y[j], col)
	}

	return GMRESResult{X: x, Residuals: residuals, Steps: width}, nil
}
