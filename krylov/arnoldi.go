// SPDX-License-Identifier: MIT

package krylov

import (
	"github.com/katalvlaran/numera/matrix"
)

const opArnoldi = "krylov.Arnoldi"

// Arnoldi builds an orthonormal basis of the Krylov subspace generated by
// matrix a and starting vector u, together with the upper-Hessenberg
// projection of a onto that basis.
//
// Implementation:
//   - Stage 1: validate a (non-nil, square), len(u) = n, m ≥ 1, ‖u‖ > 0.
//   - Stage 2: q₁ = u/‖u‖₂; step k computes v = A·qₖ and orthogonalizes it
//     against q₁..qₖ by modified Gram-Schmidt — each projection coefficient
//     is subtracted before the next is computed — recording the
//     coefficients into column k of H.
//   - Stage 3: H[k+1,k] = ‖v‖ after orthogonalization and q_{k+1} =
//     v/H[k+1,k]. When ‖v‖ drops to the breakdown tolerance the subspace is
//     exhausted: the basis is returned truncated (see ArnoldiResult) with
//     no division performed.
//
// Inputs: a — n×n matrix, never mutated; u — length-n starting vector,
// never mutated; m — requested number of steps.
// Returns: ArnoldiResult with Q, H and the realized step count.
// Errors: ErrBadSubspaceDim, ErrZeroStart, matrix sentinels for a nil or
// non-square a or a length mismatch. Breakdown is NOT an error.
// Determinism: fixed loop order, no randomness.
// Complexity: Time O(m·n²) for the products plus O(m²·n) for the
// orthogonalization, Space O(m·n).
func Arnoldi(a matrix.Matrix, u []float64, m int, opts ...Option) (ArnoldiResult, error) {
	// Stage 1: preconditions.
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return ArnoldiResult{}, matrix.OpErrorf(opArnoldi, err)
	}
	n := a.Rows()
	if err := matrix.ValidateVecLen(u, n); err != nil {
		return ArnoldiResult{}, matrix.OpErrorf(opArnoldi, err)
	}
	if m < 1 {
		return ArnoldiResult{}, matrix.OpErrorf(opArnoldi, ErrBadSubspaceDim)
	}
	unorm, err := matrix.Norm2(u)
	if err != nil {
		return ArnoldiResult{}, matrix.OpErrorf(opArnoldi, err)
	}
	if unorm == 0 {
		return ArnoldiResult{}, matrix.OpErrorf(opArnoldi, ErrZeroStart)
	}
	tol := gatherOptions(opts...).breakdownTol

	// Stage 2: pre-sized basis storage; q[0] = u/‖u‖.
	q := make([][]float64, 1, m+1)
	q[0] = matrix.CloneVec(u)
	matrix.ScaleVec(q[0], 1/unorm)
	h, err := matrix.NewDense(m+1, m)
	if err != nil {
		return ArnoldiResult{}, matrix.OpErrorf(opArnoldi, err)
	}

	var (
		v     []float64
		hik   float64
		wnorm float64
	)
	for k := 0; k < m; k++ {
		if v, err = matrix.MatVec(a, q[k]); err != nil {
			return ArnoldiResult{}, matrix.OpErrorf(opArnoldi, err)
		}

		// Modified Gram-Schmidt: subtract each projection before computing
		// the next coefficient.
		for i := 0; i <= k; i++ {
			hik, _ = matrix.Dot(q[i], v) // lengths match by construction
			_ = h.Set(i, k, hik)
			_ = matrix.AddScaled(v, -hik, q[i])
		}

		if wnorm, err = matrix.Norm2(v); err != nil {
			return ArnoldiResult{}, matrix.OpErrorf(opArnoldi, err)
		}
		if wnorm <= tol {
			// Subspace exhausted: stop before dividing by the vanishing
			// residual. k+1 columns of H are complete; the basis holds
			// q₁..q_{k+1} and both truncate to square shape.
			return truncatedResult(q, h, k+1)
		}
		_ = h.Set(k+1, k, wnorm)
		matrix.ScaleVec(v, 1/wnorm)
		q = append(q, v)
	}

	qd, err := packColumns(q, n)
	if err != nil {
		return ArnoldiResult{}, matrix.OpErrorf(opArnoldi, err)
	}

	return ArnoldiResult{Q: qd, H: h, Steps: m}, nil
}

// truncatedResult shrinks the basis and projection to the square shapes a
// breakdown after `steps` steps leaves behind: Q n×steps, H steps×steps.
func truncatedResult(q [][]float64, h *matrix.Dense, steps int) (ArnoldiResult, error) {
	qd, err := packColumns(q[:steps], len(q[0]))
	if err != nil {
		return ArnoldiResult{}, matrix.OpErrorf(opArnoldi, err)
	}

	hd, err := matrix.NewDense(steps, steps)
	if err != nil {
		return ArnoldiResult{}, matrix.OpErrorf(opArnoldi, err)
	}
	var v float64
	for i := 0; i < steps; i++ {
		for j := 0; j < steps; j++ {
			v, _ = h.At(i, j) // in range: h is (m+1)×m with steps ≤ m
			_ = hd.Set(i, j, v)
		}
	}

	return ArnoldiResult{Q: qd, H: hd, Steps: steps}, nil
}

// packColumns assembles column vectors into a fresh n×len(cols) dense
// matrix.
func packColumns(cols [][]float64, n int) (*matrix.Dense, error) {
	out, err := matrix.NewDense(n, len(cols))
	if err != nil {
		return nil, err
	}
	for j, col := range cols {
		for i := 0; i < n; i++ {
			_ = out.Set(i, j, col[i])
		}
	}

	return out, nil
}
