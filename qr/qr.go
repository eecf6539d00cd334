// SPDX-License-Identifier: MIT

package qr

import (
	"math"

	"github.com/katalvlaran/numera/matrix"
	"github.com/katalvlaran/numera/triangular"
)

const opFactor = "qr.Factor"

// Factor computes the Householder QR factorization of a square matrix a.
//
// Implementation:
//   - Stage 1: validate a (non-nil, square).
//   - Stage 2: work on a dense copy; Q starts as the identity.
//   - Stage 3: column k builds the Householder vector v from A[k:,k] with
//     α = −sign(A[k,k])·‖A[k:,k]‖ (the sign choice avoids cancellation),
//     then applies the reflection I − τ·v·vᵀ to the trailing block of A and
//     to all of Q. A zero column needs no reflection and is skipped.
//   - Stage 4: snap the mathematically-zero subdiagonal residue and wrap R
//     as a typed upper factor.
//
// Inputs: a — n×n matrix, never mutated.
// Returns: Q with Q·A = R (hence A = Qᵀ·R) and R as *triangular.Upper.
// Errors: matrix sentinels for a nil or non-square a.
// Determinism: fixed loop order, no randomness.
// Complexity: Time O(n³), Space O(n²).
func Factor(a matrix.Matrix) (*matrix.Dense, *triangular.Upper, error) {
	// Stage 1: preconditions.
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, nil, matrix.OpErrorf(opFactor, err)
	}

	// Stage 2: working copy and orthogonal accumulator.
	n := a.Rows()
	work, err := denseCopy(a)
	if err != nil {
		return nil, nil, matrix.OpErrorf(opFactor, err)
	}
	q, err := matrix.Identity(n)
	if err != nil {
		return nil, nil, matrix.OpErrorf(opFactor, err)
	}

	// Stage 3: Householder reflections, one per column.
	v := make([]float64, n) // reflection vector, reused across columns
	var (
		norm, alpha float64
		beta, tau   float64
		sum, aij    float64
	)
	for k := 0; k < n; k++ {
		// ‖A[k:,k]‖.
		norm = 0
		for i := k; i < n; i++ {
			aij, _ = work.At(i, k) // in range by loop construction
			norm += aij * aij
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue // zero column: nothing to reflect
		}

		// v = A[k:,k] − α·e_k with α chosen against cancellation.
		aij, _ = work.At(k, k)
		alpha = -math.Copysign(norm, aij)
		for i := 0; i < k; i++ {
			v[i] = 0
		}
		for i := k; i < n; i++ {
			v[i], _ = work.At(i, k)
		}
		v[k] -= alpha

		// τ = 2 / vᵀv.
		beta = 0
		for i := k; i < n; i++ {
			beta += v[i] * v[i]
		}
		tau = 2 / beta

		// Reflect the trailing block of A.
		for j := k; j < n; j++ {
			sum = 0
			for i := k; i < n; i++ {
				aij, _ = work.At(i, j)
				sum += v[i] * aij
			}
			for i := k; i < n; i++ {
				aij, _ = work.At(i, j)
				_ = work.Set(i, j, aij-tau*v[i]*sum)
			}
		}

		// Reflect Q in full width.
		for j := 0; j < n; j++ {
			sum = 0
			for i := k; i < n; i++ {
				aij, _ = q.At(i, j)
				sum += v[i] * aij
			}
			for i := k; i < n; i++ {
				aij, _ = q.At(i, j)
				_ = q.Set(i, j, aij-tau*v[i]*sum)
			}
		}
	}

	// Stage 4: the subdiagonal holds only reflection residue; snap it so
	// the typed factor's exact-zero invariant holds by construction.
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			_ = work.Set(i, j, 0)
		}
	}
	r, err := triangular.UpperFromDense(work)
	if err != nil {
		return nil, nil, matrix.OpErrorf(opFactor, err)
	}

	return q, r, nil
}

// denseCopy materializes any Matrix into a fresh *matrix.Dense.
func denseCopy(a matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := a.(*matrix.Dense); ok {
		return d.Clone().(*matrix.Dense), nil
	}

	out, err := matrix.NewDense(a.Rows(), a.Cols())
	if err != nil {
		return nil, err
	}
	var val float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			val, _ = a.At(i, j)
			_ = out.Set(i, j, val)
		}
	}

	return out, nil
}
