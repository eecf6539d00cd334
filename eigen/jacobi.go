// SPDX-License-Identifier: MIT

package eigen

import (
	"math"

	"github.com/katalvlaran/numera/matrix"
)

const opJacobi = "eigen.Jacobi"

// Jacobi computes all eigenvalues and eigenvectors of a real symmetric
// matrix by the classical Jacobi rotation method: repeatedly zero the
// largest off-diagonal entry with a plane rotation until every off-diagonal
// magnitude drops below tol.
//
// Implementation:
//   - Stage 1: validate a (non-nil, square, symmetric within tol) and
//     maxIter ≥ 1.
//   - Stage 2: work on a dense copy A; accumulate rotations into Q starting
//     from the identity.
//   - Stage 3: per rotation, pick the pivot (p,q) maximizing |A[p,q]|,
//     compute the annihilating angle, apply the rotation symmetrically to A
//     and accumulate it into Q's columns.
//
// Inputs: a — n×n symmetric matrix, never mutated; tol — convergence
// threshold for off-diagonal magnitudes; maxIter — rotation budget.
// Returns: eigenvalues (the diagonal of the converged A, unsorted) and the
// matrix Q whose columns are the matching eigenvectors, so A·Q ≈ Q·diag(λ).
// Errors: ErrBadIterations, ErrNoConvergence, matrix.ErrAsymmetry, matrix
// sentinels for a nil or non-square a.
// Complexity: Time O(maxIter·n²) with an O(n²) pivot search per rotation,
// Space O(n²).
func Jacobi(a matrix.Matrix, tol float64, maxIter int) ([]float64, *matrix.Dense, error) {
	// Stage 1: preconditions.
	if err := matrix.ValidateSymmetric(a, tol); err != nil {
		return nil, nil, matrix.OpErrorf(opJacobi, err)
	}
	if maxIter < 1 {
		return nil, nil, matrix.OpErrorf(opJacobi, ErrBadIterations)
	}

	// Stage 2: working copy and rotation accumulator.
	n := a.Rows()
	work, err := denseCopy(a)
	if err != nil {
		return nil, nil, matrix.OpErrorf(opJacobi, err)
	}
	q, err := matrix.Identity(n)
	if err != nil {
		return nil, nil, matrix.OpErrorf(opJacobi, err)
	}

	// Stage 3: rotation sweeps.
	var (
		p, pivQ       int     // pivot indices
		maxOff        float64 // largest off-diagonal magnitude this pass
		app, aqq, apq float64 // pivot-plane entries before rotation
		theta, t      float64 // rotation parameters
		c, s          float64 // cosine and sine
		vip, viq      float64 // row temporaries
		converged     bool
	)
	for iter := 0; iter < maxIter; iter++ {
		// Locate the largest off-diagonal entry.
		maxOff = 0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				apq, _ = work.At(i, j)
				if math.Abs(apq) > maxOff {
					maxOff = math.Abs(apq)
					p, pivQ = i, j
				}
			}
		}
		if maxOff < tol || maxOff == 0 { // already diagonal ⇒ done even at tol=0
			converged = true
			break
		}

		// Annihilating rotation for the (p,q) plane.
		app, _ = work.At(p, p)
		aqq, _ = work.At(pivQ, pivQ)
		apq, _ = work.At(p, pivQ)
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c = 1 / math.Sqrt(t*t+1)
		s = t * c

		// Rotate rows/columns p and q of A symmetrically.
		for i := 0; i < n; i++ {
			if i == p || i == pivQ {
				continue
			}
			vip, _ = work.At(i, p)
			viq, _ = work.At(i, pivQ)
			_ = work.Set(i, p, c*vip-s*viq)
			_ = work.Set(p, i, c*vip-s*viq)
			_ = work.Set(i, pivQ, s*vip+c*viq)
			_ = work.Set(pivQ, i, s*vip+c*viq)
		}
		_ = work.Set(p, p, c*c*app-2*c*s*apq+s*s*aqq)
		_ = work.Set(pivQ, pivQ, s*s*app+2*c*s*apq+c*c*aqq)
		_ = work.Set(p, pivQ, 0)
		_ = work.Set(pivQ, p, 0)

		// Accumulate the rotation into Q's columns p and q.
		for i := 0; i < n; i++ {
			vip, _ = q.At(i, p)
			viq, _ = q.At(i, pivQ)
			_ = q.Set(i, p, c*vip-s*viq)
			_ = q.Set(i, pivQ, s*vip+c*viq)
		}
	}
	if !converged {
		return nil, nil, matrix.OpErrorf(opJacobi, ErrNoConvergence)
	}

	// Diagonal of the converged working copy holds the eigenvalues.
	eigs := make([]float64, n)
	for i := 0; i < n; i++ {
		eigs[i], _ = work.At(i, i)
	}

	return eigs, q, nil
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
	var v float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			v, _ = a.At(i, j)
			_ = out.Set(i, j, v)
		}
	}

	return out, nil
}
