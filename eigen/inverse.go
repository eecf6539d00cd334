// SPDX-License-Identifier: MIT

package eigen

import (
	"github.com/katalvlaran/numera/lu"
	"github.com/katalvlaran/numera/matrix"
	"github.com/katalvlaran/numera/triangular"
)

const opInvIter = "eigen.InvIter"

// InvIter estimates the eigenpair of a nearest the shift s by inverse
// iteration: power iteration applied to (A − s·I)⁻¹ implicitly, through one
// pivoted LU factorization up front and two triangular solves per step
// instead of an explicit inverse.
//
// Implementation:
//   - Stage 1: validate a (non-nil, square) and numiter ≥ 1.
//   - Stage 2: form the shifted matrix A − s·I and factor it once with
//     lu.PivotedFactor.
//   - Stage 3: run exactly numiter steps; step k solves (A − s·I)·y = x via
//     permutation + forward + back substitution, records x[m]/y[m] + s as
//     the eigenvalue estimate (m the index of y's largest-magnitude
//     component), then sets x ← y/y[m].
//
// Behavior highlights:
//   - A shift exactly equal to an eigenvalue makes the shifted matrix
//     singular; the solves then produce ±Inf/NaN and the estimates carry
//     it. Closeness to an eigenvalue is the intended use, not an error.
//
// Inputs: a — n×n matrix, never mutated; s — shift; numiter — steps.
// Returns: History with numiter estimates and the final eigenvector
// estimate (largest-magnitude component equal to 1).
// Errors: ErrBadIterations, ErrBadStartVector, matrix sentinels for a nil
// or non-square a.
// Determinism: identical output for identical inputs; the default start
// vector is fixed by DefaultStartSeed.
// Complexity: Time O(n³) for the factorization plus O(numiter·n²) for the
// solves, Space O(n²).
func InvIter(a matrix.Matrix, s float64, numiter int, opts ...Option) (History, error) {
	// Stage 1: preconditions.
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return History{}, matrix.OpErrorf(opInvIter, err)
	}
	if numiter < 1 {
		return History{}, matrix.OpErrorf(opInvIter, ErrBadIterations)
	}

	// Stage 2: factor A − s·I once.
	n := a.Rows()
	shifted, err := shiftDiagonal(a, s)
	if err != nil {
		return History{}, matrix.OpErrorf(opInvIter, err)
	}
	l, u, p, err := lu.PivotedFactor(shifted)
	if err != nil {
		return History{}, matrix.OpErrorf(opInvIter, err)
	}

	x, err := gatherOptions(opts...).startVector(n)
	if err != nil {
		return History{}, matrix.OpErrorf(opInvIter, err)
	}

	// Stage 3: fixed-count iteration; each step is two triangular solves.
	estimates := make([]float64, numiter)
	var (
		w, z, y []float64
		m       int
	)
	for k := 0; k < numiter; k++ {
		if w, err = p.ApplyVec(x); err != nil {
			return History{}, matrix.OpErrorf(opInvIter, err)
		}
		if z, err = triangular.ForwardSub(l, w); err != nil {
			return History{}, matrix.OpErrorf(opInvIter, err)
		}
		if y, err = triangular.BackSub(u, z); err != nil {
			return History{}, matrix.OpErrorf(opInvIter, err)
		}
		m, _ = matrix.ArgMaxAbs(y) // y is non-empty by construction

		estimates[k] = x[m]/y[m] + s // estimate nearest the shift
		matrix.ScaleVec(y, 1/y[m])   // normalize: largest component becomes 1
		x = y
	}

	return History{Estimates: estimates, Vector: x}, nil
}

// shiftDiagonal returns a fresh dense copy of a with s subtracted from every
// diagonal entry.
func shiftDiagonal(a matrix.Matrix, s float64) (*matrix.Dense, error) {
	n := a.Rows()
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ = a.At(i, j) // in range by loop construction
			if i == j {
				v -= s
			}
			_ = out.Set(i, j, v)
		}
	}

	return out, nil
}
