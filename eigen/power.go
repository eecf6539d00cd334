// SPDX-License-Identifier: MIT

package eigen

import (
	"github.com/katalvlaran/numera/matrix"
)

const opPowerIter = "eigen.PowerIter"

// PowerIter estimates the dominant eigenpair of a square matrix a by power
// iteration: x ← A·x, normalized at every step by the component of largest
// magnitude to prevent overflow/underflow.
//
// Implementation:
//   - Stage 1: validate a (non-nil, square) and numiter ≥ 1.
//   - Stage 2: resolve the starting vector (seeded pseudo-random unit vector
//     in the ∞-norm, or the WithStartVector override).
//   - Stage 3: run exactly numiter steps; step k records y[m]/x[m] as the
//     eigenvalue estimate, where m is the index of y's largest-magnitude
//     component, then sets x ← y/y[m].
//
// Behavior highlights:
//   - Converges linearly at rate |λ₂/λ₁| when the dominant eigenvalue is
//     simple. Oscillates or stagnates when it is not unique in magnitude or
//     the matrix is defective; that limitation is inherent and not detected.
//   - A zero normalizing component y[m] is not trapped: the division
//     produces ±Inf/NaN and subsequent estimates carry it.
//
// Inputs: a — n×n matrix, never mutated; numiter — number of steps.
// Returns: History with numiter estimates and the final eigenvector
// estimate (largest-magnitude component equal to 1).
// Errors: ErrBadIterations, ErrBadStartVector, matrix sentinels for a nil
// or non-square a.
// Determinism: identical output for identical inputs; the default start
// vector is fixed by DefaultStartSeed.
// Complexity: Time O(numiter·n²), Space O(n) beyond the estimate slice.
func PowerIter(a matrix.Matrix, numiter int, opts ...Option) (History, error) {
	// Stage 1: preconditions.
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return History{}, matrix.OpErrorf(opPowerIter, err)
	}
	if numiter < 1 {
		return History{}, matrix.OpErrorf(opPowerIter, ErrBadIterations)
	}

	// Stage 2: starting vector.
	n := a.Rows()
	x, err := gatherOptions(opts...).startVector(n)
	if err != nil {
		return History{}, matrix.OpErrorf(opPowerIter, err)
	}

	// Stage 3: fixed-count iteration over pre-sized buffers.
	estimates := make([]float64, numiter)
	var (
		y []float64
		m int
	)
	for k := 0; k < numiter; k++ {
		if y, err = matrix.MatVec(a, x); err != nil {
			return History{}, matrix.OpErrorf(opPowerIter, err)
		}
		m, _ = matrix.ArgMaxAbs(y) // y is non-empty by construction

		estimates[k] = y[m] / x[m] // dominant-eigenvalue estimate
		matrix.ScaleVec(y, 1/y[m]) // normalize: largest component becomes 1
		x = y
	}

	return History{Estimates: estimates, Vector: x}, nil
}
