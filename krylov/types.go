// SPDX-License-Identifier: MIT

package krylov

import "github.com/katalvlaran/numera/matrix"

// ArnoldiResult carries the orthonormal Krylov basis and the Hessenberg
// projection produced by the Arnoldi process.
//
// Shapes depend on whether the subspace ran out:
//   - full run of m steps: Q is n×(m+1), H is (m+1)×m, Steps = m;
//   - breakdown at step k ≤ m: Q is n×k, H is k×k (the near-zero trailing
//     subdiagonal is dropped), Steps = k.
//
// Either way A·Q[:,1:Steps] ≈ Q·H holds and Q's columns are pairwise
// orthonormal to working precision.
type ArnoldiResult struct {
	Q     *matrix.Dense
	H     *matrix.Dense
	Steps int
}

// GMRESResult carries the GMRES approximation and its convergence record.
type GMRESResult struct {
	// X is the minimizer of ‖b − A·x‖ over the constructed Krylov subspace.
	X []float64

	// Residuals holds ‖b − A·x_k‖ for k = 0..Steps, with Residuals[0] = ‖b‖
	// (the residual before any step). Non-increasing by construction.
	Residuals []float64

	// Steps is the number of Arnoldi steps actually performed; smaller than
	// the requested m when the subspace broke down before step m.
	Steps int
}
