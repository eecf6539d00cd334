// SPDX-License-Identifier: MIT

// Package krylov provides the Arnoldi process and GMRES, the subspace
// methods of numera.
//
// 🚀 What lives here:
//
//   - Arnoldi — incrementally builds an orthonormal basis Q of the Krylov
//     subspace span{u, A·u, A²·u, …} together with the upper-Hessenberg
//     projection H satisfying A·Q[:,1:m] ≈ Q·H, using modified Gram-Schmidt
//     (projections subtracted sequentially, not all at once).
//   - GMRES — approximates the solution of A·x = b by minimizing the
//     residual norm over the Krylov subspace generated by b: Arnoldi for m
//     steps, then the (m+1)×m least-squares problem min ‖β·e₁ − H·y‖ solved
//     incrementally with Givens rotations so the residual norm is available
//     at every intermediate step, and finally x = Q[:,1:m]·y.
//
// ✨ Contracts:
//
//   - Breakdown — a (near-)zero orthogonalization residual — means the
//     exact subspace has been found. It is a successful early termination,
//     never an error and never a division by zero: Arnoldi returns the
//     truncated basis (Steps < m) and GMRES solves exactly within the
//     exhausted subspace.
//   - GMRES has no restart mechanism: m bounds both memory and achievable
//     accuracy, and an undersized m yields the best approximation within
//     the requested subspace, not a non-convergence error.
//   - The residual history is non-increasing by construction, with
//     Residuals[0] = ‖b‖ before any step.
//   - All loops are explicit with pre-sized buffers; no recursion, no
//     reallocation per step. Inputs are never mutated.
package krylov
