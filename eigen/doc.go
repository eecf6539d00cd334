// SPDX-License-Identifier: MIT

// Package eigen provides dense eigenvalue iterations built on the matrix,
// triangular and lu kernels.
//
// 🚀 What lives here:
//
//   - PowerIter — dominant eigenpair by repeated normalized multiplication.
//     Each step applies x ← A·x, normalizes by the component of largest
//     magnitude (∞-norm element) and records the Rayleigh-like estimate
//     y[m]/x[m]. Converges linearly at rate |λ₂/λ₁|.
//   - InvIter — eigenpair nearest a caller-supplied shift s. One pivoted LU
//     of (A − s·I) up front, then two triangular solves per step; the
//     estimate is x[m]/y[m] + s. Closeness of s to an eigenvalue accelerates
//     convergence; s exactly equal to an eigenvalue surfaces as nonfinite
//     propagation, not as an error.
//   - Jacobi — full symmetric eigendecomposition by cyclic rotation sweeps;
//     the independent reference for the iterative methods and the tool of
//     choice when the caller holds a symmetric matrix.
//
// ✨ Contracts:
//
//   - Both iterations run for exactly numiter steps and return the full
//     estimate sequence plus the final eigenvector estimate in a History
//     value. No convergence test, no early exit: degraded results for
//     ill-conditioned or defective inputs are returned as-is and judging
//     them is the caller's job.
//   - The default starting vector is a seeded pseudo-random unit vector
//     (∞-norm), identical across runs. Override with WithStartVector.
//   - Dimension mismatches fail fast with sentinel errors; a zero or
//     near-zero normalizing component is NOT trapped and propagates as
//     ±Inf/NaN exactly as the arithmetic dictates.
//   - Inputs are never mutated; every returned slice is freshly allocated.
package eigen
