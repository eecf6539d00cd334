// SPDX-License-Identifier: MIT

// Package lu provides dense LU factorizations for the numera engine: the
// unpivoted outer-product factorization, the partially-pivoted variant with
// an explicit row permutation, and the solve/inverse conveniences built on
// the triangular substitution solvers.
//
// 🚀 Operations:
//
//	• Factor(A)        — unpivoted outer-product LU: A = L·U, unit-diagonal L
//	• PivotedFactor(A) — partial pivoting: A[p,:] = L·U with permutation p
//	• Solve(A, b)      — pivoted factorization + forward/back substitution
//	• Inverse(A)       — explicit A⁻¹ via n triangular solve pairs
//
// ✨ Numerical contracts:
//
//   - Factor performs no pivoting: an exact-zero pivot is detected and
//     reported as ErrSingular; NEAR-zero pivots are not detected and degrade
//     the result numerically, exactly as the textbook algorithm does.
//   - PivotedFactor selects each pivot as the entry of largest magnitude in
//     the elimination column among not-yet-used rows, bounding the growth
//     factor. A fully zero candidate column is a caller error (singular
//     input): the argmax still picks an index and the division propagates
//     zero/NaN entries without a special signal.
//   - Factors are returned as typed *triangular.Lower / *triangular.Upper
//     values, so callers dispatch to the correct substitution directly.
//   - Inputs are never mutated; every call works on private copies.
package lu
