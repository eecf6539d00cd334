// SPDX-License-Identifier: MIT
// Package triangular: forward and back substitution.
//
// Both solvers are the leaf primitives of the engine — every
// factorization-based solve (lu.Solve, lu.Inverse, eigen.InvIter) lands here.
// They follow the outer-product factorizations' convention: the caller
// guarantees a nonzero diagonal; a zero diagonal entry simply divides through
// and propagates ±Inf/NaN.

package triangular

import (
	"github.com/katalvlaran/numera/matrix"
)

// Operation tags for unified error wrapping.
const (
	opForwardSub = "ForwardSub"
	opBackSub    = "BackSub"
)

// ForwardSub solves the lower-triangular system Lx = b by forward
// substitution and returns a freshly allocated solution vector.
//
// Implementation:
//   - Stage 1: validate L non-nil and len(b) == n (fail fast, no padding).
//   - Stage 2: top-to-bottom rows: x[i] = (b[i] − Σ_{j<i} L[i,j]·x[j]) / L[i,i].
//
// Behavior highlights:
//   - Pure: neither L nor b is mutated; x is a fresh allocation.
//   - A zero L[i,i] is NOT trapped — the division yields ±Inf/NaN per IEEE 754
//     and propagates (caller validates nonsingularity upstream if needed).
//
// Errors:
//   - ErrNilFactor, matrix.ErrNilVector, matrix.ErrDimensionMismatch.
//
// Determinism:
//   - Fixed i→j loop order; identical results for identical inputs.
//
// Complexity:
//   - Time O(n^2), Space O(n) for x.
func ForwardSub(l *Lower, b []float64) ([]float64, error) {
	if l == nil {
		return nil, matrix.OpErrorf(opForwardSub, ErrNilFactor)
	}
	n := l.N()
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, matrix.OpErrorf(opForwardSub, err)
	}

	x := make([]float64, n)
	var i, j int
	var sum, lij, lii float64
	for i = 0; i < n; i++ {
		sum = matrix.ZeroSum
		for j = 0; j < i; j++ {
			lij, _ = l.At(i, j) // indices valid by loop construction
			sum += lij * x[j]
		}
		lii, _ = l.At(i, i)
		x[i] = (b[i] - sum) / lii
	}

	return x, nil
}

// BackSub solves the upper-triangular system Ux = b by back substitution,
// bottom-to-top: x[i] = (b[i] − Σ_{j>i} U[i,j]·x[j]) / U[i,i]. The same
// purity, zero-diagonal and determinism contracts as ForwardSub apply.
//
// Errors:
//   - ErrNilFactor, matrix.ErrNilVector, matrix.ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n^2), Space O(n) for x.
func BackSub(u *Upper, b []float64) ([]float64, error) {
	if u == nil {
		return nil, matrix.OpErrorf(opBackSub, ErrNilFactor)
	}
	n := u.N()
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, matrix.OpErrorf(opBackSub, err)
	}

	x := make([]float64, n)
	var i, j int
	var sum, uij, uii float64
	for i = n - 1; i >= 0; i-- {
		sum = matrix.ZeroSum
		for j = i + 1; j < n; j++ {
			uij, _ = u.At(i, j)
			sum += uij * x[j]
		}
		uii, _ = u.At(i, i)
		x[i] = (b[i] - sum) / uii
	}

	return x, nil
}
