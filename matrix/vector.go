// SPDX-License-Identifier: MIT
// Package matrix: dense vector primitives. These are the shared building
// blocks of every iterative method in the library — Gram-Schmidt projections
// (Dot, AddScaled), normalization (Norm2, ScaleVec) and the ∞-norm machinery
// of the power iterations (NormInf, ArgMaxAbs). All functions are pure unless
// documented as in-place; the in-place ones (AddScaled, ScaleVec) exist so
// hot loops can run without per-step allocations, per the engine's pre-sized
// buffer policy.

package matrix

import "math"

// Operation tags for vector-level error wrapping.
const (
	opDot       = "Dot"
	opNorm      = "Norm"
	opArgMaxAbs = "ArgMaxAbs"
	opAddScaled = "AddScaled"
)

// Dot returns the inner product ⟨x, y⟩.
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: Time O(n), Space O(1).
func Dot(x, y []float64) (float64, error) {
	if err := ValidateVecNonEmpty(x); err != nil {
		return 0, OpErrorf(opDot, err)
	}
	if err := ValidateVecLen(y, len(x)); err != nil {
		return 0, OpErrorf(opDot, err)
	}

	acc := ZeroSum
	for i := range x { // fixed ascending order for deterministic rounding
		acc += x[i] * y[i]
	}

	return acc, nil
}

// Norm2 returns the Euclidean norm ‖x‖₂.
// Uses a scaled accumulation to avoid spurious overflow/underflow on
// extreme magnitudes (the same guard math.Hypot applies pairwise).
// Errors: ErrNilVector, ErrEmptyVector.
// Complexity: Time O(n), Space O(1).
func Norm2(x []float64) (float64, error) {
	if err := ValidateVecNonEmpty(x); err != nil {
		return 0, OpErrorf(opNorm, err)
	}

	var scale, ssq float64 = 0, 1
	for _, v := range x {
		if v == 0 {
			continue
		}
		av := math.Abs(v)
		if scale < av {
			r := scale / av
			ssq = 1 + ssq*r*r
			scale = av
		} else {
			r := av / scale
			ssq += r * r
		}
	}

	return scale * math.Sqrt(ssq), nil
}

// NormInf returns the maximum absolute entry ‖x‖∞.
// Errors: ErrNilVector, ErrEmptyVector.
// Complexity: Time O(n), Space O(1).
func NormInf(x []float64) (float64, error) {
	if err := ValidateVecNonEmpty(x); err != nil {
		return 0, OpErrorf(opNorm, err)
	}

	maxAbs := 0.0
	for _, v := range x {
		if av := math.Abs(v); av > maxAbs {
			maxAbs = av
		}
	}

	return maxAbs, nil
}

// ArgMaxAbs returns the index of the entry of largest absolute value.
// Ties resolve to the lowest index (deterministic scan order); an all-zero
// vector therefore yields index 0, matching the argmax-of-zeros behavior the
// pivoted factorization relies on.
// Errors: ErrNilVector, ErrEmptyVector.
// Complexity: Time O(n), Space O(1).
func ArgMaxAbs(x []float64) (int, error) {
	if err := ValidateVecNonEmpty(x); err != nil {
		return 0, OpErrorf(opArgMaxAbs, err)
	}

	best, bestAbs := 0, math.Abs(x[0])
	for i := 1; i < len(x); i++ {
		if av := math.Abs(x[i]); av > bestAbs {
			best, bestAbs = i, av
		}
	}

	return best, nil
}

// AddScaled performs the in-place AXPY update y ← y + alpha*x.
// The only mutating vector primitive besides ScaleVec; callers own y.
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: Time O(n), Space O(1).
func AddScaled(y []float64, alpha float64, x []float64) error {
	if err := ValidateVecNonEmpty(y); err != nil {
		return OpErrorf(opAddScaled, err)
	}
	if err := ValidateVecLen(x, len(y)); err != nil {
		return OpErrorf(opAddScaled, err)
	}

	for i := range y {
		y[i] += alpha * x[i]
	}

	return nil
}

// ScaleVec multiplies x in place by alpha.
// Complexity: Time O(n), Space O(1).
func ScaleVec(x []float64, alpha float64) {
	for i := range x {
		x[i] *= alpha
	}
}

// CloneVec returns a fresh copy of x (nil in → nil out).
// Complexity: Time O(n), Space O(n).
func CloneVec(x []float64) []float64 {
	if x == nil {
		return nil
	}
	out := make([]float64, len(x))
	copy(out, x)

	return out
}
