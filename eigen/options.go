// SPDX-License-Identifier: MIT

// Package eigen: functional configuration for the iterative methods.
// Mirrors the matrix package convention: documented defaults, WithX
// constructors that panic only on programmer error, gatherOptions resolver
// with last-writer-wins semantics.

package eigen

import (
	"math/rand"

	"github.com/katalvlaran/numera/matrix"
)

// DefaultStartSeed seeds the pseudo-random starting vector used when the
// caller supplies none. Fixed so that every run of the same call produces
// the same estimate sequence.
const DefaultStartSeed int64 = 0x6e756d65 // "nume"

const panicStartVectorEmpty = "eigen: WithStartVector: vector must be non-empty"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	start []float64 // nil ⇒ seeded pseudo-random start
}

// WithStartVector overrides the seeded pseudo-random starting vector.
// The slice is copied; length must match the matrix dimension at call time
// (checked by the consuming operation, which fails with ErrBadStartVector).
// Panics on an empty slice (programmer error).
// Complexity: O(n) for the defensive copy.
func WithStartVector(x []float64) Option {
	if len(x) == 0 {
		panic(panicStartVectorEmpty)
	}
	cp := matrix.CloneVec(x)

	return func(o *options) { o.start = cp }
}

// gatherOptions applies user-provided setters on top of defaults.
func gatherOptions(user ...Option) options {
	var o options
	for _, set := range user {
		set(&o)
	}

	return o
}

// startVector resolves the starting vector for an n-dimensional iteration:
// the caller's override when present (validated), otherwise a reproducible
// seeded pseudo-random vector. Either way the result is freshly allocated
// and normalized so its largest-magnitude component equals ±1.
func (o options) startVector(n int) ([]float64, error) {
	var x []float64
	if o.start != nil {
		if len(o.start) != n {
			return nil, ErrBadStartVector
		}
		x = matrix.CloneVec(o.start)
	} else {
		rng := rand.New(rand.NewSource(DefaultStartSeed))
		x = make([]float64, n)
		for i := 0; i < n; i++ {
			x[i] = 2*rng.Float64() - 1 // uniform in [-1, 1)
		}
	}

	// ∞-norm normalization; a zero vector cannot be normalized.
	norm, err := matrix.NormInf(x)
	if err != nil {
		return nil, err
	}
	if norm == 0 {
		return nil, ErrBadStartVector
	}
	matrix.ScaleVec(x, 1/norm)

	return x, nil
}
