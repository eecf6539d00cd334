// SPDX-License-Identifier: MIT

// Package matrix_test provides benchmarks for the core kernels, using
// deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/numera/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkV []float64
	sinkF float64
)

func benchDense(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err := m.Set(i, j, rng.NormFloat64()); err != nil {
				b.Fatal(err)
			}
		}
	}

	return m
}

func benchVec(b *testing.B, n int, seed int64) []float64 {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.NormFloat64()
	}

	return v
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := benchDense(b, n, 1337)
			y := benchDense(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := benchDense(b, n, 7)
			y := benchDense(b, n, 13)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMatVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := benchDense(b, n, 7)
			v := benchVec(b, n, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				out, err := matrix.MatVec(x, v)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = out
			}
		})
	}
}

func BenchmarkNorm2(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			v := benchVec(b, n*n, 5)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f, err := matrix.Norm2(v)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = f
			}
		})
	}
}
