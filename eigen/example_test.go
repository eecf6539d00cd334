// SPDX-License-Identifier: MIT

package eigen_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/numera/eigen"
	"github.com/katalvlaran/numera/matrix"
)

// ExamplePowerIter finds the dominant eigenvalue of a diagonal matrix.
// The explicit starting vector makes every step exact.
func ExamplePowerIter() {
	a, _ := matrix.NewDenseFrom([][]float64{
		{3, 0},
		{0, 1},
	})

	hist, _ := eigen.PowerIter(a, 10, eigen.WithStartVector([]float64{1, 0.5}))
	fmt.Printf("dominant eigenvalue ≈ %.4f\n", hist.Last())
	// Output:
	// dominant eigenvalue ≈ 3.0000
}

// ExampleInvIter locks onto the eigenvalue nearest the shift, not the
// dominant one.
func ExampleInvIter() {
	a, _ := matrix.NewDenseFrom([][]float64{
		{3, 0},
		{0, 1},
	})

	hist, _ := eigen.InvIter(a, 0.8, 10, eigen.WithStartVector([]float64{1, 1}))
	fmt.Printf("eigenvalue nearest 0.8 ≈ %.4f\n", hist.Last())
	// Output:
	// eigenvalue nearest 0.8 ≈ 1.0000
}

// ExampleJacobi decomposes a symmetric matrix completely.
func ExampleJacobi() {
	a, _ := matrix.NewDenseFrom([][]float64{
		{2, 1},
		{1, 2},
	})

	eigs, _, _ := eigen.Jacobi(a, 1e-12, 100)
	sort.Float64s(eigs)
	fmt.Printf("spectrum: %.4f %.4f\n", eigs[0], eigs[1])
	// Output:
	// spectrum: 1.0000 3.0000
}
