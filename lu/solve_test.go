// SPDX-License-Identifier: MIT

package lu_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numera/lu"
	"github.com/katalvlaran/numera/matrix"
	"github.com/katalvlaran/numera/triangular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceSolve is an independent dense Gauss-Jordan solver used only as a
// test oracle; it shares no code with the package under test.
func referenceSolve(t *testing.T, a matrix.Matrix, b []float64) []float64 {
	t.Helper()
	n := a.Rows()
	require.Equal(t, n, a.Cols())
	require.Len(t, b, n)

	// Augmented working rows.
	aug := make([][]float64, n)
	for i := 0; i < n; i++ {
		aug[i] = make([]float64, n+1)
		for j := 0; j < n; j++ {
			v, err := a.At(i, j)
			require.NoError(t, err)
			aug[i][j] = v
		}
		aug[i][n] = b[i]
	}

	for k := 0; k < n; k++ {
		// Partial pivoting for the oracle as well.
		best := k
		for r := k + 1; r < n; r++ {
			if math.Abs(aug[r][k]) > math.Abs(aug[best][k]) {
				best = r
			}
		}
		aug[k], aug[best] = aug[best], aug[k]
		piv := aug[k][k]
		require.NotZero(t, piv, "oracle requires a nonsingular system")
		for j := k; j <= n; j++ {
			aug[k][j] /= piv
		}
		for r := 0; r < n; r++ {
			if r == k || aug[r][k] == 0 {
				continue
			}
			f := aug[r][k]
			for j := k; j <= n; j++ {
				aug[r][j] -= f * aug[k][j]
			}
		}
	}

	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = aug[i][n]
	}

	return x
}

// TestSolve_ConcreteScenario is the canonical 4×4 system: the pivoted
// factorization plus triangular solves must agree with an independent dense
// solve to within 100× machine epsilon.
func TestSolve_ConcreteScenario(t *testing.T) {
	a := mustDense(t, [][]float64{
		{1, 2, 3, 0},
		{-1, 1, 2, -1},
		{3, 1, 2, 4},
		{1, 1, 1, 1},
	})
	b := []float64{0.2, 2, 0, -0.2}

	want := referenceSolve(t, a, b)

	// Path 1: the Solve convenience.
	x, err := lu.Solve(a, b)
	require.NoError(t, err)

	// Path 2: explicit factorization + typed triangular dispatch.
	l, u, p, err := lu.PivotedFactor(a)
	require.NoError(t, err)
	bp, err := p.ApplyVec(b)
	require.NoError(t, err)
	y, err := triangular.ForwardSub(l, bp)
	require.NoError(t, err)
	x2, err := triangular.BackSub(u, y)
	require.NoError(t, err)

	const machEps = 2.220446049250313e-16
	tol := 100 * machEps
	for i := range want {
		assert.InDelta(t, want[i], x[i], tol, "Solve x[%d]", i)
		assert.InDelta(t, want[i], x2[i], tol, "factor+substitute x[%d]", i)
	}
}

// TestSolve_FailFast covers the dimension-mismatch contract.
func TestSolve_FailFast(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})

	_, err := lu.Solve(a, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = lu.Solve(nil, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = lu.Solve(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilVector)
}

// TestInverse_ProductIsIdentity verifies A·A⁻¹ ≈ I on a well-conditioned
// matrix that still requires pivoting.
func TestInverse_ProductIsIdentity(t *testing.T) {
	a := mustDense(t, [][]float64{
		{0, 2, 1},
		{3, 1, -1},
		{1, 1, 1},
	})

	inv, err := lu.Inverse(a)
	require.NoError(t, err)

	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	id, err := matrix.Identity(3)
	require.NoError(t, err)
	assert.Less(t, maxAbsDiff(t, prod, id), 1e-12, "A·A⁻¹ must be the identity")
}

// TestPermutation_Contracts covers bijection validation and row/vector
// application.
func TestPermutation_Contracts(t *testing.T) {
	_, err := lu.NewPermutation([]int{0, 2, 1})
	require.NoError(t, err)

	_, err = lu.NewPermutation([]int{0, 0, 1})
	assert.ErrorIs(t, err, lu.ErrNotBijection, "repeated index")

	_, err = lu.NewPermutation([]int{0, 3, 1})
	assert.ErrorIs(t, err, lu.ErrNotBijection, "out-of-range index")

	_, err = lu.NewPermutation(nil)
	assert.ErrorIs(t, err, lu.ErrNotBijection, "empty input")

	p, err := lu.NewPermutation([]int{2, 0, 1})
	require.NoError(t, err)

	v, err := p.ApplyVec([]float64{10, 20, 30})
	require.NoError(t, err)
	assert.Equal(t, []float64{30, 10, 20}, v)

	m := mustDense(t, [][]float64{{1, 1}, {2, 2}, {3, 3}})
	_, err = p.ApplyRows(m)
	require.NoError(t, err)

	_, err = p.ApplyVec([]float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
