// SPDX-License-Identifier: MIT

package krylov_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numera/krylov"
	"github.com/katalvlaran/numera/matrix"
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// testMatrix4 is the 4×4 system shared across the solver tests.
func testMatrix4(t *testing.T) *matrix.Dense {
	t.Helper()

	return mustDense(t, [][]float64{
		{1, 2, 3, 0},
		{-1, 1, 2, -1},
		{3, 1, 2, 4},
		{1, 1, 1, 1},
	})
}

// assertArnoldiInvariants checks Q's columns are pairwise orthonormal and
// that A·Q[:,1:k] ≈ Q·H entrywise.
func assertArnoldiInvariants(t *testing.T, a *matrix.Dense, res krylov.ArnoldiResult) {
	t.Helper()

	cols := res.Q.Cols()
	require.Equal(t, cols, res.H.Rows())
	require.Equal(t, res.Steps, res.H.Cols())

	for j1 := 0; j1 < cols; j1++ {
		for j2 := j1; j2 < cols; j2++ {
			c1, err := res.Q.Col(j1)
			require.NoError(t, err)
			c2, err := res.Q.Col(j2)
			require.NoError(t, err)
			dot, err := matrix.Dot(c1, c2)
			require.NoError(t, err)
			want := 0.0
			if j1 == j2 {
				want = 1.0
			}
			assert.InDelta(t, want, dot, 1e-12, "Q columns %d,%d", j1, j2)
		}
	}

	n := a.Rows()
	for j := 0; j < res.Steps; j++ {
		qj, err := res.Q.Col(j)
		require.NoError(t, err)
		aq, err := matrix.MatVec(a, qj)
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			want := 0.0
			for l := 0; l < cols; l++ {
				qil, atErr := res.Q.At(i, l)
				require.NoError(t, atErr)
				hlj, atErr := res.H.At(l, j)
				require.NoError(t, atErr)
				want += qil * hlj
			}
			assert.InDelta(t, want, aq[i], 1e-10, "A·Q vs Q·H at (%d,%d)", i, j)
		}
	}
}

func TestArnoldi_InvariantsForAllDimensions(t *testing.T) {
	a := testMatrix4(t)
	u := []float64{1, 1, 1, 1}

	for m := 1; m <= 4; m++ {
		res, err := krylov.Arnoldi(a, u, m)
		require.NoError(t, err, "m=%d", m)
		assertArnoldiInvariants(t, a, res)
	}
}

func TestArnoldi_FullRunShapes(t *testing.T) {
	a := testMatrix4(t)

	res, err := krylov.Arnoldi(a, []float64{1, 0, 0, 0}, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Steps)
	assert.Equal(t, 4, res.Q.Rows())
	assert.Equal(t, 4, res.Q.Cols()) // m+1 basis vectors
	assert.Equal(t, 4, res.H.Rows()) // (m+1)×m Hessenberg
	assert.Equal(t, 3, res.H.Cols())

	// Hessenberg invariant: zeros below the first subdiagonal.
	for j := 0; j < 3; j++ {
		for i := j + 2; i < 4; i++ {
			v, atErr := res.H.At(i, j)
			require.NoError(t, atErr)
			assert.Zero(t, v)
		}
	}
}

func TestArnoldi_BreakdownOnIdentity(t *testing.T) {
	// Every vector is an eigenvector of I: the subspace is exhausted after
	// one step, reported as a truncated success rather than an error.
	a, err := matrix.Identity(3)
	require.NoError(t, err)

	res, err := krylov.Arnoldi(a, []float64{2, -1, 0.5}, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Steps)
	assert.Equal(t, 1, res.Q.Cols())
	assert.Equal(t, 1, res.H.Rows())
	assert.Equal(t, 1, res.H.Cols())

	h00, err := res.H.At(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, h00, 1e-14) // Rayleigh quotient of I

	assertArnoldiInvariants(t, a, res)
}

func TestArnoldi_DoesNotMutateInputs(t *testing.T) {
	a := testMatrix4(t)
	before := a.Clone()
	u := []float64{1, 2, 3, 4}
	uBefore := append([]float64(nil), u...)

	_, err := krylov.Arnoldi(a, u, 4)
	require.NoError(t, err)

	assert.Equal(t, uBefore, u)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want, _ := before.At(i, j)
			got, _ := a.At(i, j)
			assert.Equal(t, want, got)
		}
	}
}

func TestArnoldi_FailFast(t *testing.T) {
	a := testMatrix4(t)
	rect := mustDense(t, [][]float64{{1, 0, 0}, {0, 1, 0}})

	_, err := krylov.Arnoldi(nil, []float64{1}, 1)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = krylov.Arnoldi(rect, []float64{1, 0}, 1)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = krylov.Arnoldi(a, []float64{1, 0}, 2)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = krylov.Arnoldi(a, []float64{1, 1, 1, 1}, 0)
	assert.ErrorIs(t, err, krylov.ErrBadSubspaceDim)

	_, err = krylov.Arnoldi(a, []float64{0, 0, 0, 0}, 2)
	assert.ErrorIs(t, err, krylov.ErrZeroStart)
}

func TestWithBreakdownTol_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { krylov.WithBreakdownTol(-1) })
	assert.NotPanics(t, func() { krylov.WithBreakdownTol(0) })
}

func TestArnoldi_CustomBreakdownTol(t *testing.T) {
	// An absurdly large tolerance declares breakdown at the first step,
	// truncating the basis to a single column.
	a := testMatrix4(t)

	res, err := krylov.Arnoldi(a, []float64{1, 1, 1, 1}, 4, krylov.WithBreakdownTol(100))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Steps)
	assert.Equal(t, 1, res.Q.Cols())
}
