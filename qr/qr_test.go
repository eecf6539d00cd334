// SPDX-License-Identifier: MIT

package qr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numera/matrix"
	"github.com/katalvlaran/numera/qr"
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

func TestFactor_Reconstructs(t *testing.T) {
	a := mustDense(t, [][]float64{
		{1, 2, 3, 0},
		{-1, 1, 2, -1},
		{3, 1, 2, 4},
		{1, 1, 1, 1},
	})

	q, r, err := qr.Factor(a)
	require.NoError(t, err)

	// A = Qᵀ·R.
	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	back, err := matrix.Mul(qt, r.Dense())
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want, _ := a.At(i, j)
			got, _ := back.At(i, j)
			assert.InDelta(t, want, got, 1e-12, "(%d,%d)", i, j)
		}
	}
}

func TestFactor_QOrthogonal(t *testing.T) {
	a := mustDense(t, [][]float64{
		{2, -1, 0},
		{-1, 2, -1},
		{0, -1, 2},
	})

	q, _, err := qr.Factor(a)
	require.NoError(t, err)

	// Q·Qᵀ = I.
	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	prod, err := matrix.Mul(q, qt)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			got, _ := prod.At(i, j)
			assert.InDelta(t, want, got, 1e-12)
		}
	}
}

func TestFactor_RExactlyUpperTriangular(t *testing.T) {
	a := mustDense(t, [][]float64{
		{4, 3},
		{3, -4},
	})

	_, r, err := qr.Factor(a)
	require.NoError(t, err)
	for i := 1; i < 2; i++ {
		for j := 0; j < i; j++ {
			v, atErr := r.At(i, j)
			require.NoError(t, atErr)
			assert.Zero(t, v) // exactly zero, not merely small
		}
	}
}

func TestFactor_DoesNotMutateInput(t *testing.T) {
	a := mustDense(t, [][]float64{
		{1, 2},
		{3, 4},
	})

	_, _, err := qr.Factor(a)
	require.NoError(t, err)
	v, _ := a.At(1, 0)
	assert.Equal(t, 3.0, v)
}

func TestFactor_FailFast(t *testing.T) {
	rect := mustDense(t, [][]float64{{1, 0, 0}, {0, 1, 0}})

	_, _, err := qr.Factor(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, _, err = qr.Factor(rect)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestFactor_ZeroColumnSkipped(t *testing.T) {
	// A singular matrix with an all-zero column still factors; R simply
	// carries the zero column through.
	a := mustDense(t, [][]float64{
		{1, 0, 2},
		{0, 0, 1},
		{2, 0, 0},
	})

	q, r, err := qr.Factor(a)
	require.NoError(t, err)
	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	back, err := matrix.Mul(qt, r.Dense())
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want, _ := a.At(i, j)
			got, _ := back.At(i, j)
			assert.InDelta(t, want, got, 1e-12)
		}
	}
}
