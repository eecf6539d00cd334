// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numera/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDot_InnerProduct checks ⟨x,y⟩ and length validation.
func TestDot_InnerProduct(t *testing.T) {
	d, err := matrix.Dot([]float64{1, 2, 3}, []float64{4, -5, 6})
	require.NoError(t, err)
	assert.InDelta(t, 12.0, d, 1e-12)

	_, err = matrix.Dot([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Dot(nil, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrNilVector)
}

// TestNorm2_EuclideanNorm includes the 3-4-5 triangle and an extreme-scale
// vector that would overflow a naive sum of squares.
func TestNorm2_EuclideanNorm(t *testing.T) {
	n, err := matrix.Norm2([]float64{3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, n, 1e-12)

	n, err = matrix.Norm2([]float64{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, n)

	// 1e200 squared overflows float64; the scaled accumulation must not.
	n, err = matrix.Norm2([]float64{1e200, 1e200})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2*1e200, n, 1e188)

	_, err = matrix.Norm2([]float64{})
	assert.ErrorIs(t, err, matrix.ErrEmptyVector)
}

// TestNormInf_MaxMagnitude verifies the ∞-norm on mixed signs.
func TestNormInf_MaxMagnitude(t *testing.T) {
	n, err := matrix.NormInf([]float64{1, -7, 3})
	require.NoError(t, err)
	assert.Equal(t, 7.0, n)
}

// TestArgMaxAbs_Deterministic covers magnitude selection, tie-breaking to
// the lowest index, and the all-zero argmax the pivot search relies on.
func TestArgMaxAbs_Deterministic(t *testing.T) {
	i, err := matrix.ArgMaxAbs([]float64{1, -7, 3})
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	i, err = matrix.ArgMaxAbs([]float64{-2, 2})
	require.NoError(t, err)
	assert.Equal(t, 0, i, "ties resolve to the lowest index")

	i, err = matrix.ArgMaxAbs([]float64{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, i, "argmax of all zeros is index 0")
}

// TestAddScaled_AXPY verifies the in-place update and its validation.
func TestAddScaled_AXPY(t *testing.T) {
	y := []float64{1, 2, 3}
	require.NoError(t, matrix.AddScaled(y, 2, []float64{1, 1, 1}))
	assert.Equal(t, []float64{3, 4, 5}, y)

	err := matrix.AddScaled(y, 1, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestScaleVec_CloneVec covers in-place scaling and deep copies.
func TestScaleVec_CloneVec(t *testing.T) {
	x := []float64{1, -2}
	matrix.ScaleVec(x, -3)
	assert.Equal(t, []float64{-3, 6}, x)

	c := matrix.CloneVec(x)
	c[0] = 0
	assert.Equal(t, -3.0, x[0], "CloneVec must not alias")

	assert.Nil(t, matrix.CloneVec(nil))
}
