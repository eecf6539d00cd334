// SPDX-License-Identifier: MIT
// Package matrix: universal kernels over any Matrix implementation —
// element-wise addition and subtraction, matrix multiplication, transpose,
// scalar scaling and matrix-vector products. All kernels perform strict
// fail-fast validation, never mutate their operands, and return freshly
// allocated *Dense results. Each kernel has a *Dense fast-path operating on
// the flat backing slice and a generic At/Set fallback with fixed loop order.

package matrix

import "fmt"

// ZeroSum is the additive identity used to reset accumulators.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping (no magic strings).
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
)

// OpErrorf wraps err with an operation tag, preserving the original error via
// %w so errors.Is/As keep matching. Call only with err != nil. Higher-level
// packages (lu, eigen, krylov) reuse it for the same "Op: underlying" shape.
func OpErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Shared validation/allocation for Add and Sub; operands are not mutated.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	// Validate both operands exist and are conformable.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, OpErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, OpErrorf(opTag, err)
	}

	// Fast path: both *Dense → single flat loop over the backing slices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, _ = a.At(i, j) // indices valid by loop construction
			bv, _ = b.At(i, j)
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns a new matrix whose elements are alpha * m[i,j].
// NaN/Inf in alpha propagate (numeric policy is the caller's concern).
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, OpErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, OpErrorf(opScale, err)
	}

	// Fast path on the flat slice.
	if dm, ok := m.(*Dense); ok {
		for idx := range res.data {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	// Fallback with fixed i→j order.
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j)
			res.data[i*cols+j] = v * alpha
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: validate A, B non-nil and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: *Dense×*Dense uses i→k→j with row-major strides and zero-skip;
//     otherwise a fixed i→j→k interface loop.
//
// Determinism:
//   - Fixed loop orders; identical results for identical inputs.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, OpErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, OpErrorf(opMul, err)
	}

	var (
		i, j, k         int
		av, bv, current float64
	)

	// Fast path for two Dense matrices: row-major i→k→j accumulation.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowA, rowB, rowR int
			for i = 0; i < aRows; i++ {
				rowA = i * aCols
				rowR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowR+j] += av * db.data[rowB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple loop (i→j→k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, _ = a.At(i, k)
				if av == 0 {
					continue
				}
				bv, _ = b.At(k, j)
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, OpErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, OpErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var base int
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[base+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j)
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Errors: ErrNilMatrix, ErrNilVector, ErrDimensionMismatch.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, OpErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, OpErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast path: flat row-major dot products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface dot products via At.
	var i, j int
	var mv float64
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, _ = m.At(i, j)
			y[i] += mv * x[j]
		}
	}

	return y, nil
}
