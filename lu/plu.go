// SPDX-License-Identifier: MIT
// Package lu: partially-pivoted outer-product factorization.

package lu

import (
	"math"

	"github.com/katalvlaran/numera/matrix"
	"github.com/katalvlaran/numera/triangular"
)

// PivotedFactor computes the row-pivoted factorization A[p,:] = L·U, with L
// unit lower triangular, U upper triangular and p the recorded pivot order.
//
// Implementation:
//   - Stage 1: validate A non-nil and square; clone into a private working
//     matrix.
//   - Stage 2: at step k, select the pivot row as the argmax of |entry| in
//     elimination column k among not-yet-used rows; record it in p[k]; copy
//     that row into row k of U; scale column k by the pivot into the raw
//     lower factor; subtract the outer product from the working matrix.
//   - Stage 3: un-permute the raw lower factor (rows reordered by p) so it is
//     exactly unit lower triangular, and materialize typed factors.
//
// Behavior highlights:
//   - Partial pivoting bounds the growth factor and avoids division by
//     near-zero pivots except for (numerically) singular inputs.
//   - Degenerate case: an all-zero (or, after an earlier zero pivot, NaN)
//     candidate column still yields a pivot index — the lowest unused row —
//     and the division produces zero or NaN entries. That is caller error
//     (singular matrix) and is NOT signaled specially — factors propagate
//     the nonfinite values and p remains a valid bijection.
//   - The dead triangles of L and U hold exact zeros: elimination residue
//     (mathematically zero, numerically tiny) is never written through.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//
// Determinism:
//   - Fixed scan orders; pivot ties resolve to the lowest unused row index.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func PivotedFactor(a matrix.Matrix) (*triangular.Lower, *triangular.Upper, *Permutation, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, nil, nil, matrix.OpErrorf(opPivotedFactor, err)
	}
	n := a.Rows()

	work := cloneRows(a)

	// Raw (row-unordered) lower factor and the final upper factor.
	lraw := make([][]float64, n)
	for i := range lraw {
		lraw[i] = make([]float64, n)
	}
	u, err := triangular.NewUpper(n)
	if err != nil {
		return nil, nil, nil, matrix.OpErrorf(opPivotedFactor, err)
	}

	p := make([]int, n)
	used := make([]bool, n)

	var k, r, i, j, pk int
	var best, av, pivot float64
	for k = 0; k < n; k++ {
		// Pivot search: largest |entry| of column k among unused rows; ties
		// and degenerate columns (all zero, or NaN from an earlier zero
		// pivot — where every > comparison is false) resolve to the lowest
		// unused index, so p stays a valid bijection and nonfinite values
		// flow into the factors instead of derailing the search.
		pk = -1
		for r = 0; r < n; r++ {
			if used[r] {
				continue
			}
			if pk == -1 {
				pk = r
				best = math.Abs(work[r][k])
				continue
			}
			av = math.Abs(work[r][k])
			if av > best {
				best, pk = av, r
			}
		}
		p[k] = pk
		used[pk] = true
		pivot = work[pk][k]

		// Row p[k] of the working matrix becomes row k of U (live triangle
		// only; the leading residue is mathematically zero).
		for j = k; j < n; j++ {
			_ = u.Set(k, j, work[pk][j])
		}
		// Column k scaled by the pivot becomes column k of the raw L.
		for r = 0; r < n; r++ {
			lraw[r][k] = work[r][k] / pivot
		}
		// Outer-product update of the not-yet-used rows. Used rows (the
		// pivot row included) are mathematically zero in the remaining
		// working matrix and are never read in a live position again, so
		// they are skipped — this also keeps the pivot row intact while it
		// serves as the subtrahend.
		for i = 0; i < n; i++ {
			if used[i] {
				continue
			}
			for j = k; j < n; j++ {
				work[i][j] -= lraw[i][k] * work[pk][j]
			}
		}
	}

	// Un-permute the raw lower factor: L[i,:] = Lraw[p[i],:], writing only
	// the live triangle so the dead triangle stays exactly zero. The diagonal
	// is exactly 1 (each pivot row divides by itself).
	l, err := triangular.NewLower(n)
	if err != nil {
		return nil, nil, nil, matrix.OpErrorf(opPivotedFactor, err)
	}
	for i = 0; i < n; i++ {
		src := p[i]
		for j = 0; j <= i; j++ {
			_ = l.Set(i, j, lraw[src][j])
		}
	}

	perm, err := NewPermutation(p)
	if err != nil {
		return nil, nil, nil, matrix.OpErrorf(opPivotedFactor, err)
	}

	return l, u, perm, nil
}
