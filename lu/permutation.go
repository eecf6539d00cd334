// SPDX-License-Identifier: MIT
// Package lu: row permutations. A Permutation is an ordered sequence of
// integer indices forming a bijection on {0,…,n−1}; applying it to a matrix
// reorders rows, i.e. ApplyRows(A)[i,:] = A[p[i],:].

package lu

import (
	"github.com/katalvlaran/numera/matrix"
)

// Permutation is a validated bijection on {0,…,n−1} used to record the row
// order chosen by partial pivoting. The index slice is private; construction
// through NewPermutation is the only way to establish the bijection
// invariant.
type Permutation struct {
	idx []int
}

// NewPermutation validates idx as a bijection and copies it.
// Implementation:
//   - Stage 1: reject nil/empty input.
//   - Stage 2: single O(n) pass with a seen-set: every index must lie in
//     [0,n) and appear exactly once.
//
// Errors:
//   - ErrNotBijection on out-of-range or repeated indices, or empty input.
//
// Complexity:
//   - Time O(n), Space O(n).
func NewPermutation(idx []int) (*Permutation, error) {
	n := len(idx)
	if n == 0 {
		return nil, ErrNotBijection
	}

	seen := make([]bool, n)
	for _, v := range idx {
		if v < 0 || v >= n || seen[v] {
			return nil, ErrNotBijection
		}
		seen[v] = true
	}

	cp := make([]int, n)
	copy(cp, idx)

	return &Permutation{idx: cp}, nil
}

// Len returns the permutation size.
func (p *Permutation) Len() int { return len(p.idx) }

// At returns p[i]. Errors: matrix.ErrOutOfRange.
func (p *Permutation) At(i int) (int, error) {
	if i < 0 || i >= len(p.idx) {
		return 0, matrix.ErrOutOfRange
	}

	return p.idx[i], nil
}

// Indices returns a fresh copy of the underlying index sequence.
func (p *Permutation) Indices() []int {
	out := make([]int, len(p.idx))
	copy(out, p.idx)

	return out
}

// ApplyRows returns a new matrix whose i-th row is row p[i] of m (A[p,:]).
// Errors: ErrNilPermutation, matrix.ErrNilMatrix, matrix.ErrDimensionMismatch
// when m.Rows() != Len().
// Complexity: Time O(r*c), Space O(r*c).
func (p *Permutation) ApplyRows(m matrix.Matrix) (*matrix.Dense, error) {
	if p == nil {
		return nil, ErrNilPermutation
	}
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}
	if m.Rows() != len(p.idx) {
		return nil, matrix.ErrDimensionMismatch
	}

	rows, cols := m.Rows(), m.Cols()
	out, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		src := p.idx[i]
		for j = 0; j < cols; j++ {
			v, _ = m.At(src, j) // indices valid by bijection invariant
			_ = out.Set(i, j, v)
		}
	}

	return out, nil
}

// ApplyVec returns the permuted vector (b[p[0]], …, b[p[n−1]]).
// Errors: ErrNilPermutation, matrix.ErrNilVector, matrix.ErrDimensionMismatch.
// Complexity: Time O(n), Space O(n).
func (p *Permutation) ApplyVec(b []float64) ([]float64, error) {
	if p == nil {
		return nil, ErrNilPermutation
	}
	if err := matrix.ValidateVecLen(b, len(p.idx)); err != nil {
		return nil, err
	}

	out := make([]float64, len(b))
	for i, src := range p.idx {
		out[i] = b[src]
	}

	return out, nil
}
