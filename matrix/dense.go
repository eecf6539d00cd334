// SPDX-License-Identifier: MIT
// Package matrix: Dense is the concrete, row-major implementation of the
// Matrix interface, storing elements in a flat slice for performance and
// cache friendliness.

package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Implementation:
//   - Stage 1: validate rows > 0 and cols > 0.
//   - Stage 2: allocate the flat backing slice.
//
// Errors:
//   - ErrBadShape on non-positive dimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions before allocating.
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom builds a Dense matrix by copying the given row slices.
// Implementation:
//   - Stage 1: validate src is non-empty and rectangular.
//   - Stage 2: allocate and copy row by row (src is never retained).
//
// Errors:
//   - ErrBadShape on empty input; ErrRaggedRows on unequal row lengths.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(src [][]float64) (*Dense, error) {
	// Reject empty sources outright.
	if len(src) == 0 || len(src[0]) == 0 {
		return nil, ErrBadShape
	}
	rows, cols := len(src), len(src[0])

	m := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
	for i, row := range src {
		// Every row must match the width of the first.
		if len(row) != cols {
			return nil, ErrRaggedRows
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
// Errors: ErrBadShape when n <= 0.
// Complexity: O(n^2).
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index.
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index.
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange on invalid indices. Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Errors: ErrOutOfRange on invalid indices. Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Row copies row i into a fresh slice.
// Errors: ErrOutOfRange on an invalid row index. Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col copies column j into a fresh slice.
// Errors: ErrOutOfRange on an invalid column index. Complexity: O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf("Col", 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
