// SPDX-License-Identifier: MIT
// Package triangular: typed factor wrappers. Construction is the only place
// the zero-triangle invariant can be established, so both types keep their
// dense buffer private and expose read access plus invariant-checking writes.

package triangular

import (
	"errors"
	"math"

	"github.com/katalvlaran/numera/matrix"
)

var (
	// ErrNilFactor indicates a nil *Lower/*Upper receiver or argument.
	ErrNilFactor = errors.New("triangular: nil factor")

	// ErrNotTriangular signals that a matrix offered to LowerFromDense or
	// UpperFromDense has an entry beyond epsilon on the dead triangle.
	ErrNotTriangular = errors.New("triangular: entry outside triangle")

	// ErrDeadTriangleWrite is returned by Set when a caller attempts to write
	// a nonzero value strictly on the wrong side of the diagonal.
	ErrDeadTriangleWrite = errors.New("triangular: write outside triangle")
)

// Lower is an n×n lower-triangular factor: all entries strictly above the
// diagonal are exactly zero, by construction.
type Lower struct {
	m *matrix.Dense
}

// Upper is an n×n upper-triangular factor: all entries strictly below the
// diagonal are exactly zero, by construction.
type Upper struct {
	m *matrix.Dense
}

// NewLower allocates an n×n zeroed lower-triangular factor.
// Errors: matrix.ErrBadShape when n <= 0.
func NewLower(n int) (*Lower, error) {
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	return &Lower{m: m}, nil
}

// NewUpper allocates an n×n zeroed upper-triangular factor.
// Errors: matrix.ErrBadShape when n <= 0.
func NewUpper(n int) (*Upper, error) {
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	return &Upper{m: m}, nil
}

// LowerFromDense validates src against the lower-triangular invariant within
// eps and returns a factor over a private copy with the strict upper triangle
// snapped to exact zeros. The caller's matrix is never retained or mutated.
//
// Implementation:
//   - Stage 1: validate src non-nil and square; resolve numeric policy.
//   - Stage 2: scan the strict upper triangle; any |entry| > eps fails with
//     ErrNotTriangular; otherwise copy and zero the dead triangle. Under
//     matrix.WithValidateNaNInf, nonfinite entries are rejected first.
//
// Complexity: Time O(n^2), Space O(n^2).
func LowerFromDense(src matrix.Matrix, opts ...matrix.Option) (*Lower, error) {
	d, err := copyValidated(src, opts, false)
	if err != nil {
		return nil, err
	}

	return &Lower{m: d}, nil
}

// UpperFromDense is the upper-triangular counterpart of LowerFromDense.
// Complexity: Time O(n^2), Space O(n^2).
func UpperFromDense(src matrix.Matrix, opts ...matrix.Option) (*Upper, error) {
	d, err := copyValidated(src, opts, true)
	if err != nil {
		return nil, err
	}

	return &Upper{m: d}, nil
}

// copyValidated performs the shared scan-copy-snap for both FromDense paths.
// upper=true validates an upper factor (dead triangle below the diagonal).
func copyValidated(src matrix.Matrix, opts []matrix.Option, upper bool) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(src); err != nil {
		return nil, err
	}
	o := matrix.NewOptions(opts...)
	eps := o.Epsilon()
	if o.ValidateNaNInf() {
		if err := matrix.ValidateFinite(src); err != nil {
			return nil, err
		}
	}

	n := src.Rows()
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ = src.At(i, j)
			dead := j > i // entry above the diagonal
			if upper {
				dead = j < i // entry below the diagonal
			}
			if dead {
				if math.Abs(v) > eps {
					return nil, ErrNotTriangular
				}
				// Snap to an exact zero: the invariant is "exactly zero",
				// not "small".
				continue
			}
			_ = out.Set(i, j, v) // indices valid by loop construction
		}
	}

	return out, nil
}

// N returns the factor dimension.
func (l *Lower) N() int { return l.m.Rows() }

// N returns the factor dimension.
func (u *Upper) N() int { return u.m.Rows() }

// At reads L(i,j). Errors: matrix.ErrOutOfRange.
func (l *Lower) At(i, j int) (float64, error) { return l.m.At(i, j) }

// At reads U(i,j). Errors: matrix.ErrOutOfRange.
func (u *Upper) At(i, j int) (float64, error) { return u.m.At(i, j) }

// Set writes L(i,j) = v for j <= i; a nonzero write above the diagonal is
// rejected with ErrDeadTriangleWrite (a zero write there is a no-op).
func (l *Lower) Set(i, j int, v float64) error {
	if j > i {
		if v != 0 {
			return ErrDeadTriangleWrite
		}

		return nil
	}

	return l.m.Set(i, j, v)
}

// Set writes U(i,j) = v for j >= i; a nonzero write below the diagonal is
// rejected with ErrDeadTriangleWrite (a zero write there is a no-op).
func (u *Upper) Set(i, j int, v float64) error {
	if j < i {
		if v != 0 {
			return ErrDeadTriangleWrite
		}

		return nil
	}

	return u.m.Set(i, j, v)
}

// Dense returns a fresh dense copy of the factor (safe to mutate).
func (l *Lower) Dense() *matrix.Dense { return l.m.Clone().(*matrix.Dense) }

// Dense returns a fresh dense copy of the factor (safe to mutate).
func (u *Upper) Dense() *matrix.Dense { return u.m.Clone().(*matrix.Dense) }

// String implements fmt.Stringer.
func (l *Lower) String() string { return l.m.String() }

// String implements fmt.Stringer.
func (u *Upper) String() string { return u.m.String() }
