// SPDX-License-Identifier: MIT

package krylov

import "math"

// givens is a plane rotation; applied to a pair (x, y) it maps to
// (c·x − s·y, s·x + c·y).
type givens struct {
	c, s float64
}

// drotg computes the rotation annihilating b against a: applying the result
// to (a, b) yields (r, 0) with |r| = √(a² + b²). The branch on |b| > |a|
// keeps the intermediate ratio ≤ 1 so squaring cannot overflow first.
func drotg(a, b float64) givens {
	if b == 0 {
		return givens{c: 1, s: 0}
	}
	if math.Abs(b) > math.Abs(a) {
		tmp := -a / b
		s := 1 / math.Sqrt(1+tmp*tmp)

		return givens{c: tmp * s, s: s}
	}
	tmp := -b / a
	c := 1 / math.Sqrt(1+tmp*tmp)

	return givens{c: c, s: tmp * c}
}

// rotvec applies g to the pair (x, y).
func rotvec(x, y float64, g givens) (rx, ry float64) {
	rx = g.c*x - g.s*y
	ry = g.s*x + g.c*y

	return rx, ry
}
