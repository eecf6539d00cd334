// SPDX-License-Identifier: MIT

// Package triangular provides typed lower- and upper-triangular factors and
// the forward/back substitution solvers that every factorization-based solve
// in numera dispatches to.
//
// 🚀 Why typed factors?
//
//	A *Lower or *Upper is a capability wrapper around a dense buffer whose
//	zero-triangle invariant is enforced at construction: entries strictly on
//	the wrong side of the diagonal are exactly zero, not merely small. A
//	caller holding a *Lower therefore knows ForwardSub is the correct solve,
//	and the dispatch happens at compile time rather than by runtime type
//	inspection.
//
// ✨ Contracts:
//
//   - ForwardSub(L, b) solves Lx = b top-to-bottom; BackSub(U, b) solves
//     Ux = b bottom-to-top. Both are pure and never mutate inputs.
//   - A zero diagonal entry is NOT trapped: the division produces ±Inf or
//     NaN exactly as the arithmetic dictates. Supplying a nonsingular
//     triangular matrix is the caller's responsibility (validate upstream if
//     robustness is required).
//   - Dimension mismatches fail fast with sentinel errors.
//
// Construction paths:
//
//	NewLower / NewUpper — allocate a zeroed factor and write entries through
//	invariant-checking setters.
//	LowerFromDense / UpperFromDense — validate an existing matrix against the
//	invariant within the numeric policy epsilon, snapping the dead triangle
//	to exact zeros on the internal copy.
package triangular
