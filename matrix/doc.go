// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major foundation for the numera
// numerical linear algebra engine: the Matrix interface, the concrete *Dense
// implementation backed by a flat []float64, element-wise and multiplicative
// kernels, and the vector primitives shared by every factorization and
// iterative method in the library.
//
// 🚀 What lives here?
//
//	• Dense storage: NewDense, NewDenseFrom, Identity — contiguous row-major
//	  float64 buffers for cache-friendly kernels
//	• Kernels: Add, Sub, Scale, Mul, Transpose, MatVec — strict fail-fast
//	  validation, *Dense fast-paths with a generic interface fallback
//	• Vector primitives: Dot, Norm2, NormInf, ArgMaxAbs, AddScaled, ScaleVec —
//	  the building blocks of Gram-Schmidt, power iteration and GMRES
//	• Validators: one canonical source of truth for nil/shape/length checks,
//	  returning plain sentinel errors for uniform errors.Is matching
//	• Numeric policy: functional options (WithEpsilon, NaN/Inf validation)
//	  resolved against documented Default* constants
//
// ✨ Design rules:
//
//   - Deterministic: fixed loop orders, no global state, no hidden randomness
//   - Non-mutating: every kernel allocates a fresh result; caller data is
//     never written through
//   - Fail-fast: dimension mismatches surface as sentinel errors, never as
//     silent truncation or padding
//
// All higher-level packages (triangular, lu, eigen, krylov, qr) consume this
// package and nothing below it.
package matrix
