// SPDX-License-Identifier: MIT

// Package qr provides Householder QR factorization of square dense
// matrices.
//
// Factor returns the orthogonal reflection accumulator Q with Q·A = R, so
// A = Qᵀ·R, together with R as a typed *triangular.Upper whose dead
// triangle is exactly zero. The subdiagonal residue a reflection leaves
// behind is mathematically zero and is snapped before R is wrapped.
//
// Used alongside the Krylov methods as an independent orthogonality
// reference and by callers needing a full orthogonal decomposition rather
// than a Krylov basis.
package qr
