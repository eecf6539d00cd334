// Package numera is a from-scratch numerical linear algebra engine for
// dense, real-valued matrices — factorizations, triangular solves and
// Krylov-subspace iterations you can read, verify and embed.
//
// 🚀 What is numera?
//
//	A library of the standard numerical kernels, implemented openly rather
//	than wrapped from a black box:
//		• Dense primitives: matrices, vectors, products, norms
//		• Typed triangular factors + forward/back substitution
//		• LU factorization: unpivoted and row-pivoted (with permutation)
//		• Eigenvalue iterations: power, inverse (shifted), Jacobi
//		• Arnoldi process: orthonormal Krylov bases + Hessenberg projections
//		• GMRES: residual-minimizing solves with a full residual history
//		• Householder QR
//
// ✨ Why choose numera?
//
//   - Transparent – every algorithm is a short, documented Go file
//   - Deterministic – fixed loop orders, seeded start vectors, identical
//     output for identical input
//   - Honest numerics – singular inputs propagate NaN/Inf the way the
//     arithmetic dictates; structural violations fail fast with sentinels
//   - Pure computation – no persisted state, no network, no goroutines
//
// Under the hood, everything is organized per concern:
//
//	matrix/     — dense Matrix/Dense types, kernels, vector ops, validators
//	triangular/ — typed Lower/Upper factors, ForwardSub/BackSub
//	lu/         — Factor, PivotedFactor, Permutation, Solve, Inverse
//	eigen/      — PowerIter, InvIter, Jacobi
//	krylov/     — Arnoldi, GMRES
//	qr/         — Householder Factor
//
// Quick example, the whole pipeline in four calls:
//
//	L, U, p, _ := lu.PivotedFactor(a)
//	pb, _ := p.ApplyVec(b)
//	z, _ := triangular.ForwardSub(L, pb)
//	x, _ := triangular.BackSub(U, z)
//
// Dive into examples/ for runnable demos, including convergence plotting.
//
//	go get github.com/katalvlaran/numera
package numera
