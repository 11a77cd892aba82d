// Package dense is a small library for dense, real-valued matrix
// computation — construction, arithmetic, decomposition and reshaping
// over rectangular float64 grids.
//
// 🚀 What is dense?
//
//	A row-major float64 matrix toolkit that brings together:
//		• Construction: literal grids, identity, constant-fill factories
//		• Arithmetic: element-wise add/sub, scalar forms in both orders,
//		  scaling, division, element-wise powers
//		• Products: cache-friendly matrix multiplication & transpose
//		• Decompositions: determinant (partial-pivot elimination) and
//		  inverse (Gauss–Jordan) with explicit singularity reporting
//		• Reshaping: row/column insertion, horizontal & vertical stacking,
//		  half-open submatrix extraction
//		• Statistics: vector sum/mean, trace
//		• Shuffling: reproducible, seedable in-place row permutation
//
// ✨ Why choose dense?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Fail-fast guarantees – every operation validates before it acts and
//     reports a distinguishable sentinel error
//   - Deterministic – fixed loop orders; optional data-parallel fan-out
//     never changes results or error semantics
//   - Pure Go core – no cgo, no hidden deps
//
// Everything lives in a single subpackage:
//
//	matrix/ — the Dense type and all operations
//
// A wall-clock benchmark harness ships as cmd/matbench.
//
//	go get github.com/katalvlaran/dense/matrix
package dense
