// Package matrix provides dense, real-valued matrix computation over
// row-major float64 grids.
//
// The package exposes:
//
//   - Dense — the single concrete matrix type (validated construction,
//     identity/constant factories, deep-copy semantics).
//   - Element-wise and scalar arithmetic with both scalar operand orders.
//   - Cache-friendly multiplication (i→k→j) and transpose.
//   - Determinant via partial-pivot elimination and inverse via
//     Gauss–Jordan, both reporting singularity explicitly.
//   - Structural reshaping: row/column insertion, stacking, half-open
//     submatrix extraction.
//   - Vector statistics (sum, mean) and trace.
//   - Reproducible in-place row shuffling with an injectable generator.
//
// All operations validate before they act and return package sentinel
// errors matched via errors.Is. Approximate equality uses the package-wide
// tolerance Epsilon (1e-12); slice ranges are half-open [start, end).
package matrix
