// SPDX-License-Identifier: MIT
// Package matrix: multiplication and transpose kernels.
//
// Purpose:
//   - Standard matrix product with the cache-friendly i→k→j loop order.
//   - Full-materialization transpose.
//
// Notes:
//   - Both kernels validate strictly before allocating, return fresh Dense
//     results, and never mutate operands.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so callers can keep matching sentinels with errors.Is.
// Use only when err != nil; wrapping a nil cause is a caller bug.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate C zeroed.
//   - Stage 2: triple loop ordered i→k→j with A[i,k] cached per k. Row k of
//     B is then walked sequentially, which is friendlier to the cache than
//     the naive i→j→k order (column-strided reads of B).
//
// Behavior highlights:
//   - Parallel fan-out (above threshold) splits over i only: rows of C are
//     disjoint, whereas splitting over k would race on C[i,j].
//   - Zero A[i,k] entries skip the inner loop entirely.
//
// Inputs:
//   - a: left operand (r×n).
//   - b: right operand (n×c).
//
// Returns:
//   - *Dense: fresh C with shape (r×c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense, opts ...Option) (*Dense, error) {
	// Validate inputs via the canonical validator.
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	o := gatherOptions(opts...)
	aRows, aCols, bCols := a.rows, a.cols, b.cols
	out := make([]float64, aRows*bCols)

	// i→k→j with per-k caching of A[i,k]; fan-out over i only.
	parallelRows(aRows, aRows*aCols, o, func(lo, hi int) {
		var rowOffsetA, rowOffsetB, rowOffsetC int
		var aik float64
		for i := lo; i < hi; i++ {
			rowOffsetA = i * aCols
			rowOffsetC = i * bCols
			for k := 0; k < aCols; k++ {
				aik = a.data[rowOffsetA+k]
				if aik == 0 {
					continue // zero row entry contributes nothing
				}
				rowOffsetB = k * bCols
				for j := 0; j < bCols; j++ {
					out[rowOffsetC+j] += aik * b.data[rowOffsetB+j]
				}
			}
		}
	})

	return newDenseUnchecked(aRows, bCols, out), nil
}

// Transpose returns a new cols×rows matrix with out[j][i] = m[i][j].
// The receiver is never mutated.
//
// Determinism: fixed i→j traversal; per-cell writes are independent, so the
// optional fan-out over source rows has no observable effect.
//
// Errors:
//   - ErrNilMatrix (nil input).
//
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m *Dense, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	o := gatherOptions(opts...)
	rows, cols := m.rows, m.cols
	out := make([]float64, rows*cols)

	parallelRows(rows, rows*cols, o, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			base := i * cols
			for j := 0; j < cols; j++ {
				out[j*rows+i] = m.data[base+j]
			}
		}
	})

	return newDenseUnchecked(cols, rows, out), nil
}
