// SPDX-License-Identifier: MIT
// Package matrix: decomposition-based determinant and inverse.
//
// Purpose:
//   - Determinant via LU-style Gaussian elimination with partial pivoting
//     (numerically stable for well-conditioned inputs, O(n³)).
//   - Inverse via Gauss–Jordan elimination on an identity-augmented copy.
//   - A private recursive cofactor expansion retained purely as a
//     small-matrix reference oracle (O(n!) — never the production path).
//
// Notes:
//   - Both public kernels work on copies; the input matrix is never mutated.
//   - Pivot magnitudes below Epsilon mean singularity: Determinant
//     short-circuits to exactly 0.0, Inverse reports ErrSingular.

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
)

// swapRowsFlat exchanges rows a and b of an n-column flat buffer in place.
// Complexity: O(n).
func swapRowsFlat(data []float64, cols, a, b int) {
	ra := data[a*cols : (a+1)*cols]
	rb := data[b*cols : (b+1)*cols]
	for j := 0; j < cols; j++ {
		ra[j], rb[j] = rb[j], ra[j]
	}
}

// Determinant computes det(m) via partial-pivot elimination on a working copy.
//
// Implementation:
//   - Stage 1: Validate non-nil and square; copy the backing buffer.
//   - Stage 2: for each pivot column i, select the row i..n-1 with the
//     largest |entry| in column i. A pivot magnitude below Epsilon means the
//     column is (numerically) linearly dependent — the determinant is
//     exactly 0.0, returned immediately.
//   - Stage 3: swap the pivot row into place (counting swaps), then
//     eliminate below the pivot with multipliers L[j][i] = A[j][i]/A[i][i].
//   - Stage 4: det = (−1)^swaps · Π diag.
//
// Behavior highlights:
//   - Partial pivoting keeps multipliers ≤ 1 in magnitude, which is what
//     makes this numerically stable where plain elimination is not.
//   - Deterministic pivot scan order (first maximal entry wins).
//
// Inputs:
//   - m: square matrix (n×n).
//
// Returns:
//   - float64: the determinant; exactly 0.0 for singular input.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrNotSquare (rows != cols).
//
// Complexity: Time O(n³), Space O(n²) for the working copy.
func Determinant(m *Dense) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	// Work on a copy; the input stays untouched.
	n := m.rows
	lu := make([]float64, len(m.data))
	copy(lu, m.data)

	numSwaps := 0
	for i := 0; i < n; i++ {
		// Pivot scan: largest |entry| in column i among rows i..n-1.
		maxVal := math.Abs(lu[i*n+i])
		pivotRow := i
		for k := i + 1; k < n; k++ {
			if v := math.Abs(lu[k*n+i]); v > maxVal {
				maxVal, pivotRow = v, k
			}
		}

		// Singular short-circuit: no usable pivot in this column.
		if maxVal < Epsilon {
			return 0.0, nil
		}

		// Bring the pivot row into position, tracking swap parity.
		if pivotRow != i {
			swapRowsFlat(lu, n, i, pivotRow)
			numSwaps++
		}

		// Eliminate below the pivot.
		pivot := lu[i*n+i]
		for j := i + 1; j < n; j++ {
			mult := lu[j*n+i] / pivot
			lu[j*n+i] = mult // store the multiplier in L's slot
			for k := i + 1; k < n; k++ {
				lu[j*n+k] -= mult * lu[i*n+k]
			}
		}
	}

	// Sign from swap parity, magnitude from the diagonal product.
	det := 1.0
	if numSwaps%2 == 1 {
		det = -1.0
	}
	for i := 0; i < n; i++ {
		det *= lu[i*n+i]
	}

	return det, nil
}

// Inverse computes A⁻¹ via Gauss–Jordan elimination with partial pivoting,
// augmenting a working copy of A with the identity.
//
// Implementation:
//   - Stage 1: Validate non-nil and square; copy A, build I.
//   - Stage 2: for each pivot column i: select the largest |entry| in rows
//     i..n-1 (ErrSingular below Epsilon); swap the chosen row into place in
//     BOTH matrices; normalize the pivot row; eliminate every other row.
//   - Stage 3: after all columns, the accumulator holds A⁻¹.
//
// Behavior highlights:
//   - Post-condition (verified in tests, not enforced here):
//     Mul(A, Inverse(A)) ≈ I within Epsilon.
//   - Validate-then-act: the error surfaces before any result escapes.
//
// Inputs:
//   - m: square matrix (n×n).
//
// Returns:
//   - *Dense: fresh n×n inverse.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrNotSquare (rows != cols).
//   - ErrSingular when the best pivot magnitude collapses below Epsilon.
//
// Complexity: Time O(n³), Space O(n²).
func Inverse(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Working copy A and identity-turned-inverse accumulator.
	n := m.rows
	a := make([]float64, len(m.data))
	copy(a, m.data)
	inv := make([]float64, n*n)
	for i := 0; i < n; i++ {
		inv[i*n+i] = 1.0
	}

	for i := 0; i < n; i++ {
		// Partial pivoting: the row with the largest |entry| in column i.
		pivotRow := i
		for j := i + 1; j < n; j++ {
			if math.Abs(a[j*n+i]) > math.Abs(a[pivotRow*n+i]) {
				pivotRow = j
			}
		}
		if math.Abs(a[pivotRow*n+i]) < Epsilon {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}

		// Swap into place in both the working matrix and the accumulator.
		if pivotRow != i {
			swapRowsFlat(a, n, i, pivotRow)
			swapRowsFlat(inv, n, i, pivotRow)
		}

		// Normalize the pivot row in both matrices.
		pivot := a[i*n+i]
		for j := 0; j < n; j++ {
			a[i*n+j] /= pivot
			inv[i*n+j] /= pivot
		}

		// Eliminate column i from every other row.
		for k := 0; k < n; k++ {
			if k == i {
				continue
			}
			factor := a[k*n+i]
			if factor == 0 {
				continue // already eliminated
			}
			for j := 0; j < n; j++ {
				a[k*n+j] -= factor * a[i*n+j]
				inv[k*n+j] -= factor * inv[i*n+j]
			}
		}
	}

	return newDenseUnchecked(n, n, inv), nil
}

// cofactorDeterminant computes det(m) by recursive cofactor expansion along
// the first row. O(n!) — kept unexported strictly as a reference oracle for
// cross-checking the elimination path on tiny matrices. Assumes m is square.
func cofactorDeterminant(m *Dense) float64 {
	n := m.rows
	if n == 1 {
		return m.data[0]
	}
	if n == 2 {
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}

	det := 0.0
	sign := 1.0
	for col := 0; col < n; col++ {
		// Build the minor that drops row 0 and column col.
		minor := make([]float64, (n-1)*(n-1))
		idx := 0
		for i := 1; i < n; i++ {
			for j := 0; j < n; j++ {
				if j == col {
					continue
				}
				minor[idx] = m.data[i*n+j]
				idx++
			}
		}
		det += sign * m.data[col] * cofactorDeterminant(newDenseUnchecked(n-1, n-1, minor))
		sign = -sign
	}

	return det
}
