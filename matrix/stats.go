// SPDX-License-Identifier: MIT
// Package matrix: elementary statistics — vector sum/mean and trace.
//
// Purpose:
//   - Sum and SumPow over row (1×K) or column (K×1) vectors.
//   - Mean as Sum divided by vector length.
//   - Trace of a square matrix.
//
// Notes:
//   - Vector-only guards return ErrNotVector; trace requires a square input.
//   - SumPow shares Pow's zero-base guard: 0^p with p <= 0 is rejected
//     before any accumulation (validate-then-act).

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSum    = "Sum"
	opSumPow = "SumPow"
	opMean   = "Mean"
	opTrace  = "Trace"
)

// Sum returns the sum of all elements of a row or column vector.
// For a valid vector the flat buffer IS the vector, regardless of
// orientation, so a single pass suffices.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrNotVector (neither 1×K nor K×1).
//
// Complexity: Time O(k), Space O(1).
func Sum(m *Dense) (float64, error) {
	if err := ValidateVector(m); err != nil {
		return 0, matrixErrorf(opSum, err)
	}

	total := 0.0
	for _, v := range m.data {
		total += v
	}

	return total, nil
}

// SumPow raises every vector element to the power p before summing.
//
// Implementation:
//   - Stage 1: vector guard, then pre-scan for 0^p with p <= 0 so the error
//     surfaces before any accumulation.
//   - Stage 2: single accumulation pass via math.Pow.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrNotVector (neither 1×K nor K×1).
//   - ErrDivisionByZero when an element is 0 and p <= 0.
//
// Complexity: Time O(k), Space O(1).
func SumPow(m *Dense, p float64) (float64, error) {
	if err := ValidateVector(m); err != nil {
		return 0, matrixErrorf(opSumPow, err)
	}
	if p <= 0 {
		for _, v := range m.data {
			if v == 0 {
				return 0, matrixErrorf(opSumPow, ErrDivisionByZero)
			}
		}
	}

	total := 0.0
	for _, v := range m.data {
		total += math.Pow(v, p)
	}

	return total, nil
}

// Mean returns Sum(m) divided by the vector length.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrNotVector (neither 1×K nor K×1).
//
// Complexity: Time O(k), Space O(1).
func Mean(m *Dense) (float64, error) {
	total, err := Sum(m)
	if err != nil {
		return 0, matrixErrorf(opMean, err)
	}

	// The vector guard has passed, so one dimension is 1 and the other is
	// the length; len(data) is exactly that length.
	return total / float64(len(m.data)), nil
}

// Trace returns the sum of the main-diagonal entries of a square matrix.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrNotSquare (rows != cols).
//
// Complexity: Time O(n), Space O(1).
func Trace(m *Dense) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	tr := 0.0
	n := m.rows
	for i := 0; i < n; i++ {
		tr += m.data[i*n+i]
	}

	return tr, nil
}
