// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the operation boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver -> shape/index -> dimension mismatch -> numeric violations
// (division by zero, singularity).

var (
	// ErrInvalidShape is returned when a construction request is malformed:
	// an empty grid, ragged rows, or a non-positive dimension.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub on different shapes, Mul where a.Cols != b.Rows, stacking
	// with unaligned axes, or an inserted row/column of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrIndexOutOfRange indicates that an element index, slice bound, or
	// insertion position is outside the valid range. Public indexers (At/Set)
	// MUST return this, not panic.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrDivisionByZero is returned for scalar division by exactly zero, and
	// for raising a zero element to a non-positive power (0^p with p <= 0 is
	// undefined).
	ErrDivisionByZero = errors.New("matrix: division by zero")

	// ErrNotSquare signals that a square matrix was required (determinant,
	// inverse, trace) but the input wasn't.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when every pivot candidate in a column falls
	// below Epsilon during Gauss–Jordan inversion: the matrix has no inverse.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotVector signals that a vector-only statistic (Sum/SumPow/Mean) was
	// requested on a matrix that is neither a single row nor a single column.
	ErrNotVector = errors.New("matrix: matrix is not a vector")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
