// SPDX-License-Identifier: MIT
// Package matrix: element-wise and scalar arithmetic kernels.
//
// Purpose:
//   - Element-wise Add/Sub over same-shaped operands.
//   - Scalar forms in both operand orders (M∘k and k∘M), scaling, division,
//     and element-wise powers.
//   - Approximate equality under the package tolerance Epsilon.
//
// Determinism & Performance:
//   - Fixed flat traversal 0..n-1; optional row fan-out above the parallel
//     threshold with no observable semantic effect (no shared accumulators).
//   - Inputs are never mutated; every kernel allocates exactly one result.

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opAddScalar = "AddScalar"
	opSubScalar = "SubScalar"
	opScalarSub = "ScalarSub"
	opScale     = "Scale"
	opDivScalar = "DivScalar"
	opPow       = "Pow"
)

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation, and fan-out.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); allocate the result buffer.
//   - Stage 2: single flat loop per row chunk, parallelized above threshold.
//
// Determinism:
//   - Per-cell writes only; iteration order cannot affect results.
//
// Complexity: Time O(r*c), Space O(r*c).
func addSub(a, b *Dense, sign float64, opTag string, opts []Option) (*Dense, error) {
	// Validate shapes match before any allocation.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	o := gatherOptions(opts...)
	n := a.rows * a.cols
	out := make([]float64, n)

	// Row-partitioned flat loop; serial when below threshold.
	parallelRows(a.rows, n, o, func(lo, hi int) {
		for idx := lo * a.cols; idx < hi*a.cols; idx++ {
			out[idx] = a.data[idx] + sign*b.data[idx]
		}
	})

	return newDenseUnchecked(a.rows, a.cols, out), nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b *Dense, opts ...Option) (*Dense, error) { return addSub(a, b, +1, opAdd, opts) }

// Sub computes the element-wise difference C = A − B and returns a fresh Dense.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b *Dense, opts ...Option) (*Dense, error) { return addSub(a, b, -1, opSub, opts) }

// scalarMap applies fn to every element into a fresh result.
// Validation MUST already have succeeded; fn must be pure.
func scalarMap(m *Dense, o Options, fn func(v float64) float64) *Dense {
	n := m.rows * m.cols
	out := make([]float64, n)
	parallelRows(m.rows, n, o, func(lo, hi int) {
		for idx := lo * m.cols; idx < hi*m.cols; idx++ {
			out[idx] = fn(m.data[idx])
		}
	})

	return newDenseUnchecked(m.rows, m.cols, out)
}

// AddScalar returns M + k applied element-wise. Scalar addition commutes, so
// this single kernel also serves the k + M operand order.
// Complexity: Time O(r*c), Space O(r*c).
func AddScalar(m *Dense, k float64, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAddScalar, err)
	}

	return scalarMap(m, gatherOptions(opts...), func(v float64) float64 { return v + k }), nil
}

// SubScalar returns M − k applied element-wise.
// Complexity: Time O(r*c), Space O(r*c).
func SubScalar(m *Dense, k float64, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubScalar, err)
	}

	return scalarMap(m, gatherOptions(opts...), func(v float64) float64 { return v - k }), nil
}

// ScalarSub returns k − M applied element-wise (the non-commutative twin of
// SubScalar, covering the scalar-first operand order).
// Complexity: Time O(r*c), Space O(r*c).
func ScalarSub(k float64, m *Dense, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScalarSub, err)
	}

	return scalarMap(m, gatherOptions(opts...), func(v float64) float64 { return k - v }), nil
}

// Scale returns M · k applied element-wise. Scalar multiplication commutes,
// so this single kernel also serves the k · M operand order.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m *Dense, k float64, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return scalarMap(m, gatherOptions(opts...), func(v float64) float64 { return v * k }), nil
}

// DivScalar returns M / k applied element-wise.
//
// Errors:
//   - ErrNilMatrix (nil input).
//   - ErrDivisionByZero when k is exactly 0.
//
// Complexity: Time O(r*c), Space O(r*c).
func DivScalar(m *Dense, k float64, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDivScalar, err)
	}
	if k == 0 {
		return nil, matrixErrorf(opDivScalar, ErrDivisionByZero)
	}

	// Delegate to scaling by the reciprocal, mirroring M / k == M * (1/k).
	return Scale(m, 1/k, opts...)
}

// Pow raises every element to the power p.
//
// Implementation:
//   - Stage 1: Validate m; fast path p == 1 returns a plain deep copy.
//   - Stage 2: pre-scan for 0^p with p <= 0 (undefined), so the error is
//     reported before any result is materialized (validate-then-act).
//   - Stage 3: map math.Pow over all elements.
//
// Errors:
//   - ErrNilMatrix (nil input).
//   - ErrDivisionByZero when an element is 0 and p <= 0.
//
// Complexity: Time O(r*c), Space O(r*c).
func Pow(m *Dense, p float64, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}

	// x^1 == x for every finite x; skip the math.Pow walk entirely.
	if p == 1 {
		return m.Clone(), nil
	}

	// Zero base with non-positive exponent is undefined; reject up front.
	if p <= 0 {
		for _, v := range m.data {
			if v == 0 {
				return nil, matrixErrorf(opPow, ErrDivisionByZero)
			}
		}
	}

	return scalarMap(m, gatherOptions(opts...), func(v float64) float64 { return math.Pow(v, p) }), nil
}

// Equal reports whether a and b have identical shapes and every pair of
// corresponding elements differs by at most Epsilon. Inequality is the
// logical negation; there is no separate kernel for it.
//
// Determinism: fixed flat scan with early exit on the first violation.
// Complexity: Time O(r*c), Space O(1).
func Equal(a, b *Dense) bool {
	// Two nil references are equal; nil never equals a constructed matrix.
	if a == nil || b == nil {
		return a == b
	}
	// Shape must match exactly — tolerance applies to elements only.
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for idx, av := range a.data {
		if math.Abs(av-b.data[idx]) > Epsilon {
			return false
		}
	}

	return true
}
