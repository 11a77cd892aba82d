// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for Private Helpers
//
// Purpose:
//   - Expose the unexported cofactor-expansion oracle and internal helpers
//     to matrix_test ONLY, without widening the production API.
//
// Provided Surface:
//   - CofactorDeterminant_TestOnly: the O(n!) reference oracle used to
//     cross-check the elimination-based Determinant on tiny matrices.
//   - NewDenseUnchecked_TestOnly: the trusted constructor, for fixtures
//     that build flat buffers directly.
//   - Panic message exports to avoid "magic strings" in tests.

// CofactorDeterminant_TestOnly forwards to the private cofactorDeterminant
// oracle. The input must be square; the oracle does not re-validate.
func CofactorDeterminant_TestOnly(m *Dense) float64 {
	return cofactorDeterminant(m)
}

// NewDenseUnchecked_TestOnly forwards to the trusted construction path.
// len(data) must equal rows*cols.
func NewDenseUnchecked_TestOnly(rows, cols int, data []float64) *Dense {
	return newDenseUnchecked(rows, cols, data)
}

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicThresholdInvalid_TestOnly = panicThresholdInvalid
	PanicWorkersInvalid_TestOnly   = panicWorkersInvalid
	PanicRandNil_TestOnly          = panicRandNil
)
