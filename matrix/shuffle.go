// SPDX-License-Identifier: MIT
// Package matrix: in-place row shuffling with injectable randomness.

package matrix

// opShuffleRows tags shuffle errors for uniform wrapping.
const opShuffleRows = "ShuffleRows"

// ShuffleRows permutes m's rows in place with a uniform Fisher–Yates
// permutation. Only row order changes: no row's contents are altered, and
// the multiset of rows is preserved exactly.
//
// Implementation:
//   - Stage 1: validate the receiver, resolve the generator from options.
//   - Stage 2: Fisher–Yates over row indices n-1..1, swapping whole row
//     segments of the flat buffer.
//
// Behavior highlights:
//   - WithShuffleSeed(seed) makes the permutation reproducible: identical
//     seeds on identical inputs produce identical row orders.
//   - WithRand(src) injects a generator wholesale, so tests can pin even
//     the conceptually unseeded path.
//   - Without either option the generator is seeded from the operating
//     system's entropy pool (non-deterministic).
//
// Errors:
//   - ErrNilMatrix (nil input).
//
// Complexity: Time O(r*c) (row swaps dominate), Space O(1).
func ShuffleRows(m *Dense, opts ...Option) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opShuffleRows, err)
	}

	rng := gatherOptions(opts...).rng()
	// Fisher–Yates: each of the r! orders is equally likely.
	for i := m.rows - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		if j != i {
			swapRowsFlat(m.data, m.cols, i, j)
		}
	}

	return nil
}
