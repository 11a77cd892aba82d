// SPDX-License-Identifier: MIT
// Package matrix_test contains shared test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertions for kernels.
//   - Keep all data finite and well-formed so numeric guards never interfere
//     with the property under test.

package matrix_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/dense/matrix"
	"github.com/stretchr/testify/require"
)

// closeTol is the assertion tolerance for computed (not copied) values.
// It is intentionally looser than matrix.Epsilon to absorb the rounding of
// O(n³) elimination paths while still catching genuine algorithm errors.
const closeTol = 1e-9

// mustDense builds a *Dense from a grid literal or fails the test.
func mustDense(t testing.TB, grid [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(grid)
	require.NoError(t, err, "NewDense fixture must be well-formed")

	return m
}

// requireAllClose asserts got and want have equal shape and element-wise
// agreement within closeTol, reporting the first offending cell.
func requireAllClose(t *testing.T, want, got *matrix.Dense) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "row count")
	require.Equal(t, want.Cols(), got.Cols(), "column count")
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			wv, err := want.At(i, j)
			require.NoError(t, err)
			gv, err := got.At(i, j)
			require.NoError(t, err)
			require.InDeltaf(t, wv, gv, closeTol, "cell (%d,%d)", i, j)
		}
	}
}

// fillRand populates m with deterministic pseudo-random values in [-1, 1).
func fillRand(t testing.TB, m *matrix.Dense, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			require.NoError(t, m.Set(i, j, rng.Float64()*2-1))
		}
	}
}

// sortedRows returns m's rows as a slice sorted lexicographically, giving a
// canonical form for multiset comparison after shuffling.
func sortedRows(m *matrix.Dense) [][]float64 {
	rows := m.Grid()
	sort.Slice(rows, func(a, b int) bool {
		for k := range rows[a] {
			if rows[a][k] != rows[b][k] {
				return rows[a][k] < rows[b][k]
			}
		}
		return false
	})

	return rows
}

// maxAbsDiff returns the largest element-wise |a-b| between two same-shaped
// matrices; used to assert bit-identical serial/parallel results.
func maxAbsDiff(t *testing.T, a, b *matrix.Dense) float64 {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows())
	require.Equal(t, a.Cols(), b.Cols())
	maxDiff := 0.0
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			if d := math.Abs(av - bv); d > maxDiff {
				maxDiff = d
			}
		}
	}

	return maxDiff
}
