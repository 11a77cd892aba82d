// Package matrix_test contains unit tests for Dense construction, factories,
// and accessors.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/dense/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseValid verifies that a well-formed grid round-trips exactly.
func TestNewDenseValid(t *testing.T) {
	m, err := matrix.NewDense([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err) // rectangular 2x3 grid is valid

	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v) // row-major position (1,2) holds 6
}

// TestNewDenseInvalidShape ensures empty and ragged inputs are rejected.
func TestNewDenseInvalidShape(t *testing.T) {
	_, err := matrix.NewDense(nil) // no rows at all
	require.ErrorIs(t, err, matrix.ErrInvalidShape)

	_, err = matrix.NewDense([][]float64{}) // empty outer slice
	require.ErrorIs(t, err, matrix.ErrInvalidShape)

	_, err = matrix.NewDense([][]float64{{}}) // zero-width first row
	require.ErrorIs(t, err, matrix.ErrInvalidShape)

	_, err = matrix.NewDense([][]float64{{1, 2}, {3}}) // ragged rows
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
}

// TestNewIdentity checks the diagonal pattern and the n<=0 guard.
func TestNewIdentity(t *testing.T) {
	_, err := matrix.NewIdentity(0) // zero dimension is invalid
	require.ErrorIs(t, err, matrix.ErrInvalidShape)

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := id.At(i, j)
			require.NoError(t, err)
			if i == j {
				require.Equal(t, 1.0, v) // ones on the diagonal
			} else {
				require.Equal(t, 0.0, v) // zeros elsewhere
			}
		}
	}
}

// TestNewConstant checks uniform fill and the zero-dimension guard.
func TestNewConstant(t *testing.T) {
	_, err := matrix.NewConstant(0, 4, 1.0)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)

	_, err = matrix.NewConstant(4, 0, 1.0)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)

	m, err := matrix.NewConstant(2, 3, 5.5)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, 5.5, v) // every cell carries the fill value
		}
	}
}

// TestShape verifies the combined shape accessor.
func TestShape(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	rows, cols := m.Shape()
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)
}

// TestAtSetOutOfRange ensures At() and Set() report ErrIndexOutOfRange.
func TestAtSetOutOfRange(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})

	_, err := m.At(-1, 0) // negative row index
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)

	_, err = m.At(0, 2) // column past the end
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)

	err = m.Set(2, 0, 1.23) // row past the end
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)

	err = m.Set(0, -1, 4.56) // negative column index
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := mustDense(t, [][]float64{{0, 0, 0}, {0, 0, 0}})

	require.NoError(t, m.Set(1, 2, 7.89))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, v)
}

// TestCloneIndependence ensures Clone() returns a deep copy with no shared storage.
func TestCloneIndependence(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 0}, {0, 2}})

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0)) // mutate the clone only

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal) // original remains unchanged

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal) // clone reflects the new value
}

// TestGridDeepCopy ensures Grid() cannot be used to mutate internal storage.
func TestGridDeepCopy(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})

	grid := m.Grid()
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, grid)

	grid[0][0] = 99 // write through the returned grid

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v) // the matrix is unaffected
}
