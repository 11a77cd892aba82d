// SPDX-License-Identifier: MIT
// Package matrix: structural reshaping — row/column insertion, stacking,
// and half-open submatrix extraction.
//
// Purpose:
//   - Grow matrices by inserting rows/columns (explicit values or a fill).
//   - Concatenate along either axis (HStack/VStack).
//   - Extract rectangular views as fresh matrices, including single
//     row/column convenience wrappers.
//
// Notes:
//   - Every operation validates first and returns a fresh Dense; inputs are
//     never mutated (ShuffleRows is the single in-place exception in this
//     package, and it lives in shuffle.go).
//   - All ranges are half-open [start, end); start >= end is rejected.

package matrix

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opInsertRow  = "InsertRow"
	opInsertCol  = "InsertCol"
	opHStack     = "HStack"
	opVStack     = "VStack"
	opSubmatrix  = "Submatrix"
	opExtractRow = "ExtractRow"
	opExtractCol = "ExtractCol"
)

// insertRow splices row (already validated to length cols) before index idx.
func insertRow(m *Dense, row []float64, idx int) *Dense {
	out := make([]float64, (m.rows+1)*m.cols)
	// Rows above the insertion point, the new row, then the remainder.
	copy(out, m.data[:idx*m.cols])
	copy(out[idx*m.cols:], row)
	copy(out[(idx+1)*m.cols:], m.data[idx*m.cols:])

	return newDenseUnchecked(m.rows+1, m.cols, out)
}

// InsertRow returns a new matrix with the given row spliced in before index
// idx (idx == Rows() appends). The input matrix is unchanged.
//
// Errors:
//   - ErrNilMatrix (nil input).
//   - ErrDimensionMismatch when len(row) != Cols().
//   - ErrIndexOutOfRange when idx < 0 or idx > Rows().
//
// Complexity: Time O((r+1)*c), Space O((r+1)*c).
func InsertRow(m *Dense, row []float64, idx int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInsertRow, err)
	}
	if len(row) != m.cols {
		return nil, matrixErrorf(opInsertRow, ErrDimensionMismatch)
	}
	if err := ValidateInsertIndex(idx, m.rows); err != nil {
		return nil, matrixErrorf(opInsertRow, err)
	}

	return insertRow(m, row, idx), nil
}

// InsertRowConst is InsertRow with every element of the new row set to v.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrIndexOutOfRange (idx out of bounds).
//
// Complexity: Time O((r+1)*c), Space O((r+1)*c).
func InsertRowConst(m *Dense, v float64, idx int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInsertRow, err)
	}
	if err := ValidateInsertIndex(idx, m.rows); err != nil {
		return nil, matrixErrorf(opInsertRow, err)
	}

	row := make([]float64, m.cols)
	for j := range row {
		row[j] = v
	}

	return insertRow(m, row, idx), nil
}

// insertCol splices col (already validated to length rows) before index idx.
func insertCol(m *Dense, col []float64, idx int) *Dense {
	newCols := m.cols + 1
	out := make([]float64, m.rows*newCols)
	for i := 0; i < m.rows; i++ {
		src := m.row(i)
		dst := out[i*newCols : (i+1)*newCols]
		// Left part, inserted value, right part.
		copy(dst, src[:idx])
		dst[idx] = col[i]
		copy(dst[idx+1:], src[idx:])
	}

	return newDenseUnchecked(m.rows, newCols, out)
}

// InsertCol returns a new matrix with the given column spliced in before
// index idx (idx == Cols() appends). The input matrix is unchanged.
//
// Errors:
//   - ErrNilMatrix (nil input).
//   - ErrDimensionMismatch when len(col) != Rows().
//   - ErrIndexOutOfRange when idx < 0 or idx > Cols().
//
// Complexity: Time O(r*(c+1)), Space O(r*(c+1)).
func InsertCol(m *Dense, col []float64, idx int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInsertCol, err)
	}
	if len(col) != m.rows {
		return nil, matrixErrorf(opInsertCol, ErrDimensionMismatch)
	}
	if err := ValidateInsertIndex(idx, m.cols); err != nil {
		return nil, matrixErrorf(opInsertCol, err)
	}

	return insertCol(m, col, idx), nil
}

// InsertColConst is InsertCol with every element of the new column set to v.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrIndexOutOfRange (idx out of bounds).
//
// Complexity: Time O(r*(c+1)), Space O(r*(c+1)).
func InsertColConst(m *Dense, v float64, idx int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInsertCol, err)
	}
	if err := ValidateInsertIndex(idx, m.cols); err != nil {
		return nil, matrixErrorf(opInsertCol, err)
	}

	col := make([]float64, m.rows)
	for i := range col {
		col[i] = v
	}

	return insertCol(m, col, idx), nil
}

// HStack concatenates b's columns to the right of a.
//
// Errors:
//   - ErrNilMatrix (nil input).
//   - ErrDimensionMismatch unless row counts match.
//
// Complexity: Time O(r*(ca+cb)), Space O(r*(ca+cb)).
func HStack(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opHStack, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opHStack, err)
	}
	if a.rows != b.rows {
		return nil, matrixErrorf(opHStack, ErrDimensionMismatch)
	}

	newCols := a.cols + b.cols
	out := make([]float64, a.rows*newCols)
	for i := 0; i < a.rows; i++ {
		dst := out[i*newCols : (i+1)*newCols]
		copy(dst, a.row(i))
		copy(dst[a.cols:], b.row(i))
	}

	return newDenseUnchecked(a.rows, newCols, out), nil
}

// VStack concatenates b's rows below a.
//
// Errors:
//   - ErrNilMatrix (nil input).
//   - ErrDimensionMismatch unless column counts match.
//
// Complexity: Time O((ra+rb)*c), Space O((ra+rb)*c).
func VStack(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opVStack, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opVStack, err)
	}
	if a.cols != b.cols {
		return nil, matrixErrorf(opVStack, ErrDimensionMismatch)
	}

	// Row-major layout makes vertical stacking a pair of block copies.
	out := make([]float64, (a.rows+b.rows)*a.cols)
	copy(out, a.data)
	copy(out[len(a.data):], b.data)

	return newDenseUnchecked(a.rows+b.rows, a.cols, out), nil
}

// Submatrix extracts the block covered by the half-open ranges
// [rowStart, rowEnd) × [colStart, colEnd) as a fresh matrix.
//
// Implementation:
//   - Stage 1: validate both ranges against the matrix dimensions; empty
//     ranges (start >= end) are rejected — single row/column extraction
//     passes end = start+1.
//   - Stage 2: copy the block row by row.
//
// Errors:
//   - ErrNilMatrix (nil input).
//   - ErrIndexOutOfRange when a bound exceeds the matrix or start >= end.
//
// Complexity: Time O(block), Space O(block).
func Submatrix(m *Dense, rowStart, rowEnd, colStart, colEnd int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if err := ValidateHalfOpenRange(rowStart, rowEnd, m.rows); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if err := ValidateHalfOpenRange(colStart, colEnd, m.cols); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}

	outRows := rowEnd - rowStart
	outCols := colEnd - colStart
	out := make([]float64, outRows*outCols)
	for i := 0; i < outRows; i++ {
		src := m.row(rowStart + i)
		copy(out[i*outCols:(i+1)*outCols], src[colStart:colEnd])
	}

	return newDenseUnchecked(outRows, outCols, out), nil
}

// ExtractRow returns row i as a 1×Cols matrix.
// Convenience wrapper over Submatrix with the half-open range [i, i+1).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrIndexOutOfRange (i out of bounds).
func ExtractRow(m *Dense, i int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opExtractRow, err)
	}
	if i < 0 || i >= m.rows {
		return nil, matrixErrorf(opExtractRow, ErrIndexOutOfRange)
	}

	return Submatrix(m, i, i+1, 0, m.cols)
}

// ExtractCol returns column j as a Rows×1 matrix.
// Convenience wrapper over Submatrix with the half-open range [j, j+1).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrIndexOutOfRange (j out of bounds).
func ExtractCol(m *Dense, j int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opExtractCol, err)
	}
	if j < 0 || j >= m.cols {
		return nil, matrixErrorf(opExtractCol, ErrIndexOutOfRange)
	}

	return Submatrix(m, 0, m.rows, j, j+1)
}
