// Package matrix: Dense is the concrete, row-major float64 matrix type.
// It stores elements in a flat slice for performance and cache friendliness,
// and guarantees rows > 0 && cols > 0 for every constructed value.

package matrix

import "fmt"

// Epsilon is the package-wide numeric tolerance: approximate equality,
// pivot/singularity detection, and tests all use this single constant.
const Epsilon = 1e-12

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// rows/cols are the dimensions and data holds rows*cols elements in
// row-major order. A Dense value exclusively owns its buffer: Clone and
// Grid produce deep copies, and no operation aliases two values.
type Dense struct {
	rows, cols int       // number of rows and columns, both > 0
	data       []float64 // flat backing storage, length == rows*cols
}

// newDenseUnchecked builds a Dense around a pre-validated buffer.
// It is the trusted construction path: callers (factories and kernels that
// already guarantee well-formedness) bypass the validation NewDense performs.
// len(data) MUST equal rows*cols and both dimensions MUST be positive;
// the buffer is adopted, not copied.
func newDenseUnchecked(rows, cols int, data []float64) *Dense {
	return &Dense{rows: rows, cols: cols, data: data}
}

// NewDense constructs a Dense matrix from a 2-D grid.
// Stage 1 (Validate): grid must be non-empty, with no empty and no ragged rows.
// Stage 2 (Prepare): allocate the flat backing slice.
// Stage 3 (Execute): copy every row into row-major order.
//
// Errors:
//   - ErrInvalidShape: empty grid, zero-length first row, or ragged rows.
//
// Complexity: O(rows*cols) time and memory.
func NewDense(grid [][]float64) (*Dense, error) {
	// Validate the outer dimension.
	rows := len(grid)
	if rows == 0 {
		return nil, ErrInvalidShape
	}
	// The first row fixes the expected width.
	cols := len(grid[0])
	if cols == 0 {
		return nil, ErrInvalidShape
	}
	// Every subsequent row must match the first row's width.
	for i := 1; i < rows; i++ {
		if len(grid[i]) != cols {
			return nil, ErrInvalidShape
		}
	}

	// Copy the grid into a single contiguous buffer.
	data := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		copy(data[i*cols:(i+1)*cols], grid[i])
	}

	return newDenseUnchecked(rows, cols, data), nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (allocation) + O(n) diagonal writes.
//
// Errors:
//   - ErrInvalidShape if n <= 0.
func NewIdentity(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidShape
	}
	// Zero allocation followed by diagonal writes through the trusted path.
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		data[i*n+i] = 1.0
	}

	return newDenseUnchecked(n, n, data), nil
}

// NewConstant returns a rows×cols matrix with every element set to v.
// Complexity: O(rows*cols).
//
// Errors:
//   - ErrInvalidShape if either dimension is <= 0.
func NewConstant(rows, cols int, v float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidShape
	}
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = v
	}

	return newDenseUnchecked(rows, cols, data), nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.cols }

// Shape returns (rows, cols) in one call. Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.rows, m.cols }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index.
	if row < 0 || row >= m.rows {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfRange)
	}
	// Validate column index.
	if col < 0 || col >= m.cols {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfRange)
	}

	return row*m.cols + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrIndexOutOfRange on invalid indices. Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Returns ErrIndexOutOfRange on invalid indices. Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy; the result shares no storage with the receiver.
// Complexity: O(rows*cols).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return newDenseUnchecked(m.rows, m.cols, cp)
}

// Grid returns the matrix contents as a freshly allocated [][]float64.
// Mutating the returned grid never affects the receiver, and the receiver's
// storage can never be observed through it.
// Complexity: O(rows*cols).
func (m *Dense) Grid() [][]float64 {
	out := make([][]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		row := make([]float64, m.cols)
		copy(row, m.data[i*m.cols:(i+1)*m.cols])
		out[i] = row
	}

	return out
}

// row returns the backing sub-slice for row i. Internal use only: the
// returned slice aliases m.data and must never escape the package.
func (m *Dense) row(i int) []float64 {
	return m.data[i*m.cols : (i+1)*m.cols]
}
