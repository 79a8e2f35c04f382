// Package parmul: Matrix is the dense, row-major integer container that both
// multiplication strategies operate on. Elements live in a flat slice for
// cache friendliness; every public accessor is bounds checked.
package parmul

import (
	"fmt"
	"strings"
)

// matrixErrorf wraps an underlying error with Matrix method context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a row-major matrix of int values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// The backing slice is exclusively owned by the Matrix and never aliased
// outside the package.
type Matrix struct {
	r, c int   // number of rows and columns
	data []int // flat backing storage, length == r*c
}

// NewMatrix creates an r×c Matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Matrix or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewMatrix(rows, cols int) (*Matrix, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice; make zeroes every cell
	data := make([]int, rows*cols)

	// Return initialized Matrix
	return &Matrix{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Matrix) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Matrix) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Matrix) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, matrixErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, matrixErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Returns ErrOutOfRange when row ∉ [0,Rows()) or col ∉ [0,Cols()).
// This check runs on every access; external callers indexing with computed
// positions rely on it as the sole safety guarantee.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (int, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Returns ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Matrix) Set(row, col, v int) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the matrix, independent of the original.
// Complexity: O(r*c) time and memory.
func (m *Matrix) Clone() *Matrix {
	// Allocate new slice for data copy
	copyData := make([]int, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &Matrix{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Matrix) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		sb.WriteByte('[')         // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			fmt.Fprintf(&sb, "%d", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(", ") // separate values with comma
			}
		}
		sb.WriteString("]\n") // close row
	}

	return sb.String()
}
