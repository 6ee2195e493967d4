// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense storage and the numeric
// kernels. Errors and numeric policy live in dedicated files (errors.go,
// options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// Axis selects the direction a kernel walks through a grid.
//
//   - AxisRows: step from row i to row i+1 (the column index is fixed).
//   - AxisCols: step from column j to column j+1 (the row index is fixed).
//
// For a meshgrid built from (x, y), AxisCols follows x and AxisRows follows y.
type Axis int

const (
	// AxisRows differentiates/iterates down the rows.
	AxisRows Axis = iota

	// AxisCols differentiates/iterates across the columns.
	AxisCols
)

// String returns a stable label used in error messages.
func (a Axis) String() string {
	switch a {
	case AxisRows:
		return "rows"
	case AxisCols:
		return "cols"
	default:
		return "invalid"
	}
}
