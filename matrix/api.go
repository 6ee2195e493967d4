// SPDX-License-Identifier: MIT
// Package: matrix
//
// Public façade for the grid kernels. Implementations live in impl_*.go; the
// functions here validate nothing themselves and only forward, so every
// error carries the operation tag of the kernel that detected it.

package matrix

import "fmt"

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// NewZeros allocates an r×c zero matrix (alias of NewDense for readability).
// Complexity: O(r*c).
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// ZerosLike allocates a zero Dense with the same shape as m.
// Errors: ErrNilMatrix when m is nil.
// Complexity: O(r*c).
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// Linspace returns n evenly spaced samples over the closed interval [start, stop].
// The first sample equals start and the last equals stop exactly.
//
// Errors: ErrInvalidDimensions (n < 1), ErrNaNInf (non-finite bounds).
// Complexity: O(n).
func Linspace(start, stop float64, n int) ([]float64, error) { return linspace(start, stop, n) }

// Meshgrid returns X, Y of shape len(y)×len(x) with X[i,j] = x[j], Y[i,j] = y[i].
//
// Errors: ErrInvalidDimensions (empty axis), ErrNaNInf (non-finite sample).
// Complexity: O(len(x)*len(y)).
func Meshgrid(x, y []float64) (*Dense, *Dense, error) { return meshgrid(x, y) }

// Gradient returns the first-derivative estimate of m along axis for uniform
// sample spacing h: central differences inside, one-sided differences on the
// first and last sample of the axis.
//
// Errors: ErrNilMatrix, ErrBadAxis, ErrBadStep, ErrBadShape.
// Complexity: O(r*c).
func Gradient(m Matrix, h float64, axis Axis) (*Dense, error) { return gradient(m, h, axis) }

// Sum returns the row-major sum of all elements of m.
// Complexity: O(r*c).
func Sum(m Matrix) (float64, error) { return sum(m) }

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) { return ewAllClose(a, b, rtol, atol) }
