// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Deterministic reductions over a whole grid (sum) and tolerance-based
//     comparison of two grids (allClose).
//
// Determinism & Performance:
//   - Flat row-major accumulation for *Dense; i→j At-loop otherwise.
//   - The summation order is fixed, so repeated calls on the same grid
//     return bit-identical results.

package matrix

import (
	"fmt"
	"math"
)

const (
	opSum      = "Sum"
	opAllClose = "AllClose"
)

// sum returns Σ m[i,j] in row-major order.
//
// Errors:
//   - ErrNilMatrix; wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func sum(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opSum, err)
	}

	var s float64
	if d, ok := m.(*Dense); ok {
		for _, v := range d.data {
			s += v
		}

		return s, nil
	}

	r, c := m.Rows(), m.Cols()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return 0, matrixErrorf(opSum, err)
			}
			s += v
		}
	}

	return s, nil
}

// ewAllClose checks |a-b| ≤ atol + rtol*|b| element-wise.
//
// Behavior highlights:
//   - NaN never matches; +Inf matches +Inf and -Inf matches -Inf.
//   - Negative tolerances are normalized to their absolute value.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for k := range da.data {
				if !closeEnough(da.data[k], db.data[k], rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			av, err := a.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, fmt.Errorf("a: %w", err))
			}
			bv, err := b.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, fmt.Errorf("b: %w", err))
			}
			if !closeEnough(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeEnough is the scalar predicate behind ewAllClose.
func closeEnough(x, y, rtol, atol float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return x == y
	}

	return math.Abs(x-y) <= atol+rtol*math.Abs(y)
}
