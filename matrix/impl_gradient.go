// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Estimate first derivatives of a uniformly sampled grid along one axis.
//
// Stencil (uniform spacing h along the chosen axis, k indexes that axis):
//   - interior  (0 < k < n-1): g[k] = (f[k+1] - f[k-1]) / (2h)   (second-order central)
//   - first     (k == 0)     : g[0] = (f[1] - f[0]) / h          (first-order forward)
//   - last      (k == n-1)   : g[n-1] = (f[n-1] - f[n-2]) / h    (first-order backward)
//
// There is no wraparound: periodic parameters (angles) are
// still treated as open intervals, and the border cells use one-sided
// differences.
//
// Determinism & Performance:
//   - Fixed i→j traversal; Dense fast-path reads the flat buffer directly.
//   - One output allocation; O(r*c) time.

package matrix

import "fmt"

const opGradient = "Gradient"

// gradient returns ∂m/∂axis sampled on the same grid as m.
//
// Implementation:
//   - Stage 1: validate m (non-nil), axis, step, and ≥2 samples along axis.
//   - Stage 2: *Dense fast path with direct offsets; generic At/Set fallback otherwise.
//
// Errors:
//   - ErrNilMatrix, ErrBadAxis, ErrBadStep, ErrBadShape (fewer than two samples).
//   - ErrNaNInf from Set in the fallback path when the policy rejects a result.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func gradient(m Matrix, h float64, axis Axis) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opGradient, err)
	}
	if err := ValidateAxis(axis); err != nil {
		return nil, matrixErrorf(opGradient, err)
	}
	if err := ValidateStep(h); err != nil {
		return nil, matrixErrorf(opGradient, err)
	}

	r, c := m.Rows(), m.Cols()
	n := c // samples along the differentiated axis
	if axis == AxisRows {
		n = r
	}
	if n < 2 {
		return nil, matrixErrorf(opGradient, fmt.Errorf("%d samples along %s: %w", n, axis, ErrBadShape))
	}

	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opGradient, err)
	}

	if d, ok := m.(*Dense); ok {
		out.validateNaNInf = d.validateNaNInf
		if axis == AxisCols {
			gradientColsDense(d, out, h)
		} else {
			gradientRowsDense(d, out, h)
		}

		return out, nil
	}

	// Generic fallback via At/Set (still deterministic).
	var i, j, k, lo, hi int
	var flo, fhi, div float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			k = j // position along the differentiated axis
			if axis == AxisRows {
				k = i
			}
			lo, hi, div = k-1, k+1, 2*h // central
			if k == 0 {
				lo, div = k, h // forward
			}
			if k == n-1 {
				hi, div = k, h // backward
			}
			if flo, err = atAlong(m, axis, i, j, lo); err != nil {
				return nil, matrixErrorf(opGradient, err)
			}
			if fhi, err = atAlong(m, axis, i, j, hi); err != nil {
				return nil, matrixErrorf(opGradient, err)
			}
			if err = out.Set(i, j, (fhi-flo)/div); err != nil {
				return nil, matrixErrorf(opGradient, err)
			}
		}
	}

	return out, nil
}

// atAlong reads m at cell (i,j) with the axis coordinate replaced by k.
func atAlong(m Matrix, axis Axis, i, j, k int) (float64, error) {
	if axis == AxisCols {
		return m.At(i, k)
	}

	return m.At(k, j)
}

// gradientColsDense differentiates along columns (row index fixed).
// Complexity: O(r*c).
func gradientColsDense(d, out *Dense, h float64) {
	r, c := d.r, d.c
	twoH := 2 * h
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		row := d.data[base : base+c]
		dst := out.data[base : base+c]
		dst[0] = (row[1] - row[0]) / h
		for j = 1; j < c-1; j++ {
			dst[j] = (row[j+1] - row[j-1]) / twoH
		}
		dst[c-1] = (row[c-1] - row[c-2]) / h
	}
}

// gradientRowsDense differentiates along rows (column index fixed).
// Rows are visited in order so both source rows stay cache-resident.
// Complexity: O(r*c).
func gradientRowsDense(d, out *Dense, h float64) {
	r, c := d.r, d.c
	twoH := 2 * h
	var i, j int

	// First row: forward difference.
	for j = 0; j < c; j++ {
		out.data[j] = (d.data[c+j] - d.data[j]) / h
	}
	// Interior rows: central difference.
	for i = 1; i < r-1; i++ {
		prev, next, dst := (i-1)*c, (i+1)*c, i*c
		for j = 0; j < c; j++ {
			out.data[dst+j] = (d.data[next+j] - d.data[prev+j]) / twoH
		}
	}
	// Last row: backward difference.
	last, prev := (r-1)*c, (r-2)*c
	for j = 0; j < c; j++ {
		out.data[last+j] = (d.data[last+j] - d.data[prev+j]) / h
	}
}
