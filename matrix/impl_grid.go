// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Build uniform 1-D parameter axes (linspace) and their outer-product grids
//     (meshgrid) for sampling functions of two parameters.
//
// Conventions:
//   - meshgrid(x, y) returns X, Y of shape len(y)×len(x) with X[i,j] = x[j] and
//     Y[i,j] = y[i]: the row index follows y, the column index follows x.
//   - linspace includes both endpoints; the last sample is pinned to stop
//     exactly so that closed intervals end where they were asked to end.
//
// Determinism & Performance:
//   - Sample i is computed as float64(i)*step + start (no running accumulation),
//     so every sample carries at most one rounding from the step product.
//   - Single allocation per output; O(n) for linspace, O(len(x)*len(y)) for meshgrid.

package matrix

// Operation name constants for unified error wrapping.
const (
	opLinspace = "Linspace"
	opMeshgrid = "Meshgrid"
)

// linspace returns n evenly spaced samples over [start, stop].
//
// Implementation:
//   - Stage 1: validate n ≥ 1 and finite bounds.
//   - Stage 2: n == 1 → [start].
//   - Stage 3: step = (stop-start)/(n-1); y[i] = i*step + start; y[n-1] = stop.
//
// Errors:
//   - ErrInvalidDimensions (n < 1), ErrNaNInf (non-finite bounds).
//
// Complexity:
//   - Time O(n), Space O(n).
func linspace(start, stop float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, matrixErrorf(opLinspace, ErrInvalidDimensions)
	}
	if err := validateFinite(opLinspace, start, stop); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = start

		return out, nil
	}

	step := (stop - start) / float64(n-1)
	var i int
	for i = 0; i < n; i++ {
		out[i] = float64(i)*step + start
	}
	out[n-1] = stop // pin the closed endpoint

	return out, nil
}

// meshgrid expands two axes into aligned 2-D coordinate grids.
//
// Implementation:
//   - Stage 1: validate both axes non-empty.
//   - Stage 2: allocate two Dense of shape len(y)×len(x).
//   - Stage 3: row-major fill: X copies x into every row; Y repeats y[i] along row i.
//
// Errors:
//   - ErrInvalidDimensions when x or y is empty.
//
// Complexity:
//   - Time O(len(x)*len(y)), Space O(len(x)*len(y)).
func meshgrid(x, y []float64) (*Dense, *Dense, error) {
	X, err := NewDense(len(y), len(x))
	if err != nil {
		return nil, nil, matrixErrorf(opMeshgrid, err)
	}
	if err = validateFinite(opMeshgrid, x...); err != nil {
		return nil, nil, err
	}
	if err = validateFinite(opMeshgrid, y...); err != nil {
		return nil, nil, err
	}
	Y := newDenseLike(X)

	c := len(x)
	var i, base int
	for i = 0; i < len(y); i++ {
		base = i * c
		copy(X.data[base:base+c], x) // X[i,*] = x
		yi := y[i]                   // read once per row
		for j := 0; j < c; j++ {
			Y.data[base+j] = yi // Y[i,*] = y[i]
		}
	}

	return X, Y, nil
}
