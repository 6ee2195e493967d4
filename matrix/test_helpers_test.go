// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for grid kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"testing"

	"github.com/JyotsnaGuntha/mobius-strip-model/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix to forward all methods.
//   - Stage 2: Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// Notes:
//   - Useful to assert fast-path == fallback bitwise.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense BUILDS r×c *Dense from a row-major flat slice.
// Implementation:
//   - Stage 1: Validate len(vals)==r*c.
//   - Stage 2: Allocate Dense and Set(i,j, vals[i*c+j]).
//
// Errors:
//   - Fatal test failure if lengths mismatch or Set fails.
func NewFilledDense(tb testing.TB, r, c int, vals []float64) *matrix.Dense {
	tb.Helper()
	if len(vals) != r*c {
		tb.Fatalf("NewFilledDense: len(vals)=%d, want %d", len(vals), r*c)
	}
	m := MustDense(tb, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err := m.Set(i, j, vals[i*c+j]); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// FillFunc BUILDS r×c *Dense with m[i,j] = f(i,j).
func FillFunc(tb testing.TB, r, c int, f func(i, j int) float64) *matrix.Dense {
	tb.Helper()
	m := MustDense(tb, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err := m.Set(i, j, f(i, j)); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	if err != nil {
		tb.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareClose FAILS the test when any cell of got differs from want by more
// than tol (absolute).
func CompareClose(tb testing.TB, got matrix.Matrix, want [][]float64, tol float64) {
	tb.Helper()
	if got.Rows() != len(want) {
		tb.Fatalf("rows: got %d, want %d", got.Rows(), len(want))
	}
	for i := range want {
		if got.Cols() != len(want[i]) {
			tb.Fatalf("cols: got %d, want %d", got.Cols(), len(want[i]))
		}
		for j := range want[i] {
			g := MustAt(tb, got, i, j)
			if math.Abs(g-want[i][j]) > tol {
				tb.Fatalf("[%d,%d]: got %.17g, want %.17g (tol %g)", i, j, g, want[i][j], tol)
			}
		}
	}
}
