// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric grids used to sample and measure
// parametric surfaces.
//
// The matrix package provides:
//
//   - Dense: a row-major, bounds-checked float64 grid with a NaN/Inf guard.
//   - Linspace / Meshgrid: uniform parameter axes and their outer-product grids
//     (row index follows the second axis, column index follows the first).
//   - Gradient: first-derivative estimates along rows or columns using central
//     differences inside the grid and one-sided differences on its border.
//   - Sum / AllClose: deterministic reductions and tolerance comparison.
//
// All loops run in a fixed i→j order, so identical inputs always produce
// bit-identical outputs. Public functions never panic on user input; they
// return the sentinel errors from errors.go wrapped with an operation tag.
//
// See the examples in this package for usage patterns.
package matrix
