// SPDX-License-Identifier: MIT

// Package surface samples the Möbius strip parameterization on a rectangular
// parameter grid.
//
// The strip is the image of (u, v) ∈ [0, 2π] × [-w/2, w/2] under
//
//	x = (R + v·cos(u/2))·cos(u)
//	y = (R + v·cos(u/2))·sin(u)
//	z = v·sin(u/2)
//
// The cross-section turns at half the rate of the sweep angle u, so after one
// full sweep it has turned by π: this half-twist is what makes the surface
// one-sided with a single boundary curve.
//
// Layout convention (shared with matrix.Meshgrid): grids are n×n with the row
// index following v (across the width) and the column index following u
// (along the length), i.e. U[i][j] = u[j] and V[i][j] = v[i].
//
// Every point of the surface, including the boundary samples returned by
// EdgeCurve, goes through the single function Point, so the measured edge
// and the sampled surface always agree.
package surface
