// SPDX-License-Identifier: MIT

package surface

import (
	"math"

	"github.com/JyotsnaGuntha/mobius-strip-model/matrix"
)

// Documented defaults for the shape parameters.
const (
	DefaultRadius     = 1.0 // R: radius of the central circle
	DefaultWidth      = 0.2 // w: strip width
	DefaultResolution = 100 // n: samples per parameter axis
	MinResolution     = 2   // smallest n that still yields finite differences
)

// Params holds the three shape parameters of a strip.
//
//   - R: radius of the central circle (> 0).
//   - W: width of the strip (> 0); v runs over [-W/2, W/2].
//   - N: samples per axis (≥ 2); every grid is N×N.
type Params struct {
	R float64
	W float64
	N int
}

// DefaultParams returns R=1.0, w=0.2, n=100.
func DefaultParams() Params {
	return Params{R: DefaultRadius, W: DefaultWidth, N: DefaultResolution}
}

// Validate reports ErrInvalidParameter (with the offending value) when p is
// outside its domain. Checks run in a fixed order: N, R, W.
func (p Params) Validate() error {
	if p.N < MinResolution {
		return paramErrorf("resolution n=%d, need n ≥ %d", p.N, MinResolution)
	}
	if !(p.R > 0) || math.IsInf(p.R, 0) {
		return paramErrorf("radius R=%g, need finite R > 0", p.R)
	}
	if !(p.W > 0) || math.IsInf(p.W, 0) {
		return paramErrorf("width w=%g, need finite w > 0", p.W)
	}

	return nil
}

// ParameterGrid is the sampled (u, v) domain.
//
//   - AxisU: N samples over [0, 2π], both endpoints included.
//   - AxisV: N samples over [-W/2, W/2], both endpoints included.
//   - U, V : N×N grids with U[i][j] = AxisU[j], V[i][j] = AxisV[i].
//
// A ParameterGrid is read-only after construction.
type ParameterGrid struct {
	AxisU []float64
	AxisV []float64
	U     *matrix.Dense
	V     *matrix.Dense
}

// StepU returns the uniform spacing along u.
func (g *ParameterGrid) StepU() float64 { return g.AxisU[1] - g.AxisU[0] }

// StepV returns the uniform spacing along v.
func (g *ParameterGrid) StepV() float64 { return g.AxisV[1] - g.AxisV[0] }

// CoordinateGrid holds the sampled surface: cell (i,j) of X, Y, Z is the 3-D
// point at (V[i][j], U[i][j]). Read-only after construction.
type CoordinateGrid struct {
	X *matrix.Dense
	Y *matrix.Dense
	Z *matrix.Dense
}
