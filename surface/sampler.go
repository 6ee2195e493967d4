// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"math"

	"github.com/ungerik/go3d/float64/vec3"
	"golang.org/x/sync/errgroup"

	"github.com/JyotsnaGuntha/mobius-strip-model/matrix"
)

// Point evaluates the strip parameterization at (u, v) for central radius R.
//
//	x = (R + v·cos(u/2))·cos(u)
//	y = (R + v·cos(u/2))·sin(u)
//	z = v·sin(u/2)
//
// Every sample of the surface and of its boundary goes through this function.
func Point(u, v, R float64) vec3.T {
	half := u / 2
	radial := R + v*math.Cos(half)

	return vec3.T{
		radial * math.Cos(u),
		radial * math.Sin(u),
		v * math.Sin(half),
	}
}

// BuildParameterGrid samples u over [0, 2π] and v over [-w/2, w/2] with n
// points each and expands them into the n×n U, V grids.
//
// Errors:
//   - ErrInvalidParameter when p fails Validate.
//
// Complexity: O(n²) time and memory.
func BuildParameterGrid(p Params) (*ParameterGrid, error) {
	if err := p.Validate(); err != nil {
		return nil, surfaceErrorf(opBuildGrid, err)
	}

	u, err := matrix.Linspace(0, 2*math.Pi, p.N)
	if err != nil {
		return nil, surfaceErrorf(opBuildGrid, err)
	}
	v, err := matrix.Linspace(-p.W/2, p.W/2, p.N)
	if err != nil {
		return nil, surfaceErrorf(opBuildGrid, err)
	}
	U, V, err := matrix.Meshgrid(u, v)
	if err != nil {
		return nil, surfaceErrorf(opBuildGrid, err)
	}

	return &ParameterGrid{AxisU: u, AxisV: v, U: U, V: V}, nil
}

// Evaluate maps every (U, V) cell of g through Point and returns the X, Y, Z
// grids.
//
// workers ≤ 1 evaluates rows sequentially. workers > 1 spreads rows over at
// most that many goroutines; cells are independent and each row writes only
// its own cells, so the result is bit-identical to the sequential one.
//
// Errors:
//   - ErrInvalidParameter when R is not finite and positive.
//   - matrix errors (shape, NaN/Inf policy) wrapped with the "Evaluate" tag.
//
// Complexity: O(n²) time and memory.
func Evaluate(g *ParameterGrid, R float64, workers int) (*CoordinateGrid, error) {
	if g == nil || g.U == nil || g.V == nil {
		return nil, surfaceErrorf(opEvaluate, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateSameShape(g.U, g.V); err != nil {
		return nil, surfaceErrorf(opEvaluate, err)
	}
	if !(R > 0) || math.IsInf(R, 0) {
		return nil, surfaceErrorf(opEvaluate, paramErrorf("radius R=%g, need finite R > 0", R))
	}

	rows, cols := g.U.Shape()
	X, err := matrix.NewZeros(rows, cols)
	if err != nil {
		return nil, surfaceErrorf(opEvaluate, err)
	}
	Y, _ := matrix.ZerosLike(X) // same shape as X; cannot fail
	Z, _ := matrix.ZerosLike(X)
	out := &CoordinateGrid{X: X, Y: Y, Z: Z}

	if workers <= 1 {
		for i := 0; i < rows; i++ {
			if err = evaluateRow(g, R, out, i); err != nil {
				return nil, surfaceErrorf(opEvaluate, err)
			}
		}

		return out, nil
	}

	var eg errgroup.Group
	eg.SetLimit(workers)
	for i := 0; i < rows; i++ {
		row := i
		eg.Go(func() error { return evaluateRow(g, R, out, row) })
	}
	if err = eg.Wait(); err != nil {
		return nil, surfaceErrorf(opEvaluate, err)
	}

	return out, nil
}

// evaluateRow fills row i of out. It touches no cell outside that row.
func evaluateRow(g *ParameterGrid, R float64, out *CoordinateGrid, i int) error {
	cols := g.U.Cols()
	for j := 0; j < cols; j++ {
		u, err := g.U.At(i, j)
		if err != nil {
			return err
		}
		v, err := g.V.At(i, j)
		if err != nil {
			return err
		}
		p := Point(u, v, R)
		if err = out.X.Set(i, j, p[0]); err != nil {
			return fmt.Errorf("X: %w", err)
		}
		if err = out.Y.Set(i, j, p[1]); err != nil {
			return fmt.Errorf("Y: %w", err)
		}
		if err = out.Z.Set(i, j, p[2]); err != nil {
			return fmt.Errorf("Z: %w", err)
		}
	}

	return nil
}

// Sample builds the parameter grid for p and evaluates it in one call.
func Sample(p Params, workers int) (*ParameterGrid, *CoordinateGrid, error) {
	if workers < 0 {
		return nil, nil, surfaceErrorf(opSample, paramErrorf("workers=%d, need workers ≥ 0", workers))
	}
	g, err := BuildParameterGrid(p)
	if err != nil {
		return nil, nil, surfaceErrorf(opSample, err)
	}
	c, err := Evaluate(g, p.R, workers)
	if err != nil {
		return nil, nil, surfaceErrorf(opSample, err)
	}

	return g, c, nil
}

// EdgeCurve samples the boundary at v = +w/2, one point per value of u, in
// the order of u. It is a single pass over the given u samples; over
// u ∈ [0, 2π] that covers half of the strip's one boundary loop.
func EdgeCurve(R, w float64, u []float64) []vec3.T {
	pts := make([]vec3.T, len(u))
	v := w / 2
	for k, uk := range u {
		pts[k] = Point(uk, v, R)
	}

	return pts
}
