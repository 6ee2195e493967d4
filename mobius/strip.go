// SPDX-License-Identifier: MIT

package mobius

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/JyotsnaGuntha/mobius-strip-model/matrix"
	"github.com/JyotsnaGuntha/mobius-strip-model/measure"
	"github.com/JyotsnaGuntha/mobius-strip-model/surface"
)

// ErrInvalidParameter is surface.ErrInvalidParameter, re-exported so callers
// of this package need not import surface to match it.
var ErrInvalidParameter = surface.ErrInvalidParameter

// Strip is an immutable sampled Möbius strip.
//
// The parameter and coordinate grids are built eagerly by New; surface area
// and edge length are computed on first use and cached. All accessors return
// copies, so a Strip is safe for concurrent use. To change R, w or n build a
// new Strip.
type Strip struct {
	params surface.Params
	grid   *surface.ParameterGrid
	coords *surface.CoordinateGrid
	style  RenderStyle
	logger *slog.Logger

	area func() (float64, error)
	edge func() (float64, error)
}

// New samples a strip with the given options (defaults: R=1.0, w=0.2, n=100).
//
// Errors:
//   - ErrInvalidParameter for n < 2, R ≤ 0, w ≤ 0, non-finite R/w or workers < 1.
func New(opts ...Option) (*Strip, error) {
	cfg := newConfig(opts...)
	if cfg.workers < 1 {
		return nil, fmt.Errorf("mobius: New: workers=%d, need workers ≥ 1: %w", cfg.workers, ErrInvalidParameter)
	}

	grid, coords, err := surface.Sample(cfg.params, cfg.workers)
	if err != nil {
		return nil, fmt.Errorf("mobius: New: %w", err)
	}

	s := &Strip{
		params: cfg.params,
		grid:   grid,
		coords: coords,
		style:  cfg.style,
		logger: cfg.logger,
	}
	s.area = sync.OnceValues(s.computeArea)
	s.edge = sync.OnceValues(s.computeEdge)

	s.logger.Debug("mobius: strip sampled",
		"R", cfg.params.R, "w", cfg.params.W, "n", cfg.params.N, "workers", cfg.workers)

	return s, nil
}

// NewStrip is New(WithRadius(R), WithWidth(w), WithResolution(n)).
func NewStrip(R, w float64, n int) (*Strip, error) {
	return New(WithRadius(R), WithWidth(w), WithResolution(n))
}

// Params returns the shape parameters the strip was built from.
func (s *Strip) Params() surface.Params { return s.params }

// AxisU returns a copy of the n samples of u over [0, 2π].
func (s *Strip) AxisU() []float64 { return append([]float64(nil), s.grid.AxisU...) }

// AxisV returns a copy of the n samples of v over [-w/2, w/2].
func (s *Strip) AxisV() []float64 { return append([]float64(nil), s.grid.AxisV...) }

// U returns a copy of the n×n u grid (U[i][j] = u[j]).
func (s *Strip) U() matrix.Matrix { return s.grid.U.Clone() }

// V returns a copy of the n×n v grid (V[i][j] = v[i]).
func (s *Strip) V() matrix.Matrix { return s.grid.V.Clone() }

// X returns a copy of the n×n x-coordinate grid.
func (s *Strip) X() matrix.Matrix { return s.coords.X.Clone() }

// Y returns a copy of the n×n y-coordinate grid.
func (s *Strip) Y() matrix.Matrix { return s.coords.Y.Clone() }

// Z returns a copy of the n×n z-coordinate grid.
func (s *Strip) Z() matrix.Matrix { return s.coords.Z.Clone() }

// EdgeCurve returns the n boundary points at v = +w/2, one per u sample.
func (s *Strip) EdgeCurve() []vec3.T {
	return surface.EdgeCurve(s.params.R, s.params.W, s.grid.AxisU)
}

// Jacobian returns the per-cell area-scaling factors |∂S/∂u × ∂S/∂v|.
func (s *Strip) Jacobian() (matrix.Matrix, error) {
	J, err := measure.Jacobian(s.grid.U, s.grid.V, s.coords.X, s.coords.Y, s.coords.Z)
	if err != nil {
		return nil, fmt.Errorf("mobius: %w", err)
	}

	return J, nil
}

// SurfaceArea returns the Riemann-sum estimate of the strip's area.
func (s *Strip) SurfaceArea() (float64, error) { return s.area() }

// EdgeLength returns the polyline length of the boundary at v = +w/2 over
// one pass of u ∈ [0, 2π].
func (s *Strip) EdgeLength() (float64, error) { return s.edge() }

// Measure computes both measurements.
func (s *Strip) Measure() (Report, error) {
	area, err := s.SurfaceArea()
	if err != nil {
		return Report{}, err
	}
	edge, err := s.EdgeLength()
	if err != nil {
		return Report{}, err
	}

	return Report{SurfaceArea: area, EdgeLength: edge}, nil
}

func (s *Strip) computeArea() (float64, error) {
	a, err := measure.SurfaceArea(s.grid.U, s.grid.V, s.coords.X, s.coords.Y, s.coords.Z)
	if err != nil {
		return 0, fmt.Errorf("mobius: %w", err)
	}
	s.logger.Debug("mobius: surface area", "n", s.params.N, "area", a)

	return a, nil
}

func (s *Strip) computeEdge() (float64, error) {
	l, err := measure.EdgeLength(s.params.R, s.params.W, s.grid.AxisU)
	if err != nil {
		return 0, fmt.Errorf("mobius: %w", err)
	}
	s.logger.Debug("mobius: edge length", "n", s.params.N, "length", l)

	return l, nil
}
