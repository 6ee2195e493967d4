// SPDX-License-Identifier: MIT

package mobius

import (
	"errors"
	"fmt"
)

// ErrNilRenderer is returned by Render when no renderer is supplied.
var ErrNilRenderer = errors.New("mobius: renderer is nil")

// RenderStyle carries display hints for a renderer. The strip never draws;
// these values are passed through untouched.
type RenderStyle struct {
	Title     string
	XLabel    string
	YLabel    string
	ZLabel    string
	FaceColor string  // named colour of the surface
	EdgeColor string  // named colour of the wireframe
	Alpha     float64 // surface opacity in [0, 1]
}

// DefaultRenderStyle returns the stock look: a semi-transparent sky-blue
// surface with a gray wireframe and X/Y/Z axis labels.
func DefaultRenderStyle() RenderStyle {
	return RenderStyle{
		Title:     "Mobius Strip",
		XLabel:    "X",
		YLabel:    "Y",
		ZLabel:    "Z",
		FaceColor: "skyblue",
		EdgeColor: "gray",
		Alpha:     0.8,
	}
}

// Mesh is the renderer-facing view of a strip: three n×n coordinate grids
// indexed [i][j] (row i follows v, column j follows u) plus display hints.
// The slices are copies; renderers may keep or modify them freely.
type Mesh struct {
	X, Y, Z [][]float64
	Style   RenderStyle
}

// Renderer draws a surface mesh. Implementations live outside this module
// (plotting libraries, image encoders, GPU front-ends).
type Renderer interface {
	RenderSurface(m Mesh) error
}

// Mesh returns a copy of the coordinate grids with the strip's render style.
func (s *Strip) Mesh() Mesh {
	return Mesh{
		X:     s.coords.X.ToRows(),
		Y:     s.coords.Y.ToRows(),
		Z:     s.coords.Z.ToRows(),
		Style: s.style,
	}
}

// Render hands the strip's mesh to r.
func (s *Strip) Render(r Renderer) error {
	if r == nil {
		return ErrNilRenderer
	}
	s.logger.Debug("mobius: render", "n", s.params.N, "title", s.style.Title)
	if err := r.RenderSurface(s.Mesh()); err != nil {
		return fmt.Errorf("mobius: render: %w", err)
	}

	return nil
}
