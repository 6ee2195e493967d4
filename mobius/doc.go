// SPDX-License-Identifier: MIT

// Package mobius is the entry point of the module: it samples a Möbius strip
// from (R, w, n), keeps the grids immutable, and reports the approximate
// surface area and boundary edge length.
//
// ⚙️ Usage:
//
//	s, err := mobius.New(mobius.WithRadius(1), mobius.WithWidth(0.2), mobius.WithResolution(200))
//	if err != nil {
//	  // errors.Is(err, mobius.ErrInvalidParameter)
//	}
//	rep, err := s.Measure()
//	fmt.Println(rep)
//	// Surface Area ≈ 1.26962
//	// Edge Length ≈ 6.29081
//
// Rendering is left to the caller: Mesh exports the coordinate grids with
// display hints, and Render passes them to any Renderer implementation.
package mobius
