// SPDX-License-Identifier: MIT

// Package mobiusstrip models a Möbius strip numerically: it samples the
// surface on a parameter grid, then approximates its surface area and the
// length of its boundary edge.
//
// 🚀 What is in the box?
//
//	• matrix/  row-major Dense grids, Linspace, Meshgrid, Gradient, Sum
//	• surface/ shape parameters, the (u, v) → (x, y, z) map, grid sampling
//	• measure/ Jacobian, surface area (Riemann sum), polyline edge length
//	• mobius/  the Strip entry point: options, cached measurements, reports
//
// The strip is parameterized by u ∈ [0, 2π] (along the strip) and
// v ∈ [-w/2, w/2] (across it):
//
//	x = (R + v·cos(u/2))·cos(u)
//	y = (R + v·cos(u/2))·sin(u)
//	z = v·sin(u/2)
//
// Quick start:
//
//	s, _ := mobius.NewStrip(1.0, 0.2, 200)
//	rep, _ := s.Measure()
//	fmt.Println(rep)
//	// Surface Area ≈ 1.26962
//	// Edge Length ≈ 6.29081
//
// Both results are discrete estimates: they depend on the resolution n and
// converge as n grows.
//
//	go get github.com/JyotsnaGuntha/mobius-strip-model/mobius
package mobiusstrip
