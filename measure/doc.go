// SPDX-License-Identifier: MIT

// Package measure derives scalar measurements from a sampled parametric
// surface.
//
// Surface area is the discrete form of ∬ |∂S/∂u × ∂S/∂v| du dv:
//
//  1. dU, dV are the uniform parameter spacings.
//  2. Each coordinate grid is differentiated along u (columns) and v (rows)
//     with matrix.Gradient: central differences inside, one-sided on the border.
//  3. The cross product of the two tangent vectors is formed per cell; its
//     length is the local area-scaling factor (see Jacobian).
//  4. The factors of all n×n cells are summed and scaled by |dU·dV|.
//
// Every cell contributes a full dU·dV element, border cells included, so the
// estimate overshoots slightly for small n and converges as n grows. There
// is no error bound.
//
// Edge length is the length of the polyline through the boundary samples
// returned by surface.EdgeCurve.
package measure
