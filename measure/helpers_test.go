// SPDX-License-Identifier: MIT

package measure_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JyotsnaGuntha/mobius-strip-model/surface"
)

// sampled bundles the grids of one sampled strip.
type sampled struct {
	grid   *surface.ParameterGrid
	coords *surface.CoordinateGrid
}

func mustSample(tb testing.TB, R, w float64, n int) sampled {
	tb.Helper()
	g, c, err := surface.Sample(surface.Params{R: R, W: w, N: n}, 1)
	require.NoError(tb, err)

	return sampled{grid: g, coords: c}
}

// speed is |∂S/∂u × ∂S/∂v| of the strip in closed form; it is also the
// speed |∂S/∂u| of the boundary curve at fixed v.
func speed(R, u, v float64) float64 {
	r := R + v*math.Cos(u/2)
	return math.Sqrt(r*r + v*v/4)
}

// exactArea integrates speed over [0,2π]×[-w/2,w/2] with a fine midpoint rule.
func exactArea(R, w float64) float64 {
	const nu, nv = 4000, 400
	du, dv := 2*math.Pi/nu, w/nv
	var s float64
	for i := 0; i < nu; i++ {
		u := (float64(i) + 0.5) * du
		for j := 0; j < nv; j++ {
			s += speed(R, u, -w/2+(float64(j)+0.5)*dv)
		}
	}

	return s * du * dv
}

// exactEdge integrates the boundary speed at v = w/2 over [0, 2π].
func exactEdge(R, w float64) float64 {
	const nu = 200000
	du := 2 * math.Pi / nu
	var s float64
	for i := 0; i < nu; i++ {
		s += speed(R, (float64(i)+0.5)*du, w/2)
	}

	return s * du
}
