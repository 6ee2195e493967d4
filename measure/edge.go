// SPDX-License-Identifier: MIT

package measure

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/JyotsnaGuntha/mobius-strip-model/surface"
)

// EdgeLength approximates the length of the boundary curve v = +w/2 by the
// polyline through surface.EdgeCurve(R, w, u): the sum of the len(u)-1
// segment lengths.
//
// Over u ∈ [0, 2π] this is one pass along the boundary, which is half of the
// strip's single boundary loop; the value is reported as is.
//
// Errors: ErrGridTooSmall when u is empty.
func EdgeLength(R, w float64, u []float64) (float64, error) {
	if len(u) == 0 {
		return 0, measureErrorf(opEdgeLength, fmt.Errorf("empty u axis: %w", ErrGridTooSmall))
	}

	return PolylineLength(surface.EdgeCurve(R, w, u)), nil
}

// PolylineLength returns Σ |p[k+1] - p[k]| over consecutive points.
// Fewer than two points yield 0.
func PolylineLength(pts []vec3.T) float64 {
	var total float64
	for k := 0; k+1 < len(pts); k++ {
		total += vec3.Distance(&pts[k], &pts[k+1])
	}

	return total
}
