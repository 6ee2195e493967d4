// SPDX-License-Identifier: MIT

package mobius

import "fmt"

// Output formats of the two measurement lines (five decimals, fixed point).
const (
	FormatSurfaceArea = "Surface Area ≈ %.5f"
	FormatEdgeLength  = "Edge Length ≈ %.5f"
)

// Report is the pair of measurements of one strip.
type Report struct {
	SurfaceArea float64
	EdgeLength  float64
}

// Lines returns the two display lines, area first.
func (r Report) Lines() []string {
	return []string{
		fmt.Sprintf(FormatSurfaceArea, r.SurfaceArea),
		fmt.Sprintf(FormatEdgeLength, r.EdgeLength),
	}
}

// String joins Lines with a newline.
func (r Report) String() string {
	l := r.Lines()

	return l[0] + "\n" + l[1]
}
