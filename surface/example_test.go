// SPDX-License-Identifier: MIT

package surface_test

import (
	"fmt"
	"math"

	"github.com/JyotsnaGuntha/mobius-strip-model/surface"
)

func ExamplePoint() {
	p := surface.Point(0, 0.1, 1)
	fmt.Printf("%.3f %.3f %.3f\n", p[0], p[1], p[2])
	p = surface.Point(math.Pi, 0.1, 1)
	fmt.Printf("%.3f %.3f %.3f\n", p[0], p[1], p[2])
	// Output:
	// 1.100 0.000 0.000
	// -1.000 0.000 0.100
}
