// SPDX-License-Identifier: MIT

package measure

import (
	"errors"
	"fmt"
)

var (
	// ErrGridTooSmall indicates a grid with fewer than two samples along an
	// axis (no spacing, no finite differences) or an empty u axis.
	ErrGridTooSmall = errors.New("measure: grid needs at least 2 samples per axis")

	// ErrGridMismatch indicates parameter and coordinate grids of different shapes.
	ErrGridMismatch = errors.New("measure: grids are not aligned")
)

const (
	opJacobian    = "Jacobian"
	opSurfaceArea = "SurfaceArea"
	opEdgeLength  = "EdgeLength"
)

// measureErrorf attaches an operation tag to err, preserving it for errors.Is.
func measureErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
