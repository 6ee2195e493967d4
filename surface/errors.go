// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates shape parameters outside their domain:
// n < 2, R ≤ 0, w ≤ 0, a non-finite R or w, or a negative worker count.
// Usage: if errors.Is(err, ErrInvalidParameter) { /* reject input */ }.
var ErrInvalidParameter = errors.New("surface: invalid shape parameter")

// Operation tags for error context.
const (
	opValidate  = "Params.Validate"
	opBuildGrid = "BuildParameterGrid"
	opEvaluate  = "Evaluate"
	opSample    = "Sample"
)

// surfaceErrorf attaches an operation tag to err, preserving it for errors.Is.
func surfaceErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// paramErrorf builds a descriptive ErrInvalidParameter.
func paramErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", opValidate, fmt.Sprintf(format, args...), ErrInvalidParameter)
}
