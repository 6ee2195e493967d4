// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults.
//
// The policy is a per-instance flag carried by Dense (see impl_dense.go):
// when enabled, Set and Apply reject NaN/±Inf so that a degenerate
// computation fails at the cell that produced it instead of leaking NaNs
// into downstream sums.
package matrix

// DefaultValidateNaNInf enables finite-only writes for every Dense created by
// the public constructors.
const DefaultValidateNaNInf = true

