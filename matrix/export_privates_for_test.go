// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers.
//
// Purpose:
//   - Expose UNEXPORTED constructors and predicates to matrix_test ONLY.
//   - Enable white-box checks of the numeric policy without widening the prod API.

var (
	// ExportedNewDenseWithPolicy exposes newDenseWithPolicy for white-box tests.
	ExportedNewDenseWithPolicy = newDenseWithPolicy

	// ExportedCloseEnough exposes the scalar predicate behind AllClose.
	ExportedCloseEnough = closeEnough
)
