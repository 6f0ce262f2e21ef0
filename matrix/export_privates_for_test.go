// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels and the options snapshot.
//
// Purpose:
//   - Expose the unexported minor/det kernels and a read-only view of a
//     matrix's effective Options to matrix_test ONLY.
//   - The file name ends in _test.go, so nothing here reaches production builds.
//
// Maintenance:
//   - Keep OptionsSnapshot in sync with the Options fields.

// OptionsSnapshot is a read-only view of the Options a Dense was built with.
type OptionsSnapshot struct {
	Allocator      Allocator
	ValidateNaNInf bool
}

// OptionsOf_TestOnly returns the effective options of m (defaults for nil/empty).
func OptionsOf_TestOnly(m *Dense) OptionsSnapshot {
	o := m.options()
	return OptionsSnapshot{Allocator: o.allocator, ValidateNaNInf: o.validateNaNInf}
}

// Minor_TestOnly passes through to minor; m must be live and at least 2×2.
func Minor_TestOnly(m *Dense, skipRow, skipCol int) (*Dense, error) {
	return minor(m, skipRow, skipCol)
}

// Det_TestOnly runs the recursive kernel without the precondition wrapper.
func Det_TestOnly(m *Dense) (float64, error) {
	return det(m)
}
