// SPDX-License-Identifier: MIT

// Package matrix: read-side interface shared by Dense and foreign matrix types.
package matrix

// Matrix is the read-only view consumed by comparison helpers (AllClose,
// FromMatrix). The algebra kernels take *Dense because they manage buffer
// ownership of their results.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}
