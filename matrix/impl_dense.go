// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Separate capacity (len of the owned buffer) from logical size (rows*cols),
//     so that shrinking a result keeps the larger allocation for later reuse.
//   - Cache the display width of the widest entry for table renderers.
//   - Guarantee safety at the public surface: At/Set return errors, Entry/SetEntry
//     return flags, nothing panics on bad coordinates.
//
// Complexity quicksheet:
//   - At/Set/Entry/SetEntry: O(1); String/RawData: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel is preserved for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix that owns its buffer exclusively.
//   - r,c hold the logical dimensions (rows, cols); both are 0 for an empty handle.
//   - data is the owned buffer; len(data) is the capacity and only the prefix
//     data[:r*c] is meaningful (offset = i*c + j).
//   - width caches the widest FormatWidth over the logical entries.
//   - alloc is the Allocator that produced data and receives it back on Destroy.
//
// Ownership:
//   - Exactly one *Dense owns a given buffer. Copy duplicates, Move transfers,
//     Destroy releases. Assigning one Dense value to another (*a = *b) is not
//     supported and breaks the single-owner rule.
//   - The zero value is an empty handle: usable as a destination, rejected as
//     an operand with ErrEmptyMatrix.
type Dense struct {
	r, c           int
	data           []float64
	width          int
	alloc          Allocator
	validateNaNInf bool
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// Rows returns the logical row count (0 for an empty handle).
func (m *Dense) Rows() int { return m.r }

// Cols returns the logical column count (0 for an empty handle).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Cap returns the number of cells the owned buffer can hold without reallocation.
// Cap() >= Rows()*Cols() always holds.
func (m *Dense) Cap() int { return len(m.data) }

// Width returns the cached display width: the widest FormatWidth over all entries.
// Renderers pad every cell to this width.
func (m *Dense) Width() int { return m.width }

// IsEmpty reports whether the handle owns no buffer (zero value, destroyed, or moved-from).
func (m *Dense) IsEmpty() bool { return m == nil || m.data == nil }

// size is the logical cell count.
func (m *Dense) size() int { return m.r * m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns a plain sentinel; public methods wrap with coordinates and method name.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Errors:
//   - ErrNilMatrix for a nil receiver; ErrOutOfRange when out of bounds
//     (every coordinate is out of bounds on an empty handle).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if m == nil {
		return 0, denseErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Entry is the flag-style bounds-checked read used by display layers:
// it returns the stored value and true, or 0 and false when (row, col) is
// outside [0,Rows())×[0,Cols()).
func (m *Dense) Entry(row, col int) (float64, bool) {
	v, err := m.At(row, col)
	if err != nil {
		return 0, false
	}

	return v, true
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe single-cell write; the cached width only grows.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into the flat buffer; widen the cache if needed.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrNaNInf. The matrix is untouched on error.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	if m == nil {
		return denseErrorf(ctxSet, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v
	if w := FormatWidth(v); w > m.width {
		m.width = w
	}

	return nil
}

// SetEntry is the flag-style counterpart of Set: false means nothing was written.
func (m *Dense) SetEntry(row, col int, v float64) bool {
	return m.Set(row, col, v) == nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange (wrapped) when i is invalid.
func (m *Dense) Row(i int) ([]float64, error) {
	if m == nil {
		return nil, denseErrorf(ctxRow, i, 0, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// RawData returns a row-major copy of the logical entries (len == Rows()*Cols()).
func (m *Dense) RawData() []float64 {
	if m.IsEmpty() {
		return nil
	}
	out := make([]float64, m.size())
	copy(out, m.data[:m.size()])

	return out
}

// refreshWidth recomputes the width cache over the logical entries.
// Complexity: O(r*c).
func (m *Dense) refreshWidth() {
	m.width = maxWidth(m.data[:m.size()])
}

// String provides a readable row-wise dump for diagnostics.
// Empty handles render as "[]".
// Complexity: O(r*c).
func (m *Dense) String() string {
	if m.IsEmpty() {
		return "[]"
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(FormatEntry(m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
