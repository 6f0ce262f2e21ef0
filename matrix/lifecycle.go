// SPDX-License-Identifier: MIT

// Package matrix - ownership lifecycle of Dense buffers.
//
// Purpose:
//   - Construct (NewDense), duplicate (Copy/Clone), transfer (Move) and release
//     (Destroy) the single buffer a Dense owns.
//   - Provide Prepare, the shared "adjust dimensions, reuse capacity" primitive
//     every operation uses to obtain its result matrix.
//   - Provide Assign, the bulk entry writer used by ingestion layers.
//
// Capacity policy:
//   - Capacity only grows. A request that fits the current buffer reuses it
//     (zeroing or overwriting the logical prefix); a larger request allocates
//     a new buffer first and frees the old one only after the new one exists,
//     so a failed reallocation leaves the matrix as it was.
//
// Complexity quicksheet:
//   - NewDense/Prepare: O(r*c) zeroing; Copy/Clone/Assign: O(r*c); Move/Destroy: O(1).

package matrix

import "fmt"

const (
	opNewDense = "NewDense"
	opCopy     = "Copy"
	opMove     = "Move"
	opDestroy  = "Destroy"
	opPrepare  = "Prepare"
	opAssign   = "Assign"
)

// cellCount validates a shape and returns rows*cols.
// Errors: ErrInvalidDimensions for non-positive dims, ErrAllocation when
// rows*cols does not fit the heap bound.
func cellCount(rows, cols int) (int, error) {
	if rows <= 0 || cols <= 0 {
		return 0, ErrInvalidDimensions
	}
	if rows > MaxHeapCells/cols {
		return 0, fmt.Errorf("%dx%d: %w", rows, cols, ErrAllocation)
	}

	return rows * cols, nil
}

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation; buffer from the configured Allocator.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: gather options, allocate a zero-filled buffer of rows*cols cells.
//   - Stage 3: width starts at 1 (the width of "0").
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//   - ErrAllocation (allocator refused the buffer).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	m := &Dense{}
	if err := m.init(rows, cols, gatherOptions(opts...)); err != nil {
		return nil, matrixErrorf(opNewDense, err)
	}

	return m, nil
}

// newDenseLike allocates a rows×cols zero matrix under the policy of tmpl.
func newDenseLike(tmpl *Dense, rows, cols int) (*Dense, error) {
	m := &Dense{}
	if err := m.init(rows, cols, tmpl.options()); err != nil {
		return nil, err
	}

	return m, nil
}

// init fills an empty handle in place with a fresh zero buffer.
func (m *Dense) init(rows, cols int, o Options) error {
	n, err := cellCount(rows, cols)
	if err != nil {
		return err
	}
	buf, err := o.allocator.Alloc(n)
	if err != nil {
		return err
	}
	*m = Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		width:          1,
		alloc:          o.allocator,
		validateNaNInf: o.validateNaNInf,
	}

	return nil
}

// grow makes sure the owned buffer holds at least n cells.
// The old buffer is released only after the new one was obtained; on failure
// the matrix is unchanged. A grown buffer is zero-filled; a reused one is not.
// Returns true when a new buffer was installed.
func (m *Dense) grow(n int) (bool, error) {
	if len(m.data) >= n {
		return false, nil
	}
	buf, err := m.alloc.Alloc(n)
	if err != nil {
		return false, err
	}
	m.alloc.Free(m.data)
	m.data = buf

	return true, nil
}

// Clone returns an independent deep copy of m in a freshly allocated buffer
// sized to m's logical shape (capacity is not carried over).
// Errors: ErrNilMatrix/ErrEmptyMatrix for a dead source, ErrAllocation.
// Complexity: O(r*c).
func (m *Dense) Clone() (*Dense, error) {
	return Copy(nil, m)
}

// Copy makes dst an entry-wise duplicate of src and returns dst.
// MAIN DESCRIPTION:
//   - nil dst: a new matrix is allocated under src's policy and returned.
//   - empty dst: the handle is filled in place.
//   - live dst: its buffer is grown only when Cap() < src.Rows()*src.Cols();
//     shape, width and entries are then overwritten.
//
// Errors:
//   - ErrNilMatrix/ErrEmptyMatrix when src is not live.
//   - ErrAllocation; a live dst keeps its previous state in that case.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) only when allocating.
func Copy(dst, src *Dense) (*Dense, error) {
	if err := ValidateLive(src); err != nil {
		return dst, matrixErrorf(opCopy, err)
	}
	if dst == src {
		return dst, nil
	}
	n := src.size()
	switch {
	case dst == nil:
		d, err := newDenseLike(src, src.r, src.c)
		if err != nil {
			return nil, matrixErrorf(opCopy, err)
		}
		dst = d
	case dst.IsEmpty():
		if err := dst.init(src.r, src.c, src.options()); err != nil {
			return dst, matrixErrorf(opCopy, err)
		}
	default:
		if _, err := dst.grow(n); err != nil {
			return dst, matrixErrorf(opCopy, err)
		}
	}
	copy(dst.data[:n], src.data[:n])
	dst.r, dst.c = src.r, src.c
	dst.width = src.width

	return dst, nil
}

// Move transfers ownership of src's buffer, shape and width into dst and
// empties src. No allocation takes place.
// MAIN DESCRIPTION:
//   - Whatever dst owned before is destroyed first.
//   - nil dst: a new handle is created to receive the buffer.
//   - dst == src: no-op.
//
// Errors:
//   - ErrNilMatrix/ErrEmptyMatrix when src owns nothing; dst is untouched then.
//
// Complexity:
//   - Time O(1).
func Move(dst, src *Dense) (*Dense, error) {
	if err := ValidateLive(src); err != nil {
		return dst, matrixErrorf(opMove, err)
	}
	if dst == src {
		return dst, nil
	}
	if dst == nil {
		dst = &Dense{}
	} else {
		dst.release()
	}
	*dst = *src
	*src = Dense{}

	return dst, nil
}

// Destroy returns the buffer to its allocator and empties the handle.
// Calling Destroy on an empty handle reports ErrEmptyMatrix and does nothing,
// so cleanup chains may call it redundantly.
// Complexity: O(1).
func (m *Dense) Destroy() error {
	if err := ValidateLive(m); err != nil {
		return matrixErrorf(opDestroy, err)
	}
	m.release()

	return nil
}

// release is Destroy without the report; safe on nil and empty handles.
func (m *Dense) release() {
	if m.IsEmpty() {
		return
	}
	m.alloc.Free(m.data)
	*m = Dense{}
}

// releaseAll releases every handle in ms, in order.
func releaseAll(ms ...*Dense) {
	for _, m := range ms {
		m.release()
	}
}

// Prepare readies dst to receive a rows×cols result: the adjustDims primitive.
// MAIN DESCRIPTION:
//   - nil dst: allocate a new zero matrix (opts apply) and return it.
//   - empty dst: fill the handle in place with a new zero buffer.
//   - live dst with Cap() < rows*cols: reallocate (new buffer zero-filled,
//     old buffer released).
//   - live dst with enough capacity: zero the first rows*cols cells in place.
//   - In every case: set rows/cols and reset width to 1.
//
// Errors:
//   - ErrInvalidDimensions; ErrAllocation (only on the allocation paths; a live
//     dst is unchanged when reallocation fails).
//
// Complexity:
//   - Time O(r*c).
func Prepare(dst *Dense, rows, cols int, opts ...Option) (*Dense, error) {
	d, err := prepare(dst, rows, cols, gatherOptions(opts...))
	if err != nil {
		return d, matrixErrorf(opPrepare, err)
	}

	return d, nil
}

// prepare is Prepare with explicit options and unwrapped errors; kernels use it
// with the options of their first operand.
func prepare(dst *Dense, rows, cols int, o Options) (*Dense, error) {
	n, err := cellCount(rows, cols)
	if err != nil {
		return dst, err
	}
	if dst == nil {
		d := &Dense{}
		if err = d.init(rows, cols, o); err != nil {
			return nil, err
		}
		return d, nil
	}
	if dst.IsEmpty() {
		if err = dst.init(rows, cols, o); err != nil {
			return dst, err
		}
		return dst, nil
	}
	grown, err := dst.grow(n)
	if err != nil {
		return dst, err
	}
	if !grown {
		clear(dst.data[:n])
	}
	dst.r, dst.c = rows, cols
	dst.width = 1

	return dst, nil
}

// Assign bulk-writes rows*cols row-major entries into m, reshaping it.
// MAIN DESCRIPTION:
//   - Grows capacity when needed (never shrinks), copies the entries, sets the
//     shape and recomputes the width over all new entries.
//   - An empty handle is given a fresh buffer under its own (or default) policy.
//
// Errors:
//   - ErrNilMatrix; ErrInvalidDimensions; ErrDimensionMismatch when
//     len(entries) < rows*cols; ErrNaNInf under the finite-only policy;
//     ErrAllocation. m is unchanged on every error.
//
// Complexity:
//   - Time O(r*c).
func (m *Dense) Assign(entries []float64, rows, cols int) error {
	if m == nil {
		return matrixErrorf(opAssign, ErrNilMatrix)
	}
	n, err := cellCount(rows, cols)
	if err != nil {
		return matrixErrorf(opAssign, err)
	}
	if len(entries) < n {
		return matrixErrorf(opAssign, fmt.Errorf("%d entries for %dx%d: %w", len(entries), rows, cols, ErrDimensionMismatch))
	}
	o := m.options()
	if o.validateNaNInf {
		if idx := firstNonFinite(entries[:n]); idx >= 0 {
			return matrixErrorf(opAssign, denseErrorf(ctxSet, idx/cols, idx%cols, ErrNaNInf))
		}
	}
	if m.IsEmpty() {
		err = m.init(rows, cols, o)
	} else {
		_, err = m.grow(n)
	}
	if err != nil {
		return matrixErrorf(opAssign, err)
	}
	copy(m.data[:n], entries[:n])
	m.r, m.c = rows, cols
	m.refreshWidth()

	return nil
}
