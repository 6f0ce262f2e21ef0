// SPDX-License-Identifier: MIT
// Package matrix provides the algebra kernels on Dense: n-ary addition and
// subtraction, multiplication, integer power and transpose.
//
// Purpose:
//   - Every kernel validates its operands, obtains its result through prepare
//     (the shared adjustDims primitive), fills it, and recomputes the width cache.
//   - Results go into a caller-supplied destination when one is given, reusing
//     its capacity; a nil destination yields a newly allocated result under the
//     policy (allocator, numeric guard) of the first operand.
//
// Aliasing:
//   - A destination may be one of the operands. The kernel then computes into a
//     scratch matrix and moves it into the destination afterwards, so every
//     operand entry is read before the destination is overwritten.
//
// Notes:
//   - Validation failures are ErrNoOperands/ErrDimensionMismatch/ErrNonSquare/
//     ErrBadExponent/ErrEmptyMatrix, never ErrAllocation.

package matrix

import "fmt"

// ZeroSum is the initial value of every accumulation.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opPow       = "Pow"
	opTranspose = "Transpose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// aliased reports whether dst is the same handle as one of the inputs.
func aliased(dst *Dense, inputs ...*Dense) bool {
	if dst == nil {
		return false
	}
	for _, in := range inputs {
		if in == dst {
			return true
		}
	}

	return false
}

// target prepares the matrix a kernel writes into: dst itself, or a scratch
// matrix when dst aliases one of the inputs. tmpl supplies the policy for
// newly allocated matrices.
func target(dst *Dense, rows, cols int, tmpl *Dense, inputs ...*Dense) (*Dense, error) {
	if aliased(dst, inputs...) {
		return prepare(nil, rows, cols, tmpl.options())
	}

	return prepare(dst, rows, cols, tmpl.options())
}

// finish installs a scratch result into dst (see target) and returns the
// handle the caller should use.
func finish(dst, out *Dense) *Dense {
	if dst == nil || dst == out {
		return out
	}
	d, _ := Move(dst, out) // out is live here; Move cannot fail

	return d
}

// accumulate computes out[i,j] = ms[0][i,j] + sign*ms[1][i,j] + sign*ms[2][i,j] + ...
// Shared by Add (sign=+1) and Sub (sign=-1).
//
// Implementation:
//   - Stage 1: ValidateOperands (≥1 operand, all live, identical shapes).
//   - Stage 2: target → prepare the result with the common shape.
//   - Stage 3: single flat loop over the logical cells; operands in order.
//   - Stage 4: recompute width; move scratch into dst when aliased.
//
// Complexity:
//   - Time O(k*r*c) for k operands, Space O(r*c) for a new result.
func accumulate(dst *Dense, ms []*Dense, sign float64, opTag string) (*Dense, error) {
	if err := ValidateOperands(ms); err != nil {
		return dst, matrixErrorf(opTag, err)
	}
	first := ms[0]
	out, err := target(dst, first.r, first.c, first, ms...)
	if err != nil {
		return dst, matrixErrorf(opTag, err)
	}

	n := first.size()
	var sum float64
	for idx := 0; idx < n; idx++ { // deterministic 0..n-1
		sum = ZeroSum + first.data[idx]
		for _, m := range ms[1:] {
			sum += sign * m.data[idx]
		}
		out.data[idx] = sum
	}
	out.refreshWidth()

	return finish(dst, out), nil
}

// Add computes the element-wise sum of all operands into dst.
// Implementation:
//   - Stage 1: Validate operands are live and share one shape.
//   - Stage 2: Prepare dst with that shape and sum operands left to right.
//
// Returns:
//   - *Dense: dst (or a new matrix when dst is nil).
//
// Errors:
//   - ErrNoOperands, ErrNilMatrix, ErrEmptyMatrix, ErrDimensionMismatch, ErrAllocation.
//
// Complexity:
//   - Time O(k*r*c), Space O(r*c).
func Add(dst *Dense, operands ...*Dense) (*Dense, error) {
	return accumulate(dst, operands, +1, opAdd)
}

// Sub computes operands[0] − operands[1] − operands[2] − … element-wise into dst.
// Same contract as Add; a single operand yields a copy of it.
func Sub(dst *Dense, operands ...*Dense) (*Dense, error) {
	return accumulate(dst, operands, -1, opSub)
}

// Mul performs standard matrix multiplication dst = A × B.
// Implementation:
//   - Stage 1: Validate A,B (live) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Prepare dst as (A.Rows × B.Cols), zero-filled.
//   - Stage 3: i→k→j accumulation on row-major strides. For every (i,j) the
//     products are added in ascending k, exactly as the textbook dot product.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrDimensionMismatch, ErrAllocation.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// Notes:
//   - Zero entries of A are not skipped: 0*Inf must still yield NaN.
func Mul(dst, a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return dst, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.r, a.c, b.c
	out, err := target(dst, aRows, bCols, a, a, b)
	if err != nil {
		return dst, matrixErrorf(opMul, err)
	}

	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				out.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}
	out.refreshWidth()

	return finish(dst, out), nil
}

// Pow computes A^k for a square A and k ≥ 1.
// Implementation:
//   - k == 1: Copy(dst, A).
//   - k == 2: Mul(dst, A, A).
//   - k ≥ 3: acc = A×A, then acc = acc×A for each remaining power; every
//     replaced accumulator is released, and so is the running one on failure.
//     The final accumulator is moved into dst.
//
// Errors:
//   - ErrBadExponent (k < 1), ErrNilMatrix, ErrEmptyMatrix, ErrNonSquare, ErrAllocation.
//
// Complexity:
//   - Time O(k*n^3): one multiplication per power, no repeated squaring.
//   - Space O(n^2): at most two accumulators live at once.
func Pow(dst, a *Dense, k int) (*Dense, error) {
	if err := ValidateSquare(a); err != nil {
		return dst, matrixErrorf(opPow, err)
	}
	if k < 1 {
		return dst, matrixErrorf(opPow, fmt.Errorf("k=%d: %w", k, ErrBadExponent))
	}

	switch k {
	case 1:
		out, err := Copy(dst, a)
		if err != nil {
			return out, matrixErrorf(opPow, err)
		}
		return out, nil
	case 2:
		out, err := Mul(dst, a, a)
		if err != nil {
			return out, matrixErrorf(opPow, err)
		}
		return out, nil
	}

	acc, err := Mul(nil, a, a)
	if err != nil {
		return dst, matrixErrorf(opPow, err)
	}
	var next *Dense
	for i := 3; i <= k; i++ {
		next, err = Mul(nil, acc, a)
		if err != nil {
			acc.release()
			return dst, matrixErrorf(opPow, fmt.Errorf("power %d: %w", i, err))
		}
		acc.release()
		acc = next
	}

	return finish(dst, acc), nil
}

// Transpose writes Aᵀ into dst (shape Cols×Rows).
// Implementation:
//   - Stage 1: Validate A is live; prepare dst as (A.Cols × A.Rows).
//   - Stage 2: data[i*cols + j] → out[j*rows + i].
//   - Stage 3: width is copied from A; transposition does not change the set of values.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrAllocation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(dst, a *Dense) (*Dense, error) {
	if err := ValidateLive(a); err != nil {
		return dst, matrixErrorf(opTranspose, err)
	}
	rows, cols := a.r, a.c
	out, err := target(dst, cols, rows, a, a)
	if err != nil {
		return dst, matrixErrorf(opTranspose, err)
	}

	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			out.data[j*rows+i] = a.data[baseSrc+j]
		}
	}
	out.width = a.width

	return finish(dst, out), nil
}
