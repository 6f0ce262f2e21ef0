// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// an operation tag) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operations wrap with matrixErrorf(op, ErrX) at
// the detection site; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// empty operand -> shape/exponent -> allocation.
// A shape violation is never reported as ErrAllocation.

var (
	// ErrAllocation is returned when a buffer for a matrix, a minor or a scratch
	// result cannot be obtained from the Allocator. The operation that observed
	// it has already released every buffer it allocated.
	ErrAllocation = errors.New("matrix: allocation failed")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrEmptyMatrix marks use of a handle that owns no buffer: a zero Dense,
	// a destroyed one, or the source of a completed Move.
	ErrEmptyMatrix = errors.New("matrix: empty matrix handle")

	// ErrNilMatrix indicates that a nil *Dense was passed where a matrix is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNoOperands is returned by the n-ary Add/Sub when called without operands.
	ErrNoOperands = errors.New("matrix: no operands")

	// ErrBadExponent is returned by Pow for exponents below 1.
	ErrBadExponent = errors.New("matrix: exponent must be >= 1")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (Set, Assign).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
