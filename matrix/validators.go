// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Keep kernels minimal by delegating nil/empty/shape checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their operation tag.
//  - Expose the boolean shape predicates (CanAdd/CanSub/CanMult) that callers
//    consult before invoking an operation.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, O(1) and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (Live → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateLive ensures m is non-nil and owns a buffer.
//
// Errors: ErrNilMatrix if m == nil, ErrEmptyMatrix if m is destroyed/moved-from/zero.
// Complexity: O(1).
func ValidateLive(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateLive", ErrNilMatrix)
	}
	if m.data == nil {
		return validatorErrorf("ValidateLive", ErrEmptyMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
//
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is live and square (Rows == Cols).
//
// Errors: ErrNilMatrix, ErrEmptyMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateLive(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateOperands – Composite: Live(each) → SameShape(first, each).
//
// Errors: ErrNoOperands, ErrNilMatrix, ErrEmptyMatrix, ErrDimensionMismatch.
// Complexity: O(k) for k operands.
func ValidateOperands(ms []*Dense) error {
	if len(ms) == 0 {
		return validatorErrorf("ValidateOperands", ErrNoOperands)
	}
	for i, m := range ms {
		if err := ValidateLive(m); err != nil {
			return validatorErrorf(fmt.Sprintf("ValidateOperands[%d]", i), err)
		}
		if err := ValidateSameShape(ms[0], m); err != nil {
			return validatorErrorf(fmt.Sprintf("ValidateOperands[%d]", i), err)
		}
	}

	return nil
}

// ValidateMulCompatible – Ensures both operands are live and a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrEmptyMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateLive(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateLive(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ---------- Shape predicates ----------

// CanAdd reports whether a and b can be added: both live with identical shapes.
func CanAdd(a, b *Dense) bool {
	return ValidateOperands([]*Dense{a, b}) == nil
}

// CanSub reports whether b can be subtracted from a. Same rule as CanAdd.
func CanSub(a, b *Dense) bool { return CanAdd(a, b) }

// CanMult reports whether a × b is defined: a.Cols() == b.Rows().
func CanMult(a, b *Dense) bool {
	return ValidateMulCompatible(a, b) == nil
}
