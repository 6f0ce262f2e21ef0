// SPDX-License-Identifier: MIT

package workbook

import "errors"

var (
	// ErrUnknownOp indicates a step names an op the runner does not implement.
	ErrUnknownOp = errors.New("workbook: unknown op")

	// ErrUnknownMatrix indicates a step argument names no defined matrix.
	ErrUnknownMatrix = errors.New("workbook: unknown matrix")

	// ErrArity indicates a step has the wrong number of arguments for its op.
	ErrArity = errors.New("workbook: wrong number of arguments")

	// ErrIncompatible indicates operand shapes do not fit the op
	// (mismatched sizes for add/sub, inner dimensions for mul, non-square for
	// pow/det/adjugate/inverse).
	ErrIncompatible = errors.New("workbook: incompatible operands")

	// ErrInvalidName indicates an empty matrix name.
	ErrInvalidName = errors.New("workbook: invalid matrix name")
)
