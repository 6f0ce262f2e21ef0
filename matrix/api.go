// SPDX-License-Identifier: MIT
// Package matrix - public API facades and constructors.
//
// Purpose:
//   - Provide thin, intention-revealing constructors (NewIdentity, NewFromRows,
//     FromMatrix) on top of NewDense/Assign.
//   - Provide numeric comparison (AllClose) used by callers and tests.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.

package matrix

import (
	"fmt"
	"math"
)

const (
	opIdentity   = "NewIdentity"
	opFromRows   = "NewFromRows"
	opFromMatrix = "FromMatrix"
	opAllClose   = "AllClose"
)

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	I, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewFromRows builds a matrix from a non-empty, rectangular slice of rows.
// The input is copied; later changes to rows do not affect the result.
//
// Errors:
//   - ErrInvalidDimensions for no rows or empty rows.
//   - ErrDimensionMismatch for ragged input.
//   - ErrNaNInf under the finite-only policy; ErrAllocation.
//
// Complexity: O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	flat := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), c, ErrDimensionMismatch))
		}
		flat = append(flat, row...)
	}
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	if err = m.Assign(flat, r, c); err != nil {
		m.release()
		return nil, matrixErrorf(opFromRows, err)
	}

	return m, nil
}

// FromMatrix materializes any Matrix implementation as a Dense.
// Complexity: O(r*c).
func FromMatrix(src Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(opFromMatrix, ErrNilMatrix)
	}
	r, c := src.Rows(), src.Cols()
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromMatrix, err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = src.At(i, j); err != nil {
				m.release()
				return nil, matrixErrorf(opFromMatrix, err)
			}
			if err = m.Set(i, j, v); err != nil {
				m.release()
				return nil, matrixErrorf(opFromMatrix, err)
			}
		}
	}

	return m, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if a == nil || b == nil {
		return false, matrixErrorf(opAllClose, ErrNilMatrix)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if av == bv {
				continue // exact match, including equal infinities
			}
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
				return false, nil // NaN falls through here as well
			}
		}
	}

	return true, nil
}

// firstNonFinite returns the index of the first NaN/±Inf in vals, or -1.
func firstNonFinite(vals []float64) int {
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i
		}
	}

	return -1
}
