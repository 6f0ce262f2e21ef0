// SPDX-License-Identifier: MIT

// Package matrix - determinant by cofactor (Laplace) expansion.
//
// Purpose:
//   - Exact textbook determinant: closed forms for 1×1 and 2×2, recursive
//     expansion along row 0 for n ≥ 3.
//   - Every minor is a Dense obtained from the operand's Allocator, so an
//     allocation failure at any depth surfaces as ErrAllocation.
//
// Resource discipline:
//   - Each recursion frame holds exactly one live minor and releases it before
//     moving to the next column or returning, on the failure path included.
//   - Recursion depth is n − 2; peak live cells are Σ_{k=2..n−1} k².
//
// Complexity:
//   - Time O(n!) (n minors per level, n levels). No pivoting: the result is the
//     same sequence of IEEE multiply/add as a hand expansion.

package matrix

import "fmt"

const opDet = "Det"

// Det returns the determinant of the square matrix a.
// Implementation:
//   - Stage 1: ValidateSquare (live + rows == cols).
//   - Stage 2: recursive expansion (det).
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrNonSquare (precondition).
//   - ErrAllocation when a minor cannot be allocated; no minor outlives the call.
//
// Complexity:
//   - Time O(n!), Space O(n^2) live minors along one recursion path.
func Det(a *Dense) (float64, error) {
	if err := ValidateSquare(a); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	d, err := det(a)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return d, nil
}

// det is the recursive kernel; m is live and square.
func det(m *Dense) (float64, error) {
	switch m.r {
	case 1:
		return m.data[0], nil
	case 2:
		return det2x2(m.data[0], m.data[1], m.data[2], m.data[3]), nil
	}

	sum := ZeroSum
	var (
		sub *Dense
		d   float64
		err error
	)
	for col := 0; col < m.c; col++ {
		sub, err = minor(m, 0, col)
		if err != nil {
			return 0, fmt.Errorf("%dx%d minor(0,%d): %w", m.r, m.c, col, err)
		}
		d, err = det(sub)
		sub.release()
		if err != nil {
			return 0, err
		}
		if col%2 == 0 {
			sum += m.data[col] * d
		} else {
			sum -= m.data[col] * d
		}
	}

	return sum, nil
}

// det2x2 is the closed form |a b; c d| = a*d − c*b.
func det2x2(a, b, c, d float64) float64 {
	return a*d - c*b
}

// minor returns a new (n−1)×(n−1) matrix: m without row skipRow and column skipCol.
// The caller owns the result and must release it.
// Complexity: O(n^2).
func minor(m *Dense, skipRow, skipCol int) (*Dense, error) {
	sub, err := newDenseLike(m, m.r-1, m.c-1)
	if err != nil {
		return nil, err
	}
	var (
		i, j, base int
		k          = 0
	)
	for i = 0; i < m.r; i++ {
		if i == skipRow {
			continue
		}
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j == skipCol {
				continue
			}
			sub.data[k] = m.data[base+j]
			k++
		}
	}

	return sub, nil
}
