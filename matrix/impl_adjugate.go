// SPDX-License-Identifier: MIT

// Package matrix - adjugate, inverse and the invertibility predicate.
//
// Purpose:
//   - Adjugate: closed forms for 1×1 and 2×2; for n ≥ 3 the transpose of the
//     cofactor matrix, each cofactor being (−1)^(i+j)·det(minor(i,j)).
//   - Inverse: adj(A)/det(A), with "not invertible" (det == 0) reported as a
//     flag and kept apart from failures.
//
// Resource discipline:
//   - The cofactor matrix and the single live minor are released on every path.
//
// Complexity:
//   - Adjugate/Inverse for n ≥ 3: n² determinants of (n−1)×(n−1) minors.

package matrix

import "fmt"

const (
	opAdjugate  = "Adjugate"
	opInverse   = "Inverse"
	opCanInvert = "CanInvert"
)

// Adjugate writes adj(A) into dst.
// Implementation:
//   - 1×1: the single entry becomes 1 when A's entry is non-zero, else 0.
//   - 2×2: [[d, −b], [−c, a]] for A = [[a, b], [c, d]].
//   - n ≥ 3: build the cofactor matrix, then Transpose it into dst.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrNonSquare (precondition).
//   - ErrAllocation; dst's contents are unspecified afterwards, nothing leaks.
//
// Complexity:
//   - Time O(n² · (n−1)!) for n ≥ 3, O(1) otherwise.
func Adjugate(dst, a *Dense) (*Dense, error) {
	if err := ValidateSquare(a); err != nil {
		return dst, matrixErrorf(opAdjugate, err)
	}
	n := a.r
	if n <= 2 {
		out, err := target(dst, n, n, a, a)
		if err != nil {
			return dst, matrixErrorf(opAdjugate, err)
		}
		if n == 1 {
			if a.data[0] != 0 {
				out.data[0] = 1
			}
		} else {
			out.data[0], out.data[1] = a.data[3], -a.data[1]
			out.data[2], out.data[3] = -a.data[2], a.data[0]
		}
		out.refreshWidth()
		return finish(dst, out), nil
	}

	cof, err := cofactors(a)
	if err != nil {
		return dst, matrixErrorf(opAdjugate, err)
	}
	out, err := Transpose(dst, cof)
	cof.release()
	if err != nil {
		return out, matrixErrorf(opAdjugate, err)
	}

	return out, nil
}

// cofactors returns the n×n matrix C with C[i,j] = (−1)^(i+j)·det(minor(i,j)).
// On failure the partially filled C and the live minor are released.
func cofactors(a *Dense) (*Dense, error) {
	n := a.r
	cof, err := newDenseLike(a, n, n)
	if err != nil {
		return nil, fmt.Errorf("cofactor matrix: %w", err)
	}
	var (
		row, col int
		sub      *Dense
		d        float64
	)
	for row = 0; row < n; row++ {
		for col = 0; col < n; col++ {
			sub, err = minor(a, row, col)
			if err != nil {
				cof.release()
				return nil, fmt.Errorf("minor(%d,%d): %w", row, col, err)
			}
			d, err = det(sub)
			sub.release()
			if err != nil {
				cof.release()
				return nil, fmt.Errorf("cofactor(%d,%d): %w", row, col, err)
			}
			if d != 0 && (row+col)%2 != 0 {
				d = -d
			}
			cof.data[row*n+col] = d
		}
	}
	cof.refreshWidth()

	return cof, nil
}

// Inverse writes A⁻¹ = adj(A)/det(A) into dst.
// MAIN DESCRIPTION:
//   - (dst', true, nil): A is invertible and dst' holds the inverse.
//   - (dst, false, nil): det(A) == 0 exactly; dst is not touched.
//   - (dst, false, err): invertibility could not be determined or the
//     inverse could not be materialized.
//
// Implementation:
//   - Stage 1: ValidateSquare; det(A) (may fail with ErrAllocation).
//   - Stage 2: det == 0 → not invertible.
//   - Stage 3: Adjugate(dst, A); divide every entry by det in place; recompute width.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrNonSquare, ErrAllocation.
//
// Complexity:
//   - Time O(n!) for det plus the adjugate cost.
func Inverse(dst, a *Dense) (*Dense, bool, error) {
	if err := ValidateSquare(a); err != nil {
		return dst, false, matrixErrorf(opInverse, err)
	}
	d, err := det(a)
	if err != nil {
		return dst, false, matrixErrorf(opInverse, err)
	}
	if d == 0 {
		return dst, false, nil
	}

	out, err := Adjugate(dst, a)
	if err != nil {
		return out, false, matrixErrorf(opInverse, err)
	}
	n := out.size()
	for i := 0; i < n; i++ {
		out.data[i] /= d
	}
	out.refreshWidth()

	return out, true, nil
}

// CanInvert reports whether det(a) != 0.
// A non-nil error means the question could not be answered (ErrAllocation while
// computing the determinant, or a non-square/empty operand); false with a nil
// error means a is singular.
func CanInvert(a *Dense) (bool, error) {
	if err := ValidateSquare(a); err != nil {
		return false, matrixErrorf(opCanInvert, err)
	}
	d, err := det(a)
	if err != nil {
		return false, matrixErrorf(opCanInvert, err)
	}

	return d != 0, nil
}
