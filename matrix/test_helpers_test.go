// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
)

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c, opts...)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows BUILDS a *Dense from literal rows or fails the test.
func MustRows(t testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows, opts...)
	if err != nil {
		t.Fatalf("NewFromRows(%v): %v", rows, err)
	}

	return m
}

// IdentityDense RETURNS an n×n identity or fails the test.
func IdentityDense(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	I, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return I
}

// RandIntDense FILLS an r×c matrix with integers in [-5,5] from a fixed seed.
// Integer entries keep small determinants exact in float64.
func RandIntDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			MustSet(t, m, i, j, float64(rng.Intn(11)-5))
		}
	}

	return m
}

// MustSet WRITES m[i,j]=v or fails the test.
func MustSet(t testing.TB, m *matrix.Dense, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact ASSERTS m equals want exactly, shape included.
func CompareExact(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	if m.Rows() != len(want) || (len(want) > 0 && m.Cols() != len(want[0])) {
		t.Fatalf("shape %dx%d, want %dx%d", m.Rows(), m.Cols(), len(want), len(want[0]))
	}
	for i := range want {
		for j := range want[i] {
			if got := MustAt(t, m, i, j); got != want[i][j] {
				t.Fatalf("[%d,%d] = %v, want %v", i, j, got, want[i][j])
			}
		}
	}
}

// CompareClose ASSERTS AllClose(a, b, rtol, atol).
func CompareClose(t testing.TB, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	if err != nil {
		t.Fatalf("AllClose: %v", err)
	}
	if !ok {
		t.Fatalf("matrices differ beyond rtol=%g atol=%g:\n%v\nvs\n%v", rtol, atol, a, b)
	}
}

// AssertErrorIs CHECKS errors.Is(err, target).
func AssertErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error %v, want errors.Is(_, %v)", err, target)
	}
}

// InDelta reports |a-b| <= delta.
func InDelta(a, b, delta float64) bool {
	return math.Abs(a-b) <= delta
}

// budgeted BUILDS rows under a fresh BudgetAllocator sized exactly for the operand.
func budgeted(t testing.TB, rows [][]float64) (*matrix.Dense, *matrix.BudgetAllocator) {
	t.Helper()
	b := matrix.NewBudgetAllocator(len(rows) * len(rows[0]))
	m := MustRows(t, rows, matrix.WithAllocator(b))

	return m, b
}

// tridiag4 is the 4×4 (2,1)-tridiagonal matrix; det = 5.
var tridiag4 = [][]float64{
	{2, 1, 0, 0},
	{1, 2, 1, 0},
	{0, 1, 2, 1},
	{0, 0, 1, 2},
}

// abc3 is a 3×3 matrix with det = -3.
var abc3 = [][]float64{
	{1, 2, 3},
	{4, 5, 6},
	{7, 8, 10},
}

// sinks to defeat dead-code elimination in benchmarks
var (
	sinkM *matrix.Dense
	sinkF float64
)
