// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Documented verifies that a bare NewDense follows DefaultValidateNaNInf.
func TestDefaultOptions_Documented(t *testing.T) {
	m := MustDense(t, 1, 1)
	err := m.Set(0, 0, math.NaN())
	if matrix.DefaultValidateNaNInf {
		require.ErrorIs(t, err, matrix.ErrNaNInf)
	} else {
		require.NoError(t, err)
	}
}

// TestOptions_LastWriterWins checks that later options override earlier ones.
func TestOptions_LastWriterWins(t *testing.T) {
	m := MustDense(t, 1, 1, matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	m = MustDense(t, 1, 1, matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.NoError(t, m.Set(0, 0, math.Inf(1)))
}

// TestWithAllocator_PanicsOnNil documents the programming-error guard.
func TestWithAllocator_PanicsOnNil(t *testing.T) {
	require.Panics(t, func() { matrix.WithAllocator(nil) })
}

// TestOptions_InheritedByResults checks that results for a nil destination
// use the first operand's allocator and numeric policy.
func TestOptions_InheritedByResults(t *testing.T) {
	b := matrix.NewBudgetAllocator(0)
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}}, matrix.WithAllocator(b), matrix.WithNoValidateNaNInf())

	sum, err := matrix.Add(nil, a, a)
	require.NoError(t, err)
	require.Equal(t, 8, b.Live()) // result drawn from the same budget

	require.NoError(t, sum.Set(0, 0, math.NaN())) // policy inherited
	require.NoError(t, sum.Destroy())
	require.Equal(t, 4, b.Live())
}
