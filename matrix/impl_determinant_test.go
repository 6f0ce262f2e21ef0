// Package matrix_test contains unit tests for Det.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/stretchr/testify/require"
)

func TestDet_KnownValues(t *testing.T) {
	for _, tc := range []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"1x1", [][]float64{{-7}}, -7},
		{"2x2", [][]float64{{1, 2}, {3, 4}}, -2},
		{"3x3", abc3, -3},
		{"4x4 tridiagonal", tridiag4, 5},
		{"identity", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 1},
		{"upper triangular", [][]float64{{2, 9, -4}, {0, 3, 7}, {0, 0, -1}}, -6},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d, err := matrix.Det(MustRows(t, tc.rows))
			require.NoError(t, err)
			require.Equal(t, tc.want, d)
		})
	}
}

func TestDet_IdenticalRowsIsExactlyZero(t *testing.T) {
	m := MustRows(t, [][]float64{
		{3, -1, 4, 2},
		{5, 0, -2, 1},
		{3, -1, 4, 2},
		{1, 1, 1, 1},
	})
	d, err := matrix.Det(m)
	require.NoError(t, err)
	require.Zero(t, d)
}

// TestDet_Multiplicative checks det(AB) = det(A)·det(B) on integer matrices,
// where every intermediate stays exactly representable.
func TestDet_Multiplicative(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		a := RandIntDense(t, 3, 3, seed)
		b := RandIntDense(t, 3, 3, seed+50)
		ab, err := matrix.Mul(nil, a, b)
		require.NoError(t, err)

		da, err := matrix.Det(a)
		require.NoError(t, err)
		db, err := matrix.Det(b)
		require.NoError(t, err)
		dab, err := matrix.Det(ab)
		require.NoError(t, err)
		require.True(t, InDelta(dab, da*db, 1e-9), "seed %d: %v vs %v", seed, dab, da*db)
	}
}

func TestDet_TransposeInvariant(t *testing.T) {
	a := RandIntDense(t, 4, 4, 42)
	at, err := matrix.Transpose(nil, a)
	require.NoError(t, err)

	d1, err := matrix.Det(a)
	require.NoError(t, err)
	d2, err := matrix.Det(at)
	require.NoError(t, err)
	require.Equal(t, d1, d2)
}

func TestDet_Errors(t *testing.T) {
	_, err := matrix.Det(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Det(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Det(&matrix.Dense{})
	require.ErrorIs(t, err, matrix.ErrEmptyMatrix)
}

// TestDet_NoLeakOnFailure: a 4×4 expansion needs 16 (operand) + 9 + 4 live cells.
func TestDet_NoLeakOnFailure(t *testing.T) {
	for limit := 16; limit < 29; limit++ {
		a, b := budgeted(t, tridiag4)
		b.Limit = limit
		_, err := matrix.Det(a)
		require.ErrorIs(t, err, matrix.ErrAllocation, "limit %d", limit)
		require.Equal(t, 16, b.Live(), "limit %d", limit)
	}

	a, b := budgeted(t, tridiag4)
	b.Limit = 29
	d, err := matrix.Det(a)
	require.NoError(t, err)
	require.Equal(t, 5.0, d)
	require.Equal(t, 16, b.Live())
	require.Equal(t, 29, b.Peak())
}
