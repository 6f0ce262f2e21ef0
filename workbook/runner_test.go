// SPDX-License-Identifier: MIT
package workbook_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/workbook"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// approx compares nested float slices with a tolerance fit for inverse entries.
var approx = cmpopts.EquateApprox(0, 1e-12)

func mustParse(t *testing.T, doc string) *workbook.Workbook {
	t.Helper()
	wb, err := workbook.ParseBytes([]byte(doc))
	require.NoError(t, err)

	return wb
}

func TestRun_Scenario(t *testing.T) {
	r := workbook.NewRunner(nil)
	defer r.Close()

	rep, err := r.Run(mustParse(t, scenarioDoc))
	require.NoError(t, err)
	require.Len(t, rep.Results, 6)
	require.Zero(t, rep.Failed())

	want := [][][]float64{
		{{58, 64}, {139, 154}},
		{{6, 6}, {6, 6}},
		{{1, 4}, {2, 5}, {3, 6}},
		nil,
		{{1, 0}, {0, 1}},
		{{7, 10}, {15, 22}},
	}
	for i, res := range rep.Results {
		require.Equal(t, i+1, res.Step)
		if diff := cmp.Diff(want[i], res.Matrix, approx); diff != "" {
			t.Errorf("step %d (%s) mismatch (-want +got):\n%s", res.Step, res.Expr, diff)
		}
	}
	require.NotNil(t, rep.Results[3].Value)
	require.Equal(t, -2.0, *rep.Results[3].Value)
	require.True(t, *rep.Results[4].Invertible)
	require.Equal(t, 3, rep.Results[0].Width)

	c, ok := r.Lookup("C")
	require.True(t, ok)
	require.Equal(t, 2, c.Rows())
	require.Equal(t, []string{"A", "B", "C", "I", "S", "T"}, r.Names())
}

func TestRun_ShapeErrorsAreReportedPerStep(t *testing.T) {
	doc := `
matrices:
  A: [[1, 2], [3, 4]]
  W: [[1, 2, 3], [4, 5, 6]]
steps:
  - op: add
    args: [A, W]
  - op: mul
    args: [A, A]
  - op: det
    args: [W]
  - op: mul
    args: [W, W]
  - op: mul
    args: [A]
  - op: copy
    args: [Z]
`
	core, logs := observer.New(zap.DebugLevel)
	r := workbook.NewRunner(zap.New(core))
	defer r.Close()

	rep, err := r.Run(mustParse(t, doc))
	require.Error(t, err)
	require.Len(t, multierr.Errors(err), 5)
	require.Equal(t, 5, rep.Failed())

	require.ErrorIs(t, rep.Results[0].Err, workbook.ErrIncompatible)
	require.NoError(t, rep.Results[1].Err)
	if diff := cmp.Diff([][]float64{{7, 10}, {15, 22}}, rep.Results[1].Matrix); diff != "" {
		t.Errorf("mul mismatch (-want +got):\n%s", diff)
	}
	require.ErrorIs(t, rep.Results[2].Err, workbook.ErrIncompatible)
	require.ErrorIs(t, rep.Results[3].Err, workbook.ErrIncompatible)
	require.ErrorIs(t, rep.Results[4].Err, workbook.ErrArity)
	require.ErrorIs(t, rep.Results[5].Err, workbook.ErrUnknownMatrix)
	require.Contains(t, rep.Results[0].Error, "A is 2x2, W is 2x3")

	failed := logs.FilterMessage("step failed")
	require.Equal(t, 5, failed.Len())
	require.Equal(t, "add", failed.All()[0].ContextMap()["op"])
}

func TestRun_EngineErrorsPassThrough(t *testing.T) {
	doc := `
matrices:
  A: [[1, 2], [3, 4]]
steps:
  - op: pow
    args: [A]
    k: 0
`
	r := workbook.NewRunner(zap.NewNop())
	defer r.Close()

	rep, err := r.Run(mustParse(t, doc))
	require.ErrorIs(t, err, matrix.ErrBadExponent)
	require.ErrorIs(t, rep.Results[0].Err, matrix.ErrBadExponent)
}

func TestRun_SingularInverse(t *testing.T) {
	doc := `
matrices:
  A: [[1, 2], [2, 4]]
  D: [[9]]
steps:
  - op: inverse
    args: [A]
    into: D
`
	r := workbook.NewRunner(nil)
	defer r.Close()

	rep, err := r.Run(mustParse(t, doc))
	require.NoError(t, err)
	res := rep.Results[0]
	require.NotNil(t, res.Invertible)
	require.False(t, *res.Invertible)
	require.Nil(t, res.Matrix)

	d, _ := r.Lookup("D")
	v, err := d.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 9.0, v) // destination untouched
}

// TestRun_IntoReusesOperand squares F in place three times: F^8 of the Fibonacci matrix.
func TestRun_IntoReusesOperand(t *testing.T) {
	doc := `
matrices:
  F: [[1, 1], [1, 0]]
steps:
  - op: mul
    args: [F, F]
    into: F
  - op: mul
    args: [F, F]
    into: F
  - op: mul
    args: [F, F]
    into: F
`
	r := workbook.NewRunner(nil)
	defer r.Close()

	rep, err := r.Run(mustParse(t, doc))
	require.NoError(t, err)
	if diff := cmp.Diff([][]float64{{34, 21}, {21, 13}}, rep.Results[2].Matrix); diff != "" {
		t.Errorf("F^8 mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, []string{"F"}, r.Names())
}

func TestRun_InverseValues(t *testing.T) {
	doc := `
matrices:
  A: [[1, 2, 3], [4, 5, 6], [7, 8, 10]]
steps:
  - op: adjugate
    args: [A]
  - op: inverse
    args: [A]
`
	r := workbook.NewRunner(nil)
	defer r.Close()

	rep, err := r.Run(mustParse(t, doc))
	require.NoError(t, err)
	if diff := cmp.Diff([][]float64{{2, 4, -3}, {2, -11, 6}, {-3, 6, -3}}, rep.Results[0].Matrix); diff != "" {
		t.Errorf("adjugate mismatch (-want +got):\n%s", diff)
	}
	wantInv := [][]float64{
		{-2.0 / 3, -4.0 / 3, 1},
		{-2.0 / 3, 11.0 / 3, -2},
		{1, -2, 1},
	}
	if diff := cmp.Diff(wantInv, rep.Results[1].Matrix, approx); diff != "" {
		t.Errorf("inverse mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_BudgetBoundsTheRun(t *testing.T) {
	doc := `
matrices:
  A: [[2, 1, 0, 0], [1, 2, 1, 0], [0, 1, 2, 1], [0, 0, 1, 2]]
steps:
  - op: det
    args: [A]
  - op: transpose
    args: [A]
    into: AT
`
	budget := matrix.NewBudgetAllocator(20)
	r := workbook.NewRunner(nil, matrix.WithAllocator(budget))

	rep, err := r.Run(mustParse(t, doc))
	require.ErrorIs(t, err, matrix.ErrAllocation)
	require.ErrorIs(t, rep.Results[0].Err, matrix.ErrAllocation)
	require.ErrorIs(t, rep.Results[1].Err, matrix.ErrAllocation)
	require.Equal(t, 16, budget.Live())

	require.NoError(t, r.Close())
	require.Zero(t, budget.Live())
	require.Empty(t, r.Names())
}

func TestRun_UnstoredResultsAreReleased(t *testing.T) {
	doc := `
matrices:
  A: [[1, 2], [3, 4]]
steps:
  - op: add
    args: [A, A, A]
  - op: copy
    args: [A]
    into: B
`
	budget := matrix.NewBudgetAllocator(0)
	r := workbook.NewRunner(nil, matrix.WithAllocator(budget))

	_, err := r.Run(mustParse(t, doc))
	require.NoError(t, err)
	require.Equal(t, 8, budget.Live()) // A and B only
	require.NoError(t, r.Close())
	require.Zero(t, budget.Live())
}

func TestRun_BadDefinitionAborts(t *testing.T) {
	doc := `
matrices:
  R: [[1, 2], [3]]
steps:
  - op: copy
    args: [R]
`
	r := workbook.NewRunner(nil)
	rep, err := r.Run(mustParse(t, doc))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Nil(t, rep)
}
