// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/workbook"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

var errNoWorkbook = errors.New("no workbook file given (use --file or an argument)")

// runWorkbook loads, evaluates and prints one workbook.
func runWorkbook(cmd *cobra.Command, args []string) error {
	path := workbookFile
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return errNoWorkbook
	}
	if outputFormat != outputText && outputFormat != outputYAML {
		return fmt.Errorf("unknown output format %q (want %s or %s)", outputFormat, outputText, outputYAML)
	}
	if maxCells < 0 {
		return fmt.Errorf("--max-cells must be >= 0, got %d", maxCells)
	}

	wb, err := workbook.Load(path)
	if err != nil {
		return err
	}

	budget := matrix.NewBudgetAllocator(maxCells)
	runner := workbook.NewRunner(logger, matrix.WithAllocator(budget))
	defer func() {
		if cerr := runner.Close(); cerr != nil {
			logger.Warn("release failed", zap.Error(cerr))
		}
	}()

	logger.Info("running workbook",
		zap.String("file", path),
		zap.Int("matrices", len(wb.Matrices)),
		zap.Int("steps", len(wb.Steps)),
		zap.Int("max_cells", maxCells))

	rep, runErr := runner.Run(wb)
	if rep == nil {
		return runErr
	}
	logger.Debug("memory", zap.Int("peak_cells", budget.Peak()), zap.Int("allocs", budget.Allocs()))

	out := cmd.OutOrStdout()
	switch outputFormat {
	case outputYAML:
		err = workbook.WriteYAML(out, rep)
	default:
		err = workbook.WriteText(out, rep)
	}
	if err != nil {
		return err
	}
	if runErr != nil {
		return fmt.Errorf("%d of %d steps failed: %w", len(multierr.Errors(runErr)), len(rep.Results), runErr)
	}

	return nil
}

// listOps prints the op names accepted in a workbook step.
func listOps(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, line := range []string{
		workbook.OpAdd + "        A B ...   element-wise sum",
		workbook.OpSub + "        A B ...   A minus the rest",
		workbook.OpMul + "        A B       matrix product",
		workbook.OpPow + "        A, k      A^k for square A, k >= 1",
		workbook.OpTranspose + "  A         transpose",
		workbook.OpCopy + "       A         copy",
		workbook.OpDet + "        A         determinant (square)",
		workbook.OpAdjugate + "   A         adjugate (square)",
		workbook.OpInverse + "    A         inverse (square, det != 0)",
	} {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}

	return nil
}
