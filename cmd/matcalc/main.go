// SPDX-License-Identifier: MIT

// Command matcalc runs matrix workbooks: YAML files naming matrices and the
// operations (add, sub, mul, pow, transpose, det, adjugate, inverse, copy) to
// apply to them.
//
// Usage:
//
//	matcalc run -f workbook.yaml [--output text|yaml] [--max-cells N] [-v]
//	matcalc ops
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	// run flags
	workbookFile string
	maxCells     int
	outputFormat string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "matcalc",
	Short: "matcalc - dense matrix calculator",
	Long: `matcalc evaluates matrix workbooks.

A workbook is a YAML document with a "matrices" map of literal row lists and
a "steps" list of operations. Results print as bordered tables (text) or as
a YAML report.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// runCmd evaluates one workbook file
var runCmd = &cobra.Command{
	Use:   "run [workbook.yaml]",
	Short: "Evaluate a workbook and print its report",
	Long: `Evaluates every step of the workbook in order. A failing step is reported
and the remaining steps still run; the exit status is non-zero when any
step failed.

--max-cells bounds the number of matrix cells alive at once (operands,
results and the minors of determinant expansion); 0 means unbounded.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWorkbook,
}

// opsCmd lists the supported operations
var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List the operations a workbook step may use",
	Args:  cobra.NoArgs,
	RunE:  listOps,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	runCmd.Flags().StringVarP(&workbookFile, "file", "f", "", "Workbook file (or pass it as the argument)")
	runCmd.Flags().IntVar(&maxCells, "max-cells", 0, "Maximum live matrix cells (0 = unbounded)")
	runCmd.Flags().StringVarP(&outputFormat, "output", "o", outputText, "Output format: text or yaml")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(opsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
