// SPDX-License-Identifier: MIT

package workbook

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/matcalc/matrix"
	"gopkg.in/yaml.v3"
)

// Render writes m as a bordered table:
//
//	---------
//	|1  |2  |
//	---------
//
// Every cell is "|" + entry left-aligned to m.Width() + two spaces; each row
// ends with "|" and is followed by a dashed rule of
// (width+2)*cols + cols + 1 characters, with one more rule on top.
func Render(w io.Writer, m *matrix.Dense) error {
	if err := matrix.ValidateLive(m); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	_, err := io.WriteString(w, table(snapshot(m), m.Width()))

	return err
}

// table renders literal rows with a fixed cell width.
func table(rows [][]float64, width int) string {
	if len(rows) == 0 {
		return ""
	}
	cols := len(rows[0])
	rule := strings.Repeat("-", (width+2)*cols+cols+1) + "\n"

	var b strings.Builder
	b.WriteString(rule)
	for _, row := range rows {
		for _, v := range row {
			fmt.Fprintf(&b, "|%-*s  ", width, matrix.FormatEntry(v))
		}
		b.WriteString("|\n")
		b.WriteString(rule)
	}

	return b.String()
}

// WriteText writes a human-readable report: one header line per step followed
// by its table, scalar, invertibility verdict or error.
func WriteText(w io.Writer, rep *Report) error {
	var b strings.Builder
	for i, r := range rep.Results {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "[%d] %s\n", r.Step, r.Expr)
		switch {
		case r.Err != nil:
			fmt.Fprintf(&b, "error: %v\n", r.Err)
		case r.Value != nil:
			fmt.Fprintf(&b, "= %s\n", matrix.FormatEntry(*r.Value))
		case r.Invertible != nil && !*r.Invertible:
			b.WriteString("not invertible\n")
		case r.Matrix != nil:
			b.WriteString(table(r.Matrix, r.Width))
		}
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// WriteYAML encodes rep as a YAML document.
func WriteYAML(w io.Writer, rep *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("workbook: encode: %w", err)
	}

	return enc.Close()
}
