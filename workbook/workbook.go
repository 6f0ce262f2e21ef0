// SPDX-License-Identifier: MIT

package workbook

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Op names accepted in Step.Op.
const (
	OpAdd       = "add"
	OpSub       = "sub"
	OpMul       = "mul"
	OpPow       = "pow"
	OpTranspose = "transpose"
	OpCopy      = "copy"
	OpDet       = "det"
	OpAdjugate  = "adjugate"
	OpInverse   = "inverse"
)

// Workbook is the decoded document: literal matrices and the steps to run.
type Workbook struct {
	Matrices map[string][][]float64 `yaml:"matrices"`
	Steps    []Step                 `yaml:"steps"`
}

// Step is one operation. K is only read by pow; Into is optional.
type Step struct {
	Op   string   `yaml:"op"`
	Args []string `yaml:"args,flow"`
	K    int      `yaml:"k,omitempty"`
	Into string   `yaml:"into,omitempty"`
}

// String renders the step the way it is logged and reported.
func (s Step) String() string {
	var b strings.Builder
	b.WriteString(s.Op)
	b.WriteByte('(')
	b.WriteString(strings.Join(s.Args, ", "))
	if s.Op == OpPow {
		fmt.Fprintf(&b, "; k=%d", s.K)
	}
	b.WriteByte(')')
	if s.Into != "" {
		b.WriteString(" -> ")
		b.WriteString(s.Into)
	}

	return b.String()
}

// Parse decodes a workbook from r. Unknown fields are rejected.
// Structural problems (empty names, unknown ops) are reported here; shape
// problems are left to the runner, which reports them per step.
func Parse(r io.Reader) (*Workbook, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var wb Workbook
	if err := dec.Decode(&wb); err != nil {
		if errors.Is(err, io.EOF) {
			return &Workbook{}, nil
		}
		return nil, fmt.Errorf("workbook: decode: %w", err)
	}
	if err := wb.validate(); err != nil {
		return nil, err
	}

	return &wb, nil
}

// ParseBytes is Parse over an in-memory document.
func ParseBytes(data []byte) (*Workbook, error) {
	return Parse(bytes.NewReader(data))
}

// Load reads and parses the workbook file at path.
func Load(path string) (*Workbook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("workbook: %w", err)
	}
	defer f.Close()

	wb, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return wb, nil
}

// validate checks names and ops; it does not look at shapes.
func (wb *Workbook) validate() error {
	for name := range wb.Matrices {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("matrices: %w", ErrInvalidName)
		}
	}
	for i, s := range wb.Steps {
		if !knownOp(s.Op) {
			return fmt.Errorf("step %d: %q: %w", i+1, s.Op, ErrUnknownOp)
		}
	}

	return nil
}

func knownOp(op string) bool {
	switch op {
	case OpAdd, OpSub, OpMul, OpPow, OpTranspose, OpCopy, OpDet, OpAdjugate, OpInverse:
		return true
	}

	return false
}
