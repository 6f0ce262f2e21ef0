// SPDX-License-Identifier: MIT

package workbook

import (
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/matcalc/matrix"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Result is the outcome of one step.
//   - Matrix/Width: set when the step produced a matrix.
//   - Value: set by det.
//   - Invertible: set by inverse (Matrix stays nil when false).
//   - Err/Error: set when the step failed; later steps still run.
type Result struct {
	Step       int         `yaml:"step"`
	Expr       string      `yaml:"expr"`
	Matrix     [][]float64 `yaml:"matrix,omitempty,flow"`
	Width      int         `yaml:"-"`
	Value      *float64    `yaml:"value,omitempty"`
	Invertible *bool       `yaml:"invertible,omitempty"`
	Error      string      `yaml:"error,omitempty"`
	Err        error       `yaml:"-"`
}

// Report collects the results of a run in step order.
type Report struct {
	Results []Result `yaml:"results"`
}

// Failed returns the number of failed steps.
func (rep *Report) Failed() int {
	n := 0
	for _, r := range rep.Results {
		if r.Err != nil {
			n++
		}
	}

	return n
}

// Runner owns the named matrices of a workbook run and executes steps on them.
// Every matrix the runner creates uses the options it was built with, so a
// matrix.BudgetAllocator passed here bounds the whole run.
// A Runner is not safe for concurrent use.
type Runner struct {
	log  *zap.Logger
	opts []matrix.Option
	vars map[string]*matrix.Dense
}

// NewRunner returns a Runner logging to log (nil disables logging).
func NewRunner(log *zap.Logger, opts ...matrix.Option) *Runner {
	if log == nil {
		log = zap.NewNop()
	}

	return &Runner{
		log:  log,
		opts: opts,
		vars: make(map[string]*matrix.Dense),
	}
}

// Define stores rows under name, destroying any matrix previously stored there.
func (r *Runner) Define(name string, rows [][]float64) error {
	m, err := matrix.NewFromRows(rows, r.opts...)
	if err != nil {
		return fmt.Errorf("define %q: %w", name, err)
	}
	if old, ok := r.vars[name]; ok {
		_ = old.Destroy()
	}
	r.vars[name] = m
	r.log.Debug("matrix defined",
		zap.String("name", name),
		zap.Int("rows", m.Rows()),
		zap.Int("cols", m.Cols()))

	return nil
}

// Lookup returns the matrix stored under name.
func (r *Runner) Lookup(name string) (*matrix.Dense, bool) {
	m, ok := r.vars[name]
	return m, ok
}

// Names returns the stored matrix names in sorted order.
func (r *Runner) Names() []string {
	return slices.Sorted(maps.Keys(r.vars))
}

// Run defines the workbook's matrices (in name order) and executes its steps.
// A definition failure aborts the run. Step failures are recorded in the
// report and combined into the returned error; the report is complete either way.
func (r *Runner) Run(wb *Workbook) (*Report, error) {
	for _, name := range slices.Sorted(maps.Keys(wb.Matrices)) {
		if err := r.Define(name, wb.Matrices[name]); err != nil {
			return nil, err
		}
	}

	rep := &Report{Results: make([]Result, 0, len(wb.Steps))}
	var errs error
	for i, s := range wb.Steps {
		res := r.Exec(s)
		res.Step = i + 1
		if res.Err != nil {
			errs = multierr.Append(errs, fmt.Errorf("step %d %s: %w", res.Step, res.Expr, res.Err))
		}
		rep.Results = append(rep.Results, res)
	}
	r.log.Info("workbook finished",
		zap.Int("steps", len(rep.Results)),
		zap.Int("failed", rep.Failed()))

	return rep, errs
}

// Exec runs a single step against the stored matrices.
func (r *Runner) Exec(s Step) Result {
	res := Result{Expr: s.String()}
	log := r.log.With(zap.String("op", s.Op), zap.Strings("args", s.Args))

	out, err := r.exec(s, &res)
	if err != nil {
		res.Err = err
		res.Error = err.Error()
		log.Warn("step failed", zap.Error(err))
		return res
	}
	if out == nil {
		log.Debug("step done")
		return res
	}

	res.Matrix = snapshot(out)
	res.Width = out.Width()
	if s.Into != "" {
		r.vars[s.Into] = out
	} else {
		_ = out.Destroy()
	}
	log.Debug("step done",
		zap.Int("rows", len(res.Matrix)),
		zap.Int("cols", len(res.Matrix[0])),
		zap.String("into", s.Into))

	return res
}

// exec validates the step and dispatches it to the engine. A nil matrix with
// a nil error means the step produced no matrix (det, singular inverse).
func (r *Runner) exec(s Step, res *Result) (*matrix.Dense, error) {
	args, err := r.operands(s)
	if err != nil {
		return nil, err
	}
	if err = checkShapes(s.Op, s.Args, args); err != nil {
		return nil, err
	}
	dst := r.vars[s.Into] // nil when Into is empty or new

	var out *matrix.Dense
	switch s.Op {
	case OpAdd:
		out, err = matrix.Add(dst, args...)
	case OpSub:
		out, err = matrix.Sub(dst, args...)
	case OpMul:
		out, err = matrix.Mul(dst, args[0], args[1])
	case OpPow:
		out, err = matrix.Pow(dst, args[0], s.K)
	case OpTranspose:
		out, err = matrix.Transpose(dst, args[0])
	case OpCopy:
		out, err = matrix.Copy(dst, args[0])
	case OpAdjugate:
		out, err = matrix.Adjugate(dst, args[0])
	case OpDet:
		var v float64
		if v, err = matrix.Det(args[0]); err == nil {
			res.Value = &v
		}
		return nil, err
	case OpInverse:
		var ok bool
		out, ok, err = matrix.Inverse(dst, args[0])
		if err != nil {
			return nil, err
		}
		res.Invertible = &ok
		if !ok {
			return nil, nil
		}
	default:
		return nil, fmt.Errorf("%q: %w", s.Op, ErrUnknownOp)
	}
	if err != nil {
		return nil, err
	}

	return out, nil
}

// operands resolves step arguments and checks the arity of the op.
func (r *Runner) operands(s Step) ([]*matrix.Dense, error) {
	if err := checkArity(s.Op, len(s.Args)); err != nil {
		return nil, err
	}
	args := make([]*matrix.Dense, len(s.Args))
	for i, name := range s.Args {
		m, ok := r.vars[name]
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, ErrUnknownMatrix)
		}
		args[i] = m
	}

	return args, nil
}

// Close destroys every stored matrix and forgets the names.
func (r *Runner) Close() error {
	var errs error
	for _, name := range r.Names() {
		errs = multierr.Append(errs, r.vars[name].Destroy())
	}
	clear(r.vars)

	return errs
}

func checkArity(op string, n int) error {
	switch op {
	case OpAdd, OpSub:
		if n >= 1 {
			return nil
		}
		return fmt.Errorf("%s takes at least 1 argument, got %d: %w", op, n, ErrArity)
	case OpMul:
		if n == 2 {
			return nil
		}
		return fmt.Errorf("%s takes 2 arguments, got %d: %w", op, n, ErrArity)
	case OpPow, OpTranspose, OpCopy, OpDet, OpAdjugate, OpInverse:
		if n == 1 {
			return nil
		}
		return fmt.Errorf("%s takes 1 argument, got %d: %w", op, n, ErrArity)
	}

	return fmt.Errorf("%q: %w", op, ErrUnknownOp)
}

// checkShapes applies the matrix package predicates before the engine runs.
func checkShapes(op string, names []string, args []*matrix.Dense) error {
	switch op {
	case OpAdd, OpSub:
		can := matrix.CanAdd
		if op == OpSub {
			can = matrix.CanSub
		}
		for i := 1; i < len(args); i++ {
			if !can(args[0], args[i]) {
				return fmt.Errorf("%s is %s, %s is %s: %w",
					names[0], shape(args[0]), names[i], shape(args[i]), ErrIncompatible)
			}
		}
	case OpMul:
		if !matrix.CanMult(args[0], args[1]) {
			return fmt.Errorf("%s is %s, %s is %s: %w",
				names[0], shape(args[0]), names[1], shape(args[1]), ErrIncompatible)
		}
	case OpPow, OpDet, OpAdjugate, OpInverse:
		if args[0].Rows() != args[0].Cols() {
			return fmt.Errorf("%s is %s, not square: %w", names[0], shape(args[0]), ErrIncompatible)
		}
	}

	return nil
}

func shape(m *matrix.Dense) string {
	return fmt.Sprintf("%dx%d", m.Rows(), m.Cols())
}

// snapshot copies the logical entries of m into literal rows.
func snapshot(m *matrix.Dense) [][]float64 {
	rows := make([][]float64, m.Rows())
	for i := range rows {
		rows[i], _ = m.Row(i)
	}

	return rows
}
