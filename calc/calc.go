// SPDX-License-Identifier: MIT

package calc

import (
	"fmt"
	"iter"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/matcalc/format"
	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/trace"
	"github.com/katalvlaran/matcalc/value"
)

const (
	operandA = "A"
	operandB = "B"
)

// Request is one computation as supplied by an input collector.
//
// RowsA/ColsA/RowsB/ColsB are optional declared dimensions; zero means
// "infer from the grid".
type Request struct {
	Operation matrix.Operation
	Mode      format.Mode
	A         [][]string
	B         [][]string

	RowsA, ColsA int
	RowsB, ColsB int
}

// Result is the outcome of a successful computation.
type Result struct {
	// ID correlates log entries of one computation.
	ID        uuid.UUID
	Operation matrix.Operation
	Mode      format.Mode
	Matrix    *matrix.Dense
	Trace     []matrix.TraceEntry
}

// Formatter returns the formatter for the result's display mode.
func (r *Result) Formatter() format.Formatter { return format.New(r.Mode) }

// Cells renders the result matrix under the result's display mode.
func (r *Result) Cells() [][]string {
	f := r.Formatter()
	vals := r.Matrix.Values()
	out := make([][]string, len(vals))
	for i, row := range vals {
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = f.Format(v)
		}
	}

	return out
}

// Render lazily yields the trace lines under the result's display mode.
func (r *Result) Render() iter.Seq[string] { return trace.Render(r.Trace, r.Formatter()) }

// Lines returns the rendered trace, one line per output cell.
func (r *Result) Lines() []string { return trace.Lines(r.Trace, r.Formatter()) }

// Grid returns the rendered trace laid out by cell position.
func (r *Result) Grid() [][]string { return trace.Grid(r.Trace, r.Formatter()) }

// Option configures an Engine.
type Option func(*Engine)

const panicNilLogger = "calc: WithLogger(nil)"

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(e *Engine) { e.log = l }
}

// WithStrictParse rejects tokens that would otherwise fall back to a Symbol.
func WithStrictParse() Option {
	return func(e *Engine) { e.parse = append(e.parse, value.WithStrict()) }
}

// WithMaxExponent bounds |n| in a^n inside cell tokens.
func WithMaxExponent(n int) Option {
	opt := value.WithMaxExponent(n) // panics on n < 0

	return func(e *Engine) { e.parse = append(e.parse, opt) }
}

// Engine runs computations. The zero value is not usable; call New.
type Engine struct {
	log   *zap.Logger
	parse []value.ParseOption
}

// New returns an Engine. The default logger discards everything.
func New(opts ...Option) *Engine {
	e := &Engine{log: zap.NewNop()}
	for _, fn := range opts {
		fn(e)
	}

	return e
}

// Compute runs one request through the pipeline.
//
// Stage 1 (Operation): reject operations outside Add/Sub/Mul.
// Stage 2 (Build): parse both grids; shape and parse errors stop here.
// Stage 3 (Compute): validate operand shapes and run the kernel.
func (e *Engine) Compute(req Request) (*Result, error) {
	id := uuid.New()
	log := e.log.With(zap.String("id", id.String()), zap.Stringer("op", req.Operation))

	// Stage 1: Operation
	if !req.Operation.Valid() {
		err := fmt.Errorf("calc: %v: %w", req.Operation, matrix.ErrUnknownOperation)
		log.Debug("rejected operation", zap.Error(err))
		return nil, err
	}

	// Stage 2: Build
	a, err := e.build(log, operandA, req.A, matrix.Shape{Rows: req.RowsA, Cols: req.ColsA})
	if err != nil {
		return nil, err
	}
	b, err := e.build(log, operandB, req.B, matrix.Shape{Rows: req.RowsB, Cols: req.ColsB})
	if err != nil {
		return nil, err
	}

	// Stage 3: Compute
	res, tr, err := matrix.Compute(a, b, req.Operation)
	if err != nil {
		log.Debug("compute failed", zap.Error(err))
		return nil, err
	}
	log.Info("computed",
		zap.Stringer("shape", res.Shape()),
		zap.Stringer("mode", req.Mode),
		zap.Int("steps", stepCount(tr)))

	return &Result{ID: id, Operation: req.Operation, Mode: req.Mode, Matrix: res, Trace: tr}, nil
}

func (e *Engine) build(log *zap.Logger, name string, grid [][]string, want matrix.Shape) (*matrix.Dense, error) {
	m, err := matrix.BuildShape(grid, want, e.parse...)
	if err != nil {
		log.Debug("build failed", zap.String("operand", name), zap.Error(err))
		return nil, err
	}
	log.Debug("built operand", zap.String("operand", name), zap.Stringer("shape", m.Shape()))

	return m, nil
}

func stepCount(tr []matrix.TraceEntry) int {
	n := 0
	for _, e := range tr {
		n += len(e.Steps)
	}

	return n
}

// Compute runs req on a default Engine.
func Compute(req Request) (*Result, error) {
	return New().Compute(req)
}
