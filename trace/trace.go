// SPDX-License-Identifier: MIT

package trace

import (
	"iter"
	"strings"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/value"
)

const (
	sepEq   = " = "
	sepTerm = " + "
)

// Formatter renders one value for display.
type Formatter interface {
	Format(v value.Value) string
}

// FormatterFunc adapts a plain function to Formatter.
type FormatterFunc func(v value.Value) string

// Format implements Formatter.
func (f FormatterFunc) Format(v value.Value) string { return f(v) }

// Canonical renders values in their canonical text.
var Canonical Formatter = FormatterFunc(func(v value.Value) string { return v.String() })

// Line renders the derivation of a single cell.
func Line(e matrix.TraceEntry, f Formatter) string {
	if f == nil {
		f = Canonical
	}
	var b strings.Builder
	switch e.Op {
	case matrix.OpMul:
		for k, s := range e.Steps {
			if k > 0 {
				b.WriteString(sepTerm)
			}
			b.WriteString(operand(s.Left, f))
			b.WriteString(e.Op.Symbol())
			b.WriteString(operand(s.Right, f))
		}
		if len(e.Steps) > 1 {
			b.WriteString(sepEq)
			for k, s := range e.Steps {
				if k > 0 {
					b.WriteString(sepTerm)
				}
				b.WriteString(operand(s.Partial, f))
			}
		}
	default:
		for _, s := range e.Steps {
			b.WriteString(operand(s.Left, f))
			b.WriteString(" " + e.Op.Symbol() + " ")
			b.WriteString(operand(s.Right, f))
		}
	}
	b.WriteString(sepEq)
	b.WriteString(f.Format(e.Result))

	return b.String()
}

// Render lazily yields one line per entry, in entry order.
func Render(entries []matrix.TraceEntry, f Formatter) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, e := range entries {
			if !yield(Line(e, f)) {
				return
			}
		}
	}
}

// Lines is the materialized form of Render.
func Lines(entries []matrix.TraceEntry, f Formatter) []string {
	out := make([]string, 0, len(entries))
	for line := range Render(entries, f) {
		out = append(out, line)
	}

	return out
}

// Grid lays the lines out by cell position. The grid is sized from the
// largest Row/Col present; positions without an entry stay "".
func Grid(entries []matrix.TraceEntry, f Formatter) [][]string {
	rows, cols := 0, 0
	for _, e := range entries {
		rows = max(rows, e.Row+1)
		cols = max(cols, e.Col+1)
	}
	out := make([][]string, rows)
	for i := range out {
		out[i] = make([]string, cols)
	}
	for _, e := range entries {
		if e.Row < 0 || e.Col < 0 {
			continue
		}
		out[e.Row][e.Col] = Line(e, f)
	}

	return out
}

// operand formats v and parenthesizes it when it is negative or has
// several terms.
func operand(v value.Value, f Formatter) string {
	s := f.Format(v)
	if strings.HasPrefix(s, "-") {
		return "(" + s + ")"
	}
	if x, ok := v.(value.Expression); ok && x.Len() > 1 {
		return "(" + s + ")"
	}

	return s
}
