// SPDX-License-Identifier: MIT

// Package present turns calculator results and errors into terminal text.
//
// The core returns structured data only; headings, tables and user-facing
// error prose are produced here.
package present

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/matcalc/calc"
	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/value"
)

// Presenter renders results with a fixed style set.
type Presenter struct {
	styles Styles
}

// New returns a Presenter; color selects ColorStyles over PlainStyles.
func New(color bool) *Presenter {
	if color {
		return &Presenter{styles: ColorStyles()}
	}

	return &Presenter{styles: PlainStyles()}
}

// Headline names the derivation shown for op.
func Headline(op matrix.Operation) string {
	switch op {
	case matrix.OpAdd:
		return "Step-by-step addition"
	case matrix.OpSub:
		return "Step-by-step subtraction"
	case matrix.OpMul:
		return "Step-by-step multiplication"
	default:
		return "Step-by-step"
	}
}

// Matrix renders a grid of formatted cells as a bordered table.
func (p *Presenter) Matrix(cells [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(p.styles.Border).
		StyleFunc(func(row, col int) lipgloss.Style { return p.styles.Cell }).
		Rows(cells...)

	return t.String()
}

// Trace renders the headline and one line per output cell.
func (p *Presenter) Trace(res *calc.Result) string {
	var b strings.Builder
	b.WriteString(p.styles.Header.Render(Headline(res.Operation) + ":"))
	b.WriteByte('\n')
	for line := range res.Render() {
		b.WriteString(p.styles.Step.Render(line))
		b.WriteByte('\n')
	}

	return b.String()
}

// Result renders the result matrix and, when showTrace is set, its trace.
func (p *Presenter) Result(res *calc.Result, showTrace bool) string {
	parts := []string{
		p.styles.Title.Render(fmt.Sprintf("Result (%s, %s)", res.Operation, res.Mode)),
		p.Matrix(res.Cells()),
	}
	if showTrace {
		parts = append(parts, "", p.Trace(res))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Error renders err as a user-facing message.
func (p *Presenter) Error(err error) string {
	return p.styles.Error.Render("Error: ") + Message(err)
}

// Message explains err in plain words.
func Message(err error) string {
	var (
		se *matrix.ShapeError
		pe *value.ParseError
		ae *value.ArithmeticError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &se):
		return shapeMessage(se)
	case errors.As(err, &pe):
		if errors.Is(pe, value.ErrSyntax) {
			return fmt.Sprintf("cannot read cell %q: %s (at position %d).", pe.Token, pe.Reason, pe.Offset+1)
		}
		return fmt.Sprintf("cell %q is not supported: %s.", pe.Token, pe.Reason)
	case errors.As(err, &ae) && errors.Is(ae, value.ErrDivisionByZero):
		return "a cell divides by zero."
	case errors.As(err, &ae):
		return "a cell is not a polynomial expression."
	case errors.Is(err, matrix.ErrUnknownOperation):
		return "choose addition, subtraction or multiplication."
	case errors.Is(err, matrix.ErrNilMatrix):
		return "both matrices are required."
	default:
		return err.Error()
	}
}

func shapeMessage(se *matrix.ShapeError) string {
	switch {
	case se.Op == matrix.OpMul.String():
		return fmt.Sprintf("the number of columns of the first matrix (%d) must equal the number of rows of the second matrix (%d).",
			se.Need, se.Have)
	case errors.Is(se, matrix.ErrDimensionMismatch):
		return fmt.Sprintf("both matrices must have the same dimensions: the first is %s, the second is %s.",
			se.Expected, se.Got)
	case se.Row >= 0:
		return fmt.Sprintf("row %d has %d cells but the first row has %d.", se.Row+1, se.Got.Cols, se.Expected.Cols)
	case se.Got.Rows == 0 || se.Got.Cols == 0:
		return "a matrix needs at least one row and one column."
	default:
		return fmt.Sprintf("the matrix is %s but %s was declared.", se.Got, declared(se.Expected))
	}
}

// declared renders a declared shape where 0 means "any".
func declared(s matrix.Shape) string {
	dim := func(n int) string {
		if n == 0 {
			return "?"
		}
		return fmt.Sprint(n)
	}

	return dim(s.Rows) + "x" + dim(s.Cols)
}
