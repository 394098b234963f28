// SPDX-License-Identifier: MIT

// Package tui is the interactive front end: two text inputs for the
// operands, key bindings to pick the operation and display mode, and the
// rendered result underneath.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/matcalc/calc"
	"github.com/katalvlaran/matcalc/format"
	"github.com/katalvlaran/matcalc/internal/input"
	"github.com/katalvlaran/matcalc/internal/present"
	"github.com/katalvlaran/matcalc/matrix"
)

const (
	inputA = iota
	inputB
	inputCount
)

const (
	placeholderA = "Matrix A, e.g.\n1 2\n3 4"
	placeholderB = "Matrix B, e.g.\n5 6\n7 8"
	inputHeight  = 5
	inputWidth   = 30
	titleText    = "matcalc"
)

// Options seeds a Model.
type Options struct {
	Engine    *calc.Engine
	Operation matrix.Operation
	Mode      format.Mode
	ShowTrace bool
	Color     bool
	A, B      [][]string
}

// computedMsg carries the outcome of one computation.
type computedMsg struct {
	res *calc.Result
	err error
}

// Model is the bubbletea model of the calculator.
type Model struct {
	engine    *calc.Engine
	presenter *present.Presenter
	op        matrix.Operation
	mode      format.Mode
	showTrace bool

	inputs [inputCount]textarea.Model
	focus  int
	keys   keyMap
	help   help.Model
	width  int

	res *calc.Result
	err error
}

// NewModel creates a Model.
func NewModel(o Options) Model {
	if o.Engine == nil {
		o.Engine = calc.New()
	}
	m := Model{
		engine:    o.Engine,
		presenter: present.New(o.Color),
		op:        o.Operation,
		mode:      o.Mode,
		showTrace: o.ShowTrace,
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
	for i, ph := range []string{placeholderA, placeholderB} {
		ta := textarea.New()
		ta.Placeholder = ph
		ta.ShowLineNumbers = false
		ta.SetWidth(inputWidth)
		ta.SetHeight(inputHeight)
		m.inputs[i] = ta
	}
	m.inputs[inputA].SetValue(input.FormatGrid(o.A))
	m.inputs[inputB].SetValue(input.FormatGrid(o.B))
	m.inputs[inputA].Focus()

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Compute):
			return m, m.compute()
		case key.Matches(msg, m.keys.Focus):
			m.inputs[m.focus].Blur()
			m.focus = (m.focus + 1) % inputCount
			return m, m.inputs[m.focus].Focus()
		case key.Matches(msg, m.keys.Operation):
			m.op = next(matrix.Operations(), m.op)
			m.res = nil
			return m, nil
		case key.Matches(msg, m.keys.Mode):
			m.mode = next(format.Modes(), m.mode)
			if m.res != nil {
				m.res.Mode = m.mode
			}
			return m, nil
		case key.Matches(msg, m.keys.Trace):
			m.showTrace = !m.showTrace
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		w := max(inputWidth/2, msg.Width/2-4)
		for i := range m.inputs {
			m.inputs[i].SetWidth(w)
		}

	case computedMsg:
		m.res, m.err = msg.res, msg.err
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	return m, cmd
}

// compute snapshots the inputs and runs the engine.
func (m Model) compute() tea.Cmd {
	req := calc.Request{
		Operation: m.op,
		Mode:      m.mode,
		A:         input.ParseGrid(m.inputs[inputA].Value()),
		B:         input.ParseGrid(m.inputs[inputB].Value()),
	}
	engine := m.engine

	return func() tea.Msg {
		res, err := engine.Compute(req)
		return computedMsg{res: res, err: err}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(titleText))
	s.WriteString("  ")
	s.WriteString(statusStyle.Render(m.op.String() + " · " + m.mode.String()))
	s.WriteString("\n\n")

	panes := make([]string, inputCount)
	for i := range m.inputs {
		style := paneStyle
		if i == m.focus {
			style = focusedPaneStyle
		}
		panes[i] = style.Render(m.inputs[i].View())
	}
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panes[inputA], " "+m.op.Symbol()+" ", panes[inputB]))
	s.WriteString("\n\n")

	switch {
	case m.err != nil:
		s.WriteString(m.presenter.Error(m.err))
		s.WriteString("\n")
	case m.res != nil:
		s.WriteString(m.presenter.Result(m.res, m.showTrace))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(m.help.View(m.keys))

	return s.String()
}

// next returns the element after cur in list, wrapping around.
func next[T comparable](list []T, cur T) T {
	for i, v := range list {
		if v == cur {
			return list[(i+1)%len(list)]
		}
	}

	return list[0]
}

// Run starts the interactive program and blocks until it exits.
func Run(o Options, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(NewModel(o), opts...).Run()

	return err
}
