// SPDX-License-Identifier: MIT
package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/format"
	"github.com/katalvlaran/matcalc/matrix"
)

// send feeds msg to m and discards the returned command.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)

	return out
}

// compute presses the compute key and feeds the command's message back,
// the way the bubbletea runtime would.
func compute(t *testing.T, m Model) Model {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	require.NotNil(t, cmd)
	msg, ok := cmd().(computedMsg)
	require.True(t, ok)

	return send(t, next.(Model), msg)
}

func TestModel_Compute(t *testing.T) {
	t.Parallel()

	m := NewModel(Options{
		Operation: matrix.OpAdd,
		ShowTrace: true,
		A:         [][]string{{"1", "2"}, {"3", "4"}},
		B:         [][]string{{"5", "6"}, {"7", "8"}},
	})
	m = compute(t, m)

	require.NoError(t, m.err)
	require.NotNil(t, m.res)
	require.Equal(t, [][]string{{"6", "8"}, {"10", "12"}}, m.res.Cells())
	view := m.View()
	require.Contains(t, view, "1 + 5 = 6")
	require.Contains(t, view, "Step-by-step addition")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	require.NotContains(t, m.View(), "1 + 5 = 6")
}

func TestModel_ShowsErrors(t *testing.T) {
	t.Parallel()

	m := NewModel(Options{
		Operation: matrix.OpMul,
		A:         [][]string{{"1", "2"}},
		B:         [][]string{{"1", "2"}},
	})
	m = compute(t, m)
	require.Error(t, m.err)
	require.Contains(t, m.View(), "must equal the number of rows")
}

func TestModel_Cycling(t *testing.T) {
	t.Parallel()

	m := NewModel(Options{})
	require.Equal(t, matrix.OpAdd, m.op)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	require.Equal(t, matrix.OpSub, m.op)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	require.Equal(t, matrix.OpAdd, m.op, "wraps around")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	require.Equal(t, format.Fraction, m.mode)

	require.Equal(t, inputA, m.focus)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, inputB, m.focus)
	require.True(t, m.inputs[inputB].Focused())
	require.False(t, m.inputs[inputA].Focused())
}

func TestModel_ModeSwitchReformats(t *testing.T) {
	t.Parallel()

	m := NewModel(Options{
		Operation: matrix.OpAdd,
		A:         [][]string{{"1/2"}},
		B:         [][]string{{"1/3"}},
	})
	m = compute(t, m)
	require.Equal(t, [][]string{{"0.8"}}, m.res.Cells())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	require.Equal(t, [][]string{{"5/6"}}, m.res.Cells())
}

func TestModel_Quit(t *testing.T) {
	t.Parallel()

	_, cmd := NewModel(Options{}).Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestNext(t *testing.T) {
	t.Parallel()

	require.Equal(t, 2, next([]int{1, 2, 3}, 1))
	require.Equal(t, 1, next([]int{1, 2, 3}, 3))
	require.Equal(t, 1, next([]int{1, 2, 3}, 9))
}
