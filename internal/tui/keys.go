// SPDX-License-Identifier: MIT

package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the calculator's key bindings.
type keyMap struct {
	Compute   key.Binding
	Focus     key.Binding
	Operation key.Binding
	Mode      key.Binding
	Trace     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Compute: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "compute"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch matrix"),
		),
		Operation: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "operation"),
		),
		Mode: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "display mode"),
		),
		Trace: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "toggle steps"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Compute, k.Operation, k.Mode, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Compute, k.Focus},
		{k.Operation, k.Mode, k.Trace},
		{k.Help, k.Quit},
	}
}
