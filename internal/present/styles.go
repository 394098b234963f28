// SPDX-License-Identifier: MIT

package present

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
)

// Styles groups every style the presenter uses.
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
	Step   lipgloss.Style
	Border lipgloss.Style
	Error  lipgloss.Style
	Hint   lipgloss.Style
}

// ColorStyles is the default themed style set.
func ColorStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			MarginBottom(1),
		Header: lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true),
		Cell: lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1),
		Step: lipgloss.NewStyle().
			Foreground(ColorSuccess),
		Border: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),
		Hint: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true),
	}
}

// PlainStyles keeps the layout but drops every color and attribute.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()

	return Styles{
		Title:  plain.MarginBottom(1),
		Header: plain,
		Cell:   plain.Padding(0, 1),
		Step:   plain,
		Border: plain,
		Error:  plain,
		Hint:   plain,
	}
}
