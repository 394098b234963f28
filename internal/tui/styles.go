// SPDX-License-Identifier: MIT

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/matcalc/internal/present"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(present.ColorPrimary).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(present.ColorMuted).
			Italic(true)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(present.ColorMuted).
			Padding(0, 1)

	focusedPaneStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(present.ColorPrimary).
				Padding(0, 1)
)
