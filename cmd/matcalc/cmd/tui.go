// SPDX-License-Identifier: MIT

package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matcalc/internal/tui"
)

func newTUICommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(tui.Options{
				Engine:    a.engine(false),
				Operation: a.cfg.Calc.Operation,
				Mode:      a.cfg.Calc.Mode,
				ShowTrace: a.cfg.Display.ShowTrace,
				Color:     a.cfg.Display.Color,
			}, tea.WithAltScreen(), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
		},
	}
}
