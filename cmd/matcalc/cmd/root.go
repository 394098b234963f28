// SPDX-License-Identifier: MIT

// Package cmd holds the cobra command tree of matcalc.
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/matcalc/calc"
	"github.com/katalvlaran/matcalc/internal/config"
	"github.com/katalvlaran/matcalc/internal/logging"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

// engine builds a calc.Engine from the loaded configuration.
func (a *app) engine(strict bool) *calc.Engine {
	opts := []calc.Option{
		calc.WithLogger(a.logger),
		calc.WithMaxExponent(a.cfg.Calc.MaxExponent),
	}
	if strict || a.cfg.Calc.StrictParse {
		opts = append(opts, calc.WithStrictParse())
	}

	return calc.New(opts...)
}

// NewRootCommand returns the matcalc command tree.
func NewRootCommand() *cobra.Command {
	a := &app{logger: zap.NewNop(), cfg: config.Default()}

	root := &cobra.Command{
		Use:   "matcalc",
		Short: "Symbolic matrix calculator with step-by-step results",
		Long: `matcalc adds, subtracts and multiplies matrices whose cells may be
integers, decimals, fractions or algebraic expressions such as 2a or (x+1)^2.

Every cell of the result comes with the arithmetic that produced it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Discover(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			level := cfg.Log.Level
			if a.verbose {
				level = "debug"
			}
			logger, err := logging.New(level, cfg.Log.Format)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			a.logger.Debug("configuration loaded", zap.String("path", cfg.Path))

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: $MATCALC_CONFIG, ./matcalc.toml, ~/.config/matcalc/config.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newComputeCommand(a),
		newTUICommand(a),
		newVersionCommand(),
	)

	return root
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errComputeFailed) {
			fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		}
		return 1
	}

	return 0
}
