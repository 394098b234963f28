// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matcalc/calc"
	"github.com/katalvlaran/matcalc/format"
	"github.com/katalvlaran/matcalc/internal/input"
	"github.com/katalvlaran/matcalc/internal/present"
	"github.com/katalvlaran/matcalc/matrix"
)

// errComputeFailed is returned after the user-facing message was printed.
var errComputeFailed = errors.New("computation failed")

type computeFlags struct {
	op, mode string
	a, b     string
	file     string
	noTrace  bool
	strict   bool
	noColor  bool
}

func newComputeCommand(a *app) *cobra.Command {
	var f computeFlags

	c := &cobra.Command{
		Use:   "compute",
		Short: "Compute A op B and print the result with its derivation",
		Long: `Compute A op B.

Matrices are text blocks: rows separated by newlines or ';', cells by
whitespace, or by ',' when a cell contains spaces.

Examples:
  matcalc compute --op add -a "1 2; 3 4" -b "5 6; 7 8"
  matcalc compute --op mul --mode fraction -a "2b 3b; 4b 5b" -b "3b 4b; b 2b"
  matcalc compute --file request.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := f.request(a, cmd)
			if err != nil {
				return err
			}

			p := present.New(a.cfg.Display.Color && !f.noColor)
			res, err := a.engine(f.strict).Compute(req)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), p.Error(err))
				return errComputeFailed
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.Result(res, a.cfg.Display.ShowTrace && !f.noTrace))

			return nil
		},
	}

	c.Flags().StringVar(&f.op, "op", "", "operation: add, sub or mul (default from config)")
	c.Flags().StringVar(&f.mode, "mode", "", "display mode: decimal, fraction or letters (default from config)")
	c.Flags().StringVarP(&f.a, "a", "a", "", "matrix A")
	c.Flags().StringVarP(&f.b, "b", "b", "", "matrix B")
	c.Flags().StringVarP(&f.file, "file", "f", "", "read the request from a YAML or TOML file")
	c.Flags().BoolVar(&f.noTrace, "no-trace", false, "print only the result matrix")
	c.Flags().BoolVar(&f.strict, "strict", false, "reject cells that are not valid expressions")
	c.Flags().BoolVar(&f.noColor, "no-color", false, "disable colors")
	c.MarkFlagsMutuallyExclusive("file", "a")
	c.MarkFlagsMutuallyExclusive("file", "b")

	return c
}

// request assembles the calc.Request: config defaults, then the file, then flags.
func (f computeFlags) request(a *app, cmd *cobra.Command) (calc.Request, error) {
	req := calc.Request{Operation: a.cfg.Calc.Operation, Mode: a.cfg.Calc.Mode}

	if f.file != "" {
		var err error
		if req, err = input.LoadRequest(f.file, req); err != nil {
			return calc.Request{}, err
		}
	} else {
		if !cmd.Flags().Changed("a") || !cmd.Flags().Changed("b") {
			return calc.Request{}, errors.New("both -a and -b are required (or use --file)")
		}
		req.A, req.B = input.ParseGrid(f.a), input.ParseGrid(f.b)
	}

	if f.op != "" {
		op, err := matrix.ParseOperation(f.op)
		if err != nil {
			return calc.Request{}, err
		}
		req.Operation = op
	}
	if f.mode != "" {
		m, err := format.ParseMode(f.mode)
		if err != nil {
			return calc.Request{}, err
		}
		req.Mode = m
	}

	return req, nil
}
