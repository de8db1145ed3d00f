package cmd

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/xiam/ruse"
	"github.com/xiam/ruse/ast"
	"github.com/xiam/ruse/config"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func newReadCmd(opts *rootOptions) *cobra.Command {
	var (
		file   string
		all    bool
		format string
	)

	readCmd := &cobra.Command{
		Use:   "read [SOURCE]",
		Short: "Read a program and print its expression tree",
		Long: `Read SOURCE, the contents of --file or stdin ("-") and print the
resulting expression. Only one top-level expression is accepted unless --all
is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if format != "" {
				cfg.Output.Format = format
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			src, err := loadSource(cmd, file, args)
			if err != nil {
				return err
			}

			readerOpts := opts.readerOptions(cfg, cmd.ErrOrStderr())

			var exprs []*ast.Expr
			if all {
				exprs, err = ruse.ReadAll(src, readerOpts...)
			} else {
				var expr *ast.Expr
				if expr, err = ruse.Read(src, readerOpts...); err == nil {
					exprs = []*ast.Expr{expr}
				}
			}
			if err != nil {
				return &sourceError{Source: src, Err: err}
			}

			for _, expr := range exprs {
				printExpr(cmd.OutOrStdout(), expr, cfg.Output.Format)
			}
			return nil
		},
	}

	readCmd.Flags().StringVarP(&file, "file", "f", "", `read the program from a file ("-" for stdin)`)
	readCmd.Flags().BoolVar(&all, "all", false, "read every top-level expression")
	readCmd.Flags().StringVar(&format, "format", "", "output format: sexpr, tree or dump")

	return readCmd
}

func printExpr(w io.Writer, expr *ast.Expr, format string) {
	switch format {
	case config.OutputTree:
		ast.Fprint(w, expr)
	case config.OutputDump:
		dumper.Fdump(w, expr)
	default:
		fmt.Fprintln(w, string(ast.Encode(expr)))
	}
}
