package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xiam/ruse"
	"github.com/xiam/ruse/lexer"
)

func newTokensCmd(opts *rootOptions) *cobra.Command {
	var file string

	tokensCmd := &cobra.Command{
		Use:   "tokens [SOURCE]",
		Short: "Print the token stream of a program",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			src, err := loadSource(cmd, file, args)
			if err != nil {
				return err
			}

			lx := lexer.NewString(src)
			lx.SetLogger(opts.tracer(cfg, cmd.ErrOrStderr()))

			out := cmd.OutOrStdout()
			for lx.Next() {
				tok := lx.Token()
				fmt.Fprintf(out, "%v-%v\t%v\t%s\n", tok.Start(), tok.End(), tok.Type(), tok.Text())
			}
			if err := lx.Err(); err != nil {
				return &sourceError{Source: src, Err: &ruse.ReadError{Phase: ruse.PhaseLex, Err: err}}
			}
			return nil
		},
	}

	tokensCmd.Flags().StringVarP(&file, "file", "f", "", `read the program from a file ("-" for stdin)`)

	return tokensCmd
}
