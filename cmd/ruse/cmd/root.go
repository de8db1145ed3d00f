package cmd

import (
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/xiam/ruse"
	"github.com/xiam/ruse/config"
)

type rootOptions struct {
	cfgFile string
	verbose bool
	strict  bool
}

// loadConfig reads the config file, if any, and applies the persistent flags
// on top of it.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if o.cfgFile != "" {
		var err error
		if cfg, err = config.Load(o.cfgFile); err != nil {
			return nil, err
		}
	}
	if o.strict {
		cfg.Reader.StrictDelimiters = true
	}
	if o.verbose {
		cfg.Reader.Trace = true
	}
	return cfg, nil
}

func (o *rootOptions) tracer(cfg *config.Config, w io.Writer) *log.Logger {
	if !cfg.Reader.Trace {
		return nil
	}
	return log.New(w, "", 0)
}

func (o *rootOptions) readerOptions(cfg *config.Config, w io.Writer) []ruse.Option {
	opts := cfg.ReaderOptions()
	if l := o.tracer(cfg, w); l != nil {
		opts = append(opts, ruse.WithLogger(l))
	}
	return opts
}

// NewRootCmd creates the ruse command and all of its subcommands.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "ruse",
		Short: "Reader for the ruse Lisp",
		Long: `ruse turns Lisp source text into tokens and expression trees.

Commands:
  read    - read a program and print its expression tree
  tokens  - print the token stream of a program`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "trace tokens and reduced expressions to stderr")
	rootCmd.PersistentFlags().BoolVar(&opts.strict, "strict", false, "close lists with the same kind of bracket that opened them")

	rootCmd.AddCommand(
		newReadCmd(opts),
		newTokensCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the ruse command with the process arguments.
func Execute() error {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}
