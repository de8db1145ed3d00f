package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const stdinSource = "-"

// loadSource returns the program text given as argument, read from a file or
// read from stdin.
func loadSource(cmd *cobra.Command, file string, args []string) (string, error) {
	if file != "" && len(args) > 0 {
		return "", errors.New("SOURCE and --file can't be used together")
	}

	switch {
	case file == stdinSource, len(args) > 0 && args[0] == stdinSource:
		return readStdin(cmd)
	case file != "":
		buf, err := os.ReadFile(file)
		if err != nil {
			return "", errors.Wrapf(err, "reading %q", file)
		}
		return string(buf), nil
	case len(args) > 0:
		return args[0], nil
	}
	return readStdin(cmd)
}

func readStdin(cmd *cobra.Command) (string, error) {
	buf, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", errors.Wrap(err, "reading stdin")
	}
	return string(buf), nil
}
