package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/xiam/ruse"
)

var (
	errorLabel = color.New(color.FgRed, color.Bold)
	caretColor = color.New(color.FgRed)
)

// sourceError keeps the program text next to a read error so the diagnostic
// can point at the offending column.
type sourceError struct {
	Source string
	Err    error
}

func (e *sourceError) Error() string {
	return e.Err.Error()
}

func (e *sourceError) Unwrap() error {
	return e.Err
}

func printError(w io.Writer, err error) {
	errorLabel.Fprint(w, "error: ")
	fmt.Fprintln(w, err)

	var srcErr *sourceError
	if !errors.As(err, &srcErr) {
		return
	}
	at, ok := ruse.ErrorLocation(srcErr.Err)
	if !ok {
		return
	}
	line, ok := sourceLine(srcErr.Source, at.Line)
	if !ok {
		return
	}

	fmt.Fprintf(w, "  %s\n", line)
	fmt.Fprintf(w, "  %s%s\n", caretPadding(line, at.Column), caretColor.Sprint("^"))
}

// TODO: newlines inside string literals don't advance the line count, lines
// after a multi-line string are picked wrong.
func sourceLine(src string, n int) (string, bool) {
	lines := strings.Split(src, "\n")
	if n < 1 || n > len(lines) {
		return "", false
	}
	return strings.TrimRight(lines[n-1], "\r"), true
}

// caretPadding returns the blanks that go before column col of line, keeping
// tabs so the caret lines up.
func caretPadding(line string, col int) string {
	var b strings.Builder
	for i, r := range []rune(line) {
		if i >= col-1 {
			break
		}
		if r == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}
