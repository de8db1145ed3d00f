package ruse

import (
	"errors"
	"fmt"

	"github.com/xiam/ruse/lexer"
	"github.com/xiam/ruse/parser"
)

// Phase tells which stage of the reader failed
type Phase uint8

// Reader phases
const (
	PhaseLex Phase = iota + 1
	PhaseParse
)

func (p Phase) String() string {
	switch p {
	case PhaseLex:
		return "lex"
	case PhaseParse:
		return "parse"
	}
	return "read"
}

// ReadError wraps the first lexer or parser error found while reading.
type ReadError struct {
	Phase Phase
	Err   error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%v error: %v", e.Phase, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ErrorLocation returns the source location carried by a read error, if any.
func ErrorLocation(err error) (lexer.Location, bool) {
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return lexErr.Loc, true
	}
	var parseErr *parser.Error
	if errors.As(err, &parseErr) {
		return parseErr.Loc()
	}
	return lexer.Location{}, false
}
