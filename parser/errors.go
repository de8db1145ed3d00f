package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/ruse/lexer"
)

// Parse errors. Every error returned by a Parser is an *Error wrapping one of
// these.
var (
	ErrEmptyProgram      = errors.New("empty program")
	ErrInvalidProgram    = errors.New("invalid program")
	ErrEndOfProgram      = errors.New("unexpected end of program")
	ErrUnmatchedParens   = errors.New("unmatched parens")
	ErrNoEnclosingParens = errors.New("no enclosing parens")
	ErrMaxDepth          = errors.New("maximum nesting depth exceeded")
)

// Error is a parse error. Token is the offending token, nil when the error
// has no position (like an empty program).
type Error struct {
	Err   error
	Token *lexer.Token
}

func parserError(err error, tok *lexer.Token) error {
	return &Error{Err: err, Token: tok}
}

// Loc returns the location of the offending token.
func (e *Error) Loc() (lexer.Location, bool) {
	if e.Token == nil {
		return lexer.Location{}, false
	}
	return e.Token.Start(), true
}

func (e *Error) Error() string {
	if e.Token == nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v near %q at %v", e.Err, e.Token.Text(), e.Token.Start())
}

func (e *Error) Unwrap() error {
	return e.Err
}
