package lexer

import (
	"errors"
	"fmt"
)

// Lexical errors. Every error returned by a Lexer is an *Error wrapping one of
// these.
var (
	ErrInvalidCharacter      = errors.New("invalid character")
	ErrMalformedNumber       = errors.New("malformed number")
	ErrInvalidLiteral        = errors.New("invalid literal")
	ErrInvalidEscapeSequence = errors.New("invalid escape sequence")
	ErrUnterminatedString    = errors.New("unterminated string")
)

// Error is a lexical error at a known location.
type Error struct {
	Err error

	// Char is the offending rune of an ErrInvalidCharacter.
	Char rune
	// Text is the offending text: the almost-number, the almost-literal, the
	// bad escape sequence or the partial string.
	Text string

	Loc Location
}

func newCharError(r rune, loc Location) *Error {
	return &Error{Err: ErrInvalidCharacter, Char: r, Text: string(r), Loc: loc}
}

func newTextError(err error, text string, loc Location) *Error {
	return &Error{Err: err, Text: text, Loc: loc}
}

func (e *Error) Error() string {
	if e.Err == ErrInvalidCharacter {
		return fmt.Sprintf("%v %q at %v", e.Err, e.Char, e.Loc)
	}
	return fmt.Sprintf("%v %q at %v", e.Err, e.Text, e.Loc)
}

func (e *Error) Unwrap() error {
	return e.Err
}
