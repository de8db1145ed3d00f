package lexer

import (
	"fmt"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt    TokenType
	delim Delim

	lexeme string
	value  interface{}

	start Location
	end   Location
}

// NewToken creates a lexical unit. The value is the decoded payload: a
// string for symbols and strings, int64, float64 or bool for literals.
func NewToken(tt TokenType, lexeme string, value interface{}, start Location, end Location) *Token {
	return &Token{
		tt:     tt,
		lexeme: lexeme,
		value:  value,
		start:  start,
		end:    end,
	}
}

// NewDelimToken creates an open or close delimiter token at the given
// location.
func NewDelimToken(tt TokenType, d Delim, start Location) *Token {
	r := d.Open()
	if tt == TokenCloseDelim {
		r = d.Close()
	}
	return &Token{
		tt:     tt,
		delim:  d,
		lexeme: string(r),
		start:  start,
		end:    Location{Line: start.Line, Column: start.Column + 1},
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Delim returns the bracket kind of a delimiter token
func (t Token) Delim() Delim {
	return t.delim
}

// Pos returns the line and column of the lexical unit
func (t Token) Pos() (int, int) {
	return t.start.Line, t.start.Column
}

// Start returns the location of the first character of the token.
func (t Token) Start() Location {
	return t.start
}

// End returns the location right after the last character of the token.
func (t Token) End() Location {
	return t.end
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Value returns the decoded value of the lexical unit
func (t Token) Value() interface{} {
	return t.value
}

// Int returns the value of an integer token.
func (t Token) Int() int64 {
	return t.value.(int64)
}

// Float returns the value of a float token.
func (t Token) Float() float64 {
	return t.value.(float64)
}

// Bool returns the value of a boolean token.
func (t Token) Bool() bool {
	return t.value.(bool)
}

// Str returns the decoded text of a symbol or string token.
func (t Token) Str() string {
	return t.value.(string)
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%v %v])", t.tt, t.lexeme, t.start, t.end)
}
