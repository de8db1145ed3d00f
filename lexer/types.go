package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenOpenDelim            // Open delimiter: "(", "[" or "{"
	TokenCloseDelim           // Close delimiter: ")", "]" or "}"
	TokenSymbol               // Identifiers like "+", "add-two" or "%a+/d"
	TokenInteger              // Integers
	TokenFloat                // Decimal numbers with a dot
	TokenString               // Double quoted strings
	TokenBool                 // Booleans: "#t", "#true", "#f", "#false"
)

var tokenNames = map[TokenType]string{
	TokenInvalid:    "invalid",
	TokenOpenDelim:  "open_delim",
	TokenCloseDelim: "close_delim",
	TokenSymbol:     "symbol",
	TokenInteger:    "integer",
	TokenFloat:      "float",
	TokenString:     "string",
	TokenBool:       "bool",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// Delim is the kind of bracket used by a delimiter token.
type Delim uint8

// Delimiter kinds
const (
	DelimNone Delim = iota
	DelimParen
	DelimBracket
	DelimBrace
)

var delimNames = map[Delim]string{
	DelimNone:    "none",
	DelimParen:   "paren",
	DelimBracket: "bracket",
	DelimBrace:   "brace",
}

func (d Delim) String() string {
	return delimNames[d]
}

// Open returns the opening rune of the delimiter.
func (d Delim) Open() rune {
	switch d {
	case DelimParen:
		return '('
	case DelimBracket:
		return '['
	case DelimBrace:
		return '{'
	}
	return 0
}

// Close returns the closing rune of the delimiter.
func (d Delim) Close() rune {
	switch d {
	case DelimParen:
		return ')'
	case DelimBracket:
		return ']'
	case DelimBrace:
		return '}'
	}
	return 0
}

type charClass uint8

const (
	classOpenDelim charClass = iota
	classCloseDelim
	classWhitespace
	classLetter
	classDigit
	classSymbolStart
	classSymbolExtra
	classQuote
	classHash
	classBackslash
	classDot
)

var classValues = map[charClass][]rune{
	classOpenDelim:   []rune("([{"),
	classCloseDelim:  []rune(")]}"),
	classWhitespace:  []rune(" \t\r\n"),
	classLetter:      []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"),
	classDigit:       []rune("0123456789"),
	classSymbolStart: []rune("!$%&*/:<=>?^_~+-"),
	classSymbolExtra: []rune(".@"),
	classQuote:       []rune{'"'},
	classHash:        []rune{'#'},
	classBackslash:   []rune{'\\'},
	classDot:         []rune{'.'},
}

func isClass(cc charClass) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range classValues[cc] {
			if v == r {
				return true
			}
		}
		return false
	}
}

var (
	isOpenDelim  = isClass(classOpenDelim)
	isCloseDelim = isClass(classCloseDelim)
	isWhitespace = isClass(classWhitespace)

	isLetter      = isClass(classLetter)
	isDigit       = isClass(classDigit)
	isSymbolStart = isClass(classSymbolStart)
	isSymbolExtra = isClass(classSymbolExtra)

	isQuote     = isClass(classQuote)
	isHash      = isClass(classHash)
	isBackslash = isClass(classBackslash)
	isDot       = isClass(classDot)
)

func isDelim(r rune) bool {
	return isOpenDelim(r) || isCloseDelim(r)
}

// isWordBreak is true for runes that end symbols and booleans.
func isWordBreak(r rune) bool {
	return isWhitespace(r) || isDelim(r)
}

func isSymbolBody(r rune) bool {
	return isLetter(r) || isDigit(r) || isSymbolStart(r) || isSymbolExtra(r)
}

func delimOf(r rune) Delim {
	switch r {
	case '(', ')':
		return DelimParen
	case '[', ']':
		return DelimBracket
	case '{', '}':
		return DelimBrace
	}
	return DelimNone
}
