package lexer

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"text/scanner"
)

type lexState func(*Lexer) lexState

var discard = log.New(io.Discard, "", 0)

var byteOrderMark = []byte{0xef, 0xbb, 0xbf}

// source keeps the first read error other than io.EOF. text/scanner reports
// those through its Error hook and then acts as if the input ended.
type source struct {
	r   *bufio.Reader
	err error
}

func (src *source) Read(p []byte) (int, error) {
	n, err := src.r.Read(p)
	src.keep(err)
	return n, err
}

func (src *source) keep(err error) {
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull && src.err == nil {
		src.err = err
	}
}

// New initializes a Lexer object. Tokens are produced lazily by Next and the
// lexer can't be restarted: scanning the same text again requires a new
// Lexer.
func New(r io.Reader) *Lexer {
	src := &source{r: bufio.NewReader(r)}

	lx := &Lexer{
		src:   src,
		state: lexDefaultState,
		loc:   StartLocation,
		buf:   []rune{},
		log:   discard,
	}

	// text/scanner silently skips a leading byte order mark.
	head, err := src.r.Peek(len(byteOrderMark))
	src.keep(err)
	if bytes.Equal(head, byteOrderMark) {
		_, _ = src.r.Discard(len(byteOrderMark))
		lx.state = lexStateError(newCharError('\uFEFF', StartLocation))
	}

	s := &scanner.Scanner{}
	s.Init(src)
	// Invalid encodings come back as utf8.RuneError and are reported as
	// invalid characters, read errors are kept by src.
	s.Error = func(*scanner.Scanner, string) {}
	lx.in = s

	return lx
}

// NewString initializes a Lexer that reads from the given source text.
func NewString(s string) *Lexer {
	return New(strings.NewReader(s))
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in  *scanner.Scanner
	src *source

	state lexState

	tok   Token
	ready bool

	lastErr error

	buf []rune

	// loc is the location of the next rune, last is the location of the rune
	// most recently read and start is where the current token began.
	loc   Location
	last  Location
	start Location

	verbatim bool

	log *log.Logger
}

// SetLogger sets a logger that traces every emitted token. A nil logger
// disables tracing.
func (lx *Lexer) SetLogger(l *log.Logger) {
	if l == nil {
		l = discard
	}
	lx.log = l
}

// Next scans the next token and returns true when one is available through
// Token. It returns false at the end of the input or after the first error.
func (lx *Lexer) Next() bool {
	lx.ready = false
	for !lx.ready && lx.state != nil {
		lx.state = lx.state(lx)
	}
	return lx.ready
}

// Token returns the token found by the last call to Next.
func (lx *Lexer) Token() Token {
	return lx.tok
}

// Err returns the error that stopped the lexer, if any.
func (lx *Lexer) Err() error {
	return lx.lastErr
}

// All drains the lexer and returns every token, or the first error found.
func (lx *Lexer) All() ([]Token, error) {
	tokens := []Token{}
	for lx.Next() {
		tokens = append(tokens, lx.Token())
	}
	if err := lx.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

func (lx *Lexer) emit(tt TokenType, v interface{}) {
	lx.tok = Token{
		tt:     tt,
		lexeme: string(lx.buf),
		value:  v,

		start: lx.start,
		end:   lx.loc,
	}
	if tt == TokenOpenDelim || tt == TokenCloseDelim {
		lx.tok.delim = delimOf(lx.buf[0])
	}
	lx.ready = true

	lx.log.Printf("lexer: %v", lx.tok)

	lx.buf = lx.buf[0:0]
	lx.verbatim = false
}

func (lx *Lexer) ignore() {
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) next() (rune, error) {
	r := lx.in.Next()
	if r == scanner.EOF {
		if lx.src.err != nil {
			return rune(0), fmt.Errorf("reading source: %w", lx.src.err)
		}
		return rune(0), io.EOF
	}

	lx.buf = append(lx.buf, r)

	lx.last = lx.loc
	lx.loc = lx.loc.advance(r, lx.verbatim)
	return r, nil
}

func lexDefaultState(lx *Lexer) lexState {
	r, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	lx.start = lx.last

	switch {
	case isWhitespace(r):
		lx.ignore()
		return lexDefaultState

	case isOpenDelim(r):
		return lexEmit(TokenOpenDelim)
	case isCloseDelim(r):
		return lexEmit(TokenCloseDelim)

	case isHash(r):
		return lexBool
	case isDigit(r):
		return lexNumber
	case isLetter(r), isSymbolStart(r):
		return lexSymbol
	case isQuote(r):
		return lexString
	}

	return lexStateError(newCharError(r, lx.last))
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt, nil)
		return lexDefaultState
	}
}

func lexNumber(lx *Lexer) lexState {
	for p := lx.peek(); isDigit(p) || isDot(p); p = lx.peek() {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}

	text := string(lx.buf)
	if i64, err := strconv.ParseInt(text, 10, 64); err == nil {
		lx.emit(TokenInteger, i64)
		return lexDefaultState
	}
	if f64, err := strconv.ParseFloat(text, 64); err == nil {
		lx.emit(TokenFloat, f64)
		return lexDefaultState
	}

	return lexStateError(newTextError(ErrMalformedNumber, text, lx.start))
}

func lexSymbol(lx *Lexer) lexState {
	for {
		p := lx.peek()
		if p == scanner.EOF || isWordBreak(p) {
			break
		}
		if !isSymbolBody(p) {
			return lexStateError(newCharError(p, lx.loc))
		}
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}

	lx.emit(TokenSymbol, string(lx.buf))
	return lexDefaultState
}

func lexBool(lx *Lexer) lexState {
	for {
		p := lx.peek()
		if p == scanner.EOF || isWordBreak(p) {
			break
		}
		if !isLetter(p) {
			return lexStateError(newCharError(p, lx.loc))
		}
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}

	text := string(lx.buf)
	switch text {
	case "#t", "#true":
		lx.emit(TokenBool, true)
	case "#f", "#false":
		lx.emit(TokenBool, false)
	default:
		return lexStateError(newTextError(ErrInvalidLiteral, text, lx.start))
	}
	return lexDefaultState
}

func lexString(lx *Lexer) lexState {
	var out strings.Builder

	lx.verbatim = true
	unterminated := func(err error) lexState {
		if err != io.EOF {
			return lexStateError(err)
		}
		return lexStateError(newTextError(ErrUnterminatedString, out.String(), lx.start))
	}

	for {
		r, err := lx.next()
		if err != nil {
			return unterminated(err)
		}

		switch {
		case isQuote(r):
			lx.emit(TokenString, out.String())
			return lexDefaultState

		case isBackslash(r):
			at := lx.last
			e, err := lx.next()
			if err != nil {
				return unterminated(err)
			}
			switch e {
			case '\\', '"':
				out.WriteRune(e)
			case 't':
				out.WriteRune('\t')
			case 'n':
				out.WriteRune('\n')
			case 'r':
				out.WriteRune('\r')
			default:
				return lexStateError(newTextError(ErrInvalidEscapeSequence, `\`+string(e), at))
			}

		default:
			out.WriteRune(r)
		}
	}
}

func lexStateError(err error) lexState {
	if err == io.EOF {
		return nil
	}
	return func(lx *Lexer) lexState {
		lx.log.Printf("lexer error: %v", err)
		lx.lastErr = err
		return nil
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it,
// or the first error found.
func Tokenize(in []byte) ([]Token, error) {
	return New(bytes.NewReader(in)).All()
}

// TokenizeString is like Tokenize but takes a string.
func TokenizeString(s string) ([]Token, error) {
	return NewString(s).All()
}
