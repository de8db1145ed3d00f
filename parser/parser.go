package parser

import (
	"io"
	"log"

	"github.com/xiam/ruse/ast"
	"github.com/xiam/ruse/lexer"
)

var discard = log.New(io.Discard, "", 0)

// DefaultMaxDepth is the deepest list nesting a Parser accepts unless
// WithMaxDepth says otherwise.
const DefaultMaxDepth = 100000

// Option configures a Parser
type Option func(*Parser)

// WithStrictDelimiters makes the parser reject lists closed with a different
// kind of bracket, like "(]". By default only the count of open and close
// delimiters matters.
func WithStrictDelimiters(strict bool) Option {
	return func(p *Parser) {
		p.strictDelimiters = strict
	}
}

// WithMaxDepth limits how deep lists can be nested. Zero or a negative depth
// removes the limit.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// WithLogger sets a logger that traces every reduced expression.
func WithLogger(l *log.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.log = l
		}
	}
}

// Parser builds expression trees out of a sequence of tokens.
type Parser struct {
	tokens []lexer.Token
	pos    int

	strictDelimiters bool

	maxDepth int
	depth    int

	log *log.Logger
}

// New creates a parser for the given tokens
func New(tokens []lexer.Token, opts ...Option) *Parser {
	p := &Parser{
		tokens:   tokens,
		maxDepth: DefaultMaxDepth,
		log:      discard,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads a program made of a single expression.
func (p *Parser) Parse() (*ast.Expr, error) {
	if p.peek() == nil {
		return nil, parserError(ErrEmptyProgram, nil)
	}

	expr, err := expectExpr(p)
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok != nil {
		if tok.Is(lexer.TokenCloseDelim) {
			return nil, parserError(ErrUnmatchedParens, tok)
		}
		return nil, parserError(ErrNoEnclosingParens, tok)
	}

	return expr, nil
}

// ParseAll reads every top-level expression until the tokens are exhausted.
func (p *Parser) ParseAll() ([]*ast.Expr, error) {
	if p.peek() == nil {
		return nil, parserError(ErrEmptyProgram, nil)
	}

	exprs := []*ast.Expr{}
	for tok := p.peek(); tok != nil; tok = p.peek() {
		if tok.Is(lexer.TokenCloseDelim) {
			return nil, parserError(ErrUnmatchedParens, tok)
		}
		expr, err := expectExpr(p)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}

	return exprs, nil
}

func (p *Parser) peek() *lexer.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.pos]
}

func (p *Parser) next() *lexer.Token {
	tok := p.peek()
	if tok != nil {
		p.pos++
	}
	return tok
}

func (p *Parser) reduce(expr *ast.Expr) *ast.Expr {
	p.log.Printf("parser: %v (%v) at %v", expr, expr.Type, expr.Loc)
	return expr
}

func expectExpr(p *Parser) (*ast.Expr, error) {
	tok := p.next()
	if tok == nil {
		return nil, parserError(ErrEndOfProgram, nil)
	}

	switch tok.Type() {
	case lexer.TokenSymbol, lexer.TokenInteger, lexer.TokenFloat, lexer.TokenString, lexer.TokenBool:
		expr, err := ast.FromToken(tok)
		if err != nil {
			return nil, parserError(ErrInvalidProgram, tok)
		}
		return p.reduce(expr), nil

	case lexer.TokenOpenDelim:
		return expectList(p, tok)
	}

	return nil, parserError(ErrInvalidProgram, tok)
}

func expectList(p *Parser, open *lexer.Token) (*ast.Expr, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		return nil, parserError(ErrMaxDepth, open)
	}

	elems := []*ast.Expr{}

	for {
		tok := p.peek()
		if tok == nil {
			return nil, parserError(ErrEndOfProgram, open)
		}

		if tok.Is(lexer.TokenCloseDelim) {
			p.next()
			if p.strictDelimiters && tok.Delim() != open.Delim() {
				return nil, parserError(ErrUnmatchedParens, tok)
			}
			return p.reduce(buildList(elems, open, tok)), nil
		}

		elem, err := expectExpr(p)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
}

// buildList folds the elements into a chain of pairs ending in Nil.
func buildList(elems []*ast.Expr, open *lexer.Token, end *lexer.Token) *ast.Expr {
	if len(elems) == 0 {
		return ast.NewNil().At(open.Start())
	}

	list := ast.NewNil().At(end.Start())
	for i := len(elems) - 1; i >= 0; i-- {
		list = ast.Cons(elems[i], list).At(elems[i].Loc)
	}
	return list.At(open.Start())
}

// Parse builds a tree out of a single expression.
func Parse(tokens []lexer.Token, opts ...Option) (*ast.Expr, error) {
	return New(tokens, opts...).Parse()
}

// ParseAll builds one tree per top-level expression.
func ParseAll(tokens []lexer.Token, opts ...Option) ([]*ast.Expr, error) {
	return New(tokens, opts...).ParseAll()
}
