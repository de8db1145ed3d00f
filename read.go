package ruse

import (
	"io"
	"log"
	"strings"

	"github.com/pkg/errors"

	"github.com/xiam/ruse/ast"
	"github.com/xiam/ruse/lexer"
	"github.com/xiam/ruse/parser"
)

// Option configures the reader
type Option func(*settings)

type settings struct {
	strictDelimiters bool
	maxDepth         int
	log              *log.Logger
}

// WithStrictDelimiters rejects lists closed with a different kind of bracket.
func WithStrictDelimiters(strict bool) Option {
	return func(s *settings) {
		s.strictDelimiters = strict
	}
}

// WithMaxDepth limits how deep lists can be nested, see parser.WithMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(s *settings) {
		s.maxDepth = depth
	}
}

// WithLogger traces tokens and reduced expressions to the given logger.
func WithLogger(l *log.Logger) Option {
	return func(s *settings) {
		s.log = l
	}
}

func newSettings(opts []Option) *settings {
	s := &settings{maxDepth: parser.DefaultMaxDepth}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *settings) parserOptions() []parser.Option {
	return []parser.Option{
		parser.WithStrictDelimiters(s.strictDelimiters),
		parser.WithMaxDepth(s.maxDepth),
		parser.WithLogger(s.log),
	}
}

// Reader reads programs from an io.Reader.
type Reader struct {
	r    io.Reader
	opts []Option
}

// NewReader creates a Reader
func NewReader(r io.Reader, opts ...Option) *Reader {
	return &Reader{r: r, opts: opts}
}

// Read consumes the whole input and reads a single expression out of it.
func (r *Reader) Read() (*ast.Expr, error) {
	src, err := r.source()
	if err != nil {
		return nil, err
	}
	return Read(src, r.opts...)
}

// ReadAll consumes the whole input and reads every expression in it.
func (r *Reader) ReadAll() ([]*ast.Expr, error) {
	src, err := r.source()
	if err != nil {
		return nil, err
	}
	return ReadAll(src, r.opts...)
}

func (r *Reader) source() (string, error) {
	buf, err := io.ReadAll(r.r)
	if err != nil {
		return "", errors.Wrap(err, "reading source")
	}
	return string(buf), nil
}

// Tokenize returns all the tokens in src, or the first lexical error wrapped
// in a *ReadError.
func Tokenize(src string, opts ...Option) ([]lexer.Token, error) {
	s := newSettings(opts)

	lx := lexer.New(strings.NewReader(src))
	lx.SetLogger(s.log)

	tokens, err := lx.All()
	if err != nil {
		return nil, &ReadError{Phase: PhaseLex, Err: err}
	}
	return tokens, nil
}

// Read turns source text into a single expression tree. The whole text is
// tokenized before parsing and the first error found aborts the read.
func Read(src string, opts ...Option) (*ast.Expr, error) {
	tokens, err := Tokenize(src, opts...)
	if err != nil {
		return nil, err
	}

	expr, err := parser.Parse(tokens, newSettings(opts).parserOptions()...)
	if err != nil {
		return nil, &ReadError{Phase: PhaseParse, Err: err}
	}
	return expr, nil
}

// ReadAll is like Read but accepts any number of top-level expressions.
func ReadAll(src string, opts ...Option) ([]*ast.Expr, error) {
	tokens, err := Tokenize(src, opts...)
	if err != nil {
		return nil, err
	}

	exprs, err := parser.ParseAll(tokens, newSettings(opts).parserOptions()...)
	if err != nil {
		return nil, &ReadError{Phase: PhaseParse, Err: err}
	}
	return exprs, nil
}
