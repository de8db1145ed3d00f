package parser

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/ruse/ast"
	"github.com/xiam/ruse/lexer"
)

var ignoreLoc = cmpopts.IgnoreFields(ast.Expr{}, "Loc")

func loc(line, col int) lexer.Location {
	return lexer.Location{Line: line, Column: col}
}

func tokenize(t *testing.T, in string) []lexer.Token {
	tokens, err := lexer.TokenizeString(in)
	require.NoError(t, err, "input: %q", in)
	return tokens
}

func TestParserBuildTree(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{
			In:  `()`,
			Out: `()`,
		},
		{
			In:  `1`,
			Out: `1`,
		},
		{
			In:  `3.25`,
			Out: `3.25`,
		},
		{
			In:  `"hello"`,
			Out: `"hello"`,
		},
		{
			In:  `(+ 2 3)`,
			Out: `(+ 2 3)`,
		},
		{
			In:  `(+ (add-two 2) 3.2)`,
			Out: `(+ (add-two 2) 3.2)`,
		},
		{
			In:  `[1 2 3]`,
			Out: `(1 2 3)`,
		},
		{
			In:  "[1\n\t 2\n\n3\n]",
			Out: `(1 2 3)`,
		},
		{
			In:  `(1 2 [] [3[4[5]]] 6 (7))`,
			Out: `(1 2 () (3 (4 (5))) 6 (7))`,
		},
		{
			In:  `([(1[2])]3)`,
			Out: `(((1 (2))) 3)`,
		},
		{
			In:  `{(a b) #t #false "x\ty"}`,
			Out: `((a b) #t #f "x\ty")`,
		},
		{
			In:  `(]`,
			Out: `()`,
		},
		{
			In:  `(a b]`,
			Out: `(a b)`,
		},
		{
			In:  "(define (square x)\n\t(* x x))",
			Out: `(define (square x) (* x x))`,
		},
		{
			In:  `(- -5 +5 a.b@c)`,
			Out: `(- -5 +5 a.b@c)`,
		},
	}

	for _, tc := range testCases {
		tree, err := Parse(tokenize(t, tc.In))
		require.NoError(t, err, "input: %q", tc.In)
		assert.Equal(t, tc.Out, string(ast.Encode(tree)), "input: %q", tc.In)
	}
}

func TestParserTreeShape(t *testing.T) {
	tree, err := Parse(tokenize(t, `(+ (add-two 2) 3.2)`))
	require.NoError(t, err)

	want := ast.List(
		ast.NewSymbol("+"),
		ast.List(ast.NewSymbol("add-two"), ast.NewInt(2)),
		ast.NewReal(3.2),
	)
	if diff := cmp.Diff(want, tree, ignoreLoc); diff != "" {
		t.Fatalf("unexpected tree (-want +got):\n%s\n%s", diff, spew.Sdump(tree))
	}

	third := tree.Cdr().Cdr().Car().Number()
	assert.Equal(t, ast.NumberReal, third.Kind)
	assert.True(t, third.Exact)
	assert.Equal(t, 3.2, third.Real)

	second := tree.Cdr().Car()
	assert.True(t, second.IsList())
	assert.Equal(t, 2, second.Len())
}

func TestParserLocations(t *testing.T) {
	tree, err := Parse(tokenize(t, "(+ 2\n 3)"))
	require.NoError(t, err)

	assert.Equal(t, loc(1, 1), tree.Loc)
	assert.Equal(t, loc(1, 2), tree.Car().Loc)

	second := tree.Cdr()
	assert.Equal(t, loc(1, 4), second.Loc)
	assert.Equal(t, loc(1, 4), second.Car().Loc)

	third := second.Cdr()
	assert.Equal(t, loc(2, 2), third.Car().Loc)

	end := third.Cdr()
	assert.True(t, end.IsNil())
	assert.Equal(t, loc(2, 3), end.Loc)

	empty, err := Parse(tokenize(t, "  ()"))
	require.NoError(t, err)
	assert.True(t, empty.IsNil())
	assert.Equal(t, loc(1, 3), empty.Loc)
}

func TestParserFlags(t *testing.T) {
	tree, err := Parse(tokenize(t, `(a (b "c") 1 #t)`))
	require.NoError(t, err)

	var walk func(e *ast.Expr)
	walk = func(e *ast.Expr) {
		assert.False(t, e.Marked)
		assert.False(t, e.Mutable)
		if e.IsPair() {
			walk(e.Car())
			walk(e.Cdr())
		}
	}
	walk(tree)
}

func TestParserErrors(t *testing.T) {
	testCases := []struct {
		In     string
		Strict bool
		Err    error
		Loc    *lexer.Location
	}{
		{``, false, ErrEmptyProgram, nil},
		{`  `, false, ErrEmptyProgram, nil},
		{`(`, false, ErrEndOfProgram, &lexer.Location{Line: 1, Column: 1}},
		{`((a)`, false, ErrEndOfProgram, &lexer.Location{Line: 1, Column: 1}},
		{"(a\n  (b c)\n  [d", false, ErrEndOfProgram, &lexer.Location{Line: 3, Column: 3}},
		{`)`, false, ErrInvalidProgram, &lexer.Location{Line: 1, Column: 1}},
		{`]`, false, ErrInvalidProgram, &lexer.Location{Line: 1, Column: 1}},
		{`(a))`, false, ErrUnmatchedParens, &lexer.Location{Line: 1, Column: 4}},
		{`(a) (b)`, false, ErrNoEnclosingParens, &lexer.Location{Line: 1, Column: 5}},
		{`1 2`, false, ErrNoEnclosingParens, &lexer.Location{Line: 1, Column: 3}},
		{`(]`, true, ErrUnmatchedParens, &lexer.Location{Line: 1, Column: 2}},
		{`([)]`, true, ErrUnmatchedParens, &lexer.Location{Line: 1, Column: 3}},
		{`{a b}`, true, nil, nil},
	}

	for _, tc := range testCases {
		tree, err := Parse(tokenize(t, tc.In), WithStrictDelimiters(tc.Strict))
		if tc.Err == nil {
			assert.NoError(t, err, "input: %q", tc.In)
			assert.NotNil(t, tree, "input: %q", tc.In)
			continue
		}

		assert.Nil(t, tree, "input: %q", tc.In)
		require.Error(t, err, "input: %q", tc.In)
		assert.True(t, errors.Is(err, tc.Err), "input: %q, got: %v", tc.In, err)

		var parseErr *Error
		require.True(t, errors.As(err, &parseErr), "input: %q", tc.In)

		at, ok := parseErr.Loc()
		if tc.Loc == nil {
			assert.False(t, ok, "input: %q", tc.In)
			continue
		}
		assert.True(t, ok, "input: %q", tc.In)
		assert.Equal(t, *tc.Loc, at, "input: %q", tc.In)
	}
}

func TestParserInvalidToken(t *testing.T) {
	_, err := Parse([]lexer.Token{{}})
	assert.True(t, errors.Is(err, ErrInvalidProgram))

	_, err = Parse(nil)
	assert.True(t, errors.Is(err, ErrEmptyProgram))
}

func TestParserErrorMessage(t *testing.T) {
	_, err := Parse(tokenize(t, `(a))`))
	assert.EqualError(t, err, `unmatched parens near ")" at 1:4`)

	_, err = Parse(nil)
	assert.EqualError(t, err, `empty program`)
}

func TestParseAll(t *testing.T) {
	exprs, err := ParseAll(tokenize(t, "(define x 1)\n(display x) 3 \"s\""))
	require.NoError(t, err)
	require.Len(t, exprs, 4)

	out := []string{}
	for _, e := range exprs {
		out = append(out, string(ast.Encode(e)))
	}
	assert.Equal(t, []string{`(define x 1)`, `(display x)`, `3`, `"s"`}, out)

	_, err = ParseAll(nil)
	assert.True(t, errors.Is(err, ErrEmptyProgram))

	_, err = ParseAll(tokenize(t, `(a)) (b)`))
	assert.True(t, errors.Is(err, ErrUnmatchedParens))

	_, err = ParseAll(tokenize(t, `(a) (`))
	assert.True(t, errors.Is(err, ErrEndOfProgram))
}

func TestParserDeterministic(t *testing.T) {
	tokens := tokenize(t, `(let ((x 1) [y 2.5]) {list x y "z" #f})`)

	first, err := Parse(tokens)
	require.NoError(t, err)

	second, err := Parse(tokens)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(first, second))
	assert.True(t, ast.Equal(first, second))
}

func TestParserLogger(t *testing.T) {
	var buf bytes.Buffer

	_, err := Parse(tokenize(t, `(a (b))`), WithLogger(log.New(&buf, "", 0)))
	require.NoError(t, err)

	// a, b, (b) and (a (b))
	assert.Equal(t, 4, strings.Count(buf.String(), "parser: "))

	_, err = Parse(tokenize(t, `(a)`), WithLogger(nil))
	assert.NoError(t, err)
}

func TestParserDeepNesting(t *testing.T) {
	depth := 10000
	in := strings.Repeat("(", depth) + "x" + strings.Repeat(")", depth)

	tree, err := Parse(tokenize(t, in))
	require.NoError(t, err)

	for i := 0; i < depth; i++ {
		require.True(t, tree.IsPair())
		assert.True(t, tree.Cdr().IsNil())
		tree = tree.Car()
	}
	assert.Equal(t, "x", tree.Symbol())
}

func TestParserMaxDepth(t *testing.T) {
	tokens := tokenize(t, "(a (b (c)))")

	_, err := Parse(tokens, WithMaxDepth(3))
	require.NoError(t, err)

	_, err = Parse(tokens, WithMaxDepth(2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMaxDepth))

	var parseErr *Error
	require.True(t, errors.As(err, &parseErr))
	at, ok := parseErr.Loc()
	assert.True(t, ok)
	assert.Equal(t, loc(1, 7), at)

	_, err = ParseAll(tokenize(t, "(a) ((b))"), WithMaxDepth(1))
	assert.True(t, errors.Is(err, ErrMaxDepth))

	depth := DefaultMaxDepth + 1
	deep := tokenize(t, strings.Repeat("(", depth)+strings.Repeat(")", depth))

	_, err = Parse(deep)
	assert.True(t, errors.Is(err, ErrMaxDepth))

	_, err = Parse(deep, WithMaxDepth(0))
	assert.NoError(t, err)
}
