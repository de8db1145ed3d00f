package ast

import (
	"fmt"

	"github.com/xiam/ruse/lexer"
)

// Expr is a node of the syntax tree: an atom, a pair or the empty list.
type Expr struct {
	Type ExprType

	// Value is a string for symbols and strings, a Number, a bool or a *Pair.
	// It's nil for the empty list.
	Value interface{}

	// Loc is where the expression starts in the source text. Lists start at
	// their open delimiter and the terminating Nil at the close delimiter.
	Loc lexer.Location

	// Marked and Mutable are reserved for the evaluator and the garbage
	// collector. The reader always leaves them false.
	Marked  bool
	Mutable bool
}

// Pair is a cons cell.
type Pair struct {
	Car *Expr
	Cdr *Expr
}

func newExpr(et ExprType, v interface{}) *Expr {
	return &Expr{
		Type:  et,
		Value: v,
	}
}

// NewNil creates the empty list
func NewNil() *Expr {
	return newExpr(ExprNil, nil)
}

// NewSymbol creates a symbol
func NewSymbol(name string) *Expr {
	return newExpr(ExprSymbol, name)
}

// NewNumber creates a number
func NewNumber(n Number) *Expr {
	return newExpr(ExprNumber, n)
}

// NewInt creates an exact integer
func NewInt(v int64) *Expr {
	return NewNumber(IntNumber(v))
}

// NewReal creates a real number
func NewReal(v float64) *Expr {
	return NewNumber(RealNumber(v))
}

// NewString creates a string
func NewString(s string) *Expr {
	return newExpr(ExprString, s)
}

// NewBool creates a boolean
func NewBool(b bool) *Expr {
	return newExpr(ExprBool, b)
}

// Cons creates a pair out of car and cdr.
func Cons(car *Expr, cdr *Expr) *Expr {
	return newExpr(ExprPair, &Pair{Car: car, Cdr: cdr})
}

// List creates a proper list with the given elements.
func List(elems ...*Expr) *Expr {
	return DottedList(NewNil(), elems...)
}

// DottedList creates a chain of pairs holding elems and ending in tail.
func DottedList(tail *Expr, elems ...*Expr) *Expr {
	list := tail
	for i := len(elems) - 1; i >= 0; i-- {
		list = Cons(elems[i], list)
	}
	return list
}

// FromToken creates an atom out of a symbol, number, string or boolean token.
func FromToken(tok *lexer.Token) (*Expr, error) {
	var e *Expr

	switch tok.Type() {
	case lexer.TokenSymbol:
		e = NewSymbol(tok.Str())
	case lexer.TokenInteger:
		e = NewInt(tok.Int())
	case lexer.TokenFloat:
		e = NewReal(tok.Float())
	case lexer.TokenString:
		e = NewString(tok.Str())
	case lexer.TokenBool:
		e = NewBool(tok.Bool())
	default:
		return nil, fmt.Errorf("token %v is not an atom", tok)
	}

	e.Loc = tok.Start()
	return e, nil
}

// At sets the location of the expression and returns it.
func (e *Expr) At(loc lexer.Location) *Expr {
	e.Loc = loc
	return e
}

// IsNil returns true for the empty list
func (e *Expr) IsNil() bool {
	return e.Type == ExprNil
}

// IsAtom returns true for symbols, numbers, strings and booleans
func (e *Expr) IsAtom() bool {
	return e.Type&exprTypeAtom > 0
}

// IsPair returns true for cons cells
func (e *Expr) IsPair() bool {
	return e.Type == ExprPair
}

// Symbol returns the name of a symbol
func (e *Expr) Symbol() string {
	return e.Value.(string)
}

// Str returns the contents of a string
func (e *Expr) Str() string {
	return e.Value.(string)
}

// Number returns the value of a number
func (e *Expr) Number() Number {
	return e.Value.(Number)
}

// Bool returns the value of a boolean
func (e *Expr) Bool() bool {
	return e.Value.(bool)
}

// Pair returns the cons cell of a pair
func (e *Expr) Pair() *Pair {
	return e.Value.(*Pair)
}

// Car returns the first element of a pair
func (e *Expr) Car() *Expr {
	return e.Pair().Car
}

// Cdr returns the rest of a pair
func (e *Expr) Cdr() *Expr {
	return e.Pair().Cdr
}

// IsList returns true for proper lists, including the empty one.
func (e *Expr) IsList() bool {
	_, proper := e.Slice()
	return proper
}

// Slice returns the elements of a chain of pairs. The boolean is false when
// the chain doesn't end in the empty list, in that case the tail is not
// included.
func (e *Expr) Slice() ([]*Expr, bool) {
	elems := []*Expr{}
	for cur := e; ; cur = cur.Cdr() {
		if cur == nil {
			return elems, false
		}
		switch cur.Type {
		case ExprNil:
			return elems, true
		case ExprPair:
			elems = append(elems, cur.Car())
		default:
			return elems, false
		}
	}
}

// Len returns the number of pairs in the chain.
func (e *Expr) Len() int {
	elems, _ := e.Slice()
	return len(elems)
}

// Equal compares the structure and values of two trees, ignoring locations
// and evaluator flags.
func Equal(a *Expr, b *Expr) bool {
	for {
		if a == nil || b == nil {
			return a == b
		}
		if a.Type != b.Type {
			return false
		}
		switch a.Type {
		case ExprNil:
			return true
		case ExprSymbol, ExprString:
			return a.Value.(string) == b.Value.(string)
		case ExprBool:
			return a.Bool() == b.Bool()
		case ExprNumber:
			return a.Number().Equal(b.Number())
		case ExprPair:
			if !Equal(a.Car(), b.Car()) {
				return false
			}
			a, b = a.Cdr(), b.Cdr()
		default:
			return false
		}
	}
}

func (e Expr) String() string {
	return string(Encode(&e))
}
