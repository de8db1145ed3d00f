package ast

// ExprType represents the type of an expression
type ExprType uint16

// Expression types. The zero value is the empty list.
const (
	exprTypeAtom ExprType = 128
	exprTypeCell ExprType = 256

	ExprNil ExprType = 0

	ExprSymbol = exprTypeAtom | 1
	ExprNumber = exprTypeAtom | 2
	ExprString = exprTypeAtom | 4
	ExprBool   = exprTypeAtom | 8

	ExprPair = exprTypeCell | 1
)

func (et ExprType) String() string {
	s, ok := exprTypeName[et]
	if ok {
		return s
	}
	return ""
}

var exprTypeName = map[ExprType]string{
	ExprNil:    "nil",
	ExprSymbol: "symbol",
	ExprNumber: "number",
	ExprString: "string",
	ExprBool:   "bool",
	ExprPair:   "pair",
}
