package ast

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var stringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\t", `\t`,
	"\n", `\n`,
	"\r", `\r`,
)

// Print displays a human-readable representation of an expression
func Print(e *Expr) {
	Fprint(os.Stdout, e)
}

// Fprint writes a human-readable representation of an expression to w, one
// line per node.
func Fprint(w io.Writer, e *Expr) {
	printLevel(w, e, 0)
}

func printLevel(w io.Writer, e *Expr, level int) {
	indent := strings.Repeat("    ", level)
	if e == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}
	fmt.Fprintf(w, "%s(%s): ", indent, e.Type)
	switch e.Type {

	case ExprPair:
		fmt.Fprintf(w, "[%v]\n", e.Loc)
		printLevel(w, e.Car(), level+1)
		printLevel(w, e.Cdr(), level+1)

	case ExprNil:
		fmt.Fprintf(w, "() [%v]\n", e.Loc)

	case ExprNumber:
		n := e.Number()
		fmt.Fprintf(w, "%v %v exact=%v [%v]\n", n.Kind, n, n.Exact, e.Loc)

	default:
		fmt.Fprintf(w, "%s [%v]\n", encodeAtom(e), e.Loc)
	}
}

// Encode transforms an expression into its text representation
func Encode(e *Expr) []byte {
	var b strings.Builder
	encodeExpr(&b, e)
	return []byte(b.String())
}

func encodeExpr(b *strings.Builder, e *Expr) {
	if e == nil {
		b.WriteString(":nil")
		return
	}
	switch e.Type {
	case ExprNil:
		b.WriteString("()")

	case ExprPair:
		b.WriteByte('(')
		cur := e
		for {
			encodeExpr(b, cur.Car())
			cur = cur.Cdr()
			if cur == nil {
				b.WriteString(" . :nil")
				break
			}
			if cur.Type == ExprNil {
				break
			}
			if cur.Type != ExprPair {
				b.WriteString(" . ")
				encodeExpr(b, cur)
				break
			}
			b.WriteByte(' ')
		}
		b.WriteByte(')')

	default:
		b.WriteString(encodeAtom(e))
	}
}

func encodeAtom(e *Expr) string {
	switch e.Type {
	case ExprSymbol:
		return e.Symbol()
	case ExprString:
		return `"` + stringEscaper.Replace(e.Str()) + `"`
	case ExprBool:
		if e.Bool() {
			return "#t"
		}
		return "#f"
	case ExprNumber:
		return e.Number().String()
	}

	panic("unknown expression type")
}
