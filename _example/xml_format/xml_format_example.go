package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/ruse"
	"github.com/xiam/ruse/ast"
)

func printTree(expr *ast.Expr) {
	printIndentedTree(expr, 0)
}

func printIndentedTree(expr *ast.Expr, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	if elems, proper := expr.Slice(); proper && !expr.IsNil() {
		fmt.Printf("%s<list>\n", indent)
		for i := range elems {
			printIndentedTree(elems[i], indentationLevel+1)
		}
		fmt.Printf("%s</list>\n", indent)
		return
	}
	fmt.Printf("%s<%s>%v</%s>\n", indent, expr.Type, expr, expr.Type)
}

func main() {
	input := `(fn-a (fn-b [89 #t #f [67 3.27]]) (fn-c 66 3 53 "Hello world!" ()))`

	root, err := ruse.Read(input)
	if err != nil {
		log.Fatal("ruse.Read:", err)
	}

	printTree(root)
}
