package main

import (
	"log"

	"github.com/xiam/ruse"
	"github.com/xiam/ruse/ast"
)

func main() {
	input := `(fn-a (fn-b [89 #t #f [67 3.27]]) (fn-c 66 3 53 "Hello world!" -x))`

	root, err := ruse.Read(input)
	if err != nil {
		log.Fatal("ruse.Read:", err)
	}

	ast.Print(root)
}
