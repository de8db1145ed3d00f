package main

import (
	"fmt"
	"log"

	"github.com/xiam/ruse/lexer"
)

func main() {
	input := `
		(define (fn-a x)
			(fn-b [89 #t #false [67 3.27]])
			(fn-c 66 3 53 "Hello world!\n"))
	`

	tokens, err := lexer.Tokenize([]byte(input))
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		line, col := tok.Pos()
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n\n", i, tt, line, col, lexeme)
	}
}
