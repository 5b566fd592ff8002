// Command lince is a REPL for the expression language implemented by
// packages lexer, parser, eval, and object.
package main

import (
	"fmt"
	"os"

	"lince/eval"
	"lince/repl"
	"lince/text"
)

func main() {
	fmt.Print(text.Logo())

	it := eval.New()
	rl := repl.NewLineReader(it)
	repl.Start(it, rl, os.Stdout)
}
