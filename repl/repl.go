// Package repl runs the read-eval-print loop: one line of input in, one
// evaluated value or error out.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/lmorg/readline"

	"lince/eval"
	"lince/ierr"
	"lince/lexer"
	"lince/object"
	"lince/parser"
	"lince/text"
)

// LineReader abstracts the line editor so the loop itself never imports
// readline directly and can be driven by a fixed script in tests.
type LineReader interface {
	SetPrompt(string)
	Readline() (string, error)
}

// realLineReader adapts *readline.Instance, the real third-party line
// editor, to LineReader.
type realLineReader struct {
	inst *readline.Instance
}

func (r *realLineReader) SetPrompt(p string)       { r.inst.SetPrompt(p) }
func (r *realLineReader) Readline() (string, error) { return r.inst.Readline() }

// NewLineReader returns a LineReader backed by github.com/lmorg/readline,
// with tab-completion wired to the interpreter's currently bound names.
func NewLineReader(it *eval.Interpreter) LineReader {
	inst := readline.NewInstance()
	inst.TabCompleter = func(line []rune, pos int, _ readline.DelayedTabContext) (string, []string, map[string]string, readline.TabDisplayType) {
		var suggestions []string
		for _, name := range it.Completions(string(line[:pos])) {
			suggestions = append(suggestions, name[pos:])
		}
		return string(line[:pos]), suggestions, nil, readline.TabDisplayGrid
	}
	return &realLineReader{inst: inst}
}

// Start runs the loop until the line reader returns an error (EOF on
// Ctrl-D, or an interrupt).
func Start(it *eval.Interpreter, rl LineReader, out io.Writer) {
	for {
		rl.SetPrompt(text.PROMPT)
		line, err := rl.Readline()
		if err != nil {
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		result, err := Eval(it, line)
		if err != nil {
			fmt.Fprintln(out, text.ERROR+describeError(err))
			continue
		}
		fmt.Fprintln(out, text.BULLET+object.Display(result))
	}
}

// Eval parses and evaluates one line against it's Environment.
func Eval(it *eval.Interpreter, line string) (object.Value, error) {
	p := parser.New(lexer.New(line))
	node, err := p.Parse()
	if err != nil {
		return object.Value{}, err
	}
	return it.Eval(node)
}

func describeError(err error) string {
	if ierrErr, ok := err.(*ierr.Error); ok {
		return ierrErr.Error()
	}
	return err.Error()
}
