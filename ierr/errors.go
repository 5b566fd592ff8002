// Package ierr is this interpreter's error taxonomy: one identifier per
// distinct kind of failure, the way the teacher's object.ErrorCreatorMap
// names each of its failures, but realized as ordinary Go error values
// instead of a hand-authored message-and-explanation table.
package ierr

import (
	"fmt"

	"lince/token"
)

// Kind identifies the category of an Error, independent of the specific
// message or position. Code that needs to react to a particular failure
// (the REPL's error display, a test) should compare against Kind via
// errors.As, not by matching message text.
type Kind string

const (
	ParseError     Kind = "parse-error"
	NoSuchName     Kind = "no-such-name"
	NoSuchFunction Kind = "no-such-function"
	AmbiguousCall  Kind = "ambiguous-call"
	BadCoercion    Kind = "bad-coercion"
	DivByZero      Kind = "eval/div/zero"
)

// Error is the concrete error type raised throughout the parser, the
// evaluator, and the standard module's builtins. The lexer raises none; it
// reports unscannable input as an ILLEGAL token.
type Error struct {
	Kind  Kind
	Msg   string
	Token token.Token
}

func (e *Error) Error() string {
	if e.Token.Literal == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s (at %q, pos %d)", e.Msg, e.Token.Literal, e.Token.Pos)
}

// New builds an Error of the given Kind with a formatted message, tagged
// with the token nearest the failure for the REPL to point at.
func New(kind Kind, tok token.Token, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Token: tok}
}
