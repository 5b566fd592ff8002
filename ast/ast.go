// Package ast defines the expression-tree node types produced by the
// parser and walked by the evaluator.
//
// Nodes deliberately hold no reference to package object's Value type (see
// Const below): this keeps ast free of any dependency on object, which in
// turn lets object depend on ast (for the Ctx.Eval signature a Function
// body uses to re-enter evaluation) without an import cycle.
package ast

import (
	"bytes"
	"strconv"
	"strings"

	"lince/token"
)

// Node is the interface every expression-tree node satisfies.
type Node interface {
	GetToken() token.Token
	String() string
}

// Identifier is a bare name reference, e.g. `x`.
type Identifier struct {
	Token token.Token
	Name  string
}

func (i *Identifier) GetToken() token.Token { return i.Token }
func (i *Identifier) String() string        { return i.Name }

// ConstKind discriminates the literal payload a Const node carries.
type ConstKind int

const (
	ConstNil ConstKind = iota
	ConstBool
	ConstInt
	ConstDouble
	ConstString
)

// Const is a literal: nil, a boolean, an integer, a floating-point number,
// or a string. It stores the raw Go value rather than an object.Value so
// that this package has no dependency on object (see the package doc
// comment). ConstString is an implementer extension over the core grammar
// (see lexer.scanString).
type Const struct {
	Token  token.Token
	Kind   ConstKind
	Bool   bool
	Int    int64
	Double float64
	Str    string
}

func (c *Const) GetToken() token.Token { return c.Token }
func (c *Const) String() string {
	if c.Kind == ConstString {
		return strconv.Quote(c.Str)
	}
	return c.Token.Literal
}

// Unary is a prefix operator applied to a single operand, e.g. `-x`.
type Unary struct {
	Token   token.Token
	Op      string
	Operand Node
}

func (u *Unary) GetToken() token.Token { return u.Token }
func (u *Unary) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(u.Op)
	out.WriteString(u.Operand.String())
	out.WriteString(")")
	return out.String()
}

// Binary is an infix operator applied to two operands, e.g. `x + y`.
// Op == "=" is special-cased by the evaluator: it is never dispatched as
// an ordinary operator call (see eval.Eval).
type Binary struct {
	Token token.Token
	Op    string
	Left  Node
	Right Node
}

func (b *Binary) GetToken() token.Token { return b.Token }
func (b *Binary) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(b.Left.String())
	out.WriteString(" " + b.Op + " ")
	out.WriteString(b.Right.String())
	out.WriteString(")")
	return out.String()
}

// Call is a named function or operator invocation: `name(args...)`.
type Call struct {
	Token token.Token
	Name  string
	Args  []Node
}

func (c *Call) GetToken() token.Token { return c.Token }
func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	var out bytes.Buffer
	out.WriteString(c.Name)
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}

// LambdaCall applies a Function value produced by an arbitrary expression
// directly, without going through a name lookup: `callee(args...)` where
// callee is not a bare identifier. Reserved per spec.md §9 — the parser in
// this implementation never emits it, but the evaluator honors it so that
// an AST built by another front end (or by a test) can use it.
type LambdaCall struct {
	Token  token.Token
	Callee Node
	Args   []Node
}

func (l *LambdaCall) GetToken() token.Token { return l.Token }
func (l *LambdaCall) String() string {
	args := make([]string, len(l.Args))
	for i, a := range l.Args {
		args[i] = a.String()
	}
	var out bytes.Buffer
	out.WriteString(l.Callee.String())
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}

// If is a conditional expression; Else may be nil.
type If struct {
	Token     token.Token
	Condition Node
	Then      Node
	Else      Node
}

func (i *If) GetToken() token.Token { return i.Token }
func (i *If) String() string {
	var out bytes.Buffer
	out.WriteString("if ")
	out.WriteString(i.Condition.String())
	out.WriteString(" then ")
	out.WriteString(i.Then.String())
	if i.Else != nil {
		out.WriteString(" else ")
		out.WriteString(i.Else.String())
	}
	return out.String()
}

// While repeatedly evaluates Body while Condition is true, yielding the
// last value Body produced (or nil if Body never ran).
type While struct {
	Token     token.Token
	Condition Node
	Body      Node
}

func (w *While) GetToken() token.Token { return w.Token }
func (w *While) String() string {
	var out bytes.Buffer
	out.WriteString("while ")
	out.WriteString(w.Condition.String())
	out.WriteString(" do ")
	out.WriteString(w.Body.String())
	return out.String()
}

// TranslationUnit is a sequence of expressions evaluated in order, whose
// value is that of the last one. Reserved per spec.md §9 for multi-
// expression scripts — the REPL parser (one expression per line) never
// emits it.
type TranslationUnit struct {
	Token token.Token
	Exprs []Node
}

func (t *TranslationUnit) GetToken() token.Token { return t.Token }
func (t *TranslationUnit) String() string {
	parts := make([]string, len(t.Exprs))
	for i, e := range t.Exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, "; ")
}
