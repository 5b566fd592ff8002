package ast

import (
	"testing"

	"lince/token"
)

func TestBinaryString(t *testing.T) {
	node := &Binary{
		Token: token.Token{Type: token.PLUS, Literal: "+"},
		Op:    "+",
		Left:  &Const{Token: token.Token{Literal: "1"}, Kind: ConstInt, Int: 1},
		Right: &Const{Token: token.Token{Literal: "2"}, Kind: ConstInt, Int: 2},
	}
	if got, want := node.String(), "(1 + 2)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestIfStringWithAndWithoutElse(t *testing.T) {
	cond := &Const{Token: token.Token{Literal: "true"}, Kind: ConstBool, Bool: true}
	then := &Const{Token: token.Token{Literal: "1"}, Kind: ConstInt, Int: 1}

	withoutElse := &If{Token: token.Token{Type: token.IF}, Condition: cond, Then: then}
	if got, want := withoutElse.String(), "if true then 1"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	els := &Const{Token: token.Token{Literal: "2"}, Kind: ConstInt, Int: 2}
	withElse := &If{Token: token.Token{Type: token.IF}, Condition: cond, Then: then, Else: els}
	if got, want := withElse.String(), "if true then 1 else 2"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWhileString(t *testing.T) {
	cond := &Identifier{Token: token.Token{Literal: "x"}, Name: "x"}
	body := &Identifier{Token: token.Token{Literal: "y"}, Name: "y"}
	w := &While{Token: token.Token{Type: token.WHILE}, Condition: cond, Body: body}
	if got, want := w.String(), "while x do y"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCallString(t *testing.T) {
	call := &Call{
		Token: token.Token{Literal: "sq"},
		Name:  "sq",
		Args:  []Node{&Const{Token: token.Token{Literal: "3"}, Kind: ConstInt, Int: 3}},
	}
	if got, want := call.String(), "sq(3)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestConstStringQuotesStrings(t *testing.T) {
	c := &Const{Token: token.Token{Literal: "ab"}, Kind: ConstString, Str: "ab"}
	if got, want := c.String(), `"ab"`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
