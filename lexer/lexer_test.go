package lexer

import (
	"testing"

	"lince/token"
)

func TestEat(t *testing.T) {
	input := `x = 2 + sq(3.5) * -1 while x <= 10 do x`

	tests := []struct {
		expectedType    token.TokenType
		expectedLiteral string
	}{
		{token.IDENT, "x"},
		{token.ASSIGN, "="},
		{token.NUMBER, "2"},
		{token.PLUS, "+"},
		{token.IDENT, "sq"},
		{token.LPAREN, "("},
		{token.NUMBER, "3.5"},
		{token.RPAREN, ")"},
		{token.STAR, "*"},
		{token.MINUS, "-"},
		{token.NUMBER, "1"},
		{token.WHILE, "while"},
		{token.IDENT, "x"},
		{token.LE, "<="},
		{token.NUMBER, "10"},
		{token.DO, "do"},
		{token.IDENT, "x"},
		{token.END, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.Eat()
		if tok.Type != tt.expectedType {
			t.Fatalf("test %d: expected type %q, got %q (literal %q)", i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("test %d: expected literal %q, got %q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	l := New("1 + 2")
	first := l.Peek()
	second := l.Peek()
	if first != second {
		t.Fatalf("expected repeated Peek to return the same token, got %v then %v", first, second)
	}
	if l.Eat().Type != token.NUMBER {
		t.Fatalf("expected Eat to still yield the peeked token")
	}
}

func TestNumberScanning(t *testing.T) {
	tests := []struct {
		input   string
		literal string
	}{
		{"123", "123"},
		{"1.5", "1.5"},
		{"1e10", "1e10"},
		{"1e+10", "1e+10"},
		{"1e-10", "1e-10"},
		{".5", ".5"},
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.Eat()
		if tok.Type != token.NUMBER || tok.Literal != tt.literal {
			t.Fatalf("input %q: expected NUMBER %q, got %q %q", tt.input, tt.literal, tok.Type, tok.Literal)
		}
		if end := l.Eat(); end.Type != token.END {
			t.Fatalf("input %q: expected END after number, got %q %q", tt.input, end.Type, end.Literal)
		}
	}
}

func TestNumberStopsAtSecondDot(t *testing.T) {
	l := New("1.2.3")
	tok := l.Eat()
	if tok.Literal != "1.2" {
		t.Fatalf("expected first scan to stop at the second '.', got %q", tok.Literal)
	}
	next := l.Eat()
	if next.Type != token.NUMBER || next.Literal != ".3" {
		t.Fatalf("expected the unread '.' to start the next NUMBER %q, got %q %q", ".3", next.Type, next.Literal)
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	tests := []struct {
		input        string
		expectedType token.TokenType
	}{
		{"if", token.IF},
		{"then", token.THEN},
		{"else", token.ELSE},
		{"true", token.TRUE},
		{"false", token.FALSE},
		{"nil", token.NIL},
		{"while", token.WHILE},
		{"do", token.DO},
		{"sq", token.IDENT},
		{"x1", token.IDENT},
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.Eat()
		if tok.Type != tt.expectedType {
			t.Fatalf("input %q: expected %q, got %q", tt.input, tt.expectedType, tok.Type)
		}
	}
}

func TestStringLiteral(t *testing.T) {
	l := New(`"ab\ncd" * 3`)
	tok := l.Eat()
	if tok.Type != token.STRING || tok.Literal != "ab\ncd" {
		t.Fatalf("expected STRING %q, got %q %q", "ab\ncd", tok.Type, tok.Literal)
	}
	if star := l.Eat(); star.Type != token.STAR {
		t.Fatalf("expected STAR after string, got %q", star.Type)
	}
}

func TestComparisonOperators(t *testing.T) {
	input := "< > <= >= == !="
	expected := []token.TokenType{token.LT, token.GT, token.LE, token.GE, token.EQ, token.NOT_EQ}
	l := New(input)
	for i, want := range expected {
		tok := l.Eat()
		if tok.Type != want {
			t.Fatalf("token %d: expected %q, got %q", i, want, tok.Type)
		}
	}
}
