// Package lexer turns one line of source into a one-token-lookahead stream
// for the parser.
package lexer

import (
	"strings"

	"lince/token"
)

// Lexer scans a single line of source. It has no concept of lines beyond
// the one it was constructed with — each REPL line gets a fresh Lexer.
type Lexer struct {
	reader strings.Reader
	ch     rune
	pos    int // rune offset of ch within the input
	eof    bool

	cur    *token.Token // the cached result of the last Peek, or nil
	tstart int
}

// New returns a Lexer positioned at the start of input.
func New(input string) *Lexer {
	l := &Lexer{reader: *strings.NewReader(input), pos: -1}
	l.readChar()
	return l
}

// Peek returns the next token without consuming it. Repeated calls without
// an intervening Eat return the same token.
func (l *Lexer) Peek() token.Token {
	if l.cur == nil {
		t := l.scan()
		l.cur = &t
	}
	return *l.cur
}

// Eat consumes and returns the token Peek would have returned.
func (l *Lexer) Eat() token.Token {
	t := l.Peek()
	l.cur = nil
	return t
}

func (l *Lexer) readChar() {
	l.pos++
	if l.reader.Len() == 0 {
		l.ch = 0
		l.eof = true
		return
	}
	l.ch, _, _ = l.reader.ReadRune()
}

func (l *Lexer) peekChar() rune {
	if l.reader.Len() == 0 {
		return 0
	}
	r, _, _ := l.reader.ReadRune()
	l.reader.UnreadRune()
	return r
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) new(typ token.TokenType, lit string) token.Token {
	return token.Token{Type: typ, Literal: lit, Pos: l.tstart}
}

func (l *Lexer) scan() token.Token {
	l.skipWhitespace()
	l.tstart = l.pos

	switch {
	case l.ch == 0 || l.ch == '\n':
		return l.new(token.END, "")
	case l.ch == '"':
		return l.scanString()
	case isAlpha(l.ch):
		return l.scanIdentifier()
	case isDigit(l.ch) || l.ch == '.':
		return l.scanNumber()
	}

	ch := l.ch
	switch ch {
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.new(token.LE, "<=")
		}
		l.readChar()
		return l.new(token.LT, "<")
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.new(token.GE, ">=")
		}
		l.readChar()
		return l.new(token.GT, ">")
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.new(token.EQ, "==")
		}
		l.readChar()
		return l.new(token.ASSIGN, "=")
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.new(token.NOT_EQ, "!=")
		}
		l.readChar()
		return l.new(token.ILLEGAL, "!")
	}

	l.readChar()
	return l.new(token.TokenType(string(ch)), string(ch))
}

func (l *Lexer) scanIdentifier() token.Token {
	start := l.pos
	var b strings.Builder
	for isAlpha(l.ch) || isDigit(l.ch) {
		b.WriteRune(l.ch)
		l.readChar()
	}
	lit := b.String()
	return token.Token{Type: token.LookupIdent(lit), Literal: lit, Pos: start}
}

// scanNumber implements spec.md §4.1's number-scanning rule: digits, at
// most one '.', an optional 'e'/'E', and a sign character only when it
// directly follows 'e'/'E'. A second '.' or a misplaced sign stops the
// scan with the offending character left unread for the next token.
func (l *Lexer) scanNumber() token.Token {
	start := l.pos
	var b strings.Builder
	seenDot := false
	for {
		switch {
		case isDigit(l.ch):
			b.WriteRune(l.ch)
			l.readChar()
		case l.ch == '.':
			if seenDot {
				goto done
			}
			seenDot = true
			b.WriteRune(l.ch)
			l.readChar()
		case l.ch == 'e' || l.ch == 'E':
			b.WriteRune(l.ch)
			l.readChar()
		case l.ch == '+' || l.ch == '-':
			s := b.String()
			if len(s) == 0 || (s[len(s)-1] != 'e' && s[len(s)-1] != 'E') {
				goto done
			}
			b.WriteRune(l.ch)
			l.readChar()
		default:
			goto done
		}
	}
done:
	return token.Token{Type: token.NUMBER, Literal: b.String(), Pos: start}
}

// scanString lexes a double-quoted string literal. Source strings are an
// implementer extension over spec.md's core grammar (see spec.md §6/§9 and
// the `lexer/` entry of DESIGN.md) needed for scenario S8 (`"ab" * 3`).
func (l *Lexer) scanString() token.Token {
	start := l.pos
	l.readChar() // consume opening quote
	var b strings.Builder
	escaped := false
	for {
		if l.ch == 0 || l.ch == '\n' {
			return token.Token{Type: token.ILLEGAL, Literal: b.String(), Pos: start}
		}
		if escaped {
			switch l.ch {
			case 'n':
				b.WriteRune('\n')
			case 't':
				b.WriteRune('\t')
			case '"':
				b.WriteRune('"')
			case '\\':
				b.WriteRune('\\')
			default:
				b.WriteRune(l.ch)
			}
			escaped = false
			l.readChar()
			continue
		}
		if l.ch == '\\' {
			escaped = true
			l.readChar()
			continue
		}
		if l.ch == '"' {
			l.readChar()
			break
		}
		b.WriteRune(l.ch)
		l.readChar()
	}
	return token.Token{Type: token.STRING, Literal: b.String(), Pos: start}
}

func isAlpha(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
