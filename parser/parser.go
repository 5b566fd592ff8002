// Package parser builds an expression tree from a token stream using
// operator-precedence (Pratt) parsing: each token type has a prefix
// parse function, an infix parse function, or both, and parseExpression
// climbs the precedence table to decide how far right an operator may
// reach before control returns to its caller.
package parser

import (
	"strconv"
	"strings"

	"lince/ast"
	"lince/ierr"
	"lince/lexer"
	"lince/token"
)

// Precedence levels, lowest to highest. '^' binds tighter than '*'/'/'.
// '^' and '=' associate to the right; every other binary operator
// associates left.
const (
	LOWEST = iota
	ASSIGN     // =
	COMPARISON // < > <= >= == !=
	SUM        // + -
	PRODUCT    // * /
	POWER      // ^
	PREFIX     // unary -
	CALL       // f(...)
)

var precedences = map[token.TokenType]int{
	token.ASSIGN: ASSIGN,
	token.LT:     COMPARISON,
	token.GT:     COMPARISON,
	token.LE:     COMPARISON,
	token.GE:     COMPARISON,
	token.EQ:     COMPARISON,
	token.NOT_EQ: COMPARISON,
	token.PLUS:   SUM,
	token.MINUS:  SUM,
	token.STAR:   PRODUCT,
	token.SLASH:  PRODUCT,
	token.CARET:  POWER,
	token.LPAREN: CALL,
}

// Parser turns the token stream from a lexer.Lexer into a single ast.Node.
type Parser struct {
	l   *lexer.Lexer
	cur token.Token
}

// New returns a Parser positioned at the first token of l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.cur = p.l.Eat()
	return p
}

func (p *Parser) next() {
	p.cur = p.l.Eat()
}

func (p *Parser) peek() token.Token {
	return p.l.Peek()
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.cur.Type]; ok {
		return prec
	}
	return LOWEST
}

// Parse consumes the entire token stream and returns the expression it
// denotes. It is an error for tokens to remain after the expression.
func (p *Parser) Parse() (ast.Node, error) {
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if p.cur.Type != token.END {
		return nil, ierr.New(ierr.ParseError, p.cur, "unexpected token %q after expression", p.cur.Literal)
	}
	return expr, nil
}

func (p *Parser) parseExpression(precedence int) (ast.Node, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for precedence < p.curPrecedence() {
		left, err = p.parseInfix(left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) parsePrefix() (ast.Node, error) {
	switch p.cur.Type {
	case token.NUMBER:
		return p.parseNumber()
	case token.STRING:
		tok := p.cur
		p.next()
		return &ast.Const{Token: tok, Kind: ast.ConstString, Str: tok.Literal}, nil
	case token.TRUE, token.FALSE:
		return p.parseBool()
	case token.NIL:
		tok := p.cur
		p.next()
		return &ast.Const{Token: tok, Kind: ast.ConstNil}, nil
	case token.MINUS:
		return p.parseUnary()
	case token.LPAREN:
		return p.parseGrouped()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.IDENT:
		return p.parseIdentOrCall()
	default:
		return nil, ierr.New(ierr.ParseError, p.cur, "unexpected token %q", p.cur.Literal)
	}
}

func (p *Parser) parseNumber() (ast.Node, error) {
	tok := p.cur
	lit := tok.Literal
	if strings.ContainsAny(lit, ".eE") {
		v, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, ierr.New(ierr.ParseError, tok, "malformed number %q", lit)
		}
		p.next()
		return &ast.Const{Token: tok, Kind: ast.ConstDouble, Double: v}, nil
	}
	v, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return nil, ierr.New(ierr.ParseError, tok, "malformed number %q", lit)
	}
	p.next()
	return &ast.Const{Token: tok, Kind: ast.ConstInt, Int: v}, nil
}

func (p *Parser) parseBool() (ast.Node, error) {
	tok := p.cur
	v := tok.Type == token.TRUE
	p.next()
	return &ast.Const{Token: tok, Kind: ast.ConstBool, Bool: v}, nil
}

func (p *Parser) parseUnary() (ast.Node, error) {
	tok := p.cur
	p.next()
	operand, err := p.parseExpression(PREFIX)
	if err != nil {
		return nil, err
	}
	return &ast.Unary{Token: tok, Op: "-", Operand: operand}, nil
}

func (p *Parser) parseGrouped() (ast.Node, error) {
	p.next() // consume '('
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if p.cur.Type != token.RPAREN {
		return nil, ierr.New(ierr.ParseError, p.cur, "expected ')', got %q", p.cur.Literal)
	}
	p.next()
	return expr, nil
}

func (p *Parser) parseIf() (ast.Node, error) {
	tok := p.cur
	p.next()
	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if p.cur.Type != token.THEN {
		return nil, ierr.New(ierr.ParseError, p.cur, "expected 'then', got %q", p.cur.Literal)
	}
	p.next()
	then, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	node := &ast.If{Token: tok, Condition: cond, Then: then}
	if p.cur.Type == token.ELSE {
		p.next()
		elseExpr, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		node.Else = elseExpr
	}
	return node, nil
}

func (p *Parser) parseWhile() (ast.Node, error) {
	tok := p.cur
	p.next()
	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if p.cur.Type != token.DO {
		return nil, ierr.New(ierr.ParseError, p.cur, "expected 'do', got %q", p.cur.Literal)
	}
	p.next()
	body, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	return &ast.While{Token: tok, Condition: cond, Body: body}, nil
}

func (p *Parser) parseIdentOrCall() (ast.Node, error) {
	tok := p.cur
	name := tok.Literal
	p.next()
	if p.cur.Type != token.LPAREN {
		return &ast.Identifier{Token: tok, Name: name}, nil
	}
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	return &ast.Call{Token: tok, Name: name, Args: args}, nil
}

func (p *Parser) parseArgs() ([]ast.Node, error) {
	p.next() // consume '('
	var args []ast.Node
	if p.cur.Type == token.RPAREN {
		p.next()
		return args, nil
	}
	for {
		arg, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.cur.Type == token.COMMA {
			p.next()
			continue
		}
		break
	}
	if p.cur.Type != token.RPAREN {
		return nil, ierr.New(ierr.ParseError, p.cur, "expected ')' or ',', got %q", p.cur.Literal)
	}
	p.next()
	return args, nil
}

// parseInfix handles both ordinary binary operators and assignment; '='
// is folded into a Binary node with Op "=" and given special handling by
// the evaluator rather than a distinct AST type, since its only structural
// difference from other infixes is right-associativity and an lvalue
// check performed at evaluation time.
func (p *Parser) parseInfix(left ast.Node) (ast.Node, error) {
	tok := p.cur
	op := tok.Literal
	precedence := precedences[tok.Type]

	// '=' and '^' are right-associative: parse the right side at one
	// precedence lower than this operator's own, so a chain of the same
	// operator nests to the right instead of the left.
	nextPrecedence := precedence
	if tok.Type == token.ASSIGN || tok.Type == token.CARET {
		nextPrecedence = precedence - 1
	}

	p.next()
	right, err := p.parseExpression(nextPrecedence)
	if err != nil {
		return nil, err
	}
	return &ast.Binary{Token: tok, Op: op, Left: left, Right: right}, nil
}
