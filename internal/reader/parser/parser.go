// Released under an MIT license. See LICENSE.

// Package parser turns a line of tokens into statements.
//
// The grammar is the calculator subset of the host language:
//
//	line    = [ stmt { ";" stmt } ]
//	stmt    = ident "=" expr | expr
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/" | "%") unary }
//	unary   = ("+" | "-") unary | power
//	power   = primary [ "**" unary ]
//	primary = number | imaginary | ident [ "(" args ")" ] | "(" expr ")"
//
// "**" is right-associative and binds tighter than a prefix sign, so
// -2**2 is -(2**2).
package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/uncalc/uncalc/internal/common/fault"
	"github.com/uncalc/uncalc/internal/common/interface/quantity"
	"github.com/uncalc/uncalc/internal/common/type/cpx"
	"github.com/uncalc/uncalc/internal/common/type/flt"
	"github.com/uncalc/uncalc/internal/common/type/frac"
	"github.com/uncalc/uncalc/internal/reader/ast"
	"github.com/uncalc/uncalc/internal/reader/lexer"
	"github.com/uncalc/uncalc/internal/reader/token"
)

// T (parser) holds the token stream for one line.
type T struct {
	tokens []*token.T
	next   int
}

type parser = T

// Parse scans and parses one line. A fault is returned rather than
// thrown so that the session can report it without a recover of its
// own; the parser panics internally for control flow, like the host.
func Parse(line string) (stmts []ast.Stmt, f *fault.T) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		if t, ok := r.(*fault.T); ok {
			f = t

			return
		}

		panic(r)
	}()

	p := &parser{tokens: lexer.Scan(line)}

	for p.peek() != nil {
		stmts = append(stmts, p.statement())

		if p.peek() != nil {
			p.expect(token.Semicolon)
		}
	}

	return stmts, nil
}

func (p *parser) statement() ast.Stmt {
	if t := p.peek(); t.Is(token.Ident) && p.peekAt(1).Is(token.Assign) {
		p.consume()
		p.consume()

		return &ast.Assign{Name: t.Text(), X: p.expression()}
	}

	return &ast.ExprStmt{X: p.expression()}
}

func (p *parser) expression() ast.Expr {
	x := p.term()

	for t := p.peek(); t.Is(token.Operator) && (t.Text() == "+" || t.Text() == "-"); t = p.peek() {
		p.consume()

		x = &ast.Binary{Op: t.Text(), A: x, B: p.term()}
	}

	return x
}

func (p *parser) term() ast.Expr {
	x := p.unary()

	for t := p.peek(); t.Is(token.Operator) &&
		(t.Text() == "*" || t.Text() == "/" || t.Text() == "%"); t = p.peek() {
		p.consume()

		x = &ast.Binary{Op: t.Text(), A: x, B: p.unary()}
	}

	return x
}

func (p *parser) unary() ast.Expr {
	if t := p.peek(); t.Is(token.Operator) && (t.Text() == "+" || t.Text() == "-") {
		p.consume()

		return &ast.Unary{Op: t.Text(), X: p.unary()}
	}

	return p.power()
}

func (p *parser) power() ast.Expr {
	x := p.primary()

	if t := p.peek(); t.Is(token.Operator) && t.Text() == "**" {
		p.consume()

		// The exponent may carry its own sign: 2**-1.
		return &ast.Binary{Op: "**", A: x, B: p.unary()}
	}

	return x
}

func (p *parser) primary() ast.Expr {
	t := p.peek()
	if t == nil {
		fault.Throw(fault.Parse, "unexpected end of line")
	}

	switch t.Class() {
	case token.Number:
		p.consume()

		return &ast.Literal{Value: numberLiteral(t)}
	case token.Imaginary:
		p.consume()

		v, err := strconv.ParseFloat(t.Text(), 64)
		if err != nil {
			fault.Throw(fault.Parse, "malformed number %q", t.Text())
		}

		return &ast.Literal{Value: cpx.Rect(0, v)}
	case token.Ident:
		p.consume()

		if p.peek().Is(token.LParen) {
			return &ast.Call{Fn: t.Text(), Args: p.arguments()}
		}

		return &ast.Name{Ident: t.Text()}
	case token.LParen:
		p.consume()

		x := p.expression()
		p.expect(token.RParen)

		return x
	}

	fault.Throw(fault.Parse, "unexpected %s at column %d", t.Class(), t.Pos()+1)

	return nil // Unreachable.
}

func (p *parser) arguments() []ast.Expr {
	p.expect(token.LParen)

	var args []ast.Expr

	if p.peek().Is(token.RParen) {
		p.consume()

		return args
	}

	for {
		args = append(args, p.expression())

		if p.peek().Is(token.Comma) {
			p.consume()

			continue
		}

		p.expect(token.RParen)

		return args
	}
}

// numberLiteral converts a number token to a quantity: integer text
// becomes an exact fraction, anything with a point or exponent a real.
func numberLiteral(t *token.T) quantity.I {
	s := t.Text()

	if !strings.ContainsAny(s, ".eE") {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			fault.Throw(fault.Overflow, "integer literal %q out of range", s)
		}

		return frac.Int(n)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		fault.Throw(fault.Parse, "malformed number %q", s)
	}

	return flt.New(v)
}

func (p *parser) peek() *token.T {
	return p.peekAt(0)
}

func (p *parser) peekAt(n int) *token.T {
	if p.next+n >= len(p.tokens) {
		return nil
	}

	return p.tokens[p.next+n]
}

func (p *parser) consume() *token.T {
	t := p.peek()
	if t == nil {
		fault.Throw(fault.Parse, "unexpected end of line")
	}

	p.next++

	return t
}

func (p *parser) expect(c token.Class) *token.T {
	t := p.peek()
	if !t.Is(c) {
		if t == nil {
			fault.Throw(fault.Parse, "expected %s at end of line", c)
		}

		fault.Throw(fault.Parse, "expected %s at column %d", c, t.Pos()+1)
	}

	return p.consume()
}
