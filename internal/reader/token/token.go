// Released under an MIT license. See LICENSE.

// Package token is shared by the uncalc lexer and parser.
package token

// Class is a token's type.
type Class int

// Token classes.
const (
	Number Class = iota // Integer or decimal literal.
	Imaginary
	Ident
	Operator // One of + - * / % **.
	LParen
	RParen
	Comma
	Semicolon
	Assign
)

// T (token) is a lexical item returned by the scanner.
type T struct {
	class Class
	text  string
	pos   int // Byte offset in the line, for error reporting.
}

type token = T

// New creates a new token.
func New(class Class, text string, pos int) *token {
	return &token{class: class, text: text, pos: pos}
}

// Class returns the class of the token t.
func (t *token) Class() Class {
	return t.class
}

// Is returns true if the token t is any of the classes in cs.
func (t *token) Is(cs ...Class) bool {
	if t == nil {
		return false
	}

	for _, c := range cs {
		if t.class == c {
			return true
		}
	}

	return false
}

// Pos returns the byte offset of the token t in its line.
func (t *token) Pos() int {
	return t.pos
}

// Text returns the text of the token t.
func (t *token) Text() string {
	return t.text
}

// String returns a label for the class c. Useful in error messages.
func (c Class) String() string {
	switch c {
	case Number:
		return "number"
	case Imaginary:
		return "imaginary number"
	case Ident:
		return "identifier"
	case Operator:
		return "operator"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case Comma:
		return "','"
	case Semicolon:
		return "';'"
	case Assign:
		return "'='"
	}

	return "token"
}
