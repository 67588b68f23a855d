// Released under an MIT license. See LICENSE.

// Package ast defines the nodes produced by the uncalc parser.
package ast

import "github.com/uncalc/uncalc/internal/common/interface/quantity"

// Stmt is a single statement on a submitted line.
type Stmt interface {
	stmt()
}

// Assign binds the value of X to Name.
type Assign struct {
	Name string
	X    Expr
}

// ExprStmt evaluates X for display.
type ExprStmt struct {
	X Expr
}

func (*Assign) stmt()   {}
func (*ExprStmt) stmt() {}

// Expr is an expression node.
type Expr interface {
	expr()
}

// Literal is a quantity already constructed by the parser.
type Literal struct {
	Value quantity.I
}

// Name references a variable in the environment.
type Name struct {
	Ident string
}

// Unary applies a prefix operator.
type Unary struct {
	Op string
	X  Expr
}

// Binary applies an infix operator.
type Binary struct {
	Op   string
	A, B Expr
}

// Call applies a named function.
type Call struct {
	Fn   string
	Args []Expr
}

func (*Literal) expr() {}
func (*Name) expr()    {}
func (*Unary) expr()   {}
func (*Binary) expr()  {}
func (*Call) expr()    {}
