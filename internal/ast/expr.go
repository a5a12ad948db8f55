package ast

import (
	"leoc/internal/source"
	"leoc/internal/token"
)

// Expr is an expression node.
type Expr interface {
	isExpr()
	ExprSpan() source.Span
}

// Ident is a bare identifier reference.
type Ident struct {
	Name string
	Span source.Span
}

// IntLit is an integer literal; Text keeps the source spelling including
// any type suffix (42u64).
type IntLit struct {
	Text string
	Span source.Span
}

// BoolLit is a boolean literal.
type BoolLit struct {
	Value bool
	Span  source.Span
}

// StringLit is a string literal without the surrounding quotes.
type StringLit struct {
	Value string
	Span  source.Span
}

// AddressLit is an aleo1... address literal.
type AddressLit struct {
	Text string
	Span source.Span
}

// UnaryExpr is a prefix operator application.
type UnaryExpr struct {
	Op   token.Kind
	X    Expr
	Span source.Span
}

// BinaryExpr is an infix operator application.
type BinaryExpr struct {
	Op   token.Kind
	LHS  Expr
	RHS  Expr
	Span source.Span
}

// CallExpr is a call of a named function or circuit constructor.
type CallExpr struct {
	Callee Expr
	Args   []Expr
	Span   source.Span
}

// MemberExpr selects a member of a circuit value.
type MemberExpr struct {
	X    Expr
	Name string
	Span source.Span
}

func (*Ident) isExpr()      {}
func (*IntLit) isExpr()     {}
func (*BoolLit) isExpr()    {}
func (*StringLit) isExpr()  {}
func (*AddressLit) isExpr() {}
func (*UnaryExpr) isExpr()  {}
func (*BinaryExpr) isExpr() {}
func (*CallExpr) isExpr()   {}
func (*MemberExpr) isExpr() {}

func (e *Ident) ExprSpan() source.Span      { return e.Span }
func (e *IntLit) ExprSpan() source.Span     { return e.Span }
func (e *BoolLit) ExprSpan() source.Span    { return e.Span }
func (e *StringLit) ExprSpan() source.Span  { return e.Span }
func (e *AddressLit) ExprSpan() source.Span { return e.Span }
func (e *UnaryExpr) ExprSpan() source.Span  { return e.Span }
func (e *BinaryExpr) ExprSpan() source.Span { return e.Span }
func (e *CallExpr) ExprSpan() source.Span   { return e.Span }
func (e *MemberExpr) ExprSpan() source.Span { return e.Span }
