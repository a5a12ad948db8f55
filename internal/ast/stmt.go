package ast

import (
	"leoc/internal/source"
)

// Stmt is a statement node.
type Stmt interface {
	isStmt()
	StmtSpan() source.Span
}

// Block is a braced statement sequence.
type Block struct {
	Stmts []Stmt
	Span  source.Span
}

// ReturnStmt is a return statement with an optional value.
type ReturnStmt struct {
	Value Expr // nil for a bare return
	Span  source.Span
}

// IfStmt is a conditional with an optional else branch. Else is either a
// *Block or a chained *IfStmt.
type IfStmt struct {
	Cond Expr
	Then *Block
	Else Stmt // nil when absent
	Span source.Span
}

// LetStmt is a let/const binding.
type LetStmt struct {
	Name  string
	Const bool
	Type  *Type // nil when inferred
	Value Expr
	Span  source.Span
}

// ExprStmt is an expression used in statement position.
type ExprStmt struct {
	X    Expr
	Span source.Span
}

func (*Block) isStmt()      {}
func (*ReturnStmt) isStmt() {}
func (*IfStmt) isStmt()     {}
func (*LetStmt) isStmt()    {}
func (*ExprStmt) isStmt()   {}

func (s *Block) StmtSpan() source.Span      { return s.Span }
func (s *ReturnStmt) StmtSpan() source.Span { return s.Span }
func (s *IfStmt) StmtSpan() source.Span     { return s.Span }
func (s *LetStmt) StmtSpan() source.Span    { return s.Span }
func (s *ExprStmt) StmtSpan() source.Span   { return s.Span }
