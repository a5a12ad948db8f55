package sema

import (
	"leoc/internal/ast"
)

// visitBlock walks a statement tree and flips hasReturn when a return
// statement is found at any nesting depth.
func (tc *typeChecker) visitBlock(block *ast.Block) {
	if block == nil {
		return
	}
	for _, stmt := range block.Stmts {
		tc.visitStmt(stmt)
	}
}

func (tc *typeChecker) visitStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ReturnStmt:
		tc.hasReturn = true
	case *ast.Block:
		tc.visitBlock(s)
	case *ast.IfStmt:
		tc.visitBlock(s.Then)
		if s.Else != nil {
			tc.visitStmt(s.Else)
		}
	case *ast.LetStmt, *ast.ExprStmt:
		// No returns can hide inside binding or expression statements.
	}
}
