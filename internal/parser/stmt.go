package parser

import (
	"leoc/internal/ast"
	"leoc/internal/token"
)

func (p *Parser) parseBlock() (*ast.Block, error) {
	open, err := p.expect(token.LBrace)
	if err != nil {
		return nil, err
	}
	block := &ast.Block{Span: open.Span}
	for p.peek().Kind != token.RBrace {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, stmt)
	}
	end, err := p.expect(token.RBrace)
	if err != nil {
		return nil, err
	}
	block.Span = open.Span.Cover(end.Span)
	return block, nil
}

func (p *Parser) parseStmt() (ast.Stmt, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.KwReturn:
		return p.parseReturn()
	case token.KwLet, token.KwConst:
		return p.parseLet()
	case token.KwIf:
		return p.parseIf()
	case token.LBrace:
		return p.parseBlock()
	default:
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		end, err := p.expect(token.Semicolon)
		if err != nil {
			return nil, err
		}
		return &ast.ExprStmt{X: expr, Span: expr.ExprSpan().Cover(end.Span)}, nil
	}
}

func (p *Parser) parseReturn() (ast.Stmt, error) {
	kw := p.next() // return
	if p.peek().Kind == token.Semicolon {
		end := p.next()
		return &ast.ReturnStmt{Span: kw.Span.Cover(end.Span)}, nil
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	end, err := p.expect(token.Semicolon)
	if err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Value: value, Span: kw.Span.Cover(end.Span)}, nil
}

func (p *Parser) parseLet() (ast.Stmt, error) {
	kw := p.next() // let | const
	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}

	stmt := &ast.LetStmt{
		Name:  name.Text,
		Const: kw.Kind == token.KwConst,
		Span:  kw.Span,
	}

	if p.peek().Kind == token.Colon {
		p.next()
		letType, _, err := p.parseType()
		if err != nil {
			return nil, err
		}
		stmt.Type = &letType
	}

	if _, err := p.expect(token.Assign); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	end, err := p.expect(token.Semicolon)
	if err != nil {
		return nil, err
	}
	stmt.Value = value
	stmt.Span = kw.Span.Cover(end.Span)
	return stmt, nil
}

func (p *Parser) parseIf() (ast.Stmt, error) {
	kw := p.next() // if
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	stmt := &ast.IfStmt{Cond: cond, Then: then, Span: kw.Span.Cover(then.Span)}
	if p.peek().Kind == token.KwElse {
		p.next()
		var elseStmt ast.Stmt
		if p.peek().Kind == token.KwIf {
			elseStmt, err = p.parseIf()
		} else {
			elseStmt, err = p.parseBlock()
		}
		if err != nil {
			return nil, err
		}
		stmt.Else = elseStmt
		stmt.Span = stmt.Span.Cover(elseStmt.StmtSpan())
	}
	return stmt, nil
}
