package parser

import (
	"leoc/internal/ast"
	"leoc/internal/diag"
	"leoc/internal/token"
)

func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseEquality()
}

func (p *Parser) parseEquality() (ast.Expr, error) {
	lhs, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		if op.Kind != token.EqEq && op.Kind != token.BangEq {
			return lhs, nil
		}
		p.next()
		rhs, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinaryExpr{
			Op: op.Kind, LHS: lhs, RHS: rhs,
			Span: lhs.ExprSpan().Cover(rhs.ExprSpan()),
		}
	}
}

func (p *Parser) parseComparison() (ast.Expr, error) {
	lhs, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		switch op.Kind {
		case token.Lt, token.LtEq, token.Gt, token.GtEq:
		default:
			return lhs, nil
		}
		p.next()
		rhs, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinaryExpr{
			Op: op.Kind, LHS: lhs, RHS: rhs,
			Span: lhs.ExprSpan().Cover(rhs.ExprSpan()),
		}
	}
}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	lhs, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		if op.Kind != token.Plus && op.Kind != token.Minus {
			return lhs, nil
		}
		p.next()
		rhs, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinaryExpr{
			Op: op.Kind, LHS: lhs, RHS: rhs,
			Span: lhs.ExprSpan().Cover(rhs.ExprSpan()),
		}
	}
}

func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		if op.Kind != token.Star && op.Kind != token.Slash {
			return lhs, nil
		}
		p.next()
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinaryExpr{
			Op: op.Kind, LHS: lhs, RHS: rhs,
			Span: lhs.ExprSpan().Cover(rhs.ExprSpan()),
		}
	}
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	op := p.peek()
	if op.Kind == token.Minus || op.Kind == token.Bang {
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: op.Kind, X: x, Span: op.Span.Cover(x.ExprSpan())}, nil
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() (ast.Expr, error) {
	x, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().Kind {
		case token.LParen:
			p.next()
			call := &ast.CallExpr{Callee: x, Span: x.ExprSpan()}
			for p.peek().Kind != token.RParen {
				arg, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				call.Args = append(call.Args, arg)
				if p.peek().Kind == token.Comma {
					p.next()
					continue
				}
				break
			}
			end, err := p.expect(token.RParen)
			if err != nil {
				return nil, err
			}
			call.Span = call.Span.Cover(end.Span)
			x = call

		case token.Dot:
			p.next()
			name, err := p.expect(token.Ident)
			if err != nil {
				return nil, err
			}
			x = &ast.MemberExpr{X: x, Name: name.Text, Span: x.ExprSpan().Cover(name.Span)}

		default:
			return x, nil
		}
	}
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.next()
	switch tok.Kind {
	case token.Ident:
		return &ast.Ident{Name: tok.Text, Span: tok.Span}, nil
	case token.IntLit:
		return &ast.IntLit{Text: tok.Text, Span: tok.Span}, nil
	case token.BoolLit:
		return &ast.BoolLit{Value: tok.Text == "true", Span: tok.Span}, nil
	case token.StringLit:
		return &ast.StringLit{Value: tok.Text, Span: tok.Span}, nil
	case token.AddressLit:
		return &ast.AddressLit{Text: tok.Text, Span: tok.Span}, nil
	case token.LParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, p.errorf(diag.SynUnexpectedToken, tok.Span,
			"expected expression, found %q", tok.Text)
	}
}
