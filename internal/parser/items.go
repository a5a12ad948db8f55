package parser

import (
	"leoc/internal/ast"
	"leoc/internal/diag"
	"leoc/internal/source"
	"leoc/internal/token"
)

// parseCircuit parses a circuit or record declaration:
//
//	circuit Name { member: type, ... }
//	record Name { owner: address, balance: u64, ... }
func (p *Parser) parseCircuit() (*ast.Circuit, error) {
	kw := p.next() // circuit | record
	isRecord := kw.Kind == token.KwRecord

	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}

	circuit := &ast.Circuit{
		Name:     name.Text,
		IsRecord: isRecord,
		Span:     kw.Span.Cover(name.Span),
	}

	for p.peek().Kind != token.RBrace {
		memberName, err := p.expect(token.Ident)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Colon); err != nil {
			return nil, err
		}
		memberType, typeSpan, err := p.parseType()
		if err != nil {
			return nil, err
		}
		circuit.Members = append(circuit.Members, &ast.Member{
			Name: memberName.Text,
			Type: memberType,
			Span: memberName.Span.Cover(typeSpan),
		})
		if p.peek().Kind == token.Comma {
			p.next()
			continue
		}
		break
	}

	end, err := p.expect(token.RBrace)
	if err != nil {
		return nil, err
	}
	circuit.Span = circuit.Span.Cover(end.Span)
	return circuit, nil
}

// parseFunction parses a function declaration:
//
//	function name(mode? param: type, ...) -> type { ... }
func (p *Parser) parseFunction() (*ast.Function, error) {
	kw := p.next() // function
	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}

	fn := &ast.Function{
		Name: name.Text,
		Span: kw.Span.Cover(name.Span),
	}

	for p.peek().Kind != token.RParen {
		param, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		fn.Params = append(fn.Params, param)
		if p.peek().Kind == token.Comma {
			p.next()
			continue
		}
		break
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}

	if p.peek().Kind == token.Arrow {
		p.next()
		ret, _, err := p.parseType()
		if err != nil {
			return nil, err
		}
		fn.Return = &ret
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	fn.Body = body
	fn.Span = fn.Span.Cover(body.Span)
	return fn, nil
}

func (p *Parser) parseParam() (*ast.Param, error) {
	mode := ast.ModePrivate
	tok := p.peek()
	if tok.IsMode() {
		p.next()
		switch tok.Kind {
		case token.KwPublic:
			mode = ast.ModePublic
		case token.KwConstant:
			mode = ast.ModeConstant
		case token.KwPrivate:
			mode = ast.ModePrivate
		}
	}

	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	paramType, typeSpan, err := p.parseType()
	if err != nil {
		return nil, err
	}
	span := name.Span.Cover(typeSpan)
	if tok.IsMode() {
		span = tok.Span.Cover(span)
	}
	return &ast.Param{
		Name: name.Text,
		Mode: mode,
		Type: paramType,
		Span: span,
	}, nil
}

// parseType parses a type reference. Primitive names map to scalar types,
// anything else is a reference to a declared circuit.
func (p *Parser) parseType() (ast.Type, source.Span, error) {
	tok := p.next()
	if tok.Kind != token.Ident {
		return ast.Type{}, tok.Span, p.errorf(diag.SynExpectType, tok.Span,
			"expected type, found %q", tok.Text)
	}
	if scalar, ok := ast.ScalarTypeFromName(tok.Text); ok {
		return scalar, tok.Span, nil
	}
	return ast.IdentifierType(tok.Text), tok.Span, nil
}
