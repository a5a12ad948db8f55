package parser

import (
	"leoc/internal/ast"
	"leoc/internal/diag"
	"leoc/internal/token"
)

// parseImport parses one import declaration:
//
//	import foo.*;
//	import foo.bar;
//	import foo.bar as baz;
//	import foo.(bar, baz.qux);
//	import foo.bar.baz;
func (p *Parser) parseImport() (*ast.ImportDecl, error) {
	kw := p.next() // import
	pkg, err := p.parsePackage()
	if err != nil {
		return nil, err
	}
	end, err := p.expect(token.Semicolon)
	if err != nil {
		return nil, err
	}
	return &ast.ImportDecl{
		Package: pkg,
		Span:    kw.Span.Cover(end.Span),
	}, nil
}

// parsePackage parses `name.access`.
func (p *Parser) parsePackage() (*ast.Package, error) {
	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Dot); err != nil {
		return nil, err
	}
	access, err := p.parsePackageAccess()
	if err != nil {
		return nil, err
	}
	return &ast.Package{
		Name:     name.Text,
		NameSpan: name.Span,
		Access:   access,
		Span:     name.Span,
	}, nil
}

// parsePackageAccess parses the part after a dot: a star, a parenthesized
// list, a terminal symbol (with optional alias), or a nested sub-package.
func (p *Parser) parsePackageAccess() (ast.PackageAccess, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.Star:
		p.next()
		return &ast.StarAccess{Span: tok.Span}, nil

	case token.LParen:
		return p.parseAccessList()

	case token.Ident:
		p.next()
		switch p.peek().Kind {
		case token.Dot:
			p.next()
			nested, err := p.parsePackageAccess()
			if err != nil {
				return nil, err
			}
			return &ast.SubPackageAccess{
				Package: &ast.Package{
					Name:     tok.Text,
					NameSpan: tok.Span,
					Access:   nested,
					Span:     tok.Span,
				},
			}, nil
		case token.KwAs:
			p.next()
			alias, err := p.expect(token.Ident)
			if err != nil {
				return nil, err
			}
			return &ast.SymbolAccess{
				Name:  tok.Text,
				Alias: alias.Text,
				Span:  tok.Span.Cover(alias.Span),
			}, nil
		default:
			return &ast.SymbolAccess{Name: tok.Text, Span: tok.Span}, nil
		}

	default:
		return nil, p.errorf(diag.SynUnexpectedToken, tok.Span,
			"expected '*', '(', or identifier after '.', found %q", tok.Text)
	}
}

// parseAccessList parses `(access, access, ...)`.
func (p *Parser) parseAccessList() (ast.PackageAccess, error) {
	open, err := p.expect(token.LParen)
	if err != nil {
		return nil, err
	}

	multiple := &ast.MultipleAccess{Span: open.Span}
	for p.peek().Kind != token.RParen {
		access, err := p.parsePackageAccess()
		if err != nil {
			return nil, err
		}
		multiple.Accesses = append(multiple.Accesses, access)
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
	if len(multiple.Accesses) == 0 {
		return nil, p.errorf(diag.SynEmptyImportList, open.Span.Cover(end.Span),
			"import list cannot be empty")
	}
	multiple.Span = open.Span.Cover(end.Span)
	return multiple, nil
}
