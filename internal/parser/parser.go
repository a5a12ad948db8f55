package parser

import (
	"fmt"

	"leoc/internal/ast"
	"leoc/internal/diag"
	"leoc/internal/lexer"
	"leoc/internal/source"
	"leoc/internal/token"
)

// Parser turns one source file into an ast.Program. Syntax errors are
// reported through the diag.Reporter and also surface as the returned
// error; the first error stops the parse.
type Parser struct {
	file     *source.File
	lx       *lexer.Lexer
	reporter diag.Reporter
}

// New creates a parser over the given file.
func New(file *source.File, reporter diag.Reporter) *Parser {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	return &Parser{
		file:     file,
		lx:       lexer.New(file),
		reporter: reporter,
	}
}

// Parse parses the whole file. The program name is left empty; callers
// attach the originating file name.
func Parse(file *source.File, reporter diag.Reporter) (*ast.Program, error) {
	return New(file, reporter).ParseFile()
}

// ParseFile parses top-level items until EOF.
func (p *Parser) ParseFile() (*ast.Program, error) {
	program := ast.NewProgram("")
	for {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.EOF:
			return program, nil
		case token.KwImport:
			decl, err := p.parseImport()
			if err != nil {
				return program, err
			}
			program.Imports = append(program.Imports, decl)
		case token.KwCircuit, token.KwRecord:
			circuit, err := p.parseCircuit()
			if err != nil {
				return program, err
			}
			program.Circuits = append(program.Circuits, circuit)
		case token.KwFunction:
			fn, err := p.parseFunction()
			if err != nil {
				return program, err
			}
			program.Functions = append(program.Functions, fn)
		default:
			return program, p.errorf(diag.SynExpectItem, tok.Span,
				"expected import, circuit, record, or function, found %q", tok.Text)
		}
	}
}

func (p *Parser) next() token.Token {
	return p.lx.Next()
}

func (p *Parser) peek() token.Token {
	return p.lx.Peek()
}

// expect consumes the next token and fails unless it has the wanted kind.
func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	tok := p.next()
	if tok.Kind != kind {
		code := diag.SynUnexpectedToken
		switch kind {
		case token.Ident:
			code = diag.SynExpectIdentifier
		case token.Semicolon:
			code = diag.SynExpectSemicolon
		}
		return tok, p.errorf(code, tok.Span, "expected %s, found %q", kind, tok.Text)
	}
	return tok, nil
}

// errorf reports a syntax error and returns it.
func (p *Parser) errorf(code diag.Code, span source.Span, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	diag.ReportError(p.reporter, code, span, msg).Emit()
	return fmt.Errorf("%s: %s", p.file.Path, msg)
}
