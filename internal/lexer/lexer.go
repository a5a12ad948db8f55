package lexer

import (
	"strings"

	"leoc/internal/source"
	"leoc/internal/token"
)

// Lexer scans a single source file into tokens.
type Lexer struct {
	file   *source.File
	cursor Cursor
	look   *token.Token // 1-token lookahead buffer
}

// New creates a lexer over the given file.
func New(file *source.File) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
	}
}

// Next returns the next significant token. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off},
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStart(ch):
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// skipTrivia consumes whitespace, line comments, and block comments.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			lx.cursor.Bump()
		case ch == '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' {
				return
			}
			switch b1 {
			case '/':
				for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
					lx.cursor.Bump()
				}
			case '*':
				lx.cursor.Bump()
				lx.cursor.Bump()
				for !lx.cursor.EOF() {
					if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
						lx.cursor.Bump()
						lx.cursor.Bump()
						break
					}
					lx.cursor.Bump()
				}
			default:
				return
			}
		default:
			return
		}
	}
}

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	mark := lx.cursor.Mark()
	for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	span := lx.cursor.SpanFrom(mark)
	text := string(lx.file.Content[span.Start:span.End])

	if kind, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: kind, Span: span, Text: text}
	}
	if isAddressLiteral(text) {
		return token.Token{Kind: token.AddressLit, Span: span, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: span, Text: text}
}

// scanNumber consumes digits plus an optional type suffix (42u64).
func (lx *Lexer) scanNumber() token.Token {
	mark := lx.cursor.Mark()
	for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	span := lx.cursor.SpanFrom(mark)
	return token.Token{
		Kind: token.IntLit,
		Span: span,
		Text: string(lx.file.Content[span.Start:span.End]),
	}
}

func (lx *Lexer) scanString() token.Token {
	mark := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote
	for !lx.cursor.EOF() {
		ch := lx.cursor.Bump()
		if ch == '"' {
			span := lx.cursor.SpanFrom(mark)
			return token.Token{
				Kind: token.StringLit,
				Span: span,
				Text: string(lx.file.Content[span.Start+1 : span.End-1]),
			}
		}
		if ch == '\\' && !lx.cursor.EOF() {
			lx.cursor.Bump()
		}
	}
	span := lx.cursor.SpanFrom(mark)
	return token.Token{Kind: token.Invalid, Span: span, Text: string(lx.file.Content[span.Start:span.End])}
}

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	mark := lx.cursor.Mark()
	ch := lx.cursor.Bump()

	kind := token.Invalid
	switch ch {
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case ',':
		kind = token.Comma
	case ':':
		kind = token.Colon
	case ';':
		kind = token.Semicolon
	case '.':
		kind = token.Dot
	case '*':
		kind = token.Star
	case '+':
		kind = token.Plus
	case '/':
		kind = token.Slash
	case '-':
		kind = token.Minus
		if lx.cursor.Eat('>') {
			kind = token.Arrow
		}
	case '=':
		kind = token.Assign
		if lx.cursor.Eat('=') {
			kind = token.EqEq
		}
	case '!':
		kind = token.Bang
		if lx.cursor.Eat('=') {
			kind = token.BangEq
		}
	case '<':
		kind = token.Lt
		if lx.cursor.Eat('=') {
			kind = token.LtEq
		}
	case '>':
		kind = token.Gt
		if lx.cursor.Eat('=') {
			kind = token.GtEq
		}
	}

	span := lx.cursor.SpanFrom(mark)
	return token.Token{
		Kind: kind,
		Span: span,
		Text: string(lx.file.Content[span.Start:span.End]),
	}
}

func isIdentStart(b byte) bool {
	return b == '_' || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDec(b)
}

func isDec(b byte) bool {
	return '0' <= b && b <= '9'
}

// isAddressLiteral recognizes bech32-style account addresses (aleo1...).
func isAddressLiteral(text string) bool {
	if !strings.HasPrefix(text, "aleo1") || len(text) < 10 {
		return false
	}
	for _, r := range text[5:] {
		if !(('0' <= r && r <= '9') || ('a' <= r && r <= 'z')) {
			return false
		}
	}
	return true
}
