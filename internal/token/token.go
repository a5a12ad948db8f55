package token

import (
	"leoc/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric, boolean, string, or
// address literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, BoolLit, StringLit, AddressLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwFunction, KwCircuit, KwRecord, KwImport, KwAs, KwLet, KwConst,
		KwReturn, KwIf, KwElse, KwPublic, KwPrivate, KwConstant:
		return true
	default:
		return false
	}
}

// IsMode reports whether the token is a parameter mode keyword.
func (t Token) IsMode() bool {
	switch t.Kind {
	case KwPublic, KwPrivate, KwConstant:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
