package symbols

import (
	"leoc/internal/ast"
	"leoc/internal/source"
)

// DeclKind distinguishes how a variable came into scope.
type DeclKind uint8

const (
	// DeclInput is a function parameter binding.
	DeclInput DeclKind = iota
)

func (k DeclKind) String() string {
	switch k {
	case DeclInput:
		return "input"
	default:
		return "unknown"
	}
}

// Declaration carries the declaration kind plus kind-specific payload.
// For DeclInput the payload is the parameter's mode.
type Declaration struct {
	Kind DeclKind
	Mode ast.ParamMode
}

// InputDeclaration builds the declaration record for a function input.
func InputDeclaration(mode ast.ParamMode) Declaration {
	return Declaration{Kind: DeclInput, Mode: mode}
}

// VariableSymbol is a scoped variable binding: its declared type, where it
// was declared, and how.
type VariableSymbol struct {
	Type ast.Type
	Span source.Span
	Decl Declaration
}
