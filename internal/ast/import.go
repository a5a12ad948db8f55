package ast

import (
	"leoc/internal/source"
)

// ImportDecl is a top-level import declaration.
type ImportDecl struct {
	Package *Package
	Span    source.Span
}

// Package names a filesystem-located unit of source together with the
// access specification applied to it.
type Package struct {
	Name     string
	NameSpan source.Span
	Access   PackageAccess
	Span     source.Span
}

// PackageAccess is the specification of what an import brings into scope.
// It is a sealed sum: Star, Symbol, SubPackage, or Multiple.
type PackageAccess interface {
	isPackageAccess()
}

// StarAccess imports every declaration of the package (import foo.*).
type StarAccess struct {
	Span source.Span
}

// SymbolAccess imports a single named circuit or function, optionally
// rebinding it under an alias (import foo.bar as baz).
type SymbolAccess struct {
	Name  string
	Alias string // "" when no alias was written
	Span  source.Span
}

// SubPackageAccess descends into a nested package (import foo.bar.baz).
type SubPackageAccess struct {
	Package *Package
}

// MultipleAccess applies several access specifications under one importing
// scope (import foo.(bar, baz)).
type MultipleAccess struct {
	Accesses []PackageAccess
	Span     source.Span
}

func (*StarAccess) isPackageAccess()       {}
func (*SymbolAccess) isPackageAccess()     {}
func (*SubPackageAccess) isPackageAccess() {}
func (*MultipleAccess) isPackageAccess()   {}

// EffectiveName returns the local name the symbol is installed under:
// the alias when present, otherwise the symbol's own name.
func (a *SymbolAccess) EffectiveName() string {
	if a.Alias != "" {
		return a.Alias
	}
	return a.Name
}
