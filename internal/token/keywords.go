package token

var keywords = map[string]Kind{
	"function": KwFunction,
	"circuit":  KwCircuit,
	"record":   KwRecord,
	"import":   KwImport,
	"as":       KwAs,
	"let":      KwLet,
	"const":    KwConst,
	"return":   KwReturn,
	"if":       KwIf,
	"else":     KwElse,
	"public":   KwPublic,
	"private":  KwPrivate,
	"constant": KwConstant,
	"true":     BoolLit,
	"false":    BoolLit,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive; only lowercase forms are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
