package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwCircuit represents the 'circuit' keyword.
	KwCircuit // circuit
	// KwRecord represents the 'record' keyword.
	KwRecord // record
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwPublic represents the 'public' parameter mode.
	KwPublic // public
	// KwPrivate represents the 'private' parameter mode.
	KwPrivate // private
	// KwConstant represents the 'constant' parameter mode.
	KwConstant // constant

	// IntLit is an integer literal, optionally with a type suffix (42u64).
	IntLit
	// BoolLit is 'true' or 'false'.
	BoolLit
	// StringLit is a double-quoted string literal.
	StringLit
	// AddressLit is an aleo1... address literal.
	AddressLit

	// Punctuation and operators.
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	Comma     // ,
	Colon     // :
	Semicolon // ;
	Dot       // .
	Star      // *
	Assign    // =
	Arrow     // ->
	Plus      // +
	Minus     // -
	Slash     // /
	EqEq      // ==
	Bang      // !
	BangEq    // !=
	Lt        // <
	LtEq      // <=
	Gt        // >
	GtEq      // >=
)

var kindNames = map[Kind]string{
	Invalid:    "invalid",
	EOF:        "eof",
	Ident:      "identifier",
	KwFunction: "function",
	KwCircuit:  "circuit",
	KwRecord:   "record",
	KwImport:   "import",
	KwAs:       "as",
	KwLet:      "let",
	KwConst:    "const",
	KwReturn:   "return",
	KwIf:       "if",
	KwElse:     "else",
	KwPublic:   "public",
	KwPrivate:  "private",
	KwConstant: "constant",
	IntLit:     "integer literal",
	BoolLit:    "boolean literal",
	StringLit:  "string literal",
	AddressLit: "address literal",
	LParen:     "(",
	RParen:     ")",
	LBrace:     "{",
	RBrace:     "}",
	Comma:      ",",
	Colon:      ":",
	Semicolon:  ";",
	Dot:        ".",
	Star:       "*",
	Assign:     "=",
	Arrow:      "->",
	Plus:       "+",
	Minus:      "-",
	Slash:      "/",
	EqEq:       "==",
	Bang:       "!",
	BangEq:     "!=",
	Lt:         "<",
	LtEq:       "<=",
	Gt:         ">",
	GtEq:       ">=",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}
