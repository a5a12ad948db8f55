package lexer

import (
	"testing"

	"leoc/internal/source"
	"leoc/internal/token"
)

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.leo", []byte(src))
	lx := New(fs.Get(id))

	var out []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return out
		}
		out = append(out, tok)
	}
}

func TestLexFunctionHeader(t *testing.T) {
	toks := lexAll(t, "function main(public a: u32) -> u32 {")
	want := []token.Kind{
		token.KwFunction, token.Ident, token.LParen, token.KwPublic,
		token.Ident, token.Colon, token.Ident, token.RParen,
		token.Arrow, token.Ident, token.LBrace,
	}
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(toks))
	}
	for i, kind := range want {
		if toks[i].Kind != kind {
			t.Fatalf("token %d: expected %v, got %v (%q)", i, kind, toks[i].Kind, toks[i].Text)
		}
	}
}

func TestLexImportForms(t *testing.T) {
	toks := lexAll(t, "import foo.bar as baz;")
	want := []token.Kind{
		token.KwImport, token.Ident, token.Dot, token.Ident,
		token.KwAs, token.Ident, token.Semicolon,
	}
	for i, kind := range want {
		if toks[i].Kind != kind {
			t.Fatalf("token %d: expected %v, got %v", i, kind, toks[i].Kind)
		}
	}
}

func TestLexIntSuffixAndAddress(t *testing.T) {
	toks := lexAll(t, "42u64 aleo1qnr4dkkvkgfqph0vzc3y6z2eu975wnpz2925ntjccd5cfqxtyu8s7pyjh9")
	if toks[0].Kind != token.IntLit || toks[0].Text != "42u64" {
		t.Fatalf("expected int literal 42u64, got %v %q", toks[0].Kind, toks[0].Text)
	}
	if toks[1].Kind != token.AddressLit {
		t.Fatalf("expected address literal, got %v %q", toks[1].Kind, toks[1].Text)
	}
}

func TestLexSkipsComments(t *testing.T) {
	toks := lexAll(t, "// line\n/* block\n */ circuit")
	if len(toks) != 1 || toks[0].Kind != token.KwCircuit {
		t.Fatalf("expected single circuit keyword, got %v", toks)
	}
}

func TestLexSpans(t *testing.T) {
	toks := lexAll(t, "return 1u8;")
	if toks[0].Span.Start != 0 || toks[0].Span.End != 6 {
		t.Fatalf("return span: got %d-%d", toks[0].Span.Start, toks[0].Span.End)
	}
	if toks[1].Span.Start != 7 || toks[1].Span.End != 10 {
		t.Fatalf("literal span: got %d-%d", toks[1].Span.Start, toks[1].Span.End)
	}
}
