package symbols

import (
	"errors"
	"testing"

	"leoc/internal/ast"
	"leoc/internal/source"
)

func TestInsertAndLookup(t *testing.T) {
	table := NewVariableTable()
	sym := VariableSymbol{
		Type: ast.IntegerType(ast.IntU32),
		Span: source.Span{File: 1, Start: 10, End: 11},
		Decl: InputDeclaration(ast.ModePublic),
	}
	if err := table.Insert("a", sym); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, ok := table.Lookup("a")
	if !ok {
		t.Fatalf("lookup failed")
	}
	if !got.Type.EqFlat(ast.IntegerType(ast.IntU32)) || got.Decl.Mode != ast.ModePublic {
		t.Fatalf("unexpected symbol %+v", got)
	}
}

func TestInsertDuplicateKeepsFirst(t *testing.T) {
	table := NewVariableTable()
	first := VariableSymbol{Type: ast.BoolType(), Span: source.Span{Start: 1, End: 2}}
	second := VariableSymbol{Type: ast.FieldType(), Span: source.Span{Start: 5, End: 6}}

	if err := table.Insert("x", first); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	err := table.Insert("x", second)
	if err == nil {
		t.Fatalf("expected duplicate error")
	}

	var dup *DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("expected *DuplicateError, got %T", err)
	}
	if dup.Name != "x" || dup.Prev.Start != 1 || dup.Span.Start != 5 {
		t.Fatalf("unexpected duplicate error %+v", dup)
	}

	got, _ := table.Lookup("x")
	if !got.Type.EqFlat(ast.BoolType()) {
		t.Fatalf("first binding must win, got %s", got.Type)
	}
}

func TestClear(t *testing.T) {
	table := NewVariableTable()
	_ = table.Insert("a", VariableSymbol{})
	_ = table.Insert("b", VariableSymbol{})
	table.Clear()
	if table.Len() != 0 {
		t.Fatalf("expected empty table after clear, got %d", table.Len())
	}
	if err := table.Insert("a", VariableSymbol{}); err != nil {
		t.Fatalf("insert after clear: %v", err)
	}
}
