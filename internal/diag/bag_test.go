package diag

import (
	"testing"

	"leoc/internal/source"
)

func TestBagCap(t *testing.T) {
	bag := NewBag(2)
	d := Diagnostic{Severity: SevError, Code: TypeDuplicateVariable}
	if !bag.Add(d) || !bag.Add(d) {
		t.Fatalf("adds under cap must succeed")
	}
	if bag.Add(d) {
		t.Fatalf("add over cap must be dropped")
	}
	if bag.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", bag.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	bag := NewBag(10)
	bag.Add(Diagnostic{Severity: SevWarning})
	if bag.HasErrors() {
		t.Fatalf("warning only must not count as error")
	}
	bag.Add(Diagnostic{Severity: SevError})
	if !bag.HasErrors() {
		t.Fatalf("expected HasErrors after SevError")
	}
}

func TestBagSortStable(t *testing.T) {
	bag := NewBag(10)
	bag.Add(Diagnostic{Severity: SevError, Primary: source.Span{File: 1, Start: 50}})
	bag.Add(Diagnostic{Severity: SevError, Primary: source.Span{File: 0, Start: 10}})
	bag.Add(Diagnostic{Severity: SevWarning, Primary: source.Span{File: 0, Start: 10}})
	bag.Sort()

	items := bag.Items()
	if items[0].Primary.File != 0 || items[0].Severity != SevError {
		t.Fatalf("expected file 0 error first, got %+v", items[0])
	}
	if items[2].Primary.File != 1 {
		t.Fatalf("expected file 1 last, got %+v", items[2])
	}
}

func TestBagReporter(t *testing.T) {
	bag := NewBag(10)
	r := BagReporter{Bag: bag}
	ReportError(r, TypeFunctionNoReturn, source.Span{File: 1, Start: 2, End: 5}, "function 'main' has no return").
		WithNote(source.Span{File: 1}, "declared here").
		Emit()

	if bag.Len() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", bag.Len())
	}
	got := bag.Items()[0]
	if got.Code != TypeFunctionNoReturn || len(got.Notes) != 1 {
		t.Fatalf("unexpected diagnostic %+v", got)
	}
}
