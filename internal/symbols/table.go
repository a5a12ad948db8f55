package symbols

import (
	"fmt"

	"leoc/internal/source"
)

// DuplicateError reports a failed insert of an already-bound name.
// The table keeps the earlier binding.
type DuplicateError struct {
	Name string
	Span source.Span // span of the rejected binding
	Prev source.Span // span of the binding already in the table
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate variable %q", e.Name)
}

// VariableTable holds the variable bindings of the function currently
// being checked. It is cleared and rebuilt at the start of each function
// visit; nested block scoping is not modeled at this layer.
type VariableTable struct {
	vars map[string]VariableSymbol
}

// NewVariableTable creates an empty table.
func NewVariableTable() *VariableTable {
	return &VariableTable{vars: make(map[string]VariableSymbol)}
}

// Insert binds name to sym. If the name is already bound the existing
// entry is retained and a *DuplicateError is returned.
func (t *VariableTable) Insert(name string, sym VariableSymbol) error {
	if prev, ok := t.vars[name]; ok {
		return &DuplicateError{Name: name, Span: sym.Span, Prev: prev.Span}
	}
	t.vars[name] = sym
	return nil
}

// Lookup returns the binding for name, if present.
func (t *VariableTable) Lookup(name string) (VariableSymbol, bool) {
	sym, ok := t.vars[name]
	return sym, ok
}

// Len returns the number of bindings.
func (t *VariableTable) Len() int {
	return len(t.vars)
}

// Clear removes every binding.
func (t *VariableTable) Clear() {
	clear(t.vars)
}
