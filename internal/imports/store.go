package imports

import (
	"leoc/internal/ast"
)

// Value is a definition installed into the running definition store.
// It is a sealed sum: a circuit definition or a function definition.
type Value interface {
	isValue()
}

// CircuitDefinition wraps an imported circuit or record declaration.
type CircuitDefinition struct {
	Circuit *ast.Circuit
}

// FunctionDefinition wraps an imported function. Owner is nil: an imported
// function carries no pre-bound call-site context.
type FunctionDefinition struct {
	Owner    *ast.Circuit
	Function *ast.Function
}

func (*CircuitDefinition) isValue()  {}
func (*FunctionDefinition) isValue() {}

// Store is the running definition store of the importing program for one
// compilation unit. It is written only by the import resolver; single
// writer, no locking.
type Store struct {
	defs  map[string]Value
	order []string
}

// NewStore creates an empty definition store.
func NewStore() *Store {
	return &Store{defs: make(map[string]Value)}
}

// Install binds a qualified name to a definition. A later install of the
// same name overwrites the earlier one.
func (s *Store) Install(name string, value Value) {
	if _, ok := s.defs[name]; !ok {
		s.order = append(s.order, name)
	}
	s.defs[name] = value
}

// Get returns the definition installed under name, if any.
func (s *Store) Get(name string) (Value, bool) {
	v, ok := s.defs[name]
	return v, ok
}

// Names returns the installed names in install order.
func (s *Store) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of installed definitions.
func (s *Store) Len() int {
	return len(s.defs)
}

// Merger installs all declarations of a parsed program into the enclosing
// program's definition tables unqualified. Conflict semantics are owned by
// the implementation.
type Merger interface {
	ResolveDefinitions(program *ast.Program) error
}
