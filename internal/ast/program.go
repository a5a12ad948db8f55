package ast

// Program is a named unit of declarations produced by parsing one source
// file. Declaration order is preserved; names are unique per category once
// parsed. A program is transient: after import resolution its declarations
// are folded into the importing program and the value is discarded.
type Program struct {
	Name      string
	Circuits  []*Circuit
	Functions []*Function
	Imports   []*ImportDecl
}

// NewProgram creates an empty program named after its originating file.
func NewProgram(name string) *Program {
	return &Program{Name: name}
}

// Rename sets the program name, used when an imported program is folded
// into the importing scope.
func (p *Program) Rename(name string) *Program {
	p.Name = name
	return p
}

// Circuit returns the circuit declaration with the given name, if present.
func (p *Program) Circuit(name string) (*Circuit, bool) {
	for _, c := range p.Circuits {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Function returns the function declaration with the given name, if present.
func (p *Program) Function(name string) (*Function, bool) {
	for _, f := range p.Functions {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}
