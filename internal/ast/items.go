package ast

import (
	"leoc/internal/source"
)

// ParamMode describes how a function input is supplied to the circuit.
type ParamMode uint8

const (
	// ModePrivate is the default witness input mode.
	ModePrivate ParamMode = iota
	// ModePublic marks an input visible on the public statement.
	ModePublic
	// ModeConstant marks an input baked into the circuit at build time.
	ModeConstant
)

func (m ParamMode) String() string {
	switch m {
	case ModePublic:
		return "public"
	case ModeConstant:
		return "constant"
	default:
		return "private"
	}
}

// Param is a single function parameter: identifier, mode, and declared type.
type Param struct {
	Name string
	Mode ParamMode
	Type Type
	Span source.Span
}

// Function is a function declaration.
type Function struct {
	Name   string
	Params []*Param
	Return *Type // nil when the function declares no return type
	Body   *Block
	Span   source.Span
}

// Member is a named, typed member of a circuit or record declaration.
type Member struct {
	Name string
	Type Type
	Span source.Span
}

// Circuit is an aggregate type declaration. IsRecord marks declarations
// that represent on-chain state and must carry owner/balance members.
type Circuit struct {
	Name     string
	Members  []*Member
	IsRecord bool
	Span     source.Span
}

// Member returns the member with the given name, if present.
func (c *Circuit) Member(name string) (*Member, bool) {
	for _, m := range c.Members {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}
