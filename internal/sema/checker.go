package sema

import (
	"leoc/internal/ast"
	"leoc/internal/diag"
	"leoc/internal/symbols"
)

// Options configure a semantic pass over a program.
type Options struct {
	Reporter diag.Reporter
}

// Check runs the type-checking pass over every circuit and function of an
// already-assembled program. Violations are reported through the reporter;
// the pass always runs to completion.
func Check(program *ast.Program, opts Options) {
	if program == nil {
		return
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = diag.NopReporter{}
	}

	tc := &typeChecker{
		program:  program,
		reporter: reporter,
		table:    symbols.NewVariableTable(),
	}
	for _, circuit := range program.Circuits {
		tc.visitCircuit(circuit)
	}
	for _, fn := range program.Functions {
		tc.visitFunction(fn)
	}
}

// typeChecker holds the per-traversal state of the pass.
type typeChecker struct {
	program  *ast.Program
	reporter diag.Reporter
	table    *symbols.VariableTable

	// Per-function state, reset on every visitFunction.
	hasReturn bool
	parent    string
}
