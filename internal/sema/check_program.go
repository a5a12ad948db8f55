package sema

import (
	"errors"
	"fmt"

	"leoc/internal/ast"
	"leoc/internal/diag"
	"leoc/internal/source"
	"leoc/internal/symbols"
)

func (tc *typeChecker) visitFunction(fn *ast.Function) {
	tc.hasReturn = false
	tc.table.Clear()
	tc.parent = fn.Name

	for _, param := range fn.Params {
		tc.checkIdentType(param.Type, param.Span)

		err := tc.table.Insert(param.Name, symbols.VariableSymbol{
			Type: param.Type,
			Span: param.Span,
			Decl: symbols.InputDeclaration(param.Mode),
		})
		if err != nil {
			var dup *symbols.DuplicateError
			builder := diag.ReportError(tc.reporter, diag.TypeDuplicateVariable, param.Span,
				fmt.Sprintf("duplicate variable %q in function %q", param.Name, fn.Name))
			if errors.As(err, &dup) {
				builder.WithNote(dup.Prev, "first declared here")
			}
			builder.Emit()
		}
	}

	tc.visitBlock(fn.Body)

	if !tc.hasReturn {
		diag.ReportError(tc.reporter, diag.TypeFunctionNoReturn, fn.Span,
			fmt.Sprintf("function %q has no return statement", fn.Name)).Emit()
	}
}

func (tc *typeChecker) visitCircuit(circuit *ast.Circuit) {
	// One diagnostic per declaration on the first member-name collision.
	used := make(map[string]struct{}, len(circuit.Members))
	allUnique := true
	for _, member := range circuit.Members {
		if _, seen := used[member.Name]; seen {
			allUnique = false
			break
		}
		used[member.Name] = struct{}{}
	}
	if !allUnique {
		if circuit.IsRecord {
			diag.ReportError(tc.reporter, diag.TypeDuplicateRecordVar, circuit.Span,
				fmt.Sprintf("record %q defines a variable multiple times", circuit.Name)).Emit()
		} else {
			diag.ReportError(tc.reporter, diag.TypeDuplicateCircuitMember, circuit.Span,
				fmt.Sprintf("circuit %q defines a member multiple times", circuit.Name)).Emit()
		}
	}

	// Records must carry owner: address and balance: u64.
	if circuit.IsRecord {
		tc.checkRecordField(circuit, "owner", ast.AddressType())
		tc.checkRecordField(circuit, "balance", ast.U64Type())
	}
}

// checkRecordField enforces the presence and exact (flat) type of one
// mandatory record member. A missing member and a mistyped member are
// distinct diagnostics and mutually exclusive per field.
func (tc *typeChecker) checkRecordField(circuit *ast.Circuit, name string, expected ast.Type) {
	member, ok := circuit.Member(name)
	if !ok {
		diag.ReportError(tc.reporter, diag.TypeRequiredRecordVar, circuit.Span,
			fmt.Sprintf("record %q must declare the variable %q with type %s",
				circuit.Name, name, expected)).Emit()
		return
	}
	if !expected.EqFlat(member.Type) {
		diag.ReportError(tc.reporter, diag.TypeRecordVarWrongType, member.Span,
			fmt.Sprintf("record variable %q must have type %s, found %s",
				name, expected, member.Type)).Emit()
	}
}

// checkIdentType validates a declared type reference: named types must
// refer to a declared circuit. Scalar types are always valid. Analysis is
// not halted by an invalid reference.
func (tc *typeChecker) checkIdentType(t ast.Type, span source.Span) {
	if t.Kind != ast.TypeIdentifier {
		return
	}
	if _, ok := tc.program.Circuit(t.Name); !ok {
		diag.ReportError(tc.reporter, diag.TypeUnknownType, span,
			fmt.Sprintf("type %q is not defined in function %q", t.Name, tc.parent)).Emit()
	}
}
