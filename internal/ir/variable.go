package ir

import "ircore/internal/ident"

// Variable is a named storage slot belonging to a VariableScope. It is
// not itself a value produced by any instruction; capturing a Variable
// from a scope chain is how closures see their free variables.
type Variable struct {
	valueBase
	scope *VariableScope
	name  ident.Identifier
}

// NewVariable declares a new Variable in scope named name and appends
// it to the scope's variable list.
func NewVariable(scope *VariableScope, name ident.Identifier) *Variable {
	v := &Variable{scope: scope, name: name}
	v.valueBase = newValueBase(v, VariableKind)
	scope.addVariable(v)
	return v
}

func (v *Variable) Scope() *VariableScope { return v.scope }
func (v *Variable) Name() ident.Identifier { return v.name }

// IndexInVariableList returns v's position within its owning scope's
// variable list, i.e. the slot number a closure's environment record
// would use to address it.
func (v *Variable) IndexInVariableList() int {
	for i, x := range v.scope.variables {
		if x == v {
			return i
		}
	}
	panic("ir: variable not found in its own scope's variable list")
}
