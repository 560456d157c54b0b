package ir

import "fmt"

// ValueKind is the closed, totally ordered tag identifying the
// concrete type behind a Value. The kind hierarchy is a single source
// of truth dispatched uniformly across destruction, printing,
// side-effect queries, and operand-kind checking (see dispatch.go).
//
// For every non-leaf class P there are sentinel values First_P and
// Last_P such that a kind k belongs to subclass P iff First_P < k <
// Last_P. First_P is immediately followed by P's own kind, which
// occupies the interior range alongside P's concrete subclasses. This
// layout gives O(1) "is-a" checks by plain integer comparison and is
// verified at package init time (see kind_table.go).
type ValueKind uint16

const (
	// Direct children of Value with no further subclassing.
	BasicBlockKind ValueKind = iota
	FunctionKind
	ParameterKind
	VariableKind
	GlobalObjectPropertyKind
	ModuleKind

	// VariableScope range. VariableScopeKind itself is the kind of a
	// function's own (non-external) scope; ExternalScope is the one
	// concrete subclass.
	FirstVariableScopeKind
	VariableScopeKind
	ExternalScopeKind
	LastVariableScopeKind

	// Literal range. LiteralKind is never directly instantiated — a
	// literal is always one of the concrete subclasses below.
	FirstLiteralKind
	LiteralKind
	LiteralNumberKind
	LiteralStringKind
	LiteralBoolKind
	LastLiteralKind

	// Instruction range. InstructionKind is never directly
	// instantiated. TerminatorInst is itself a non-leaf range nested
	// inside Instruction's range.
	FirstInstructionKind
	InstructionKind
	AllocStackInstKind
	LoadStackInstKind
	StoreStackInstKind
	LoadParamInstKind
	BinaryOperatorInstKind
	UnaryOperatorInstKind
	PhiInstKind
	CallInstKind
	CreateFunctionInstKind

	FirstTerminatorInstKind
	TerminatorInstKind
	BranchInstKind
	CondBranchInstKind
	ReturnInstKind
	ThrowInstKind
	UnreachableInstKind
	LastTerminatorInstKind

	LastInstructionKind
)

// kindNames mirrors getKindStr(): the source-code name of the concrete
// class behind a kind. Populated from kindTable in kind_table.go so
// there is exactly one place that lists every concrete kind.
var kindNames = map[ValueKind]string{}

// String returns the source-code class name for k, or a placeholder
// for an out-of-range or non-instantiable kind.
func (k ValueKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ValueKind(%d)", uint16(k))
}

// IsInstruction reports whether k names a concrete instruction kind.
func (k ValueKind) IsInstruction() bool {
	return k > FirstInstructionKind && k < LastInstructionKind && k != InstructionKind &&
		k != FirstTerminatorInstKind && k != TerminatorInstKind && k != LastTerminatorInstKind
}

// IsTerminatorInst reports whether k names a concrete terminator kind.
func (k ValueKind) IsTerminatorInst() bool {
	return k > FirstTerminatorInstKind && k < LastTerminatorInstKind && k != TerminatorInstKind
}

// IsLiteral reports whether k names a concrete literal kind.
func (k ValueKind) IsLiteral() bool {
	return k > FirstLiteralKind && k < LastLiteralKind && k != LiteralKind
}

// IsVariableScope reports whether k is VariableScopeKind or a concrete
// subclass of it (currently only ExternalScopeKind).
func (k ValueKind) IsVariableScope() bool {
	return k > FirstVariableScopeKind && k < LastVariableScopeKind
}
