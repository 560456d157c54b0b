package ir

import "fmt"

// NoParentKind marks a kind table entry for a class whose only parent
// is the abstract root Value — there is no First_/Last_ range to
// verify for such a class.
const NoParentKind ValueKind = ^ValueKind(0)

// classDecl is one row of the declarative (Class, Parent) table this
// package ports from Hermes's ValueKinds.def. Every concrete kind gets
// exactly one row; parentRanges below supplies the First_/Last_ bounds
// for any row whose Parent is itself a non-leaf class.
type classDecl struct {
	Class  ValueKind
	Parent ValueKind
	Name   string
}

// parentBounds gives the First_/Last_ sentinel pair for a self-kind
// that names a non-leaf class, e.g. InstructionKind -> {FirstInstructionKind, LastInstructionKind}.
type parentBounds struct {
	First ValueKind
	Last  ValueKind
}

var parentRanges = map[ValueKind]parentBounds{
	VariableScopeKind:  {FirstVariableScopeKind, LastVariableScopeKind},
	LiteralKind:        {FirstLiteralKind, LastLiteralKind},
	InstructionKind:    {FirstInstructionKind, LastInstructionKind},
	TerminatorInstKind: {FirstTerminatorInstKind, LastTerminatorInstKind},
}

// kindTable is the single source of truth for every concrete
// ValueKind in the program: its class name (ValueKind.String, the
// getKindStr counterpart) and its declared parent (for the range check
// below). Add a row here when adding a new kind. The per-kind behavior
// in dispatch.go does not read this table; it dispatches through
// optional interfaces implemented by the concrete types.
var kindTable = []classDecl{
	{BasicBlockKind, NoParentKind, "BasicBlock"},
	{FunctionKind, NoParentKind, "Function"},
	{ParameterKind, NoParentKind, "Parameter"},
	{VariableKind, NoParentKind, "Variable"},
	{GlobalObjectPropertyKind, NoParentKind, "GlobalObjectProperty"},
	{ModuleKind, NoParentKind, "Module"},

	{VariableScopeKind, NoParentKind, "VariableScope"},
	{ExternalScopeKind, VariableScopeKind, "ExternalScope"},

	{LiteralKind, NoParentKind, "Literal"},
	{LiteralNumberKind, LiteralKind, "LiteralNumber"},
	{LiteralStringKind, LiteralKind, "LiteralString"},
	{LiteralBoolKind, LiteralKind, "LiteralBool"},

	{InstructionKind, NoParentKind, "Instruction"},
	{AllocStackInstKind, InstructionKind, "AllocStackInst"},
	{LoadStackInstKind, InstructionKind, "LoadStackInst"},
	{StoreStackInstKind, InstructionKind, "StoreStackInst"},
	{LoadParamInstKind, InstructionKind, "LoadParamInst"},
	{BinaryOperatorInstKind, InstructionKind, "BinaryOperatorInst"},
	{UnaryOperatorInstKind, InstructionKind, "UnaryOperatorInst"},
	{PhiInstKind, InstructionKind, "PhiInst"},
	{CallInstKind, InstructionKind, "CallInst"},
	{CreateFunctionInstKind, InstructionKind, "CreateFunctionInst"},

	{TerminatorInstKind, InstructionKind, "TerminatorInst"},
	{BranchInstKind, TerminatorInstKind, "BranchInst"},
	{CondBranchInstKind, TerminatorInstKind, "CondBranchInst"},
	{ReturnInstKind, TerminatorInstKind, "ReturnInst"},
	{ThrowInstKind, TerminatorInstKind, "ThrowInst"},
	{UnreachableInstKind, TerminatorInstKind, "UnreachableInst"},
}

func init() {
	for _, d := range kindTable {
		kindNames[d.Class] = d.Name
	}
	verifyKindHierarchy()
}

// verifyKindHierarchy checks P5: for every (Class, Parent) declaration
// with a non-leaf Parent, First_Parent < Class < Last_Parent, and
// Parent == First_Parent + 1. A violation here is a programmer error —
// someone edited kind.go's const block without updating kind_table.go,
// or vice versa — and must fail at first load, per spec.md's error
// handling design.
func verifyKindHierarchy() {
	for _, d := range kindTable {
		if d.Parent == NoParentKind {
			continue
		}
		bounds, ok := parentRanges[d.Parent]
		if !ok {
			panic(fmt.Sprintf("ir: %s declares parent %s which has no First_/Last_ range", d.Name, d.Parent))
		}
		if bounds.First+1 != d.Parent {
			panic(fmt.Sprintf("ir: %s should be right after First_%s", d.Parent, d.Parent))
		}
		if !(bounds.First < d.Class && d.Class < bounds.Last) {
			panic(fmt.Sprintf("ir: %s (%d) should be between First_%s (%d) and Last_%s (%d)",
				d.Name, d.Class, d.Parent, bounds.First, d.Parent, bounds.Last))
		}
	}
}
