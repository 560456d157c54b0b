package irtest

import (
	"testing"

	"ircore/internal/ident"
	"ircore/internal/ir"
)

func TestCheckMirrorInvariantOnHealthyModule(t *testing.T) {
	idents := ident.NewContext()
	m := ir.NewModule(idents)
	f := ir.NewFunction(m, idents.GetIdentifier("f"), ir.DefinitionKindNormal, false, ir.SourceRange{}, nil, nil)
	bb := ir.NewBasicBlock(f)

	slot := ir.NewAllocStackInst(nil)
	bb.PushInstruction(&slot.Instruction)
	load := ir.NewLoadStackInst(slot)
	bb.PushInstruction(&load.Instruction)
	ret := ir.NewReturnInst(load)
	bb.PushInstruction(&ret.Instruction)

	if err := CheckMirrorInvariant(m); err != nil {
		t.Fatalf("CheckMirrorInvariant: %v", err)
	}
	if err := CheckNoDanglingBlocks(m); err != nil {
		t.Fatalf("CheckNoDanglingBlocks: %v", err)
	}
}
