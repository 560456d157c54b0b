package ir

import (
	"math"
	"testing"

	"ircore/internal/ident"
)

func TestGetSideEffectDispatchesPerKind(t *testing.T) {
	call := NewCallInst(nil, nil)
	if se := GetSideEffect(&call.Instruction); !se.MayThrow || !se.MayReadOrWriteMemory {
		t.Errorf("CallInst side effect = %+v, want MayThrow and MayReadOrWriteMemory", se)
	}

	add := NewBinaryOperatorInst(OpAdd, nil, nil)
	if se := GetSideEffect(&add.Instruction); se != (SideEffect{}) {
		t.Errorf("BinaryOperatorInst side effect = %+v, want the zero value", se)
	}
}

func TestGetChangedOperandsDispatchesPerKind(t *testing.T) {
	idents := ident.NewContext()
	m := NewModule(idents)
	f := NewFunction(m, idents.GetIdentifier("f"), DefinitionKindNormal, false, SourceRange{}, nil, nil)
	bb1 := NewBasicBlock(f)
	bb2 := NewBasicBlock(f)

	br := NewBranchInst(bb1)
	if got := GetChangedOperands(&br.Instruction); !got.Has(0) {
		t.Errorf("BranchInst changed operands = %b, want bit 0 set", got)
	}

	phi := NewPhiInst()
	phi.AddEntry(nil, bb1)
	phi.AddEntry(nil, bb2)
	got := GetChangedOperands(&phi.Instruction)
	if !got.Has(0) || !got.Has(2) {
		t.Errorf("PhiInst changed operands = %b, want bits 0 and 2 set", got)
	}
	if got.Has(1) || got.Has(3) {
		t.Errorf("PhiInst changed operands = %b, block slots 1 and 3 must not be set", got)
	}

	ret := NewReturnInst(nil)
	if got := GetChangedOperands(&ret.Instruction); got != 0 {
		t.Errorf("ReturnInst changed operands = %b, want 0", got)
	}
}

func TestDestroyDispatchRemovesLiteralFromUniquingTable(t *testing.T) {
	idents := ident.NewContext()
	m := NewModule(idents)

	lit := m.GetLiteralNumber(2.5)
	destroy(lit)
	if _, ok := m.literalNumbers[math.Float64bits(2.5)]; ok {
		t.Errorf("literal should no longer be in the uniquing table after destroy")
	}

	again := m.GetLiteralNumber(2.5)
	if again == lit {
		t.Errorf("GetLiteralNumber should mint a fresh literal once the old one was destroyed")
	}
}
