package ir

import (
	"math"
	"testing"

	"ircore/internal/ident"
)

func TestLiteralUniquing(t *testing.T) {
	idents := ident.NewContext()
	m := NewModule(idents)

	n1 := m.GetLiteralNumber(3.14)
	n2 := m.GetLiteralNumber(3.14)
	if n1 != n2 {
		t.Errorf("GetLiteralNumber(3.14) returned two different literals")
	}

	nan1 := m.GetLiteralNumber(math.NaN())
	nan2 := m.GetLiteralNumber(math.NaN())
	if nan1 != nan2 {
		t.Errorf("GetLiteralNumber(NaN) returned two different literals")
	}

	otherNaN := math.Float64frombits(math.Float64bits(math.NaN()) ^ 1)
	nan3 := m.GetLiteralNumber(otherNaN)
	if nan3 == nan1 {
		t.Errorf("GetLiteralNumber should keep distinct NaN payloads as distinct literals")
	}

	zero := m.GetLiteralNumber(0.0)
	negZero := m.GetLiteralNumber(math.Copysign(0, -1))
	if zero == negZero {
		t.Errorf("GetLiteralNumber(0.0) and GetLiteralNumber(-0.0) must be distinct literals (bit pattern differs)")
	}

	s1 := m.GetLiteralString(idents.GetIdentifier("hello"))
	s2 := m.GetLiteralString(idents.GetIdentifier("hello"))
	if s1 != s2 {
		t.Errorf("GetLiteralString(\"hello\") returned two different literals")
	}

	bTrue1 := m.GetLiteralBool(true)
	bTrue2 := m.GetLiteralBool(true)
	bFalse := m.GetLiteralBool(false)
	if bTrue1 != bTrue2 {
		t.Errorf("GetLiteralBool(true) returned two different literals")
	}
	if bTrue1 == bFalse {
		t.Errorf("GetLiteralBool(true) and GetLiteralBool(false) should differ")
	}
}

func TestGlobalObjectPropertyDeclaredIsMonotone(t *testing.T) {
	idents := ident.NewContext()
	m := NewModule(idents)

	name := idents.GetIdentifier("x")
	p := m.AddGlobalProperty(name, false)
	if p.Declared() {
		t.Fatalf("property should start undeclared")
	}

	p.MarkDeclared()
	if !p.Declared() {
		t.Fatalf("MarkDeclared should set Declared")
	}

	// Re-adding the same name returns the same property and does not
	// reset Declared.
	p2 := m.AddGlobalProperty(name, false)
	if p2 != p {
		t.Fatalf("AddGlobalProperty should return the existing property")
	}
	if !p2.Declared() {
		t.Fatalf("Declared should remain true")
	}
}

func TestAddGlobalPropertyOrsDeclaredOnRepeat(t *testing.T) {
	idents := ident.NewContext()
	m := NewModule(idents)

	name := idents.GetIdentifier("x")
	p := m.AddGlobalProperty(name, false)
	if p.Declared() {
		t.Fatalf("property should start undeclared")
	}

	p2 := m.AddGlobalProperty(name, true)
	if p2 != p {
		t.Fatalf("AddGlobalProperty should return the existing property")
	}
	if !p.Declared() {
		t.Fatalf("AddGlobalProperty(name, true) on an existing property should OR Declared in")
	}
}

func TestModuleDestroyClearsUseLists(t *testing.T) {
	idents := ident.NewContext()
	m := NewModule(idents)

	f := NewFunction(m, idents.GetIdentifier("f"), DefinitionKindNormal, false, SourceRange{}, nil, nil)
	bb := NewBasicBlock(f)
	slot := NewAllocStackInst(nil)
	bb.PushInstruction(&slot.Instruction)
	load := NewLoadStackInst(slot)
	bb.PushInstruction(&load.Instruction)

	m.Destroy()

	if slot.HasUsers() {
		t.Fatalf("slot should have no users after Destroy")
	}
	if len(m.Functions()) != 0 {
		t.Fatalf("module should have no functions after Destroy")
	}
}

func TestModuleDestroyClearsLiteralAndGlobalPropertyTables(t *testing.T) {
	idents := ident.NewContext()
	m := NewModule(idents)

	m.GetLiteralNumber(3.14)
	m.GetLiteralString(idents.GetIdentifier("hello"))
	m.AddGlobalProperty(idents.GetIdentifier("x"), true)

	m.Destroy()

	if len(m.literalNumbers) != 0 {
		t.Fatalf("literalNumbers should be empty after Destroy, got %d entries", len(m.literalNumbers))
	}
	if len(m.literalStrings) != 0 {
		t.Fatalf("literalStrings should be empty after Destroy, got %d entries", len(m.literalStrings))
	}
	if len(m.GlobalProperties()) != 0 {
		t.Fatalf("GlobalProperties should be empty after Destroy, got %d entries", len(m.GlobalProperties()))
	}
}
