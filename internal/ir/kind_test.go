package ir

import "testing"

func TestKindRangeChecks(t *testing.T) {
	cases := []struct {
		k    ValueKind
		inst bool
		term bool
		lit  bool
		vscope bool
	}{
		{AllocStackInstKind, true, false, false, false},
		{BranchInstKind, true, true, false, false},
		{InstructionKind, false, false, false, false},
		{TerminatorInstKind, false, false, false, false},
		{LiteralNumberKind, false, false, true, false},
		{LiteralKind, false, false, false, false},
		{VariableScopeKind, false, false, false, true},
		{ExternalScopeKind, false, false, false, true},
		{FunctionKind, false, false, false, false},
	}
	for _, c := range cases {
		if got := c.k.IsInstruction(); got != c.inst {
			t.Errorf("%s.IsInstruction() = %v, want %v", c.k, got, c.inst)
		}
		if got := c.k.IsTerminatorInst(); got != c.term {
			t.Errorf("%s.IsTerminatorInst() = %v, want %v", c.k, got, c.term)
		}
		if got := c.k.IsLiteral(); got != c.lit {
			t.Errorf("%s.IsLiteral() = %v, want %v", c.k, got, c.lit)
		}
		if got := c.k.IsVariableScope(); got != c.vscope {
			t.Errorf("%s.IsVariableScope() = %v, want %v", c.k, got, c.vscope)
		}
	}
}

func TestKindTableHasNoGaps(t *testing.T) {
	for _, d := range kindTable {
		if kindNames[d.Class] == "" {
			t.Errorf("kind %d has no name in kindNames", d.Class)
		}
	}
}
