package irsnapshot

import (
	"testing"

	"ircore/internal/ident"
	"ircore/internal/ir"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	idents := ident.NewContext()
	m := ir.NewModule(idents)
	f := ir.NewFunction(m, idents.GetIdentifier("f"), ir.DefinitionKindNormal, false, ir.SourceRange{}, nil, nil)
	bb := ir.NewBasicBlock(f)
	ret := ir.NewReturnInst(nil)
	bb.PushInstruction(&ret.Instruction)

	data, err := Encode(m)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(decoded.Functions) != 1 {
		t.Fatalf("got %d functions, want 1", len(decoded.Functions))
	}
	if decoded.Functions[0].InternalName != "f" {
		t.Fatalf("got internal name %q, want %q", decoded.Functions[0].InternalName, "f")
	}
	if len(decoded.Functions[0].Blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(decoded.Functions[0].Blocks))
	}
}
