package ir

import (
	"fmt"
	"io"
)

// DumpFunction writes a minimal textual rendering of f to w: one line
// per BasicBlock label, one line per Instruction showing its kind and
// operand labels. This exists for debugging and the CLI's dump
// subcommand, not as a round-trippable format.
func DumpFunction(w io.Writer, f *Function) {
	fmt.Fprintf(w, "function %s\n", f.InternalName())
	for _, bb := range f.basicBlocks {
		fmt.Fprintf(w, "%s:\n", bb.DumpLabel())
		for _, inst := range bb.instructions {
			fmt.Fprintf(w, "  %s\n", dumpInstruction(inst))
		}
	}
}

func dumpInstruction(inst *Instruction) string {
	s := inst.kind.String()
	for i := range inst.operands {
		s += " " + dumpOperandLabel(inst.GetOperand(i))
	}
	return s
}

func dumpOperandLabel(v Value) string {
	if v == nil {
		return "<empty>"
	}
	switch op := v.(type) {
	case *BasicBlock:
		return op.DumpLabel()
	case *LiteralNumber:
		return fmt.Sprintf("%v", op.Value)
	case *LiteralString:
		return fmt.Sprintf("%q", op.Value.Str())
	case *LiteralBool:
		return fmt.Sprintf("%v", op.Value)
	case *Parameter:
		return "%" + op.Name().Str()
	case *Function:
		return "@" + op.InternalName()
	default:
		return v.Kind().String()
	}
}
