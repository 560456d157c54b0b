// Package irtest provides invariant-checking helpers over *ir.Module,
// built only on ir's exported surface so they can be reused by tests
// in other packages (ircfg, irsnapshot, cmd/ircore) without reaching
// into ir's internals.
package irtest

import (
	"fmt"

	"ircore/internal/ir"
)

// CheckMirrorInvariant walks every instruction in m and verifies that
// each of its non-empty operands lists that instruction as a user.
// This is the externally-observable half of the mirror invariant; the
// stronger slot-index check lives in ir's own internal tests, since
// the operand slot index is not part of ir's public API.
func CheckMirrorInvariant(m *ir.Module) error {
	for _, f := range m.Functions() {
		for _, bb := range f.BasicBlocks() {
			for _, inst := range bb.Instructions() {
				for i := 0; i < inst.NumOperands(); i++ {
					v := inst.GetOperand(i)
					if v == nil {
						continue
					}
					if !v.HasUser(inst) {
						return fmt.Errorf("irtest: operand %d of instruction in %s does not list it as a user", i, f.InternalName())
					}
				}
			}
		}
	}
	return nil
}

// CheckNoDanglingBlocks verifies that every BasicBlock referenced as
// an operand anywhere in m belongs to some function still present in
// m — a cheap sanity check for use after a bulk erase.
func CheckNoDanglingBlocks(m *ir.Module) error {
	live := make(map[*ir.BasicBlock]bool)
	for _, f := range m.Functions() {
		for _, bb := range f.BasicBlocks() {
			live[bb] = true
		}
	}
	for _, f := range m.Functions() {
		for _, bb := range f.BasicBlocks() {
			for _, inst := range bb.Instructions() {
				for i := 0; i < inst.NumOperands(); i++ {
					if target, ok := inst.GetOperand(i).(*ir.BasicBlock); ok {
						if !live[target] {
							return fmt.Errorf("irtest: instruction in %s references a basic block outside the module", f.InternalName())
						}
					}
				}
			}
		}
	}
	return nil
}
