package ir

import "fmt"

// operandValidator is implemented by concrete instruction kinds that
// restrict what a given operand slot may hold (e.g. a branch's target
// operands must be BasicBlocks). Kinds that don't implement it accept
// anything in any slot.
type operandValidator interface {
	canSetOperandImpl(idx int, v Value) bool
}

func canSetOperand(inst *Instruction, idx int, v Value) bool {
	if inst.self == nil {
		return true
	}
	if ov, ok := inst.self.(operandValidator); ok {
		return ov.canSetOperandImpl(idx, v)
	}
	return true
}

// NumOperands returns the number of operand slots on inst, including
// any that are currently empty (nil).
func (inst *Instruction) NumOperands() int { return len(inst.operands) }

// GetOperand returns the value in slot idx, or nil if the slot is
// empty.
func (inst *Instruction) GetOperand(idx int) Value {
	return inst.operands[idx].Target
}

// PushOperand appends a new empty operand slot and then installs v
// into it via SetOperand, so a pushed operand is validated by the
// concrete kind's canSetOperandImpl exactly like any other operand
// write. This is the only way an instruction grows its operand
// vector; slots are only removed by RemoveOperand or EraseOperand
// (which Value.RemoveAllUses calls), so operand indices assigned at
// construction remain stable for the instruction's lifetime unless one
// of those removes a slot.
// Exported so an out-of-package pass (e.g. an optimizer) can build
// instructions directly against the operand protocol, not just
// through the New*Inst constructors.
func (inst *Instruction) PushOperand(v Value) {
	inst.operands = append(inst.operands, Use{})
	inst.SetOperand(len(inst.operands)-1, v)
}

// SetOperand replaces the value in slot idx, honoring the concrete
// kind's canSetOperandImpl if it has one. If v is already the operand
// in slot idx, this is a no-op — no use-list churn, matching the
// idempotence called out by the operand protocol. Panics if the kind
// rejects v in this slot — that is a programmer error, not a runtime
// condition callers are expected to recover from.
func (inst *Instruction) SetOperand(idx int, v Value) {
	old := inst.operands[idx]
	if old.Target == v {
		return
	}
	if !canSetOperand(inst, idx, v) {
		panic(fmt.Sprintf("ir: %s rejected value of kind %v at operand %d", inst.kind, v, idx))
	}
	if old.Target != nil {
		old.Target.removeUse(old)
	}
	if v == nil {
		inst.operands[idx] = Use{}
		return
	}
	inst.operands[idx] = v.addUser(inst)
}

// RemoveOperand unregisters whatever use occupies slot idx, then
// deletes that slot from the operand vector entirely — every later
// operand shifts down by one index. A caller that wants to blank a
// slot without changing the instruction's arity should call
// SetOperand(idx, nil) instead.
func (inst *Instruction) RemoveOperand(idx int) {
	inst.SetOperand(idx, nil)
	inst.operands = append(inst.operands[:idx], inst.operands[idx+1:]...)
}

// clearOperandsInPlace unlinks every operand without touching the
// length of the operand vector. Used only while tearing an
// instruction down entirely (BasicBlock.EraseFromParent,
// Module.Destroy), where slot positions no longer matter and
// shrinking the vector while ranging over it by index would skip
// slots.
func (inst *Instruction) clearOperandsInPlace() {
	for i, op := range inst.operands {
		if op.Target != nil {
			op.Target.removeUse(op)
		}
		inst.operands[i] = Use{}
	}
}

// ReplaceFirstOperandWith finds the first slot pointing at oldVal and
// repoints it at newVal (nil to leave the slot empty). Called by
// Value.ReplaceAllUsesWith once per user per iteration; each call is
// guaranteed to shrink oldVal's use count by exactly one, since the
// slot no longer refers to it afterward.
func (inst *Instruction) ReplaceFirstOperandWith(oldVal, newVal Value) {
	for i, op := range inst.operands {
		if op.Target == oldVal {
			if newVal != nil && !canSetOperand(inst, i, newVal) {
				panic(fmt.Sprintf("ir: %s rejected value of kind %v at operand %d", inst.kind, newVal.Kind(), i))
			}
			oldVal.removeUse(op)
			if newVal == nil {
				inst.operands[i] = Use{}
			} else {
				inst.operands[i] = newVal.addUser(inst)
			}
			return
		}
	}
	panic("ir: ReplaceFirstOperandWith: value is not an operand of this instruction")
}

// EraseOperand unlinks every slot pointing at val — not just the
// first — and compacts them out of the operand vector in one call, a
// two-pass unlink-then-compact so the mirror invariant holds after
// each individual slot is dropped. A no-op if val does not occupy any
// slot. Called once per popped user by Value.RemoveAllUses, which
// relies on every occurrence of val in that user being cleared in a
// single call.
func (inst *Instruction) EraseOperand(val Value) {
	write := 0
	for _, op := range inst.operands {
		if op.Target == val {
			val.removeUse(op)
			continue
		}
		inst.operands[write] = op
		write++
	}
	inst.operands = inst.operands[:write]
}
