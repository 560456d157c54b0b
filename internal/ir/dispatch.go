package ir

import "math"

// SideEffect summarizes what an instruction might do beyond producing
// its result, for optimizations that need to know whether it is safe
// to reorder or delete.
type SideEffect struct {
	MayExecute bool // unreachable: once reached, control can only exit the function abnormally
	MayThrow   bool
	MayReadOrWriteMemory bool
}

// sideEffector is implemented by instruction kinds whose side effects
// are not the all-false default.
type sideEffector interface {
	sideEffect() SideEffect
}

// GetSideEffect returns inst's side-effect summary, consulting the
// concrete kind's override if present and otherwise assuming it has
// none.
func GetSideEffect(inst *Instruction) SideEffect {
	if se, ok := inst.self.(sideEffector); ok {
		return se.sideEffect()
	}
	return SideEffect{}
}

func (i *CallInst) sideEffect() SideEffect {
	return SideEffect{MayThrow: true, MayReadOrWriteMemory: true}
}

func (i *ThrowInst) sideEffect() SideEffect { return SideEffect{MayThrow: true} }

func (i *StoreStackInst) sideEffect() SideEffect { return SideEffect{MayReadOrWriteMemory: true} }

func (i *LoadStackInst) sideEffect() SideEffect { return SideEffect{MayReadOrWriteMemory: true} }

func (i *UnreachableInst) sideEffect() SideEffect { return SideEffect{MayExecute: true} }

// ChangedOperands is a bitset over operand indices (capped to the
// width of a uint32, per-instance operand counts beyond that are not
// representable) naming which operand slots a pass is expected to
// rewrite in place via SetOperand — as opposed to structural operands
// fixed once at construction and never touched again except by whole-
// value RAUW.
type ChangedOperands uint32

// Has reports whether idx is in the set. Indices at or beyond the
// bitset's width are never members.
func (c ChangedOperands) Has(idx int) bool {
	return idx >= 0 && idx < 32 && c&(1<<uint(idx)) != 0
}

// changedOperander is implemented by instruction kinds whose changed-
// operand set is not the all-zero default.
type changedOperander interface {
	changedOperands() ChangedOperands
}

// GetChangedOperands returns inst's changed-operand bitset, consulting
// the concrete kind's override if present and otherwise assuming none
// of its operands are ever rewritten after construction.
func GetChangedOperands(inst *Instruction) ChangedOperands {
	if c, ok := inst.self.(changedOperander); ok {
		return c.changedOperands()
	}
	return 0
}

// BranchInst's single target is redirected in place by CFG
// simplification (e.g. jump threading), never replaced by constructing
// a new BranchInst.
func (i *BranchInst) changedOperands() ChangedOperands { return 1 << 0 }

// CondBranchInst's two targets are redirected in place the same way;
// the condition operand is rewritten by ordinary RAUW instead.
func (i *CondBranchInst) changedOperands() ChangedOperands { return 1<<1 | 1<<2 }

// PhiInst's incoming values are rewritten in place as SSA construction
// and mem2reg converge; the block operands that identify each
// predecessor are structural and never rewritten once added.
func (i *PhiInst) changedOperands() ChangedOperands {
	var c ChangedOperands
	for k := 0; k < i.NumEntries() && 2*k < 32; k++ {
		c |= 1 << uint(2*k)
	}
	return c
}

// CallInst's arguments are rewritten in place by specialization and
// constant propagation; the callee operand is rewritten by ordinary
// RAUW instead.
func (i *CallInst) changedOperands() ChangedOperands {
	var c ChangedOperands
	for k := 1; k < i.NumOperands() && k < 32; k++ {
		c |= 1 << uint(k)
	}
	return c
}

// destroyer is implemented by kinds that hold a back-reference into
// some table owned by their parent which must be cleared as part of
// destruction — a literal leaving its uniquing table, a global
// property leaving the module's property map. Kinds with no such
// table don't implement it and destroy is a no-op beyond the generic
// use-list teardown RemoveAllUses already performs.
type destroyer interface {
	destroy()
}

// destroy dispatches on v's kind to release any kind-specific state.
// There is no destructor method on the Value interface itself —
// dispatch happens here, the same way canSetOperand/getSideEffect do.
func destroy(v Value) {
	if d, ok := v.(destroyer); ok {
		d.destroy()
	}
}

func (l *LiteralNumber) destroy() {
	delete(l.parent.literalNumbers, math.Float64bits(l.Value))
}
func (l *LiteralString) destroy() { delete(l.parent.literalStrings, l.Value) }

func (p *GlobalObjectProperty) destroy() {
	delete(p.parent.globalProps, p.name.Value)
	for i, x := range p.parent.globalPropList {
		if x == p {
			p.parent.globalPropList = append(p.parent.globalPropList[:i], p.parent.globalPropList[i+1:]...)
			break
		}
	}
}

// CloneInstruction builds a fresh copy of inst with the same kind and
// operands, not yet inserted into any BasicBlock and with an empty
// use-list of its own. Operands are shared with the original — cloning
// does not deep-copy the values an instruction reads, only the
// instruction's own identity and wiring into those values' use-lists.
func CloneInstruction(inst *Instruction) *Instruction {
	clone := inst.self.(cloner).cloneImpl()
	return clone
}

type cloner interface {
	cloneImpl() *Instruction
}

func cloneOperandsInto(dst *Instruction, src *Instruction) {
	for _, op := range src.operands {
		dst.PushOperand(op.Target)
	}
}

func (i *AllocStackInst) cloneImpl() *Instruction {
	c := &AllocStackInst{}
	c.Instruction = newInstructionBase(c, AllocStackInstKind)
	cloneOperandsInto(&c.Instruction, &i.Instruction)
	c.typ = i.typ
	return &c.Instruction
}

func (i *LoadStackInst) cloneImpl() *Instruction {
	c := &LoadStackInst{}
	c.Instruction = newInstructionBase(c, LoadStackInstKind)
	cloneOperandsInto(&c.Instruction, &i.Instruction)
	c.typ = i.typ
	return &c.Instruction
}

func (i *StoreStackInst) cloneImpl() *Instruction {
	c := &StoreStackInst{}
	c.Instruction = newInstructionBase(c, StoreStackInstKind)
	cloneOperandsInto(&c.Instruction, &i.Instruction)
	return &c.Instruction
}

func (i *LoadParamInst) cloneImpl() *Instruction {
	c := &LoadParamInst{}
	c.Instruction = newInstructionBase(c, LoadParamInstKind)
	cloneOperandsInto(&c.Instruction, &i.Instruction)
	c.typ = i.typ
	return &c.Instruction
}

func (i *BinaryOperatorInst) cloneImpl() *Instruction {
	c := &BinaryOperatorInst{Op: i.Op}
	c.Instruction = newInstructionBase(c, BinaryOperatorInstKind)
	cloneOperandsInto(&c.Instruction, &i.Instruction)
	c.typ = i.typ
	return &c.Instruction
}

func (i *UnaryOperatorInst) cloneImpl() *Instruction {
	c := &UnaryOperatorInst{Op: i.Op}
	c.Instruction = newInstructionBase(c, UnaryOperatorInstKind)
	cloneOperandsInto(&c.Instruction, &i.Instruction)
	c.typ = i.typ
	return &c.Instruction
}

func (i *PhiInst) cloneImpl() *Instruction {
	c := &PhiInst{}
	c.Instruction = newInstructionBase(c, PhiInstKind)
	cloneOperandsInto(&c.Instruction, &i.Instruction)
	c.typ = i.typ
	return &c.Instruction
}

func (i *CallInst) cloneImpl() *Instruction {
	c := &CallInst{}
	c.Instruction = newInstructionBase(c, CallInstKind)
	cloneOperandsInto(&c.Instruction, &i.Instruction)
	c.typ = i.typ
	return &c.Instruction
}

func (i *CreateFunctionInst) cloneImpl() *Instruction {
	c := &CreateFunctionInst{}
	c.Instruction = newInstructionBase(c, CreateFunctionInstKind)
	cloneOperandsInto(&c.Instruction, &i.Instruction)
	c.typ = i.typ
	return &c.Instruction
}

func (i *BranchInst) cloneImpl() *Instruction {
	c := &BranchInst{}
	c.Instruction = newInstructionBase(c, BranchInstKind)
	cloneOperandsInto(&c.Instruction, &i.Instruction)
	return &c.Instruction
}

func (i *CondBranchInst) cloneImpl() *Instruction {
	c := &CondBranchInst{}
	c.Instruction = newInstructionBase(c, CondBranchInstKind)
	cloneOperandsInto(&c.Instruction, &i.Instruction)
	return &c.Instruction
}

func (i *ReturnInst) cloneImpl() *Instruction {
	c := &ReturnInst{}
	c.Instruction = newInstructionBase(c, ReturnInstKind)
	cloneOperandsInto(&c.Instruction, &i.Instruction)
	return &c.Instruction
}

func (i *ThrowInst) cloneImpl() *Instruction {
	c := &ThrowInst{}
	c.Instruction = newInstructionBase(c, ThrowInstKind)
	cloneOperandsInto(&c.Instruction, &i.Instruction)
	return &c.Instruction
}

func (i *UnreachableInst) cloneImpl() *Instruction {
	c := &UnreachableInst{}
	c.Instruction = newInstructionBase(c, UnreachableInstKind)
	return &c.Instruction
}
