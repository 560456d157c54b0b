package ir

import "strconv"

// BasicBlock is a maximal straight-line run of Instructions ending, if
// terminated, in exactly one TerminatorInst. dumpID is a per-function
// monotonic counter assigned at construction, used only to print
// stable "BB#<id>" labels instead of leaking pointer values.
type BasicBlock struct {
	valueBase
	parent       *Function
	instructions []*Instruction
	dumpID       int
}

// NewBasicBlock creates an empty block owned by f and appends it to
// f's block list.
func NewBasicBlock(f *Function) *BasicBlock {
	bb := &BasicBlock{parent: f, dumpID: f.nextBlockID}
	bb.valueBase = newValueBase(bb, BasicBlockKind)
	f.nextBlockID++
	f.basicBlocks = append(f.basicBlocks, bb)
	return bb
}

func (bb *BasicBlock) Parent() *Function        { return bb.parent }
func (bb *BasicBlock) Instructions() []*Instruction { return bb.instructions }
func (bb *BasicBlock) DumpLabel() string        { return dumpBlockLabel(bb.dumpID) }

// Terminator returns the block's terminating instruction, or nil if
// the block is empty or its last instruction is not a terminator.
func (bb *BasicBlock) Terminator() *Instruction {
	if len(bb.instructions) == 0 {
		return nil
	}
	last := bb.instructions[len(bb.instructions)-1]
	if last.IsTerminator() {
		return last
	}
	return nil
}

// PushInstruction appends inst at the end of the block.
func (bb *BasicBlock) PushInstruction(inst *Instruction) {
	inst.parent = bb
	bb.instructions = append(bb.instructions, inst)
}

func (bb *BasicBlock) indexOf(inst *Instruction) int {
	for i, x := range bb.instructions {
		if x == inst {
			return i
		}
	}
	panic("ir: instruction not found in its basic block")
}

// InsertBefore splices inst into the block immediately before mark.
func (bb *BasicBlock) InsertBefore(mark, inst *Instruction) {
	idx := bb.indexOf(mark)
	inst.parent = bb
	bb.instructions = append(bb.instructions[:idx:idx], append([]*Instruction{inst}, bb.instructions[idx:]...)...)
}

// InsertAfter splices inst into the block immediately after mark.
func (bb *BasicBlock) InsertAfter(mark, inst *Instruction) {
	idx := bb.indexOf(mark) + 1
	inst.parent = bb
	bb.instructions = append(bb.instructions[:idx:idx], append([]*Instruction{inst}, bb.instructions[idx:]...)...)
}

func (bb *BasicBlock) removeFromList(inst *Instruction) {
	idx := bb.indexOf(inst)
	bb.instructions = append(bb.instructions[:idx], bb.instructions[idx+1:]...)
}

// EraseFromParent nulls out every incoming branch that still targets
// bb, then unlinks every instruction it contains and removes bb from
// its function. Callers don't need to drop the predecessor branch
// first; erasing replaces that operand with nil the same way the
// original IR's container-driven erase does.
func (bb *BasicBlock) EraseFromParent() {
	bb.ReplaceAllUsesWith(nil)
	for len(bb.instructions) > 0 {
		bb.instructions[len(bb.instructions)-1].eraseFromParentUnchecked()
	}
	f := bb.parent
	idx := -1
	for i, x := range f.basicBlocks {
		if x == bb {
			idx = i
			break
		}
	}
	if idx < 0 {
		panic("ir: basic block not found in its function")
	}
	f.basicBlocks = append(f.basicBlocks[:idx], f.basicBlocks[idx+1:]...)
	bb.parent = nil
}

// EraseFromParent unlinks inst from its operands' use-lists, removes
// it from its block, and drops its own use-list — inst must have no
// users (no one still reads its result). Callers that want to erase a
// still-used instruction must RAUW(nil) or RemoveAllUses it first,
// same as BasicBlock.EraseFromParent does for its own incoming
// branches.
func (inst *Instruction) EraseFromParent() {
	if inst.HasUsers() {
		panic("ir: erasing an instruction whose result is still used")
	}
	inst.eraseFromParentUnchecked()
}

// eraseFromParentUnchecked performs the removal without the HasUsers
// guard. BasicBlock.EraseFromParent uses this for the blanket teardown
// of every instruction it owns, after it has already nulled out bb's
// own incoming uses.
func (inst *Instruction) eraseFromParentUnchecked() {
	inst.clearOperandsInPlace()
	if inst.parent != nil {
		inst.parent.removeFromList(inst)
		inst.parent = nil
	}
}

// MoveBefore relocates inst, detaching it from its current block if
// any, to sit immediately before mark in mark's block.
func (inst *Instruction) MoveBefore(mark *Instruction) {
	if inst.parent != nil {
		inst.parent.removeFromList(inst)
	}
	mark.parent.InsertBefore(mark, inst)
}

func dumpBlockLabel(id int) string {
	return "BB#" + strconv.Itoa(id)
}
