package ir

// Instruction is the base embedded by every concrete instruction
// kind. It owns the operand vector (see operand.go) and knows its
// containing BasicBlock, but has no identity of its own — InstructionKind
// is never directly constructed.
type Instruction struct {
	valueBase
	parent   *BasicBlock
	operands []Use
}

func newInstructionBase(self Value, kind ValueKind) Instruction {
	return Instruction{valueBase: newValueBase(self, kind)}
}

// Parent returns the BasicBlock inst currently lives in, or nil if it
// has been erased or not yet inserted anywhere.
func (inst *Instruction) Parent() *BasicBlock { return inst.parent }

// IsTerminator reports whether inst's kind belongs to the terminator
// range — equivalently, whether it is allowed to be the last
// instruction of a BasicBlock.
func (inst *Instruction) IsTerminator() bool { return inst.kind.IsTerminatorInst() }

// AllocStackInst reserves a stack slot; LoadStackInst addresses it by
// operand 0, StoreStackInst by operand 1.
type AllocStackInst struct{ Instruction }

func NewAllocStackInst(varName Value) *AllocStackInst {
	i := &AllocStackInst{}
	i.Instruction = newInstructionBase(i, AllocStackInstKind)
	i.PushOperand(varName)
	return i
}

// LoadStackInst reads the current value of a stack slot (operand 0:
// the AllocStackInst it reads from).
type LoadStackInst struct{ Instruction }

func NewLoadStackInst(slot *AllocStackInst) *LoadStackInst {
	i := &LoadStackInst{}
	i.Instruction = newInstructionBase(i, LoadStackInstKind)
	i.PushOperand(slot)
	return i
}

// StoreStackInst writes a value (operand 0) into a stack slot
// (operand 1). It produces no usable result.
type StoreStackInst struct{ Instruction }

func NewStoreStackInst(value Value, slot *AllocStackInst) *StoreStackInst {
	i := &StoreStackInst{}
	i.Instruction = newInstructionBase(i, StoreStackInstKind)
	i.PushOperand(value)
	i.PushOperand(slot)
	return i
}

func (i *StoreStackInst) canSetOperandImpl(idx int, v Value) bool {
	if idx != 1 {
		return true
	}
	_, ok := v.(*AllocStackInst)
	return v == nil || ok
}

// LoadParamInst yields the value bound to a formal parameter (operand
// 0: the Parameter).
type LoadParamInst struct{ Instruction }

func NewLoadParamInst(p *Parameter) *LoadParamInst {
	i := &LoadParamInst{}
	i.Instruction = newInstructionBase(i, LoadParamInstKind)
	i.PushOperand(p)
	return i
}

func (i *LoadParamInst) canSetOperandImpl(idx int, v Value) bool {
	_, ok := v.(*Parameter)
	return v == nil || ok
}

// BinaryOperatorKind names the operator a BinaryOperatorInst applies.
type BinaryOperatorKind uint8

const (
	OpAdd BinaryOperatorKind = iota
	OpSub
	OpMul
	OpDiv
	OpEqual
	OpStrictEqual
	OpLess
	OpGreater
)

// BinaryOperatorInst applies Op to operand 0 (left) and operand 1
// (right).
type BinaryOperatorInst struct {
	Instruction
	Op BinaryOperatorKind
}

func NewBinaryOperatorInst(op BinaryOperatorKind, left, right Value) *BinaryOperatorInst {
	i := &BinaryOperatorInst{Op: op}
	i.Instruction = newInstructionBase(i, BinaryOperatorInstKind)
	i.PushOperand(left)
	i.PushOperand(right)
	return i
}

// UnaryOperatorKind names the operator a UnaryOperatorInst applies.
type UnaryOperatorKind uint8

const (
	OpNegate UnaryOperatorKind = iota
	OpNot
	OpTypeof
	OpVoid
)

// UnaryOperatorInst applies Op to operand 0.
type UnaryOperatorInst struct {
	Instruction
	Op UnaryOperatorKind
}

func NewUnaryOperatorInst(op UnaryOperatorKind, operand Value) *UnaryOperatorInst {
	i := &UnaryOperatorInst{Op: op}
	i.Instruction = newInstructionBase(i, UnaryOperatorInstKind)
	i.PushOperand(operand)
	return i
}

// PhiInst merges a value per predecessor BasicBlock. Operands come in
// (value, block) pairs: operand 2k is the incoming value from operand
// 2k+1's block.
type PhiInst struct{ Instruction }

func NewPhiInst() *PhiInst {
	i := &PhiInst{}
	i.Instruction = newInstructionBase(i, PhiInstKind)
	return i
}

// AddEntry appends one (value, block) incoming pair.
func (i *PhiInst) AddEntry(value Value, block *BasicBlock) {
	i.PushOperand(value)
	i.PushOperand(block)
}

// NumEntries reports how many incoming (value, block) pairs the phi
// currently has.
func (i *PhiInst) NumEntries() int { return i.NumOperands() / 2 }

func (i *PhiInst) EntryValue(k int) Value     { return i.GetOperand(2 * k) }
func (i *PhiInst) EntryBlock(k int) *BasicBlock { return i.GetOperand(2*k + 1).(*BasicBlock) }

func (i *PhiInst) canSetOperandImpl(idx int, v Value) bool {
	if idx%2 == 1 {
		_, ok := v.(*BasicBlock)
		return v == nil || ok
	}
	return true
}

// CallInst calls operand 0 (the callee) with operands 1..N as
// arguments.
type CallInst struct{ Instruction }

func NewCallInst(callee Value, args []Value) *CallInst {
	i := &CallInst{}
	i.Instruction = newInstructionBase(i, CallInstKind)
	i.PushOperand(callee)
	for _, a := range args {
		i.PushOperand(a)
	}
	return i
}

func (i *CallInst) Callee() Value   { return i.GetOperand(0) }
func (i *CallInst) NumArgs() int    { return i.NumOperands() - 1 }
func (i *CallInst) Arg(k int) Value { return i.GetOperand(k + 1) }

// CreateFunctionInst instantiates a closure over operand 0 (the
// Function being closed) and operand 1 (the VariableScope or
// ExternalScope it captures).
type CreateFunctionInst struct{ Instruction }

func NewCreateFunctionInst(fn *Function, scope Value) *CreateFunctionInst {
	i := &CreateFunctionInst{}
	i.Instruction = newInstructionBase(i, CreateFunctionInstKind)
	i.PushOperand(fn)
	i.PushOperand(scope)
	i.typ = TypeFromKind(TypeClosure)
	return i
}

func (i *CreateFunctionInst) canSetOperandImpl(idx int, v Value) bool {
	switch idx {
	case 0:
		_, ok := v.(*Function)
		return v == nil || ok
	case 1:
		return v == nil || v.Kind().IsVariableScope()
	default:
		return true
	}
}

// BranchInst unconditionally transfers control to operand 0.
type BranchInst struct{ Instruction }

func NewBranchInst(target *BasicBlock) *BranchInst {
	i := &BranchInst{}
	i.Instruction = newInstructionBase(i, BranchInstKind)
	i.PushOperand(target)
	return i
}

func (i *BranchInst) canSetOperandImpl(idx int, v Value) bool {
	_, ok := v.(*BasicBlock)
	return v == nil || ok
}

// CondBranchInst transfers control to operand 1 (true target) or
// operand 2 (false target) depending on operand 0 (the condition).
type CondBranchInst struct{ Instruction }

func NewCondBranchInst(cond Value, trueBlock, falseBlock *BasicBlock) *CondBranchInst {
	i := &CondBranchInst{}
	i.Instruction = newInstructionBase(i, CondBranchInstKind)
	i.PushOperand(cond)
	i.PushOperand(trueBlock)
	i.PushOperand(falseBlock)
	return i
}

func (i *CondBranchInst) canSetOperandImpl(idx int, v Value) bool {
	if idx == 1 || idx == 2 {
		_, ok := v.(*BasicBlock)
		return v == nil || ok
	}
	return true
}

// ReturnInst returns operand 0 from the enclosing function.
type ReturnInst struct{ Instruction }

func NewReturnInst(value Value) *ReturnInst {
	i := &ReturnInst{}
	i.Instruction = newInstructionBase(i, ReturnInstKind)
	i.PushOperand(value)
	return i
}

// ThrowInst throws operand 0.
type ThrowInst struct{ Instruction }

func NewThrowInst(value Value) *ThrowInst {
	i := &ThrowInst{}
	i.Instruction = newInstructionBase(i, ThrowInstKind)
	i.PushOperand(value)
	return i
}

// UnreachableInst marks a program point the compiler has proven
// control can never reach. It has no operands.
type UnreachableInst struct{ Instruction }

func NewUnreachableInst() *UnreachableInst {
	i := &UnreachableInst{}
	i.Instruction = newInstructionBase(i, UnreachableInstKind)
	return i
}
