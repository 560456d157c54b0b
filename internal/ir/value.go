package ir

import "fmt"

// Value is the interface implemented by every node in the IR graph:
// module, function, block, instruction, parameter, variable, scope,
// literal, global property. Concrete types embed valueBase, which
// supplies every method below.
//
// Two Values are the same node iff the interface values compare ==;
// every concrete type stores a pointer receiver, so this is ordinary
// Go pointer identity.
type Value interface {
	// Kind returns the closed ValueKind tag for this node.
	Kind() ValueKind
	// Type returns the node's Type bitset.
	Type() Type
	// SetType replaces the node's Type bitset.
	SetType(Type)

	// Users returns the instructions that have this value as an
	// operand. The slice is owned by the value; callers must not
	// mutate it.
	Users() []*Instruction
	// NumUsers returns len(Users()).
	NumUsers() int
	// HasUsers reports whether NumUsers() > 0.
	HasUsers() bool
	// HasOneUser reports whether NumUsers() == 1.
	HasOneUser() bool
	// HasUser reports whether u is in Users(). Spec.md flags the
	// original's hasUser(Value*) as comparing an Instruction* against
	// a Value* parameter; we resolve that ambiguity by typing the
	// probe as *Instruction, since Users only ever holds instructions.
	HasUser(u *Instruction) bool

	// ReplaceAllUsesWith rewrites every operand slot pointing at this
	// value to point at other instead. other may be nil.
	ReplaceAllUsesWith(other Value)
	// RemoveAllUses unlinks this value from every operand slot that
	// references it and removes those slots from each user's operand
	// list (see EraseOperand) rather than rewriting them.
	RemoveAllUses()

	// addUser registers inst as a user and returns the Use identifying
	// the new slot. Only the operand protocol (operand.go) calls this.
	addUser(inst *Instruction) Use
	// removeUse unlinks the use at u.Slot via swap-with-last. Only the
	// operand protocol calls this.
	removeUse(u Use)
}

// Use identifies one operand edge: the value being pointed at, and the
// slot within that value's user list the edge occupies. An
// Instruction's own operand vector is a slice of Use; this same type
// is returned by addUser to tell the caller which slot it landed in.
type Use struct {
	Target Value
	Slot   int
}

// valueBase implements Value. Every concrete IR node embeds it and
// calls newValueBase during construction to record its own identity.
type valueBase struct {
	self  Value
	kind  ValueKind
	typ   Type
	users []*Instruction
}

func newValueBase(self Value, kind ValueKind) valueBase {
	return valueBase{self: self, kind: kind}
}

func (v *valueBase) Kind() ValueKind    { return v.kind }
func (v *valueBase) Type() Type         { return v.typ }
func (v *valueBase) SetType(t Type)     { v.typ = t }
func (v *valueBase) Users() []*Instruction { return v.users }
func (v *valueBase) NumUsers() int      { return len(v.users) }
func (v *valueBase) HasUsers() bool     { return len(v.users) > 0 }
func (v *valueBase) HasOneUser() bool   { return len(v.users) == 1 }

func (v *valueBase) HasUser(u *Instruction) bool {
	for _, x := range v.users {
		if x == u {
			return true
		}
	}
	return false
}

// addUser appends inst to the use-list and returns the slot it landed
// in. See the mirror invariant in operand.go.
func (v *valueBase) addUser(inst *Instruction) Use {
	v.users = append(v.users, inst)
	return Use{Target: v.self, Slot: len(v.users) - 1}
}

// removeUse removes in O(1) by swap-with-last: the last entry of
// users is moved into u.Slot, then the slice shrinks by one. If a swap
// occurred, the moved instruction's operand vector must be patched to
// reflect its new slot — this is the only place a back-link index is
// ever rewritten.
func (v *valueBase) removeUse(u Use) {
	if u.Target != v.self {
		panic(fmt.Sprintf("ir: removeUse called on wrong value (kind=%s)", v.kind))
	}
	if len(v.users) == 0 {
		panic("ir: removing a user from an empty use list")
	}

	last := len(v.users) - 1
	moved := v.users[last]
	v.users[u.Slot] = moved
	v.users = v.users[:last]

	if u.Slot != len(v.users) {
		oldUse := Use{Target: v.self, Slot: len(v.users)}
		newUse := Use{Target: v.self, Slot: u.Slot}
		patched := false
		for i, op := range moved.operands {
			if op == oldUse {
				moved.operands[i] = newUse
				patched = true
				break
			}
		}
		if !patched {
			panic("ir: can't find user in operand list — corrupt use list")
		}
	}
}

// ReplaceAllUsesWith asks every user of this value to unregister
// itself by rewriting its first operand slot that still points here.
// Repeated outer iterations handle a user that references this value
// at more than one operand slot, since ReplaceFirstOperandWith only
// rewrites the first match per call; each call still shrinks users by
// exactly one, which is what guarantees termination (P4).
func (v *valueBase) ReplaceAllUsesWith(other Value) {
	if v.self == other {
		return
	}
	for len(v.users) > 0 {
		u := v.users[len(v.users)-1]
		u.ReplaceFirstOperandWith(v.self, other)
	}
}

// RemoveAllUses is the erase-analog of ReplaceAllUsesWith: each user
// is asked to drop this value from its operand list entirely rather
// than point it elsewhere.
func (v *valueBase) RemoveAllUses() {
	for len(v.users) > 0 {
		u := v.users[len(v.users)-1]
		u.EraseOperand(v.self)
	}
}
