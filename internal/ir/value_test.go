package ir

import "testing"

func checkMirrorInvariant(t *testing.T, v Value) {
	t.Helper()
	for i, u := range v.Users() {
		inst := u
		found := false
		for _, op := range inst.operands {
			if op.Target == v && op.Slot == i {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("user at slot %d does not mirror back to %v", i, v)
		}
	}
}

func TestAddUserRemoveUseSwapWithLast(t *testing.T) {
	slot := NewAllocStackInst(nil)
	a := NewLoadStackInst(slot)
	b := NewLoadStackInst(slot)
	c := NewLoadStackInst(slot)
	checkMirrorInvariant(t, slot)

	if got := slot.NumUsers(); got != 3 {
		t.Fatalf("NumUsers() = %d, want 3", got)
	}

	// Remove the middle user (a is slot 0, b is slot 1, c is slot 2).
	b.eraseFromParentUnchecked()
	checkMirrorInvariant(t, slot)
	if slot.NumUsers() != 2 {
		t.Fatalf("NumUsers() after removal = %d, want 2", slot.NumUsers())
	}
	if slot.HasUser(&a.Instruction) == false {
		t.Fatalf("a should still be a user of slot")
	}
	if slot.HasUser(&c.Instruction) == false {
		t.Fatalf("c should still be a user of slot")
	}
	if slot.HasUser(&b.Instruction) {
		t.Fatalf("b should no longer be a user of slot")
	}
}

func TestReplaceAllUsesWith(t *testing.T) {
	oldSlot := NewAllocStackInst(nil)
	newSlot := NewAllocStackInst(nil)
	load1 := NewLoadStackInst(oldSlot)
	load2 := NewLoadStackInst(oldSlot)

	oldSlot.ReplaceAllUsesWith(newSlot)

	if oldSlot.HasUsers() {
		t.Fatalf("oldSlot should have no users after ReplaceAllUsesWith")
	}
	if newSlot.NumUsers() != 2 {
		t.Fatalf("newSlot.NumUsers() = %d, want 2", newSlot.NumUsers())
	}
	if load1.GetOperand(0) != Value(newSlot) {
		t.Fatalf("load1 operand 0 was not repointed to newSlot")
	}
	if load2.GetOperand(0) != Value(newSlot) {
		t.Fatalf("load2 operand 0 was not repointed to newSlot")
	}
	checkMirrorInvariant(t, newSlot)
}

func TestRemoveAllUses(t *testing.T) {
	slot := NewAllocStackInst(nil)
	load := NewLoadStackInst(slot)

	slot.RemoveAllUses()

	if slot.HasUsers() {
		t.Fatalf("slot should have no users")
	}
	if load.NumOperands() != 0 {
		t.Fatalf("load should have no operands left, got %d", load.NumOperands())
	}
}

func TestSetOperandRewiresUseList(t *testing.T) {
	slotA := NewAllocStackInst(nil)
	slotB := NewAllocStackInst(nil)
	load := NewLoadStackInst(slotA)

	load.SetOperand(0, slotB)

	if slotA.HasUsers() {
		t.Fatalf("slotA should no longer be used")
	}
	if slotB.NumUsers() != 1 {
		t.Fatalf("slotB.NumUsers() = %d, want 1", slotB.NumUsers())
	}
	checkMirrorInvariant(t, slotB)
}

func TestHasOneUser(t *testing.T) {
	slot := NewAllocStackInst(nil)
	if slot.HasUsers() {
		t.Fatalf("fresh value should have no users")
	}
	load := NewLoadStackInst(slot)
	if !slot.HasOneUser() {
		t.Fatalf("slot should have exactly one user")
	}
	NewLoadStackInst(slot)
	if slot.HasOneUser() {
		t.Fatalf("slot should no longer have exactly one user")
	}
	_ = load
}
