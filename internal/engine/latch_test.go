package engine

import "testing"

func TestLatchOneShot(t *testing.T) {
	latch := NewLatch()

	if latch.TestAndClear() {
		t.Error("fresh latch should not be set")
	}

	latch.Activate()
	if !latch.TestAndClear() {
		t.Error("activated latch should test true once")
	}
	if latch.TestAndClear() {
		t.Error("latch must clear after TestAndClear")
	}
}

func TestLatchHasStableID(t *testing.T) {
	a := NewLatch()
	b := NewLatch()
	if a.ID() == b.ID() {
		t.Error("distinct latches must have distinct IDs")
	}
	if a.ID() != a.ID() {
		t.Error("ID must be stable across calls")
	}
}
