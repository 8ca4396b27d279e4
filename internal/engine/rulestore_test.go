package engine

import (
	"testing"

	"hotkeyengine/internal/buttontype"
)

func TestRuleStoreRegistrationOrder(t *testing.T) {
	store := NewRuleStore()

	first := HotkeyHook{Condition: AnyCondition(), Callback: noop, Operation: Dispatch}
	second := HotkeyHook{Condition: AnyCondition(), Callback: noop, Operation: Block}

	store.RegisterOnPress(buttontype.A, first)
	store.RegisterOnPress(buttontype.A, second)

	hooks := store.OnPressFor(buttontype.A)
	if len(hooks) != 2 {
		t.Fatalf("expected 2 hooks, got %d", len(hooks))
	}
	if hooks[0].Operation != Dispatch || hooks[1].Operation != Block {
		t.Error("hooks must be returned in registration order")
	}
}

func TestRuleStoreIndicesAreIndependent(t *testing.T) {
	store := NewRuleStore()
	store.RegisterOnPress(buttontype.A, HotkeyHook{Condition: AnyCondition(), Callback: noop})
	store.RegisterOnRelease(buttontype.A, HotkeyHook{Condition: AnyCondition(), Callback: noop})
	store.RegisterRemap(buttontype.B, RemapHook{Target: buttontype.C, Condition: AnyCondition()})

	if len(store.OnReleaseFor(buttontype.B)) != 0 {
		t.Error("unrelated button must have no on-release hooks")
	}
	if len(store.RemapsFor(buttontype.A)) != 0 {
		t.Error("unrelated button must have no remaps")
	}
	if len(store.OnPressFor(buttontype.A)) != 1 {
		t.Error("on-press index must be unaffected by remap/release registrations")
	}
}

func TestRuleStoreWheelAndCursorHooks(t *testing.T) {
	store := NewRuleStore()
	store.RegisterWheel(MouseHook{Condition: AnyCondition(), Callback: noop})
	store.RegisterCursor(MouseHook{Condition: AnyCondition(), Callback: noop})

	if len(store.WheelHooks()) != 1 {
		t.Error("expected one wheel hook")
	}
	if len(store.CursorHooks()) != 1 {
		t.Error("expected one cursor hook")
	}
}
