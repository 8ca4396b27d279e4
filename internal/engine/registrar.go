package engine

import (
	"sync/atomic"

	"hotkeyengine/internal/buttontype"
)

// Registrar is the concept-level registration API of spec.md §6, reduced
// from the source macro DSL to a small builder (spec.md §9: "Rewrite as a
// small builder API in the target language ... either keeps the engine
// contract intact"). A Registrar value is immutable from the caller's
// point of view: AddModifierKeys and ChangeNativeEventOperation return a
// derived Registrar carrying an updated context, leaving the receiver
// unaffected (spec.md §6).
type Registrar struct {
	store      *RuleStore
	tracker    *ModifierTracker
	inversions *buttontype.InversionSet
	running    *atomic.Bool // shared across every derived Registrar

	modifier  *ModifierPredicate // nil means ConditionAny
	operation NativeEventOperation
}

// NewRegistrar returns the root Registrar: no modifier gate, default
// operation Dispatch.
func NewRegistrar(store *RuleStore, tracker *ModifierTracker, inversions *buttontype.InversionSet) *Registrar {
	return &Registrar{
		store:      store,
		tracker:    tracker,
		inversions: inversions,
		running:    new(atomic.Bool),
		operation:  Dispatch,
	}
}

// Seal transitions the registrar's shared rule store into the running
// phase. Every further call to a register_* method returns
// ErrAlreadyRunning (spec.md §3 invariant).
func (r *Registrar) Seal() { r.running.Store(true) }

func (r *Registrar) condition() HotkeyCondition {
	if r.modifier == nil {
		return AnyCondition()
	}
	return ModifierCondition(*r.modifier)
}

// AddModifierKeys returns a derived Registrar requiring every button the
// given aggregates expand to be currently pressed, in addition to any
// modifier already required by r.
func (r *Registrar) AddModifierKeys(names ...buttontype.Aggregate) *Registrar {
	next := *r
	merged := ModifierPredicate{}
	if r.modifier != nil {
		merged.PressedRequired = append(merged.PressedRequired, r.modifier.PressedRequired...)
		merged.ReleasedRequired = append(merged.ReleasedRequired, r.modifier.ReleasedRequired...)
	}
	merged.PressedRequired = append(merged.PressedRequired, buttontype.Expand(names...)...)
	next.modifier = &merged
	return &next
}

// ChangeNativeEventOperation returns a derived Registrar whose
// registrations default to op instead of r's current default.
func (r *Registrar) ChangeNativeEventOperation(op NativeEventOperation) *Registrar {
	next := *r
	next.operation = op
	return &next
}

// Remap installs a RemapHook for every button in buttons, each
// synthesising target and blocking the original. It fails if any input
// button is tagged as an inversion target (spec.md §6).
func (r *Registrar) Remap(buttons []buttontype.Button, target buttontype.Button) error {
	if r.running.Load() {
		return &RegistrationError{Operation: "remap", Err: ErrAlreadyRunning}
	}
	if len(buttons) == 0 {
		return &RegistrationError{Operation: "remap", Err: ErrEmptyButtonList}
	}
	for _, button := range buttons {
		if r.inversions.Is(button) {
			return &RegistrationError{Operation: "remap", Err: ErrInversionButton}
		}
	}
	cond := r.condition()
	for _, button := range buttons {
		r.store.RegisterRemap(button, RemapHook{Target: target, Condition: cond})
	}
	return nil
}

// OnPress installs callback to run on Press of every button in buttons. A
// button tagged as an inversion target is registered via the release path
// instead (spec.md §6).
func (r *Registrar) OnPress(buttons []buttontype.Button, callback Callback) error {
	return r.onTrigger(buttons, callback, Press)
}

// OnRelease installs callback to run on Release of every button in
// buttons, expanding into the three-hook activation-latch protocol when r
// carries a modifier condition (spec.md §4.3). A button tagged as an
// inversion target is registered via the press path instead.
func (r *Registrar) OnRelease(buttons []buttontype.Button, callback Callback) error {
	return r.onTrigger(buttons, callback, Release)
}

func (r *Registrar) onTrigger(buttons []buttontype.Button, callback Callback, action ButtonAction) error {
	if r.running.Load() {
		return &RegistrationError{Operation: "on_trigger", Err: ErrAlreadyRunning}
	}
	if len(buttons) == 0 {
		return &RegistrationError{Operation: "on_trigger", Err: ErrEmptyButtonList}
	}
	for _, button := range buttons {
		effective := action
		if r.inversions.Is(button) {
			if action == Press {
				effective = Release
			} else {
				effective = Press
			}
		}
		if effective == Press {
			r.store.RegisterOnPress(button, HotkeyHook{Condition: r.condition(), Callback: callback, Operation: r.operation})
			continue
		}
		r.installReleaseProtocol(button, callback)
	}
	return nil
}

// installReleaseProtocol registers the hooks behind a single "fire on
// release" request. With no modifier gate it is a plain HotkeyOnRelease.
// Under a modifier it expands into the three hooks described in
// spec.md §4.3's "Activation-latch protocol" paragraph, so the callback
// still fires if the user releases a required modifier before the
// trigger button.
func (r *Registrar) installReleaseProtocol(button buttontype.Button, callback Callback) {
	if r.modifier == nil {
		r.store.RegisterOnRelease(button, HotkeyHook{Condition: AnyCondition(), Callback: callback, Operation: r.operation})
		return
	}

	modifier := *r.modifier
	latch := NewLatch()

	// Hook 1: press-time setter. Always Dispatch; it only records that the
	// activation happened.
	r.store.RegisterOnPress(button, HotkeyHook{
		Condition: ModifierCondition(modifier),
		Callback:  CallbackFunc(func(Event) { latch.Activate() }),
		Operation: Dispatch,
	})

	// Hook 2: release-time consumer on the trigger itself.
	r.store.RegisterOnRelease(button, HotkeyHook{
		Condition: ActivationCondition(latch),
		Callback:  callback,
		Operation: r.operation,
	})

	// Hook 3: release of any required-pressed modifier, and press of any
	// required-released modifier, also consume the latch so the callback
	// fires even if the user lets go of the modifier before the trigger.
	for _, modButton := range modifier.PressedRequired {
		r.store.RegisterOnRelease(modButton, HotkeyHook{
			Condition: ActivationCondition(latch),
			Callback:  callback,
			Operation: r.operation,
		})
	}
	for _, modButton := range modifier.ReleasedRequired {
		r.store.RegisterOnPress(modButton, HotkeyHook{
			Condition: ActivationCondition(latch),
			Callback:  callback,
			Operation: r.operation,
		})
	}
}

// MouseWheel installs callback to run for every WheelEvent.
func (r *Registrar) MouseWheel(callback Callback) error {
	if r.running.Load() {
		return &RegistrationError{Operation: "mouse_wheel", Err: ErrAlreadyRunning}
	}
	r.store.RegisterWheel(MouseHook{Condition: r.condition(), Callback: callback, Operation: r.operation})
	return nil
}

// MouseCursor installs callback to run for every CursorEvent.
func (r *Registrar) MouseCursor(callback Callback) error {
	if r.running.Load() {
		return &RegistrationError{Operation: "mouse_cursor", Err: ErrAlreadyRunning}
	}
	r.store.RegisterCursor(MouseHook{Condition: r.condition(), Callback: callback, Operation: r.operation})
	return nil
}

// noop is the harmless callback Disable schedules; spec.md §4.3 notes the
// empty callback is still scheduled, only the verdict matters.
var noop Callback = CallbackFunc(func(Event) {})

// Disable blocks every press and release of the given buttons
// unconditionally (spec.md §4.3 "Disable" / §9's redesign-flag correction:
// both on_press and on_release are registered, not on_press twice).
func (r *Registrar) Disable(buttons []buttontype.Button) error {
	blocked := r.ChangeNativeEventOperation(Block)
	if err := blocked.OnPress(buttons, noop); err != nil {
		return err
	}
	return blocked.OnRelease(buttons, noop)
}
