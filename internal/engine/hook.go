package engine

import "hotkeyengine/internal/buttontype"

// Callback is the capability object user registrations close over. It is
// handed to a worker goroutine by the resolver (spec.md §9 "Dynamic
// callback closures"); a single Invoke call is its entire contract.
type Callback interface {
	Invoke(event Event)
}

// CallbackFunc adapts a plain function to the Callback interface.
type CallbackFunc func(event Event)

// Invoke calls f.
func (f CallbackFunc) Invoke(event Event) { f(event) }

// RemapHook synthesises a press/release of Target whenever its Condition
// is satisfied for a press/release of the button it is registered under,
// and unconditionally blocks the original (spec.md §3 "Remap").
type RemapHook struct {
	Target    buttontype.Button
	Condition HotkeyCondition
}

// HotkeyHook runs Callback when Condition is satisfied for a press (if
// installed via RegisterOnPress) or a release (if installed via
// RegisterOnRelease) of the button it is registered under.
type HotkeyHook struct {
	Condition HotkeyCondition
	Callback  Callback
	Operation NativeEventOperation
}

// MouseHook runs Callback for any wheel or cursor event, gated by
// Condition (normally AnyCondition, since wheel/cursor events never touch
// the modifier tracker on their own, but a hook can still require held
// modifiers captured from prior ButtonEvents).
type MouseHook struct {
	Condition HotkeyCondition
	Callback  Callback
	Operation NativeEventOperation
}
