package engine

import "hotkeyengine/internal/buttontype"

// ButtonAction distinguishes a press from a release of a Button.
type ButtonAction int

const (
	Press ButtonAction = iota
	Release
)

func (a ButtonAction) String() string {
	if a == Press {
		return "Press"
	}
	return "Release"
}

// NativeEventOperation is the verdict a Hook or the resolver returns to the
// OS: whether the originating event should still reach the focused
// application.
type NativeEventOperation int

const (
	Dispatch NativeEventOperation = iota
	Block
)

func (op NativeEventOperation) String() string {
	if op == Block {
		return "Block"
	}
	return "Dispatch"
}

// ButtonEvent is a key press/release or mouse button press/release
// delivered by the hook source.
type ButtonEvent struct {
	Button   buttontype.Button
	Action   ButtonAction
	Injected bool
}

// WheelEvent is a single wheel rotation.
type WheelEvent struct {
	Delta    int
	Injected bool
}

// CursorEvent is a relative cursor motion. The engine never receives
// absolute cursor positions, only deltas.
type CursorEvent struct {
	DX, DY   int
	Injected bool
}

// Event is the closed union of the three event shapes the hook source can
// deliver. Exactly one of the three pointer fields is non-nil.
type Event struct {
	Button *ButtonEvent
	Wheel  *WheelEvent
	Cursor *CursorEvent
}

// ButtonEvt builds an Event wrapping a ButtonEvent.
func ButtonEvt(button buttontype.Button, action ButtonAction, injected bool) Event {
	return Event{Button: &ButtonEvent{Button: button, Action: action, Injected: injected}}
}

// WheelEvt builds an Event wrapping a WheelEvent.
func WheelEvt(delta int, injected bool) Event {
	return Event{Wheel: &WheelEvent{Delta: delta, Injected: injected}}
}

// CursorEvt builds an Event wrapping a CursorEvent.
func CursorEvt(dx, dy int, injected bool) Event {
	return Event{Cursor: &CursorEvent{DX: dx, DY: dy, Injected: injected}}
}

// Injected reports whether the underlying event carries the engine's
// origin tag, regardless of its concrete shape.
func (e Event) Injected() bool {
	switch {
	case e.Button != nil:
		return e.Button.Injected
	case e.Wheel != nil:
		return e.Wheel.Injected
	case e.Cursor != nil:
		return e.Cursor.Injected
	default:
		return false
	}
}
