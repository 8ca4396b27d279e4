package engine

import "hotkeyengine/internal/buttontype"

// Injector synthesises input events back into the OS input stream
// (spec.md §4.5). Every emission must carry the engine's origin tag so
// that the corresponding inbound event, when it loops back through the
// Bridge, is recognised and short-circuited.
type Injector interface {
	Press(button buttontype.Button) error
	Release(button buttontype.Button) error
	Click(button buttontype.Button) error
	MoveRel(dx, dy int) error
	MoveAbs(x, y int) error
	RotateWheel(delta int) error
	CursorPosition() (x, y int, err error)
	IsPressed(button buttontype.Button) (bool, error)
	IsToggled(button buttontype.Button) (bool, error)
}

// RawInjector is the narrower contract a platform layer implements: raw
// synthesis primitives with no origin-tag bookkeeping. TaggingInjector
// wraps one of these to produce an Injector.
type RawInjector interface {
	SendButton(button buttontype.Button, action ButtonAction, injected OriginTag) error
	SendMoveRel(dx, dy int, injected OriginTag) error
	SendMoveAbs(x, y int, injected OriginTag) error
	SendWheel(delta int, injected OriginTag) error
	QueryCursorPosition() (x, y int, err error)
	QueryPressed(button buttontype.Button) (bool, error)
	QueryToggled(button buttontype.Button) (bool, error)
}

// TaggingInjector is the engine's only public "send input" implementation:
// it forwards to a RawInjector, always passing injected=true, so user code
// can never forget the origin tag (spec.md §4.5 "The engine's public 'send
// input' macros call only these primitives").
type TaggingInjector struct {
	raw RawInjector
}

// NewTaggingInjector wraps raw so every emission is tagged.
func NewTaggingInjector(raw RawInjector) *TaggingInjector {
	return &TaggingInjector{raw: raw}
}

func (inj *TaggingInjector) Press(button buttontype.Button) error {
	return inj.raw.SendButton(button, Press, true)
}

func (inj *TaggingInjector) Release(button buttontype.Button) error {
	return inj.raw.SendButton(button, Release, true)
}

func (inj *TaggingInjector) Click(button buttontype.Button) error {
	if err := inj.Press(button); err != nil {
		return err
	}
	return inj.Release(button)
}

func (inj *TaggingInjector) MoveRel(dx, dy int) error {
	return inj.raw.SendMoveRel(dx, dy, true)
}

func (inj *TaggingInjector) MoveAbs(x, y int) error {
	return inj.raw.SendMoveAbs(x, y, true)
}

func (inj *TaggingInjector) RotateWheel(delta int) error {
	return inj.raw.SendWheel(delta, true)
}

func (inj *TaggingInjector) CursorPosition() (int, int, error) {
	return inj.raw.QueryCursorPosition()
}

func (inj *TaggingInjector) IsPressed(button buttontype.Button) (bool, error) {
	return inj.raw.QueryPressed(button)
}

func (inj *TaggingInjector) IsToggled(button buttontype.Button) (bool, error) {
	return inj.raw.QueryToggled(button)
}

// NoopRawInjector is a RawInjector that records every Send* call without
// talking to any OS; its Query* methods record nothing. It grounds unit tests for Remap (S1/S5 in spec.md §8) without
// a real platform layer.
type NoopRawInjector struct {
	Sent []SentEvent
	Pos  struct{ X, Y int }
}

// SentEvent records one call made through a NoopRawInjector.
type SentEvent struct {
	Kind     string // "button", "moveRel", "moveAbs", "wheel"
	Button   buttontype.Button
	Action   ButtonAction
	DX, DY   int
	Delta    int
	Injected bool
}

func (n *NoopRawInjector) SendButton(button buttontype.Button, action ButtonAction, injected OriginTag) error {
	n.Sent = append(n.Sent, SentEvent{Kind: "button", Button: button, Action: action, Injected: injected})
	return nil
}

func (n *NoopRawInjector) SendMoveRel(dx, dy int, injected OriginTag) error {
	n.Sent = append(n.Sent, SentEvent{Kind: "moveRel", DX: dx, DY: dy, Injected: injected})
	n.Pos.X += dx
	n.Pos.Y += dy
	return nil
}

func (n *NoopRawInjector) SendMoveAbs(x, y int, injected OriginTag) error {
	n.Sent = append(n.Sent, SentEvent{Kind: "moveAbs", DX: x, DY: y, Injected: injected})
	n.Pos.X, n.Pos.Y = x, y
	return nil
}

func (n *NoopRawInjector) SendWheel(delta int, injected OriginTag) error {
	n.Sent = append(n.Sent, SentEvent{Kind: "wheel", Delta: delta, Injected: injected})
	return nil
}

func (n *NoopRawInjector) QueryCursorPosition() (int, int, error) {
	return n.Pos.X, n.Pos.Y, nil
}

func (n *NoopRawInjector) QueryPressed(buttontype.Button) (bool, error) { return false, nil }
func (n *NoopRawInjector) QueryToggled(buttontype.Button) (bool, error) { return false, nil }
