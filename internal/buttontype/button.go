// Package buttontype holds the closed enumeration of logical input buttons
// the engine understands: keyboard keys, mouse buttons, the wheel
// pseudo-button, and the cursor-move pseudo-button.
package buttontype

// Button is a structural, comparable identifier for a single physical or
// pseudo input source. Button values are used as map keys throughout the
// engine, so equality and hashing fall out of Go's native comparison of the
// underlying string.
type Button string

// Keyboard letter and digit keys.
const (
	A Button = "A"
	B Button = "B"
	C Button = "C"
	D Button = "D"
	E Button = "E"
	F Button = "F"
	G Button = "G"
	H Button = "H"
	I Button = "I"
	J Button = "J"
	K Button = "K"
	L Button = "L"
	M Button = "M"
	N Button = "N"
	O Button = "O"
	P Button = "P"
	Q Button = "Q"
	R Button = "R"
	S Button = "S"
	T Button = "T"
	U Button = "U"
	V Button = "V"
	W Button = "W"
	X Button = "X"
	Y Button = "Y"
	Z Button = "Z"

	Digit0 Button = "0"
	Digit1 Button = "1"
	Digit2 Button = "2"
	Digit3 Button = "3"
	Digit4 Button = "4"
	Digit5 Button = "5"
	Digit6 Button = "6"
	Digit7 Button = "7"
	Digit8 Button = "8"
	Digit9 Button = "9"
)

// Function keys.
const (
	F1  Button = "F1"
	F2  Button = "F2"
	F3  Button = "F3"
	F4  Button = "F4"
	F5  Button = "F5"
	F6  Button = "F6"
	F7  Button = "F7"
	F8  Button = "F8"
	F9  Button = "F9"
	F10 Button = "F10"
	F11 Button = "F11"
	F12 Button = "F12"
)

// Navigation keys.
const (
	Escape     Button = "Escape"
	Tab        Button = "Tab"
	Space      Button = "Space"
	Return     Button = "Return"
	Backspace  Button = "Backspace"
	Delete     Button = "Delete"
	Home       Button = "Home"
	End        Button = "End"
	PageUp     Button = "PageUp"
	PageDown   Button = "PageDown"
	ArrowLeft  Button = "ArrowLeft"
	ArrowRight Button = "ArrowRight"
	ArrowUp    Button = "ArrowUp"
	ArrowDown  Button = "ArrowDown"
)

// Concrete left/right modifier keys. The engine only ever sees these; the
// "any Shift" style aggregates below expand into them at registration time.
const (
	LShift Button = "LShift"
	RShift Button = "RShift"
	LCtrl  Button = "LCtrl"
	RCtrl  Button = "RCtrl"
	LAlt   Button = "LAlt"
	RAlt   Button = "RAlt"
	LMeta  Button = "LMeta"
	RMeta  Button = "RMeta"
)

// Mouse buttons.
const (
	MouseLeft   Button = "MouseLeft"
	MouseRight  Button = "MouseRight"
	MouseMiddle Button = "MouseMiddle"
	MouseSide1  Button = "MouseSide1"
	MouseSide2  Button = "MouseSide2"
)

// Pseudo-buttons: these never appear as the trigger of a ButtonEvent. They
// identify the shape of an incoming event for hooks registered against
// wheel rotation or cursor motion.
const (
	Wheel      Button = "Wheel"
	CursorMove Button = "CursorMove"
)

// Aggregate is a "logical" modifier name (e.g. "any Shift") that expands to
// one or more concrete Buttons at registration time. The resolver never
// sees an Aggregate; RuleStore and ModifierPredicate only hold concrete
// Buttons.
type Aggregate string

const (
	AnyShift Aggregate = "AnyShift"
	AnyCtrl  Aggregate = "AnyCtrl"
	AnyAlt   Aggregate = "AnyAlt"
	AnyMeta  Aggregate = "AnyMeta"
)

// aggregateMembers is the fixed expansion table for the logical modifier
// names. It is intentionally small and private: adding a new aggregate is a
// one-line change here, never a change to the resolver or predicate.
var aggregateMembers = map[Aggregate][]Button{
	AnyShift: {LShift, RShift},
	AnyCtrl:  {LCtrl, RCtrl},
	AnyAlt:   {LAlt, RAlt},
	AnyMeta:  {LMeta, RMeta},
}

// Expand returns the concrete Buttons the given Aggregates stand for, in
// order. A name that is not a known aggregate is passed through unchanged
// as a single Button, which lets callers pass either a concrete Button or an Aggregate
// through the same expansion step.
func Expand(names ...Aggregate) []Button {
	var out []Button
	for _, name := range names {
		if members, ok := aggregateMembers[name]; ok {
			out = append(out, members...)
			continue
		}
		out = append(out, Button(name))
	}
	return out
}
