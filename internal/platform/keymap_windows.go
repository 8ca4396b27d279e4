//go:build windows

package platform

import "hotkeyengine/internal/buttontype"

// virtualKeys maps the engine's closed button taxonomy to Windows virtual
// key codes. It intentionally covers the same "letters, digits, function
// keys, a handful of named keys" subset the teacher's own
// keyToVirtualKeyCode does (internal/services/hotkey_service.go), not the
// full VK table.
var virtualKeys = map[buttontype.Button]uintptr{
	buttontype.A: 0x41, buttontype.B: 0x42, buttontype.C: 0x43, buttontype.D: 0x44,
	buttontype.E: 0x45, buttontype.F: 0x46, buttontype.G: 0x47, buttontype.H: 0x48,
	buttontype.I: 0x49, buttontype.J: 0x4A, buttontype.K: 0x4B, buttontype.L: 0x4C,
	buttontype.M: 0x4D, buttontype.N: 0x4E, buttontype.O: 0x4F, buttontype.P: 0x50,
	buttontype.Q: 0x51, buttontype.R: 0x52, buttontype.S: 0x53, buttontype.T: 0x54,
	buttontype.U: 0x55, buttontype.V: 0x56, buttontype.W: 0x57, buttontype.X: 0x58,
	buttontype.Y: 0x59, buttontype.Z: 0x5A,

	buttontype.Digit0: 0x30, buttontype.Digit1: 0x31, buttontype.Digit2: 0x32,
	buttontype.Digit3: 0x33, buttontype.Digit4: 0x34, buttontype.Digit5: 0x35,
	buttontype.Digit6: 0x36, buttontype.Digit7: 0x37, buttontype.Digit8: 0x38,
	buttontype.Digit9: 0x39,

	buttontype.F1: 0x70, buttontype.F2: 0x71, buttontype.F3: 0x72, buttontype.F4: 0x73,
	buttontype.F5: 0x74, buttontype.F6: 0x75, buttontype.F7: 0x76, buttontype.F8: 0x77,
	buttontype.F9: 0x78, buttontype.F10: 0x79, buttontype.F11: 0x7A, buttontype.F12: 0x7B,

	buttontype.LShift: 0xA0, buttontype.RShift: 0xA1,
	buttontype.LCtrl: 0xA2, buttontype.RCtrl: 0xA3,
	buttontype.LAlt: 0xA4, buttontype.RAlt: 0xA5,
	buttontype.LMeta: 0x5B, buttontype.RMeta: 0x5C,

	buttontype.Escape: 0x1B, buttontype.Tab: 0x09, buttontype.Space: 0x20,
	buttontype.Return: 0x0D, buttontype.Backspace: 0x08, buttontype.Delete: 0x2E,
	buttontype.Home: 0x24, buttontype.End: 0x23, buttontype.PageUp: 0x21, buttontype.PageDown: 0x22,
	buttontype.ArrowLeft: 0x25, buttontype.ArrowUp: 0x26, buttontype.ArrowRight: 0x27, buttontype.ArrowDown: 0x28,

	buttontype.MouseLeft: 0x01, buttontype.MouseRight: 0x02, buttontype.MouseMiddle: 0x04,
	buttontype.MouseSide1: 0x05, buttontype.MouseSide2: 0x06,
}

var buttonsByVirtualKey = reverseVirtualKeys()

func reverseVirtualKeys() map[uintptr]buttontype.Button {
	out := make(map[uintptr]buttontype.Button, len(virtualKeys))
	for button, vk := range virtualKeys {
		out[vk] = button
	}
	return out
}
