//go:build windows

package platform

import (
	"unsafe"

	"hotkeyengine/internal/buttontype"
	"hotkeyengine/internal/engine"
)

const (
	inputKeyboard = 1
	inputMouse    = 0

	keyeventfKeyUp = 0x0002

	mouseeventfMove       = 0x0001
	mouseeventfLeftDown   = 0x0002
	mouseeventfLeftUp     = 0x0004
	mouseeventfRightDown  = 0x0008
	mouseeventfRightUp    = 0x0010
	mouseeventfMiddleDown = 0x0020
	mouseeventfMiddleUp   = 0x0040
	mouseeventfWheel      = 0x0800
	mouseeventfXDown      = 0x0080
	mouseeventfXUp        = 0x0100

	xbutton1 = 0x0001
	xbutton2 = 0x0002
)

var (
	procSendInput    = user32.NewProc("SendInput")
	procSetCursorPos = user32.NewProc("SetCursorPos")
	procGetCursorPos = user32.NewProc("GetCursorPos")
)

// rawInput's union member is sized to the larger of MOUSEINPUT and
// KEYBDINPUT (32 bytes) and laid out as a byte array rather than a Go union
// (Go has none), the same trick the teacher's reference snippet uses with
// its tail-padding field on INPUT.
type rawInput struct {
	inputType uint32
	_         uint32 // alignment padding before the union on 64-bit
	union     [32]byte
}

func (r *rawInput) setKeybd(wVk uint16, dwFlags uint32) {
	r.inputType = inputKeyboard
	type keybdInput struct {
		wVk         uint16
		wScan       uint16
		dwFlags     uint32
		time        uint32
		dwExtraInfo uintptr
	}
	*(*keybdInput)(unsafe.Pointer(&r.union[0])) = keybdInput{wVk: wVk, dwFlags: dwFlags}
}

func (r *rawInput) setMouse(dx, dy int32, mouseData, dwFlags uint32) {
	r.inputType = inputMouse
	type mouseInput struct {
		dx, dy      int32
		mouseData   uint32
		dwFlags     uint32
		time        uint32
		dwExtraInfo uintptr
	}
	*(*mouseInput)(unsafe.Pointer(&r.union[0])) = mouseInput{dx: dx, dy: dy, mouseData: mouseData, dwFlags: dwFlags}
}

func sendRawInputs(inputs []rawInput) error {
	if len(inputs) == 0 {
		return nil
	}
	ret, _, err := procSendInput.Call(
		uintptr(len(inputs)),
		uintptr(unsafe.Pointer(&inputs[0])),
		unsafe.Sizeof(inputs[0]),
	)
	if ret == 0 {
		return err
	}
	return nil
}

func keyRawInput(vk uintptr, up bool) rawInput {
	flags := uint32(0)
	if up {
		flags = keyeventfKeyUp
	}
	var r rawInput
	r.setKeybd(uint16(vk), flags)
	return r
}

// mouseButtonFlags returns the down/up SendInput flag pair (and, for the
// side buttons, the XBUTTON1/2 mouseData value needed to disambiguate
// them) for a mouse button. ok is false for keyboard buttons.
func mouseButtonFlags(button buttontype.Button) (down, up, data uint32, ok bool) {
	switch button {
	case buttontype.MouseLeft:
		return mouseeventfLeftDown, mouseeventfLeftUp, 0, true
	case buttontype.MouseRight:
		return mouseeventfRightDown, mouseeventfRightUp, 0, true
	case buttontype.MouseMiddle:
		return mouseeventfMiddleDown, mouseeventfMiddleUp, 0, true
	case buttontype.MouseSide1:
		return mouseeventfXDown, mouseeventfXUp, xbutton1, true
	case buttontype.MouseSide2:
		return mouseeventfXDown, mouseeventfXUp, xbutton2, true
	default:
		return 0, 0, 0, false
	}
}

// WindowsInjector implements engine.RawInjector via SendInput. The engine
// never talks to it directly: HotkeyService wraps it in a TaggingInjector
// (internal/engine/injector.go), which always passes injected=true. The
// Send* methods ignore that flag: the INPUT records they emit carry no
// origin marker (dwExtraInfo is left zero), so input synthesised here is
// not distinguishable from real input when it comes back through
// PollingHookSource.
type WindowsInjector struct{}

// NewWindowsInjector returns the SendInput-backed RawInjector.
func NewWindowsInjector() *WindowsInjector { return &WindowsInjector{} }

func (w *WindowsInjector) SendButton(button buttontype.Button, action engine.ButtonAction, injected engine.OriginTag) error {
	up := action == engine.Release

	if down, upFlag, data, ok := mouseButtonFlags(button); ok {
		flag := down
		if up {
			flag = upFlag
		}
		var r rawInput
		r.setMouse(0, 0, data, flag)
		return sendRawInputs([]rawInput{r})
	}

	vk, ok := virtualKeys[button]
	if !ok {
		return ErrPlatformUnavailable
	}
	return sendRawInputs([]rawInput{keyRawInput(vk, up)})
}

// SendMoveRel synthesises a relative cursor move.
func (w *WindowsInjector) SendMoveRel(dx, dy int, injected engine.OriginTag) error {
	var r rawInput
	r.setMouse(int32(dx), int32(dy), 0, mouseeventfMove)
	return sendRawInputs([]rawInput{r})
}

// SendMoveAbs synthesises an absolute cursor move via SetCursorPos, which
// is simpler and more reliable for absolute positioning than
// MOUSEEVENTF_ABSOLUTE's normalized-coordinate scheme.
func (w *WindowsInjector) SendMoveAbs(x, y int, injected engine.OriginTag) error {
	ret, _, err := procSetCursorPos.Call(uintptr(x), uintptr(y))
	if ret == 0 {
		return err
	}
	return nil
}

// SendWheel synthesises a vertical wheel rotation. delta follows the
// engine's taxonomy of "notches * 120", matching WHEEL_DELTA.
func (w *WindowsInjector) SendWheel(delta int, injected engine.OriginTag) error {
	var r rawInput
	r.setMouse(0, 0, uint32(int32(delta)), mouseeventfWheel)
	return sendRawInputs([]rawInput{r})
}

type point struct{ X, Y int32 }

// QueryCursorPosition reports the current cursor position via GetCursorPos.
func (w *WindowsInjector) QueryCursorPosition() (int, int, error) {
	var pt point
	ret, _, err := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if ret == 0 {
		return 0, 0, err
	}
	return int(pt.X), int(pt.Y), nil
}

// QueryPressed reports live button state via GetAsyncKeyState, the same
// primitive PollingHookSource polls on its ticker.
func (w *WindowsInjector) QueryPressed(button buttontype.Button) (bool, error) {
	vk, ok := virtualKeys[button]
	if !ok {
		return false, ErrPlatformUnavailable
	}
	state, _, _ := procGetAsyncKeyState.Call(vk)
	return state&0x8000 != 0, nil
}

// QueryToggled reports a toggle-style key's latched state (e.g. CapsLock)
// via GetKeyState.
func (w *WindowsInjector) QueryToggled(button buttontype.Button) (bool, error) {
	return IsToggled(button), nil
}
