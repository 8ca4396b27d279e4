//go:build !windows

package platform

import (
	"time"

	"hotkeyengine/internal/buttontype"
	"hotkeyengine/internal/engine"
)

// PollingHookSource is the non-Windows stand-in: every method fails with
// ErrPlatformUnavailable. This package is reference material only (see
// errors.go); a real Linux or macOS backing would poll evdev or CGEventTap
// the way the teacher's own platform-specific hotkey_service files do, but
// that is outside this engine's core scope.
type PollingHookSource struct{}

// NewPollingHookSource returns a stub source. interval is ignored.
func NewPollingHookSource(interval time.Duration) *PollingHookSource { return &PollingHookSource{} }

func (p *PollingHookSource) Install(onEvent func(engine.Event) engine.NativeEventOperation) error {
	return ErrPlatformUnavailable
}

func (p *PollingHookSource) Run() error { return ErrPlatformUnavailable }

func (p *PollingHookSource) Uninstall() error { return ErrPlatformUnavailable }

// WindowsInjector is the non-Windows stand-in RawInjector; every method
// fails with ErrPlatformUnavailable.
type WindowsInjector struct{}

// NewWindowsInjector returns a stub injector.
func NewWindowsInjector() *WindowsInjector { return &WindowsInjector{} }

func (w *WindowsInjector) SendButton(buttontype.Button, engine.ButtonAction, engine.OriginTag) error {
	return ErrPlatformUnavailable
}

func (w *WindowsInjector) SendMoveRel(dx, dy int, injected engine.OriginTag) error {
	return ErrPlatformUnavailable
}

func (w *WindowsInjector) SendMoveAbs(x, y int, injected engine.OriginTag) error {
	return ErrPlatformUnavailable
}

func (w *WindowsInjector) SendWheel(delta int, injected engine.OriginTag) error {
	return ErrPlatformUnavailable
}

func (w *WindowsInjector) QueryCursorPosition() (int, int, error) {
	return 0, 0, ErrPlatformUnavailable
}

func (w *WindowsInjector) QueryPressed(buttontype.Button) (bool, error) {
	return false, ErrPlatformUnavailable
}

func (w *WindowsInjector) QueryToggled(buttontype.Button) (bool, error) {
	return false, ErrPlatformUnavailable
}

// IsToggled mirrors the Windows build's package-level helper.
func IsToggled(buttontype.Button) bool { return false }
