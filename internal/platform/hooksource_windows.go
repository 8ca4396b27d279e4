//go:build windows

package platform

import (
	"sync"
	"time"

	"hotkeyengine/internal/buttontype"
	"hotkeyengine/internal/engine"

	"golang.org/x/sys/windows"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")
	procGetKeyState      = user32.NewProc("GetKeyState")
)

// PollingHookSource implements engine.HookSource by polling
// GetAsyncKeyState for every button the engine's taxonomy knows about,
// the same primitive the teacher's hotkeyListener goroutine polls on a
// 50ms ticker (internal/services/hotkey_service.go). It cannot see wheel
// or cursor-delta events, only button state.
type PollingHookSource struct {
	interval time.Duration

	mu       sync.Mutex
	stopCh   chan struct{}
	doneCh   chan struct{}
	onEvent  func(engine.Event) engine.NativeEventOperation
	lastDown map[buttontype.Button]bool
}

// NewPollingHookSource returns a source polling every interval (the
// teacher's default is 50ms).
func NewPollingHookSource(interval time.Duration) *PollingHookSource {
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	return &PollingHookSource{interval: interval, lastDown: make(map[buttontype.Button]bool)}
}

// Install records the callback. Polling does not start until Run.
func (p *PollingHookSource) Install(onEvent func(engine.Event) engine.NativeEventOperation) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onEvent = onEvent
	p.stopCh = make(chan struct{})
	p.doneCh = make(chan struct{})
	return nil
}

// Run polls until Uninstall is called.
func (p *PollingHookSource) Run() error {
	p.mu.Lock()
	stopCh, doneCh, onEvent := p.stopCh, p.doneCh, p.onEvent
	p.mu.Unlock()

	defer close(doneCh)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return nil
		case <-ticker.C:
			p.poll(onEvent)
		}
	}
}

// Uninstall stops the polling loop and waits for Run to return.
func (p *PollingHookSource) Uninstall() error {
	p.mu.Lock()
	stopCh, doneCh := p.stopCh, p.doneCh
	p.mu.Unlock()
	if stopCh == nil {
		return nil
	}
	close(stopCh)
	if doneCh != nil {
		<-doneCh
	}
	return nil
}

func (p *PollingHookSource) poll(onEvent func(engine.Event) engine.NativeEventOperation) {
	for button, vk := range virtualKeys {
		state, _, _ := procGetAsyncKeyState.Call(vk)
		down := state&0x8000 != 0

		if down == p.lastDown[button] {
			continue
		}
		p.lastDown[button] = down

		action := engine.Release
		if down {
			action = engine.Press
		}
		// GetAsyncKeyState carries no origin marker, so every event this
		// source reports has injected=false, including state changes caused
		// by WindowsInjector.
		onEvent(engine.ButtonEvt(button, action, false))
	}
}

// IsToggled queries a toggle-style key (e.g. CapsLock) via GetKeyState.
func IsToggled(button buttontype.Button) bool {
	vk, ok := virtualKeys[button]
	if !ok {
		return false
	}
	state, _, _ := procGetKeyState.Call(vk)
	return state&0x0001 != 0
}
