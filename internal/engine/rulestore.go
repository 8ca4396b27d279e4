package engine

import (
	"sync"

	"hotkeyengine/internal/buttontype"
)

// RuleStore indexes every registered Hook by event kind and trigger
// button. A single mutex guards both registration and lookup; at human
// input rates the contention this adds to the resolver's hot path is
// immaterial, and a coarse lock is simpler than proving the running phase
// never races with a stray late registration (spec.md §3 invariant
// "Rule-store mutation happens only in the registration phase").
type RuleStore struct {
	mu sync.Mutex

	remaps      map[buttontype.Button][]RemapHook
	onPress     map[buttontype.Button][]HotkeyHook
	onRelease   map[buttontype.Button][]HotkeyHook
	wheelHooks  []MouseHook
	cursorHooks []MouseHook
}

// NewRuleStore returns an empty store.
func NewRuleStore() *RuleStore {
	return &RuleStore{
		remaps:    make(map[buttontype.Button][]RemapHook),
		onPress:   make(map[buttontype.Button][]HotkeyHook),
		onRelease: make(map[buttontype.Button][]HotkeyHook),
	}
}

// RegisterRemap appends a RemapHook for button. All are evaluated in
// registration order; the spec does not enforce "last wins" (spec.md §3).
func (s *RuleStore) RegisterRemap(button buttontype.Button, hook RemapHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remaps[button] = append(s.remaps[button], hook)
}

// RegisterOnPress appends a HotkeyHook that fires on Press of button.
func (s *RuleStore) RegisterOnPress(button buttontype.Button, hook HotkeyHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onPress[button] = append(s.onPress[button], hook)
}

// RegisterOnRelease appends a HotkeyHook that fires on Release of button.
func (s *RuleStore) RegisterOnRelease(button buttontype.Button, hook HotkeyHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRelease[button] = append(s.onRelease[button], hook)
}

// RegisterWheel appends a MouseHook that fires for every WheelEvent.
func (s *RuleStore) RegisterWheel(hook MouseHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wheelHooks = append(s.wheelHooks, hook)
}

// RegisterCursor appends a MouseHook that fires for every CursorEvent.
func (s *RuleStore) RegisterCursor(hook MouseHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursorHooks = append(s.cursorHooks, hook)
}

// RemapsFor returns, in registration order, the remap hooks installed for
// button.
func (s *RuleStore) RemapsFor(button buttontype.Button) []RemapHook {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaps[button]
}

// OnPressFor returns, in registration order, the on-press hooks installed
// for button.
func (s *RuleStore) OnPressFor(button buttontype.Button) []HotkeyHook {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.onPress[button]
}

// OnReleaseFor returns, in registration order, the on-release hooks
// installed for button.
func (s *RuleStore) OnReleaseFor(button buttontype.Button) []HotkeyHook {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.onRelease[button]
}

// WheelHooks returns every registered wheel hook in registration order.
func (s *RuleStore) WheelHooks() []MouseHook {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wheelHooks
}

// CursorHooks returns every registered cursor hook in registration order.
func (s *RuleStore) CursorHooks() []MouseHook {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursorHooks
}
