package engine

import (
	"sync"

	"hotkeyengine/internal/buttontype"
)

// ModifierTracker is the process-wide button->pressed map. Event rates are
// bounded by human input (spec.md §4.2 puts an upper bound around 200
// events/s), so a coarse RWMutex is sufficient; there is no need for a
// lock-free map.
type ModifierTracker struct {
	mu      sync.RWMutex
	pressed map[buttontype.Button]bool
}

// NewModifierTracker returns a tracker with every button Released.
func NewModifierTracker() *ModifierTracker {
	return &ModifierTracker{pressed: make(map[buttontype.Button]bool)}
}

// Set records the effect of a raw ButtonEvent on button. It is idempotent:
// repeated presses without an intervening release leave the state
// unchanged, satisfying the OS-level key-repeat invariant in spec.md §3.
func (t *ModifierTracker) Set(button buttontype.Button, action ButtonAction) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pressed[button] = action == Press
}

// IsPressed reports whether button is currently held down.
func (t *ModifierTracker) IsPressed(button buttontype.Button) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.pressed[button]
}

// Snapshot returns the set of currently pressed buttons. It is used only
// for diagnostics/tests; the resolver itself never needs a full snapshot.
func (t *ModifierTracker) Snapshot() map[buttontype.Button]bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[buttontype.Button]bool, len(t.pressed))
	for b, v := range t.pressed {
		if v {
			out[b] = true
		}
	}
	return out
}
