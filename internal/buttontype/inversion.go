package buttontype

import "sync"

// InversionSet tracks which Buttons have been registered as "inversion"
// targets: buttons for which an OnPress registration should silently
// install an OnRelease hook (and vice-versa), grounded on hookmap's
// button_arg.rs ButtonArgTag. Remapping an inversion-tagged button is a
// programmer error and must be rejected at registration time (spec.md §6).
type InversionSet struct {
	mu  sync.RWMutex
	set map[Button]bool
}

// NewInversionSet returns an empty set.
func NewInversionSet() *InversionSet {
	return &InversionSet{set: make(map[Button]bool)}
}

// Mark tags button as an inversion target.
func (s *InversionSet) Mark(button Button) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set[button] = true
}

// Is reports whether button has been tagged as an inversion target.
func (s *InversionSet) Is(button Button) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set[button]
}
