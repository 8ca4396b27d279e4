package engine

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Latch is the one-shot boolean shared between a press-time setter hook and
// one or more release-time consumer hooks (spec.md §3 "Activation latch").
// It is identified by a uuid purely for logging: when a registration
// expands into several hooks that share one latch, the id lets log lines
// from each of them be correlated without holding a pointer comparison in
// the log call site.
type Latch struct {
	id  uuid.UUID
	set atomic.Bool
}

// NewLatch returns a latch in the cleared state.
func NewLatch() *Latch {
	return &Latch{id: uuid.New()}
}

// ID returns the latch's diagnostic identifier.
func (l *Latch) ID() uuid.UUID { return l.id }

// Activate sets the latch to true.
func (l *Latch) Activate() { l.set.Store(true) }

// TestAndClear atomically reads the latch and resets it to false,
// implementing the one-shot semantics required by spec.md §3 and the S3
// end-to-end scenario: a fired release never re-fires without a fresh
// activation.
func (l *Latch) TestAndClear() bool {
	return l.set.Swap(false)
}
