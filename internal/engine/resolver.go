package engine

import (
	"sync"

	"github.com/wailsapp/wails/v3/pkg/services/log"
)

// Resolver is the heart of the engine (spec.md §4.3). It is called
// synchronously, once per event, by a Bridge. It updates the tracker,
// scans the rule store, schedules matched callbacks on background
// goroutines, and returns a single NativeEventOperation verdict.
type Resolver struct {
	store    *RuleStore
	tracker  *ModifierTracker
	injector Injector
	logger   *log.LogService

	wg sync.WaitGroup // in-flight callback goroutines, drained at shutdown
}

// NewResolver ties a RuleStore snapshot, a ModifierTracker, and an
// Injector together. logger may be nil, in which case a standalone
// log.LogService is created the way the teacher's own tests do
// (log.New() with no running app).
func NewResolver(store *RuleStore, tracker *ModifierTracker, injector Injector, logger *log.LogService) *Resolver {
	if logger == nil {
		logger = log.New()
	}
	return &Resolver{store: store, tracker: tracker, injector: injector, logger: logger}
}

// Handle implements spec.md §4.3's algorithm for a single incoming Event.
func (r *Resolver) Handle(event Event) NativeEventOperation {
	switch {
	case event.Button != nil:
		return r.handleButton(*event.Button)
	case event.Wheel != nil:
		return r.handleWheel(*event.Wheel)
	case event.Cursor != nil:
		return r.handleCursor(*event.Cursor)
	default:
		// An event carrying none of the three shapes is a hook-source bug
		// the spec does not tolerate (spec.md §7 "Resolver internal
		// failures: none tolerated").
		panic("engine: resolver received an Event with no recognised shape")
	}
}

func (r *Resolver) handleButton(e ButtonEvent) NativeEventOperation {
	if e.Injected {
		return Dispatch
	}

	r.tracker.Set(e.Button, e.Action)

	for _, remap := range r.store.RemapsFor(e.Button) {
		if remap.Condition.IsSatisfied(r.tracker) {
			r.emitRemap(remap, e.Action)
			return Block
		}
	}

	var hooks []HotkeyHook
	if e.Action == Press {
		hooks = r.store.OnPressFor(e.Button)
	} else {
		hooks = r.store.OnReleaseFor(e.Button)
	}
	return r.runHooks(hooks, Event{Button: &e})
}

func (r *Resolver) handleWheel(e WheelEvent) NativeEventOperation {
	if e.Injected {
		return Dispatch
	}
	return r.runMouseHooks(r.store.WheelHooks(), Event{Wheel: &e})
}

func (r *Resolver) handleCursor(e CursorEvent) NativeEventOperation {
	if e.Injected {
		return Dispatch
	}
	return r.runMouseHooks(r.store.CursorHooks(), Event{Cursor: &e})
}

// runHooks scans hooks in registration order, schedules the callback of
// every one whose condition is satisfied, and combines their operations
// with Block-wins-OR (spec.md §4.3 step 5).
func (r *Resolver) runHooks(hooks []HotkeyHook, event Event) NativeEventOperation {
	verdict := Dispatch
	for _, hook := range hooks {
		if !hook.Condition.IsSatisfied(r.tracker) {
			continue
		}
		r.schedule(hook.Callback, event)
		if hook.Operation == Block {
			verdict = Block
		}
	}
	return verdict
}

func (r *Resolver) runMouseHooks(hooks []MouseHook, event Event) NativeEventOperation {
	verdict := Dispatch
	for _, hook := range hooks {
		if !hook.Condition.IsSatisfied(r.tracker) {
			continue
		}
		r.schedule(hook.Callback, event)
		if hook.Operation == Block {
			verdict = Block
		}
	}
	return verdict
}

// emitRemap synthesises the remap's target button action via the
// injector. The injector is expected to tag the emission so the Bridge
// short-circuits it on the way back in (spec.md §4.3 step 3).
func (r *Resolver) emitRemap(remap RemapHook, action ButtonAction) {
	var err error
	switch action {
	case Press:
		err = r.injector.Press(remap.Target)
	case Release:
		err = r.injector.Release(remap.Target)
	}
	if err != nil {
		r.logger.Error("remap emission failed", "target", string(remap.Target), "error", err)
	}
}

// schedule runs callback on a freshly spawned goroutine and never blocks
// the caller (spec.md §5 "Scheduling model"). A panicking callback is
// isolated and logged; it never propagates to the resolver
// (spec.md §7 "User callback panic/exception").
func (r *Resolver) schedule(callback Callback, event Event) {
	if callback == nil {
		return
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				r.logger.Error("hotkey callback panicked", "panic", rec)
			}
		}()
		callback.Invoke(event)
	}()
}

// Wait blocks until every callback goroutine spawned so far has returned.
// Used during shutdown so a process exit doesn't race in-flight user code.
func (r *Resolver) Wait() {
	r.wg.Wait()
}

// Tracker returns the ModifierTracker the resolver updates and evaluates
// conditions against.
func (r *Resolver) Tracker() *ModifierTracker { return r.tracker }
