package engine

import (
	"sync/atomic"
	"testing"

	"hotkeyengine/internal/buttontype"
)

func newTestResolver() (*Resolver, *RuleStore, *ModifierTracker, *Registrar, *NoopRawInjector) {
	store := NewRuleStore()
	tracker := NewModifierTracker()
	inversions := buttontype.NewInversionSet()
	raw := &NoopRawInjector{}
	injector := NewTaggingInjector(raw)
	resolver := NewResolver(store, tracker, injector, nil)
	registrar := NewRegistrar(store, tracker, inversions)
	return resolver, store, tracker, registrar, raw
}

// S1 — simple remap.
func TestResolverSimpleRemap(t *testing.T) {
	resolver, _, tracker, registrar, raw := newTestResolver()

	if err := registrar.Remap([]buttontype.Button{buttontype.A}, buttontype.B); err != nil {
		t.Fatalf("Remap: %v", err)
	}

	verdict := resolver.Handle(ButtonEvt(buttontype.A, Press, false))
	resolver.Wait()

	if verdict != Block {
		t.Errorf("verdict = %v, want Block", verdict)
	}
	if !tracker.IsPressed(buttontype.A) {
		t.Error("tracker should record A as pressed")
	}
	if len(raw.Sent) != 1 || raw.Sent[0].Button != buttontype.B || raw.Sent[0].Action != Press || !raw.Sent[0].Injected {
		t.Errorf("expected one tagged Press(B) emission, got %v", raw.Sent)
	}
}

// S2 — modifier press.
func TestResolverModifierPress(t *testing.T) {
	resolver, _, _, registrar, _ := newTestResolver()

	var calls int32
	scoped := registrar.AddModifierKeys(buttontype.AnyShift)
	if err := scoped.OnPress([]buttontype.Button{buttontype.Q}, CallbackFunc(func(Event) {
		atomic.AddInt32(&calls, 1)
	})); err != nil {
		t.Fatalf("OnPress: %v", err)
	}

	v1 := resolver.Handle(ButtonEvt(buttontype.LShift, Press, false))
	v2 := resolver.Handle(ButtonEvt(buttontype.Q, Press, false))
	resolver.Wait()

	if v1 != Dispatch || v2 != Dispatch {
		t.Errorf("verdicts = %v, %v, want Dispatch, Dispatch", v1, v2)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Errorf("callback invoked %d times, want 1", calls)
	}
}

// S3 — modifier-gated release (activation latch).
func TestResolverModifierGatedRelease(t *testing.T) {
	resolver, _, _, registrar, _ := newTestResolver()

	var calls int32
	scoped := registrar.AddModifierKeys(buttontype.Aggregate(buttontype.LCtrl))
	if err := scoped.OnRelease([]buttontype.Button{buttontype.Space}, CallbackFunc(func(Event) {
		atomic.AddInt32(&calls, 1)
	})); err != nil {
		t.Fatalf("OnRelease: %v", err)
	}

	resolver.Handle(ButtonEvt(buttontype.LCtrl, Press, false))
	resolver.Handle(ButtonEvt(buttontype.Space, Press, false))
	resolver.Wait()
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatalf("callback must not fire before any release, got %d calls", calls)
	}

	resolver.Handle(ButtonEvt(buttontype.LCtrl, Release, false))
	resolver.Wait()
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("callback should fire exactly once on release of LCtrl, got %d calls", calls)
	}

	resolver.Handle(ButtonEvt(buttontype.Space, Release, false))
	resolver.Wait()
	if atomic.LoadInt32(&calls) != 1 {
		t.Errorf("a later release of Space must not re-fire the consumed latch, got %d calls", calls)
	}
}

// S4 — block wins.
func TestResolverBlockWins(t *testing.T) {
	resolver, _, _, registrar, _ := newTestResolver()

	var dispatchCalls, blockCalls int32
	dispatching := registrar.ChangeNativeEventOperation(Dispatch)
	blocking := registrar.ChangeNativeEventOperation(Block)

	if err := dispatching.OnPress([]buttontype.Button{buttontype.A}, CallbackFunc(func(Event) {
		atomic.AddInt32(&dispatchCalls, 1)
	})); err != nil {
		t.Fatalf("OnPress dispatch: %v", err)
	}
	if err := blocking.OnPress([]buttontype.Button{buttontype.A}, CallbackFunc(func(Event) {
		atomic.AddInt32(&blockCalls, 1)
	})); err != nil {
		t.Fatalf("OnPress block: %v", err)
	}

	verdict := resolver.Handle(ButtonEvt(buttontype.A, Press, false))
	resolver.Wait()

	if verdict != Block {
		t.Errorf("verdict = %v, want Block", verdict)
	}
	if atomic.LoadInt32(&dispatchCalls) != 1 || atomic.LoadInt32(&blockCalls) != 1 {
		t.Errorf("both hooks should be scheduled regardless of the winning verdict, got dispatch=%d block=%d", dispatchCalls, blockCalls)
	}
}

// S5 — injected loopback.
func TestResolverInjectedLoopback(t *testing.T) {
	resolver, _, tracker, registrar, _ := newTestResolver()

	var calls int32
	if err := registrar.OnPress([]buttontype.Button{buttontype.B}, CallbackFunc(func(Event) {
		atomic.AddInt32(&calls, 1)
	})); err != nil {
		t.Fatalf("OnPress: %v", err)
	}

	verdict := resolver.Handle(ButtonEvt(buttontype.B, Press, true))
	resolver.Wait()

	if verdict != Dispatch {
		t.Errorf("verdict = %v, want Dispatch for an injected event", verdict)
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Errorf("user callback must not fire for an injected event, got %d calls", calls)
	}
	if tracker.IsPressed(buttontype.B) {
		t.Error("an injected event must not mutate the modifier tracker")
	}
}

// S6 — disable.
func TestResolverDisable(t *testing.T) {
	resolver, _, _, registrar, _ := newTestResolver()

	if err := registrar.Disable([]buttontype.Button{buttontype.F1}); err != nil {
		t.Fatalf("Disable: %v", err)
	}

	v1 := resolver.Handle(ButtonEvt(buttontype.F1, Press, false))
	v2 := resolver.Handle(ButtonEvt(buttontype.F1, Release, false))
	resolver.Wait()

	if v1 != Block || v2 != Block {
		t.Errorf("verdicts = %v, %v, want Block, Block", v1, v2)
	}
}

func TestResolverWheelAndCursorDispatchByDefault(t *testing.T) {
	resolver, _, _, _, _ := newTestResolver()

	if v := resolver.Handle(WheelEvt(1, false)); v != Dispatch {
		t.Errorf("unregistered wheel event verdict = %v, want Dispatch", v)
	}
	if v := resolver.Handle(CursorEvt(1, 1, false)); v != Dispatch {
		t.Errorf("unregistered cursor event verdict = %v, want Dispatch", v)
	}
}

func TestResolverCallbackPanicIsRecovered(t *testing.T) {
	resolver, _, _, registrar, _ := newTestResolver()

	if err := registrar.OnPress([]buttontype.Button{buttontype.A}, CallbackFunc(func(Event) {
		panic("boom")
	})); err != nil {
		t.Fatalf("OnPress: %v", err)
	}

	verdict := resolver.Handle(ButtonEvt(buttontype.A, Press, false))
	resolver.Wait()

	if verdict != Dispatch {
		t.Errorf("verdict = %v, want Dispatch", verdict)
	}
}
