package engine

import (
	"errors"
	"testing"

	"hotkeyengine/internal/buttontype"
)

// fakeHookSource is a minimal HookSource test double: Install records the
// callback, Run/Uninstall just report whether they were called.
type fakeHookSource struct {
	onEvent         func(Event) NativeEventOperation
	installErr      error
	runCalled       bool
	uninstallCalled bool
}

func (f *fakeHookSource) Install(onEvent func(Event) NativeEventOperation) error {
	if f.installErr != nil {
		return f.installErr
	}
	f.onEvent = onEvent
	return nil
}

func (f *fakeHookSource) Run() error {
	f.runCalled = true
	return nil
}

func (f *fakeHookSource) Uninstall() error {
	f.uninstallCalled = true
	return nil
}

func TestBridgeForwardsToResolver(t *testing.T) {
	store := NewRuleStore()
	tracker := NewModifierTracker()
	raw := &NoopRawInjector{}
	resolver := NewResolver(store, tracker, NewTaggingInjector(raw), nil)
	source := &fakeHookSource{}
	bridge := NewBridge(source, resolver)

	if err := bridge.Install(); err != nil {
		t.Fatalf("Install: %v", err)
	}
	if source.onEvent == nil {
		t.Fatal("Install must hand the bridge's callback to the source")
	}

	verdict := source.onEvent(ButtonEvt(buttontype.A, Press, false))
	if verdict != Dispatch {
		t.Errorf("verdict = %v, want Dispatch for an unregistered button", verdict)
	}

	if err := bridge.Run(); err != nil || !source.runCalled {
		t.Error("Run must delegate to the source")
	}
	if err := bridge.Uninstall(); err != nil || !source.uninstallCalled {
		t.Error("Uninstall must delegate to the source")
	}
}

func TestBridgeInstallPropagatesError(t *testing.T) {
	store := NewRuleStore()
	tracker := NewModifierTracker()
	raw := &NoopRawInjector{}
	resolver := NewResolver(store, tracker, NewTaggingInjector(raw), nil)
	wantErr := errors.New("native hook install failed")
	source := &fakeHookSource{installErr: wantErr}
	bridge := NewBridge(source, resolver)

	if err := bridge.Install(); !errors.Is(err, wantErr) {
		t.Errorf("Install() = %v, want %v", err, wantErr)
	}
}
