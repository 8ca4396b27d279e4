package engine

import "hotkeyengine/internal/buttontype"

// OriginTag is the sentinel carried by every event the injector synthesises
// so the bridge can recognise, on the way back in from the OS, that the
// event is a loop-back rather than real user input (spec.md §4.4, §9
// "Loop-back suppression"). Its concrete value is opaque to the engine; a
// platform layer reserves whatever bit or field the native API allows and
// maps it to this bool before calling Resolver.Handle.
type OriginTag = bool

// HookSource is the abstract per-platform hook installation contract the
// engine sees (spec.md §1 "Out of scope" / §4.4). A concrete
// implementation lives outside the core engine (see internal/platform for
// a reference one); the engine only ever consumes the Bridge built on top
// of it.
type HookSource interface {
	// Install registers the bridge's callback with the OS. It must return
	// an error rather than panic if the native hook cannot be installed
	// (spec.md §7 "OS hook installation failure").
	Install(onEvent func(Event) NativeEventOperation) error

	// Run enters the OS event loop and blocks until it exits.
	Run() error

	// Uninstall tears the hook down.
	Uninstall() error
}

// Bridge is the synchronous callback surface between a HookSource and the
// Resolver. It must not block and must complete in bounded time
// (spec.md §4.4): callback scheduling happens inside Resolver.Handle but
// runs on spawned goroutines, never on this call path.
type Bridge struct {
	source   HookSource
	resolver *Resolver
}

// NewBridge ties a HookSource to a Resolver.
func NewBridge(source HookSource, resolver *Resolver) *Bridge {
	return &Bridge{source: source, resolver: resolver}
}

// Install registers the bridge with the OS via the underlying HookSource.
func (br *Bridge) Install() error {
	return br.source.Install(br.onEvent)
}

// Run blocks until the OS event loop exits.
func (br *Bridge) Run() error {
	return br.source.Run()
}

// Uninstall tears down the OS hook.
func (br *Bridge) Uninstall() error {
	return br.source.Uninstall()
}

// onEvent is the function passed to HookSource.Install. It does nothing
// but forward to the resolver; all engine-visible behavior lives there.
func (br *Bridge) onEvent(event Event) NativeEventOperation {
	return br.resolver.Handle(event)
}

// TaggedButtonEvent is a convenience constructor platform layers can use to
// build a ButtonEvent once they've inspected the origin tag of a raw OS
// event.
func TaggedButtonEvent(button buttontype.Button, action ButtonAction, injected OriginTag) Event {
	return ButtonEvt(button, action, injected)
}
