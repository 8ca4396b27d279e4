// Package platform provides one concrete, reference HookSource and
// RawInjector pair for Windows, built the way the teacher's CGO-backed
// hotkey_service.go polls GetAsyncKeyState — except here it is a plain
// golang.org/x/sys/windows LazyDLL call, since the engine's HookSource
// contract (internal/engine/bridge.go) only needs press/release deltas,
// not RegisterHotKey's single-combination model.
//
// spec.md explicitly places per-platform hook installation out of the
// engine's core scope ("the engine sees only an abstract hook source and
// an abstract injector"); this package exists only to demonstrate one real
// wiring of that contract, not as a general-purpose platform layer.
package platform

import "errors"

// ErrPlatformUnavailable is returned by every PollingHookSource and
// WindowsInjector method on platforms this package has no concrete backing
// for, and by the Windows injector for a button with no virtual-key
// mapping, mirroring the teacher's hotkey.ErrPlatformUnavailable.
var ErrPlatformUnavailable = errors.New("platform: no hook source implementation for this OS")
