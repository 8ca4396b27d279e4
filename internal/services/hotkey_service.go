package services

import (
	"fmt"
	"sync"
	"sync/atomic"

	"hotkeyengine/internal/buttontype"
	"hotkeyengine/internal/engine"
	"hotkeyengine/internal/models"

	"github.com/wailsapp/wails/v3/pkg/services/log"
)

// HotkeyError wraps a hotkey-engine lifecycle failure with the operation
// that triggered it, the same shape as the teacher's HotkeyError
// (internal/services/hotkey_service.go in the repo this engine is built
// from).
type HotkeyError struct {
	Operation string
	Err       error
}

func (e *HotkeyError) Error() string {
	return fmt.Sprintf("hotkey %s: %v", e.Operation, e.Err)
}

func (e *HotkeyError) Unwrap() error { return e.Err }

// HotkeyService is the orchestration layer a hosting program talks to: it
// owns the rule store, the modifier tracker, the resolver, and the
// platform bridge, and exposes the spec.md §6 registration surface through
// the Registrar returned by its Registrar method until Install is called. It generalizes the
// teacher's single-combo HotkeyService into the full multi-hook engine
// described by this repository's spec.
type HotkeyService struct {
	logger        *log.LogService
	configService *ConfigService

	store      *engine.RuleStore
	tracker    *engine.ModifierTracker
	inversions *buttontype.InversionSet
	injector   engine.Injector
	resolver   *engine.Resolver
	bridge     *engine.Bridge
	registrar  *engine.Registrar

	mu      sync.RWMutex
	running atomic.Bool
}

// NewHotkeyService wires a HookSource and a RawInjector into a usable
// engine. logger defaults to a standalone log.New() the way the teacher's
// own tests construct services (hotkey_service_test.go).
func NewHotkeyService(configService *ConfigService, source engine.HookSource, rawInjector engine.RawInjector, logger *log.LogService) *HotkeyService {
	if logger == nil {
		logger = log.New()
	}

	store := engine.NewRuleStore()
	tracker := engine.NewModifierTracker()
	inversions := buttontype.NewInversionSet()
	injector := engine.NewTaggingInjector(rawInjector)
	resolver := engine.NewResolver(store, tracker, injector, logger)
	bridge := engine.NewBridge(source, resolver)
	registrar := engine.NewRegistrar(store, tracker, inversions)
	if configService != nil {
		if cfg, err := configService.GetConfig(); err == nil && cfg.DefaultOperation == models.DefaultBlock {
			registrar = registrar.ChangeNativeEventOperation(engine.Block)
		}
	}

	return &HotkeyService{
		logger:        logger,
		configService: configService,
		store:         store,
		tracker:       tracker,
		inversions:    inversions,
		injector:      injector,
		resolver:      resolver,
		bridge:        bridge,
		registrar:     registrar,
	}
}

// Registrar exposes the registration-phase builder. Calling any of its
// register_* methods after Install returns ErrAlreadyRunning.
func (hs *HotkeyService) Registrar() *engine.Registrar { return hs.registrar }

// MarkInversion tags button so that OnPress/OnRelease registrations
// against it are silently swapped (spec.md §6).
func (hs *HotkeyService) MarkInversion(button buttontype.Button) {
	hs.inversions.Mark(button)
}

// Injector exposes the tagging injector so user callbacks can synthesise
// further input (spec.md §4.5).
func (hs *HotkeyService) Injector() engine.Injector { return hs.injector }

// Install seals the registrar and registers the bridge with the OS. It
// must only be called once per HotkeyService instance.
func (hs *HotkeyService) Install() error {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	if hs.running.Load() {
		return &HotkeyError{"install", engine.ErrAlreadyRunning}
	}

	hs.registrar.Seal()
	if err := hs.bridge.Install(); err != nil {
		return &HotkeyError{"install", fmt.Errorf("%w: %v", engine.ErrHookInstallFailed, err)}
	}
	hs.running.Store(true)
	hs.logger.Info("hotkey engine installed")
	return nil
}

// Run enters the OS event loop via the underlying HookSource and blocks
// until it exits (spec.md §4.4 "run() enters the OS event loop").
func (hs *HotkeyService) Run() error {
	if !hs.running.Load() {
		return &HotkeyError{"run", fmt.Errorf("engine: Install must be called before Run")}
	}
	return hs.bridge.Run()
}

// Uninstall tears the hook down and waits for every in-flight callback
// goroutine to finish before returning.
func (hs *HotkeyService) Uninstall() error {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	if !hs.running.Load() {
		return nil
	}
	err := hs.bridge.Uninstall()
	hs.resolver.Wait()
	hs.running.Store(false)
	hs.logger.Info("hotkey engine uninstalled")
	if err != nil {
		return &HotkeyError{"uninstall", err}
	}
	return nil
}

// IsRunning reports whether Install has succeeded and Uninstall has not
// yet been called.
func (hs *HotkeyService) IsRunning() bool {
	return hs.running.Load()
}

// ServiceShutdown is the lifecycle hook a hosting wails application calls
// on exit, matching the teacher's ServiceShutdown convention across every
// service in internal/services.
func (hs *HotkeyService) ServiceShutdown() error {
	if err := hs.Uninstall(); err != nil {
		return err
	}
	if hs.configService != nil {
		return hs.configService.ServiceShutdown()
	}
	return nil
}
