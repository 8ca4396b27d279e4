// Package services hosts the orchestration layer that sits between the
// engine core (internal/engine) and a hosting program: configuration,
// lifecycle, and structured logging, in the same shape the teacher
// repository's services package provides for its own subsystems.
package services

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"hotkeyengine/internal/models"

	jsonparser "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/wailsapp/wails/v3/pkg/services/log"
)

// ConfigService owns the engine's persisted settings file, exactly the way
// the teacher's ConfigService owns the application's settings.json: koanf
// backed, JSON on disk, hot-reloaded via a file watch.
type ConfigService struct {
	koanf        *koanf.Koanf
	logger       *log.LogService
	configDir    string
	settingsPath string
	mu           sync.RWMutex
	fileProvider *file.File

	watchersMu sync.Mutex
	watchers   []func(old, new *models.EngineConfig)
}

// NewConfigService creates a config service rooted at
// ~/.hotkeyengine/config/settings.json.
func NewConfigService(logger *log.LogService) (*ConfigService, error) {
	if logger == nil {
		logger = log.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configDir := filepath.Join(homeDir, ".hotkeyengine", "config")
	settingsPath := filepath.Join(configDir, "settings.json")

	cs := &ConfigService{
		logger:       logger,
		configDir:    configDir,
		settingsPath: settingsPath,
		koanf:        koanf.New("."),
	}

	if err := cs.initConfig(); err != nil {
		return nil, err
	}
	cs.startWatching()
	return cs, nil
}

func (cs *ConfigService) setDefaults() error {
	return cs.koanf.Load(structs.Provider(models.NewDefaultEngineConfig(), "json"), nil)
}

func (cs *ConfigService) initConfig() error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if _, err := os.Stat(cs.settingsPath); os.IsNotExist(err) {
		return cs.createDefaultConfig()
	}

	cs.fileProvider = file.Provider(cs.settingsPath)
	return cs.koanf.Load(cs.fileProvider, jsonparser.Parser())
}

func (cs *ConfigService) createDefaultConfig() error {
	if err := os.MkdirAll(cs.configDir, 0755); err != nil {
		return err
	}
	if err := cs.setDefaults(); err != nil {
		return err
	}
	if err := cs.writeConfigToFile(); err != nil {
		return err
	}
	cs.fileProvider = file.Provider(cs.settingsPath)
	return cs.koanf.Load(cs.fileProvider, jsonparser.Parser())
}

func (cs *ConfigService) startWatching() {
	if cs.fileProvider == nil {
		return
	}
	cs.fileProvider.Watch(func(event interface{}, err error) {
		if err != nil {
			return
		}
		cs.mu.Lock()
		old, _ := cs.getConfigLocked()
		_ = cs.koanf.Load(cs.fileProvider, jsonparser.Parser())
		updated, _ := cs.getConfigLocked()
		cs.mu.Unlock()
		cs.notify(old, updated)
	})
}

func (cs *ConfigService) stopWatching() {
	if cs.fileProvider != nil {
		cs.fileProvider.Unwatch()
	}
}

// GetConfig returns the current engine configuration.
func (cs *ConfigService) GetConfig() (*models.EngineConfig, error) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.getConfigLocked()
}

func (cs *ConfigService) getConfigLocked() (*models.EngineConfig, error) {
	var config models.EngineConfig
	if err := cs.koanf.UnmarshalWithConf("", &config, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	return &config, nil
}

// Set updates a single config key, mirroring the teacher's flattened
// key/value Set.
func (cs *ConfigService) Set(key string, value interface{}) error {
	cs.mu.Lock()
	cs.koanf.Set(key, value)
	cs.koanf.Set("metadata.lastUpdated", time.Now().Format(time.RFC3339))
	err := cs.writeConfigToFile()
	cs.mu.Unlock()
	return err
}

func (cs *ConfigService) writeConfigToFile() error {
	configBytes, err := cs.koanf.Marshal(jsonparser.Parser())
	if err != nil {
		return err
	}
	return os.WriteFile(cs.settingsPath, configBytes, 0644)
}

// OnChange registers a callback invoked whenever the settings file changes
// on disk. It returns no cancel handle; config services are expected to
// live for the process lifetime, matching the engine's own lifecycle
// (spec.md §3 "Lifecycles").
func (cs *ConfigService) OnChange(fn func(old, new *models.EngineConfig)) {
	cs.watchersMu.Lock()
	defer cs.watchersMu.Unlock()
	cs.watchers = append(cs.watchers, fn)
}

func (cs *ConfigService) notify(old, updated *models.EngineConfig) {
	cs.watchersMu.Lock()
	defer cs.watchersMu.Unlock()
	for _, fn := range cs.watchers {
		fn(old, updated)
	}
}

// ServiceShutdown stops the file watcher, matching the teacher's
// ServiceShutdown convention for wails-bound services.
func (cs *ConfigService) ServiceShutdown() error {
	cs.stopWatching()
	return nil
}
