package models

import "testing"

func TestNewDefaultEngineConfig(t *testing.T) {
	cfg := NewDefaultEngineConfig()

	if cfg.DefaultOperation != DefaultDispatch {
		t.Errorf("DefaultOperation = %v, want DefaultDispatch", cfg.DefaultOperation)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.InstallTimeoutMillis != 2000 {
		t.Errorf("InstallTimeoutMillis = %d, want 2000", cfg.InstallTimeoutMillis)
	}
	if cfg.Metadata.Version == "" {
		t.Error("Metadata.Version should not be empty")
	}
	if cfg.Metadata.LastUpdated == "" {
		t.Error("Metadata.LastUpdated should not be empty")
	}
}
