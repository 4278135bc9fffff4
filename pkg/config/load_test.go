package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := writeConfig(t, `
repo: /projects/naming

storage:
  backend: sqlite
  sqlite:
    path: /projects/naming/naming.db

logging:
  level: debug
  format: json

watch:
  enabled: true
  debounce_interval: 500ms

autosave:
  schedule: "*/5 * * * *"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Repo != "/projects/naming" {
		t.Errorf("repo = %q", cfg.Repo)
	}
	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("backend = %q", cfg.Storage.Backend)
	}
	if cfg.Storage.SQLite.Path != "/projects/naming/naming.db" {
		t.Errorf("sqlite path = %q", cfg.Storage.SQLite.Path)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %q/%q", cfg.Logging.Level, cfg.Logging.Format)
	}
	if !cfg.Watch.Enabled || cfg.Watch.DebounceInterval != 500*time.Millisecond {
		t.Errorf("watch = %v/%v", cfg.Watch.Enabled, cfg.Watch.DebounceInterval)
	}
	if cfg.Autosave.Schedule != "*/5 * * * *" {
		t.Errorf("autosave schedule = %q", cfg.Autosave.Schedule)
	}
}

func TestLoadConfig_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, `repo: /projects/naming`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Storage.Backend != DefaultStorageBackend {
		t.Errorf("backend = %q, want default %q", cfg.Storage.Backend, DefaultStorageBackend)
	}
	if cfg.Logging.Level != DefaultLogLevel {
		t.Errorf("level = %q, want default %q", cfg.Logging.Level, DefaultLogLevel)
	}
	if cfg.Logging.Format != DefaultLogFormat {
		t.Errorf("format = %q, want default %q", cfg.Logging.Format, DefaultLogFormat)
	}
	if cfg.Watch.DebounceInterval != DefaultDebounceInterval {
		t.Errorf("debounce = %v, want default %v", cfg.Watch.DebounceInterval, DefaultDebounceInterval)
	}
	if cfg.Metrics.ListenAddress != DefaultMetricsListen {
		t.Errorf("metrics listen = %q, want default %q", cfg.Metrics.ListenAddress, DefaultMetricsListen)
	}
	if cfg.Git.Branch != DefaultGitBranch {
		t.Errorf("git branch = %q, want default %q", cfg.Git.Branch, DefaultGitBranch)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := writeConfig(t, "logging: [not, a, mapping")
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for malformed YAML")
	}

	path = writeConfig(t, "storage:\n  backend: postgres\n")
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected validation error for unknown backend")
	}
}

func TestLoadConfigWithEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
repo: /from/file
logging:
  level: info
`)

	t.Setenv("VFXNAMING_REPO", "/from/env")
	t.Setenv("VFXNAMING_LOGGING_LEVEL", "debug")
	t.Setenv("VFXNAMING_WATCH_ENABLED", "true")
	t.Setenv("VFXNAMING_WATCH_DEBOUNCE_INTERVAL", "1s")

	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Repo != "/from/env" {
		t.Errorf("repo = %q, env must win", cfg.Repo)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, env must win", cfg.Logging.Level)
	}
	if !cfg.Watch.Enabled || cfg.Watch.DebounceInterval != time.Second {
		t.Errorf("watch = %v/%v", cfg.Watch.Enabled, cfg.Watch.DebounceInterval)
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}
	if cfg.Storage.Backend != DefaultStorageBackend {
		t.Errorf("backend = %q, want default", cfg.Storage.Backend)
	}
}
