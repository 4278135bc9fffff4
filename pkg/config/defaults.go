package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default configuration values.
const (
	DefaultStorageBackend    = "file"
	DefaultSQLiteBusyTimeout = 5 * time.Second
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "console"
	DefaultDebounceInterval  = 250 * time.Millisecond
	DefaultMetricsListen     = "127.0.0.1:9464"
	DefaultMetricsNamespace  = "vfxnaming"
	DefaultMetricsSubsystem  = "session"
	DefaultGitBranch         = "main"
	DefaultGitTimeout        = 60 * time.Second
	DefaultGitAuthMethod     = "none"
)

// DefaultConfig returns a configuration with every default applied.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills zero-valued fields with defaults. Explicitly set
// values are never overwritten.
func ApplyDefaults(cfg *Config) {
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = DefaultStorageBackend
	}
	if cfg.Storage.SQLite.BusyTimeout <= 0 {
		cfg.Storage.SQLite.BusyTimeout = DefaultSQLiteBusyTimeout
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}

	if cfg.Watch.DebounceInterval <= 0 {
		cfg.Watch.DebounceInterval = DefaultDebounceInterval
	}

	if cfg.Metrics.ListenAddress == "" {
		cfg.Metrics.ListenAddress = DefaultMetricsListen
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Metrics.Subsystem == "" {
		cfg.Metrics.Subsystem = DefaultMetricsSubsystem
	}

	if cfg.Git.Branch == "" {
		cfg.Git.Branch = DefaultGitBranch
	}
	if cfg.Git.LocalPath == "" {
		cfg.Git.LocalPath = filepath.Join(os.TempDir(), "vfxnaming-conventions")
	}
	if cfg.Git.Timeout <= 0 {
		cfg.Git.Timeout = DefaultGitTimeout
	}
	if cfg.Git.Auth.Method == "" {
		cfg.Git.Auth.Method = DefaultGitAuthMethod
	}
}
