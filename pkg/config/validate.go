package config

import (
	"fmt"
	"net"
)

var (
	validBackends       = map[string]bool{"file": true, "sqlite": true}
	validLogLevels      = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validLogFormats     = map[string]bool{"json": true, "text": true, "console": true}
	validGitAuthMethods = map[string]bool{"none": true, "token": true, "basic": true, "ssh": true}
)

// Validate checks the configuration for invalid values. It is called
// after defaults are applied, so zero values only appear where the
// user explicitly set them.
func Validate(cfg *Config) error {
	if !validBackends[cfg.Storage.Backend] {
		return fmt.Errorf("storage.backend %q is not supported (file, sqlite)", cfg.Storage.Backend)
	}

	if !validLogLevels[cfg.Logging.Level] {
		return fmt.Errorf("logging.level %q is not supported (debug, info, warn, error)", cfg.Logging.Level)
	}
	if !validLogFormats[cfg.Logging.Format] {
		return fmt.Errorf("logging.format %q is not supported (json, text, console)", cfg.Logging.Format)
	}

	if cfg.Watch.DebounceInterval < 0 {
		return fmt.Errorf("watch.debounce_interval must not be negative")
	}

	if cfg.Metrics.Enabled {
		if _, _, err := net.SplitHostPort(cfg.Metrics.ListenAddress); err != nil {
			return fmt.Errorf("metrics.listen_address %q is not host:port: %w", cfg.Metrics.ListenAddress, err)
		}
	}

	if !validGitAuthMethods[cfg.Git.Auth.Method] {
		return fmt.Errorf("git.auth.method %q is not supported (none, token, basic, ssh)", cfg.Git.Auth.Method)
	}
	if cfg.Git.Repository != "" {
		switch cfg.Git.Auth.Method {
		case "token":
			if cfg.Git.Auth.Token == "" {
				return fmt.Errorf("git.auth.token is required for the token method")
			}
		case "basic":
			if cfg.Git.Auth.Username == "" || cfg.Git.Auth.Password == "" {
				return fmt.Errorf("git.auth.username and git.auth.password are required for the basic method")
			}
		case "ssh":
			if cfg.Git.Auth.SSHKeyPath == "" {
				return fmt.Errorf("git.auth.ssh_key_path is required for the ssh method")
			}
		}
	}

	return nil
}
