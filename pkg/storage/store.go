package storage

import (
	"context"
	"fmt"

	"github.com/obrakeo/vfxnaming/pkg/config"
	"github.com/obrakeo/vfxnaming/pkg/naming"
)

// Store persists naming sessions. Implementations are safe for use by
// one goroutine at a time, matching the Session contract.
type Store interface {
	// Save persists every token and rule of the session plus its
	// active-rule setting, replacing previously stored contents.
	Save(ctx context.Context, s *naming.Session) error

	// Load restores stored entities into the session, replacing
	// same-named ones, then re-applies the stored settings.
	Load(ctx context.Context, s *naming.Session) error

	// Backend returns the backend name ("file", "sqlite") for
	// diagnostics and metrics labels.
	Backend() string

	// Close releases resources held by the store.
	Close() error
}

// Open constructs the store selected by the configuration. The repo
// argument is the resolved session repository directory; the sqlite
// backend defaults its database file to <repo>/naming.db.
func Open(cfg *config.StorageConfig, repo string) (Store, error) {
	switch cfg.Backend {
	case "file":
		return NewFileStore(repo), nil
	case "sqlite":
		path := cfg.SQLite.Path
		if path == "" {
			path = defaultSQLitePath(repo)
		}
		return NewSQLiteStore(SQLiteStoreConfig{
			Path:        path,
			BusyTimeout: cfg.SQLite.BusyTimeout,
		})
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
