package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
	"github.com/obrakeo/vfxnaming/pkg/naming"
)

const settingActiveRule = "set_active_rule"

// SQLiteStore persists sessions in a single SQLite database file. The
// stored documents are the same tagged JSON the file format uses, so a
// database can always be exported back to a directory.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// SQLiteStoreConfig configures the SQLite store.
type SQLiteStoreConfig struct {
	// Path is the database file path.
	Path string

	// BusyTimeout is how long to wait for locks before failing.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

// NewSQLiteStore opens (creating if needed) a session database.
func NewSQLiteStore(cfg SQLiteStoreConfig) (*SQLiteStore, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("db path cannot be empty")
	}
	if cfg.BusyTimeout <= 0 {
		cfg.BusyTimeout = 5 * time.Second
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=%d&_synchronous=NORMAL",
		cfg.Path, int(cfg.BusyTimeout.Milliseconds()))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	store := &SQLiteStore{db: db, path: cfg.Path}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS tokens (
		name       TEXT PRIMARY KEY,
		data       TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS rules (
		name       TEXT PRIMARY KEY,
		data       TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT
	);`
	_, err := s.db.Exec(schema)
	return err
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string { return s.path }

// Backend implements Store.
func (s *SQLiteStore) Backend() string { return "sqlite" }

// Save implements Store. The whole session replaces the previous
// contents in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, session *naming.Session) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tokens`); err != nil {
		return fmt.Errorf("failed to clear tokens: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM rules`); err != nil {
		return fmt.Errorf("failed to clear rules: %w", err)
	}

	for _, tok := range session.Tokens() {
		data, err := naming.MarshalToken(tok)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO tokens (name, data) VALUES (?, ?)`,
			tok.Name(), string(data)); err != nil {
			return fmt.Errorf("failed to save token %q: %w", tok.Name(), err)
		}
	}
	for _, rule := range session.Rules() {
		data, err := naming.MarshalRule(rule)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO rules (name, data) VALUES (?, ?)`,
			rule.Name(), string(data)); err != nil {
			return fmt.Errorf("failed to save rule %q: %w", rule.Name(), err)
		}
	}

	var active sql.NullString
	if name := session.ActiveRuleName(); name != "" {
		active = sql.NullString{String: name, Valid: true}
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		settingActiveRule, active); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return tx.Commit()
}

// Load implements Store. Stored entities merge into the session,
// replacing same-named ones, then the active rule is re-applied.
func (s *SQLiteStore) Load(ctx context.Context, session *naming.Session) error {
	rows, err := s.db.QueryContext(ctx, `SELECT name, data FROM tokens`)
	if err != nil {
		return fmt.Errorf("failed to query tokens: %w", err)
	}
	if err := loadEntities(rows, func(data []byte) error {
		tok, err := naming.UnmarshalToken(data)
		if err != nil {
			return err
		}
		session.PutToken(tok)
		return nil
	}); err != nil {
		return err
	}

	rows, err = s.db.QueryContext(ctx, `SELECT name, data FROM rules`)
	if err != nil {
		return fmt.Errorf("failed to query rules: %w", err)
	}
	if err := loadEntities(rows, func(data []byte) error {
		rule, err := naming.UnmarshalRule(data)
		if err != nil {
			return err
		}
		session.PutRule(rule)
		return nil
	}); err != nil {
		return err
	}

	var active sql.NullString
	err = s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, settingActiveRule).Scan(&active)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to query settings: %w", err)
	}
	if active.Valid {
		session.SetActiveRule(active.String)
	}
	return nil
}

func loadEntities(rows *sql.Rows, put func(data []byte) error) error {
	defer rows.Close()
	for rows.Next() {
		var name, data string
		if err := rows.Scan(&name, &data); err != nil {
			return fmt.Errorf("failed to scan row: %w", err)
		}
		if err := put([]byte(data)); err != nil {
			return fmt.Errorf("failed to decode %q: %w", name, err)
		}
	}
	return rows.Err()
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func defaultSQLitePath(repo string) string {
	return filepath.Join(repo, "naming.db")
}
