package storage

import (
	"context"

	"github.com/obrakeo/vfxnaming/pkg/naming"
)

// FileStore persists sessions as a directory of JSON files, the
// canonical interchange format shared with other naming tools.
type FileStore struct {
	dir string
}

// NewFileStore creates a store over the given session directory.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the session directory.
func (f *FileStore) Dir() string { return f.dir }

// Backend implements Store.
func (f *FileStore) Backend() string { return "file" }

// Save implements Store.
func (f *FileStore) Save(ctx context.Context, s *naming.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.Save(f.dir)
}

// Load implements Store.
func (f *FileStore) Load(ctx context.Context, s *naming.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.Load(f.dir)
}

// Close implements Store. The file store holds no resources.
func (f *FileStore) Close() error { return nil }
