// internal/app/store/localstore/localstore.go

// Package localstore is a key → JSON document store over a single namespace
// directory. Each key maps to one file (<key>.json) and every Save is a
// whole-value overwrite, so readers always see a complete document.
//
// Readers must tolerate missing and malformed content: both are reported as
// "absent" so callers fall back to their defaults instead of failing startup
// on a corrupt file.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Store persists JSON documents under one namespace directory.
type Store struct {
	fs  afero.Fs
	dir string
	log *zap.Logger
	mu  sync.Mutex // serializes writers per process
}

// New opens (creating if needed) the namespace directory on the given
// filesystem. Pass afero.NewOsFs() in production and afero.NewMemMapFs()
// in tests.
func New(fs afero.Fs, dir string, logger *zap.Logger) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("localstore: empty data directory")
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localstore: create %s: %w", dir, err)
	}
	return &Store{fs: fs, dir: dir, log: logger}, nil
}

// Load reads the document stored under key into v. It returns false when the
// key is absent or its content cannot be decoded; corrupt content is logged
// and treated the same as absent.
func (s *Store) Load(key string, v any) (bool, error) {
	data, err := afero.ReadFile(s.fs, s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("localstore: read %q: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.log.Warn("localstore: discarding corrupt document",
			zap.String("key", key),
			zap.Error(err))
		return false, nil
	}
	return true, nil
}

// Save overwrites the document stored under key with v. The write goes to a
// temp file first and is renamed into place so a crash mid-write cannot leave
// a half-written document behind.
func (s *Store) Save(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("localstore: encode %q: %w", key, err)
	}

	tmp := s.path(key) + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("localstore: write %q: %w", key, err)
	}
	if err := s.fs.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("localstore: rename %q: %w", key, err)
	}
	return nil
}

// Delete removes the document stored under key. Deleting an absent key is a
// no-op.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("localstore: delete %q: %w", key, err)
	}
	return nil
}

// Ping verifies the namespace directory is still present and is a
// directory. Health checks use this as the storage probe.
func (s *Store) Ping() error {
	info, err := s.fs.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("localstore: stat %s: %w", s.dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("localstore: %s is not a directory", s.dir)
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
