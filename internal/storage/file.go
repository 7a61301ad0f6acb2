package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore persists each blob as one JSON file under a data directory.
// It is the default backend and needs no external service: the file per key
// plays the role a browser's local storage plays for the reference
// implementation.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and returns a store
// writing into it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// path maps a blob key to its file.  Keys are fixed constants, never user
// input, so no escaping is applied.
func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get returns the stored value or ErrNoBlob when the file does not exist.
func (s *FileStore) Get(key string) ([]byte, error) {
	b, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoBlob
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Set replaces the value under key.  The write goes through a temp file and
// rename so a crash mid-write never leaves a half-written blob behind.
func (s *FileStore) Set(key string, value []byte) error {
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(key))
}

// Delete removes the blob.  Deleting a key that was never written is not an
// error.
func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
