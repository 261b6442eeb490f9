package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore persists the session as a single JSON file. This is the
// on-device store: the file survives process restarts and is read on every
// cold start.
//
// Writes go through a temp file and an atomic rename so a crash mid-write
// leaves either the old session or the new one, never a torn blob.
type FileStore struct {
	path string
}

// NewFileStore creates a store rooted at path. The parent directory is
// created on the first Save.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("file store path required")
	}
	return &FileStore{path: path}, nil
}

// Save encodes the session and replaces the file contents.
func (f *FileStore) Save(_ context.Context, s *Session) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("session dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("session temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("session write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("session close: %w", err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("session rename: %w", err)
	}
	return nil
}

// Load reads and decodes the session file. A missing file is (nil, nil).
func (f *FileStore) Load(_ context.Context) (*Session, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("session read: %w", err)
	}
	return Decode(data)
}

// Clear removes the session file. A missing file is not an error.
func (f *FileStore) Clear(_ context.Context) error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session remove: %w", err)
	}
	return nil
}
