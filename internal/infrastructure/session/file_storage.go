package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStorage persists the session record as a single JSON file on disk.
// This is the default backend for single-machine deployments.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (f *FileStorage) Read(_ context.Context) ([]byte, error) {
	payload, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session file read: %w", err)
	}
	return payload, nil
}

func (f *FileStorage) Write(_ context.Context, payload []byte) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("session file write: %w", err)
	}
	if err := os.WriteFile(f.path, payload, 0o600); err != nil {
		return fmt.Errorf("session file write: %w", err)
	}
	return nil
}

func (f *FileStorage) Delete(_ context.Context) error {
	err := os.Remove(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("session file delete: %w", err)
	}
	return nil
}

// Ping verifies the backing directory can be created.
func (f *FileStorage) Ping(_ context.Context) error {
	return os.MkdirAll(filepath.Dir(f.path), 0o700)
}
