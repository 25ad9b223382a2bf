package session

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileRepository persists each key as its own file under a state directory,
// so every key is written and removed independently. Files are 0600 since one
// of them holds the bearer token.
type FileRepository struct {
	dir string
}

// NewFileRepository creates a repository rooted at dir. The directory is
// created on first write, not here, so a read-only startup never fails.
func NewFileRepository(dir string) *FileRepository {
	return &FileRepository{dir: dir}
}

// Get returns the value for key and whether it was present
func (r *FileRepository) Get(key string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(r.dir, key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Set writes the value for key via a temp file and rename so a crash never
// leaves a half-written key behind
func (r *FileRepository) Set(key, value string) error {
	if err := os.MkdirAll(r.dir, 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	path := filepath.Join(r.dir, key)
	tmp, err := os.CreateTemp(r.dir, key+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("chmod %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", key, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("persist %s: %w", key, err)
	}

	return nil
}

// Delete removes the key's file; an absent file is not an error
func (r *FileRepository) Delete(key string) {
	_ = os.Remove(filepath.Join(r.dir, key))
}

// Compile-time verification
var _ Repository = (*FileRepository)(nil)
