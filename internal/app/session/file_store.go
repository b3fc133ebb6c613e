package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/trackboard/trackboard/internal/domain"
	"github.com/trackboard/trackboard/internal/ports"
)

// Compile-time interface check.
var _ ports.SessionStore = (*FileStore)(nil)

// Owner-only: the file holds the signed-in identity.
const (
	dirPerm  = 0o700
	filePerm = 0o600
)

// FileStore persists the session identity as a small JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore at path. An empty path defaults to
// $HOME/.config/trackboard/session.json.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, ".config", "trackboard", "session.json")
	}
	return &FileStore{path: path}, nil
}

// Path returns the state file location.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the persisted identity. Returns (nil, nil) when no state file
// exists.
func (f *FileStore) Load() (*domain.User, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.path, err)
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", f.path, err)
	}
	return &user, nil
}

// Save writes the identity, creating parent directories as needed.
func (f *FileStore) Save(u *domain.User) error {
	data, err := json.MarshalIndent(u, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), dirPerm); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	if err := os.WriteFile(f.path, data, filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", f.path, err)
	}
	return nil
}

// Clear removes the state file. A missing file is a no-op.
func (f *FileStore) Clear() error {
	err := os.Remove(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
