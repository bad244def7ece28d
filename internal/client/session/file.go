package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/digicard/admin-auth/internal/domain"
)

// FileStore persists the session slot as a JSON file, the closest
// filesystem analogue of a browser's local storage entry.
type FileStore struct {
	path string
}

// NewFileStore places the slot under dir, creating dir as needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileStore{path: filepath.Join(dir, StorageKey+".json")}, nil
}

func (s *FileStore) Get() (domain.SessionUser, bool, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.SessionUser{}, false, nil
		}
		return domain.SessionUser{}, false, err
	}

	var u domain.SessionUser
	if err := json.Unmarshal(b, &u); err != nil {
		return domain.SessionUser{}, false, err
	}
	return u, true, nil
}

func (s *FileStore) Set(u domain.SessionUser) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o600)
}

func (s *FileStore) Remove() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil // idempotent
	}
	return err
}
