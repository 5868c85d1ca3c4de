package session

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *FileStore) Remove() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryStore keeps the token for the lifetime of the process only.
type MemoryStore struct {
	token string
}

func (s *MemoryStore) Load() (string, error) { return s.token, nil }

func (s *MemoryStore) Save(token string) error {
	s.token = token
	return nil
}

func (s *MemoryStore) Remove() error {
	s.token = ""
	return nil
}
