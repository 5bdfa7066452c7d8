package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore keeps uploads on disk; the HTTP layer serves them back
// under /media/.
type LocalStore struct {
	BasePath string
}

func NewLocalStore(basePath string) *LocalStore {
	return &LocalStore{BasePath: basePath}
}

func (s *LocalStore) Put(key string, data []byte, contentType string) (string, error) {
	cleaned, err := s.resolve(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(cleaned), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(cleaned, data, 0o644); err != nil {
		return "", err
	}
	return "/media/" + key, nil
}

// Open returns the on-disk path for a key, refusing escapes from the
// base directory.
func (s *LocalStore) Open(key string) (string, error) {
	return s.resolve(key)
}

func (s *LocalStore) resolve(key string) (string, error) {
	cleaned := filepath.Join(s.BasePath, filepath.FromSlash(key))
	base, err := filepath.Abs(s.BasePath)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(cleaned)
	if err != nil {
		return "", err
	}
	if abs != base && !strings.HasPrefix(abs, base+string(filepath.Separator)) {
		return "", errors.New("invalid storage key")
	}
	return cleaned, nil
}
