package session

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// TokenStorage is the one durable piece of client state: a single bearer
// token string in a file readable only by the user.
type TokenStorage struct {
	path string
}

func NewTokenStorage(path string) *TokenStorage {
	return &TokenStorage{path: path}
}

// DefaultTokenPath resolves the token file under the user config directory.
func DefaultTokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "resolve config dir")
	}
	return filepath.Join(dir, "boardgame-collection", "token"), nil
}

// Load returns the persisted token, or "" when none is stored.
func (s *TokenStorage) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrap(err, "read token file")
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *TokenStorage) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "create token dir")
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return errors.Wrap(err, "write token file")
	}
	return nil
}

func (s *TokenStorage) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove token file")
	}
	return nil
}
