// Package session persists the bearer token issued by Account/Token.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Token is the opaque bearer string. The server decides whether it is valid.
type Token string

// Store reads and writes the token file
type Store struct {
	Path string
}

// NewStore creates a store for the given path
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load returns the saved token, or an empty token when no file exists.
func (s *Store) Load() (Token, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read token: %w", err)
	}

	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return "", fmt.Errorf("decode token %s: %w", s.Path, err)
	}

	return Token(token), nil
}

// Save overwrites the token file. The write goes to a temp file in the same
// directory which is then renamed over the target.
func (s *Store) Save(token Token) error {
	data, err := json.Marshal(string(token))
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".token-*")
	if err != nil {
		return fmt.Errorf("create temp token: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write token: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpPath, s.Path)
}
