package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
)

// TokenStore persists the OAuth token as a JSON file. The file is chmod 0600
// since it holds credentials.
type TokenStore struct {
	path string
}

func NewTokenStore(path string) *TokenStore {
	return &TokenStore{path: path}
}

// Load reads the stored token. A missing or corrupted file yields (nil, nil)
// so the caller falls through to a fresh authorization.
func (s *TokenStore) Load() (*oauth2.Token, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading token file: %w", err)
	}

	var t oauth2.Token
	if err := json.Unmarshal(b, &t); err != nil {
		log.Printf("token file %s is corrupted, ignoring: %v", s.path, err)
		return nil, nil
	}
	if t.AccessToken == "" && t.RefreshToken == "" {
		return nil, nil
	}
	return &t, nil
}

// Save writes the token, creating the parent directory when needed.
func (s *TokenStore) Save(t *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating token dir: %w", err)
	}
	b, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding token: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o600); err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}
	return nil
}

// Clear removes the stored token.
func (s *TokenStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing token file: %w", err)
	}
	return nil
}
