package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// TokenKey is the credential key under which the session token is stored.
const TokenKey = "token"

// Store provides read-only access to persisted credentials.
// The API client only ever reads; writing is the login flow's job.
type Store interface {
	Get(key string) (string, bool)
}

// StaticStore is a fixed, in-memory credential set. Useful when the token
// comes from configuration, and for tests.
type StaticStore map[string]string

// Get returns the credential for key, if present and non-empty.
func (s StaticStore) Get(key string) (string, bool) {
	value, ok := s[key]
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// FileStore persists credentials as a JSON object in a single file.
// Reads go to disk on every call so that a token written by a concurrent
// login is picked up without restarting.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed credential store at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns the standard credentials file location (~/.pixctl/credentials.json).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".pixctl", "credentials.json"), nil
}

// Get returns the credential for key, if present and non-empty.
func (s *FileStore) Get(key string) (string, bool) {
	creds, err := s.read()
	if err != nil {
		return "", false
	}
	value, ok := creds[key]
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// Set writes the credential for key, creating the file if needed.
func (s *FileStore) Set(key, value string) error {
	creds, err := s.read()
	if err != nil {
		return err
	}
	if creds == nil {
		creds = make(map[string]string)
	}
	creds[key] = value
	return s.write(creds)
}

// Delete removes the credential for key. Deleting a missing key is not an error.
func (s *FileStore) Delete(key string) error {
	creds, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := creds[key]; !ok {
		return nil
	}
	delete(creds, key)
	return s.write(creds)
}

func (s *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	var creds map[string]string
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}
	return creds, nil
}

func (s *FileStore) write(creds map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create credentials directory: %w", err)
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}
	return nil
}
