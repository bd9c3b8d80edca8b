// Package session persists the logged-in identity between runs: bearer
// token, email and the last-known patient profile. The store is an explicit
// object handed to whoever needs it; there is no ambient global state.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mindly/mindly-client/internal/types"
)

const fileName = "session.json"

// Session is what survives between runs. It is created on login or
// registration and only ever discarded client-side; there is no server
// logout call.
type Session struct {
	Token   string         `json:"token"`
	Email   string         `json:"email"`
	Role    string         `json:"role,omitempty"`
	Patient *types.Patient `json:"patient,omitempty"`
}

// Store reads and writes the session file under a base directory.
type Store struct {
	base string
}

// BaseDir returns the default data directory (~/.mindly).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".mindly"), nil
}

// NewStore creates a store rooted at base.
func NewStore(base string) *Store {
	return &Store{base: base}
}

func (s *Store) path() string { return filepath.Join(s.base, fileName) }

// Load returns the persisted session, or nil when none exists. A corrupt
// file is backed up and treated as no session rather than blocking login.
func (s *Store) Load() (*Session, error) {
	data, err := os.ReadFile(s.path())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session error reading %s: %w", s.path(), err)
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		backupPath := s.path() + ".corrupt"
		_ = os.Rename(s.path(), backupPath)
		return nil, nil
	}
	return &sess, nil
}

// Save atomically persists the session.
func (s *Store) Save(sess Session) error {
	if err := os.MkdirAll(s.base, 0o700); err != nil {
		return fmt.Errorf("session error creating directory: %w", err)
	}
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("session error marshalling JSON: %w", err)
	}

	// Atomic write: write to temp file then rename.
	tmpPath := s.path() + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("session error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path()); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("session error renaming temp file: %w", err)
	}
	return nil
}

// Clear removes the persisted session. Missing file is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("session error removing %s: %w", s.path(), err)
	}
	return nil
}

// Token implements the SDK's TokenSource: every authenticated request reads
// the current session. An absent session yields an empty token.
func (s *Store) Token() string {
	sess, err := s.Load()
	if err != nil || sess == nil {
		return ""
	}
	return sess.Token
}

// Email returns the logged-in email, or "" when no session exists.
func (s *Store) Email() string {
	sess, err := s.Load()
	if err != nil || sess == nil {
		return ""
	}
	return sess.Email
}
