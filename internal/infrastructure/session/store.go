package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Fikriansyah-12/habitus-fe/internal/domain/entities"
)

// Store persists the operator session on disk so it survives a console
// restart. It keeps the three historical keys (user, authToken, userEmail)
// in a single JSON file.
//
// The store is the only cross-component mutable state in the console. It is
// written by login, logout and the auth-expired hook, and read by every
// backend client and the navigation guard, so access is mutex-guarded.
type Store struct {
	mu   sync.Mutex
	path string
	data sessionFile
}

type sessionFile struct {
	User      *entities.User `json:"user,omitempty"`
	AuthToken string         `json:"authToken,omitempty"`
	UserEmail string         `json:"userEmail,omitempty"`
}

// NewStore opens the session file at path, loading an existing session when
// one is present. Parent directories are created as needed.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("session: read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		// A corrupt session file means the operator logs in again.
		s.data = sessionFile{}
	}
	return s, nil
}

func (s *Store) SetUser(user entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.User = &user
	return s.persist()
}

func (s *Store) User() *entities.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data.User == nil {
		return nil
	}
	u := *s.data.User
	return &u
}

func (s *Store) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.AuthToken = token
	return s.persist()
}

func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.AuthToken
}

func (s *Store) SetEmail(email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.UserEmail = email
	return s.persist()
}

func (s *Store) Email() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.UserEmail
}

// Clear removes the whole session. Called on logout and when the backend
// rejects a previously valid token.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = sessionFile{}
	return s.persist()
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.AuthToken != ""
}

func (s *Store) persist() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("session: mkdir: %w", err)
	}
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("session: marshal: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("session: write %s: %w", s.path, err)
	}
	return nil
}
