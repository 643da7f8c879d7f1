package store

import (
	"encoding/json"
	"os"
	"sync"

	"wellness/backend/models"
)

// SessionRecord is the "current session" persisted after a successful login:
// the issued bearer token plus the profile it was issued for. It lives outside
// the snapshot. Handlers never trust this record for authorization; identity
// always comes from verifying the token itself.
type SessionRecord struct {
	Token string                `json:"token"`
	User  models.SessionProfile `json:"user"`
}

// SessionStore persists the session record in its own small file, separate
// from the snapshot store.
type SessionStore struct {
	path string
	mu   sync.Mutex
}

func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// Save overwrites the current session record.
func (s *SessionStore) Save(token string, user models.SessionProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(SessionRecord{Token: token, User: user})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

// Current returns the persisted session, or nil when none exists.
func (s *SessionStore) Current() (*SessionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var rec SessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, nil
	}
	return &rec, nil
}

// Clear removes the session record.
func (s *SessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
