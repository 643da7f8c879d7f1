package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"wellness/backend/models"
)

// Store owns the single durable record holding the full snapshot. Callers
// must Load, mutate their local copy, then Save; the store performs no
// merging. Load and Save are guarded by a mutex, and Save replaces the whole
// document atomically via a rename.
type Store struct {
	path string
	mu   sync.Mutex
	seed *models.Snapshot
}

// New creates a store persisting to path. seed may be nil, in which case the
// built-in default dataset is used on first access.
func New(path string, seed *models.Snapshot) *Store {
	return &Store{path: path, seed: seed}
}

// Load returns the current snapshot. If no durable copy exists yet, or the
// existing one cannot be decoded, the seed snapshot is written and returned.
func (s *Store) Load() (*models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		return s.reseed()
	}

	var snap models.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return s.reseed()
	}
	if snap.Enrollments == nil {
		snap.Enrollments = make(map[string][]models.Enrollment)
	}
	return &snap, nil
}

// Save serializes and overwrites the entire durable record.
func (s *Store) Save(snap *models.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(snap)
}

func (s *Store) reseed() (*models.Snapshot, error) {
	snap := s.seedSnapshot()
	if err := s.write(snap); err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *Store) seedSnapshot() *models.Snapshot {
	if s.seed != nil {
		clone, err := cloneSnapshot(s.seed)
		if err == nil {
			return clone
		}
	}
	return DefaultSnapshot()
}

func (s *Store) write(snap *models.Snapshot) error {
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".wellness-db-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// cloneSnapshot deep-copies through JSON so the configured seed is never
// handed out by reference.
func cloneSnapshot(snap *models.Snapshot) (*models.Snapshot, error) {
	raw, err := json.Marshal(snap)
	if err != nil {
		return nil, err
	}
	var clone models.Snapshot
	if err := json.Unmarshal(raw, &clone); err != nil {
		return nil, err
	}
	if clone.Enrollments == nil {
		clone.Enrollments = make(map[string][]models.Enrollment)
	}
	return &clone, nil
}
