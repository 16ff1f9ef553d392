package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/akhhatar/e-voting-project/domain"
)

// MemoryStore implements domain.ElectionStore in process memory. It keeps the
// same serialize-on-every-access contract as the persistent store, so callers
// never share live references with it.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemoryStore creates an empty, unseeded store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// Init implements domain.ElectionStore
func (s *MemoryStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	seeds := map[string]string{
		keyUsers:      "{}",
		keyParties:    "[]",
		keyCandidates: "[]",
	}
	for key, value := range seeds {
		if _, ok := s.data[key]; !ok {
			s.data[key] = value
		}
	}
	return nil
}

// GetUsers implements domain.ElectionStore
func (s *MemoryStore) GetUsers(ctx context.Context) (map[string]*domain.Voter, error) {
	users := make(map[string]*domain.Voter)
	if err := s.get(keyUsers, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = make(map[string]*domain.Voter)
	}
	return users, nil
}

// PutUsers implements domain.ElectionStore
func (s *MemoryStore) PutUsers(ctx context.Context, users map[string]*domain.Voter) error {
	return s.put(keyUsers, users)
}

// GetParties implements domain.ElectionStore
func (s *MemoryStore) GetParties(ctx context.Context) ([]domain.Party, error) {
	var parties []domain.Party
	if err := s.get(keyParties, &parties); err != nil {
		return nil, err
	}
	return parties, nil
}

// PutParties implements domain.ElectionStore
func (s *MemoryStore) PutParties(ctx context.Context, parties []domain.Party) error {
	return s.put(keyParties, parties)
}

// GetCandidates implements domain.ElectionStore
func (s *MemoryStore) GetCandidates(ctx context.Context) ([]domain.Candidate, error) {
	var candidates []domain.Candidate
	if err := s.get(keyCandidates, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

// PutCandidates implements domain.ElectionStore
func (s *MemoryStore) PutCandidates(ctx context.Context, candidates []domain.Candidate) error {
	return s.put(keyCandidates, candidates)
}

func (s *MemoryStore) get(key string, out any) error {
	s.mu.Lock()
	raw, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

func (s *MemoryStore) put(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	s.mu.Lock()
	s.data[key] = string(data)
	s.mu.Unlock()
	return nil
}

// Compile-time interface compliance verification
var _ domain.ElectionStore = (*MemoryStore)(nil)
