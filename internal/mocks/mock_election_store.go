package mocks

import (
	"context"

	"github.com/akhhatar/e-voting-project/domain"
)

// MockElectionStore implements domain.ElectionStore for testing. Defaults
// behave like a freshly seeded store: empty users map, empty lists.
type MockElectionStore struct {
	InitFunc          func(ctx context.Context) error
	GetUsersFunc      func(ctx context.Context) (map[string]*domain.Voter, error)
	PutUsersFunc      func(ctx context.Context, users map[string]*domain.Voter) error
	GetPartiesFunc    func(ctx context.Context) ([]domain.Party, error)
	PutPartiesFunc    func(ctx context.Context, parties []domain.Party) error
	GetCandidatesFunc func(ctx context.Context) ([]domain.Candidate, error)
	PutCandidatesFunc func(ctx context.Context, candidates []domain.Candidate) error
}

// NewMockElectionStore creates a new MockElectionStore with default behaviors
func NewMockElectionStore() *MockElectionStore {
	return &MockElectionStore{}
}

// Init seeds the store
func (m *MockElectionStore) Init(ctx context.Context) error {
	if m.InitFunc != nil {
		return m.InitFunc(ctx)
	}
	return nil
}

// GetUsers reads the users collection
func (m *MockElectionStore) GetUsers(ctx context.Context) (map[string]*domain.Voter, error) {
	if m.GetUsersFunc != nil {
		return m.GetUsersFunc(ctx)
	}
	return map[string]*domain.Voter{}, nil
}

// PutUsers writes the users collection
func (m *MockElectionStore) PutUsers(ctx context.Context, users map[string]*domain.Voter) error {
	if m.PutUsersFunc != nil {
		return m.PutUsersFunc(ctx, users)
	}
	return nil
}

// GetParties reads the parties collection
func (m *MockElectionStore) GetParties(ctx context.Context) ([]domain.Party, error) {
	if m.GetPartiesFunc != nil {
		return m.GetPartiesFunc(ctx)
	}
	return nil, nil
}

// PutParties writes the parties collection
func (m *MockElectionStore) PutParties(ctx context.Context, parties []domain.Party) error {
	if m.PutPartiesFunc != nil {
		return m.PutPartiesFunc(ctx, parties)
	}
	return nil
}

// GetCandidates reads the candidates collection
func (m *MockElectionStore) GetCandidates(ctx context.Context) ([]domain.Candidate, error) {
	if m.GetCandidatesFunc != nil {
		return m.GetCandidatesFunc(ctx)
	}
	return nil, nil
}

// PutCandidates writes the candidates collection
func (m *MockElectionStore) PutCandidates(ctx context.Context, candidates []domain.Candidate) error {
	if m.PutCandidatesFunc != nil {
		return m.PutCandidatesFunc(ctx, candidates)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.ElectionStore = (*MockElectionStore)(nil)
