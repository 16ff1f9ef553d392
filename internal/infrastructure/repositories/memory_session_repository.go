package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/akhhatar/e-voting-project/domain"
)

// MemorySessionRepository implements domain.SessionRepository in process
// memory. It is the default backend: sessions in this system are ephemeral
// and may legitimately vanish on restart. Deployments that want sessions to
// survive a restart configure Redis instead.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

// NewMemorySessionRepository creates an empty repository.
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{sessions: make(map[string]domain.Session)}
}

// Create implements domain.SessionRepository
func (r *MemorySessionRepository) Create(ctx context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = *session
	return nil
}

// FindByID implements domain.SessionRepository
func (r *MemorySessionRepository) FindByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	r.mu.RLock()
	session, ok := r.sessions[sessionID]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if session.ExpiresAt.Before(time.Now()) {
		r.mu.Lock()
		delete(r.sessions, sessionID)
		r.mu.Unlock()
		return nil, domain.ErrSessionExpired
	}
	return &session, nil
}

// Delete implements domain.SessionRepository
func (r *MemorySessionRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}

// DeleteExpired implements domain.SessionRepository
func (r *MemorySessionRepository) DeleteExpired(ctx context.Context) error {
	now := time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, session := range r.sessions {
		if session.ExpiresAt.Before(now) {
			delete(r.sessions, id)
		}
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.SessionRepository = (*MemorySessionRepository)(nil)
