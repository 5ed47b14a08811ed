// Package memory holds conversation sessions in process memory. This is the
// default store and mirrors the original deployment, where sessions lived in
// a per-process map.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Raeus1901/wine-bot/internal/domain"
	"github.com/Raeus1901/wine-bot/internal/domain/entity"
)

// SessionRepository is a mutex-guarded map of user id to session.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*entity.Session
	ttl      time.Duration
}

// NewSessionRepository creates a store. ttl of zero disables expiry.
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]*entity.Session),
		ttl:      ttl,
	}
}

// Get returns the session for userID, or ErrNotFound when absent or expired.
func (r *SessionRepository) Get(ctx context.Context, userID string) (*entity.Session, error) {
	r.mu.RLock()
	sess, ok := r.sessions[userID]
	r.mu.RUnlock()

	if !ok {
		return nil, domain.NewNotFoundError("Session", userID)
	}

	if r.ttl > 0 && time.Since(sess.UpdatedAt) > r.ttl {
		r.mu.Lock()
		delete(r.sessions, userID)
		r.mu.Unlock()
		return nil, domain.NewNotFoundError("Session", userID)
	}

	// Copy so callers mutate their own view until Save.
	copied := *sess
	copied.Criteria = make(map[string]string, len(sess.Criteria))
	for k, v := range sess.Criteria {
		copied.Criteria[k] = v
	}
	return &copied, nil
}

// Save stores session, stamping UpdatedAt.
func (r *SessionRepository) Save(ctx context.Context, session *entity.Session) error {
	session.UpdatedAt = time.Now()

	copied := *session
	copied.Criteria = make(map[string]string, len(session.Criteria))
	for k, v := range session.Criteria {
		copied.Criteria[k] = v
	}

	r.mu.Lock()
	r.sessions[session.UserID] = &copied
	r.mu.Unlock()
	return nil
}

// Delete removes the session for userID. Deleting an unknown user is a no-op.
func (r *SessionRepository) Delete(ctx context.Context, userID string) error {
	r.mu.Lock()
	delete(r.sessions, userID)
	r.mu.Unlock()
	return nil
}
