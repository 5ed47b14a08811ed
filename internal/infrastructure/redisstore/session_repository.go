// Package redisstore keeps conversation sessions in redis so a restart (or
// a second replica) does not drop mid-conversation state.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Raeus1901/wine-bot/internal/domain"
	"github.com/Raeus1901/wine-bot/internal/domain/entity"
)

// SessionRepository stores sessions as JSON values with a TTL.
type SessionRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewSessionRepository creates a redis-backed store. ttl of zero means keys
// never expire.
func NewSessionRepository(rdb *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{rdb: rdb, ttl: ttl}
}

func sessionKey(userID string) string {
	return fmt.Sprintf("wine:session:%s", userID)
}

// Get returns the session for userID, or ErrNotFound when absent.
func (r *SessionRepository) Get(ctx context.Context, userID string) (*entity.Session, error) {
	raw, err := r.rdb.Get(ctx, sessionKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.NewNotFoundError("Session", userID)
		}
		return nil, fmt.Errorf("failed to get session %s: %w", userID, err)
	}

	var sess entity.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session %s: %w", userID, err)
	}
	if sess.Criteria == nil {
		sess.Criteria = make(map[string]string)
	}
	return &sess, nil
}

// Save stores session, stamping UpdatedAt and refreshing the TTL.
func (r *SessionRepository) Save(ctx context.Context, session *entity.Session) error {
	session.UpdatedAt = time.Now()

	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", session.UserID, err)
	}
	if err := r.rdb.Set(ctx, sessionKey(session.UserID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session %s: %w", session.UserID, err)
	}
	return nil
}

// Delete removes the session for userID.
func (r *SessionRepository) Delete(ctx context.Context, userID string) error {
	if err := r.rdb.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", userID, err)
	}
	return nil
}
