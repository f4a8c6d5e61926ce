package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/integra/health-sport-site/internal/infrastructure/session"
)

const sessionKeyPrefix = "session:"

// SessionStore persists sessions as JSON values that expire with the session.
// Key format: session:<id>
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore wraps client; the caller keeps ownership of the client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Get(ctx context.Context, id string) (*session.Session, error) {
	raw, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil //nolint:nilnil // not found
		}
		return nil, fmt.Errorf("redis session get: %w", err)
	}

	var sess session.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("redis session decode: %w", err)
	}
	return &sess, nil
}

func (s *SessionStore) Save(ctx context.Context, sess *session.Session) error {
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return s.Delete(ctx, sess.ID)
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("redis session encode: %w", err)
	}
	return s.client.Set(ctx, s.key(sess.ID), data, ttl).Err()
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.key(id)).Err()
}

// Close is a no-op; the client is closed by whoever created it.
func (s *SessionStore) Close() error { return nil }

func (s *SessionStore) key(id string) string {
	return sessionKeyPrefix + id
}

var _ session.Store = (*SessionStore)(nil)
