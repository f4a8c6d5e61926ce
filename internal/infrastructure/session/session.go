// Package session keeps per-browser state for the admin panel and the
// one-shot flash messages shown after form submissions.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Session is the server-side state attached to one browser.
type Session struct {
	ID            string            `json:"id"`
	Authenticated bool              `json:"authenticated"`
	Flashes       map[string]string `json:"flashes,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	ExpiresAt     time.Time         `json:"expires_at"`

	isNew     bool
	dirty     bool
	destroyed bool
	// previousID is the id replaced by Regenerate, dropped from the store on commit.
	previousID string
}

func (s *Session) IsAuthenticated() bool { return s.Authenticated && !s.destroyed }

func (s *Session) SetAuthenticated(v bool) {
	if s.Authenticated != v {
		s.Authenticated = v
		s.dirty = true
	}
}

// AddFlash stores a value that the next Flash(key) call returns once.
func (s *Session) AddFlash(key, value string) {
	if s.Flashes == nil {
		s.Flashes = make(map[string]string)
	}
	s.Flashes[key] = value
	s.dirty = true
}

// Flash returns the value stored under key and clears it.
func (s *Session) Flash(key string) (string, bool) {
	v, ok := s.Flashes[key]
	if !ok {
		return "", false
	}
	delete(s.Flashes, key)
	s.dirty = true
	return v, true
}

// Destroy drops all state; the manager removes it from the store and
// expires the cookie when the response is written.
func (s *Session) Destroy() {
	s.Authenticated = false
	s.Flashes = nil
	s.destroyed = true
}

func (s *Session) Destroyed() bool { return s.destroyed }

// Regenerate moves the session state to a fresh id and cookie. Call it when
// the privilege level changes, e.g. right after a successful login.
func (s *Session) Regenerate() {
	if s.previousID == "" && !s.isNew {
		s.previousID = s.ID
	}
	s.ID = uuid.NewString()
	s.isNew = true
	s.dirty = true
}

// Store persists sessions between requests.
type Store interface {
	// Get returns nil, nil when the session does not exist or has expired.
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
	Close() error
}
