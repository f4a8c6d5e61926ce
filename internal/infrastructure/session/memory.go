package session

import (
	"context"
	"maps"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory. Sessions are lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session

	cancel context.CancelFunc
	done   chan struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

// Get hands out a copy so concurrent requests on the same session do not
// share the flash map.
func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, ok := m.sessions[id]
	if !ok || time.Now().After(sess.ExpiresAt) {
		return nil, nil //nolint:nilnil // not found
	}
	sess.Flashes = maps.Clone(sess.Flashes)
	return &sess, nil
}

func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *s
	stored.Flashes = maps.Clone(s.Flashes)
	stored.isNew, stored.dirty, stored.destroyed, stored.previousID = false, false, false, ""
	m.sessions[s.ID] = stored
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
	return nil
}

// Cleanup removes expired sessions.
func (m *MemoryStore) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for id, sess := range m.sessions {
		if now.After(sess.ExpiresAt) {
			delete(m.sessions, id)
		}
	}
}

// Len reports how many sessions are held, expired ones included.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// StartCleanupRoutine removes expired sessions every interval until Close.
func (m *MemoryStore) StartCleanupRoutine(interval time.Duration) {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.done = make(chan struct{})

	go func() {
		defer close(m.done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Cleanup()
			}
		}
	}()
}

// Close stops the cleanup goroutine, if any, and waits for it.
func (m *MemoryStore) Close() error {
	if m.cancel != nil {
		m.cancel()
		<-m.done
	}
	return nil
}

var _ Store = (*MemoryStore)(nil)
