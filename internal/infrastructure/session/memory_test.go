package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newStoredSession(id string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{ID: id, CreatedAt: now, ExpiresAt: now.Add(ttl)}
}

func TestMemoryStore_SaveAndGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sess := newStoredSession("s1", time.Minute)
	sess.SetAuthenticated(true)
	sess.AddFlash("success", "1")
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Authenticated)
	assert.Equal(t, map[string]string{"success": "1"}, got.Flashes)
}

func TestMemoryStore_GetReturnsIndependentCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sess := newStoredSession("s1", time.Minute)
	sess.AddFlash("success", "1")
	require.NoError(t, store.Save(ctx, sess))

	first, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	_, ok := first.Flash("success")
	require.True(t, ok)

	second, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	_, ok = second.Flash("success")
	assert.True(t, ok, "unsaved read should not clear the stored flash")
}

func TestMemoryStore_GetMissingAndExpired(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	got, err := store.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.Save(ctx, newStoredSession("old", -time.Second)))
	got, err = store.Get(ctx, "old")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, newStoredSession("s1", time.Minute)))
	require.NoError(t, store.Delete(ctx, "s1"))
	require.NoError(t, store.Delete(ctx, "s1"))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_CleanupRoutine(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, newStoredSession("expired", -time.Second)))
	require.NoError(t, store.Save(ctx, newStoredSession("live", time.Hour)))

	store.StartCleanupRoutine(10 * time.Millisecond)
	require.Eventually(t, func() bool { return store.Len() == 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, store.Close())
}

func TestMemoryStore_CloseWithoutCleanup(t *testing.T) {
	assert.NoError(t, NewMemoryStore().Close())
}

func TestSession_FlashIsReadOnce(t *testing.T) {
	s := &Session{}
	_, ok := s.Flash("authError")
	assert.False(t, ok)

	s.AddFlash("authError", "Credenciales incorrectas")
	v, ok := s.Flash("authError")
	assert.True(t, ok)
	assert.Equal(t, "Credenciales incorrectas", v)

	_, ok = s.Flash("authError")
	assert.False(t, ok)
}

func TestSession_Destroy(t *testing.T) {
	s := &Session{}
	s.SetAuthenticated(true)
	s.AddFlash("success", "1")
	s.Destroy()

	assert.False(t, s.IsAuthenticated())
	assert.True(t, s.Destroyed())
	assert.Nil(t, s.Flashes)
}
