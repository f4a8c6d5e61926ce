package flatfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/integra/health-sport-site/internal/core/domain"
)

const catalogJSON = `[
  {"id":"fisioterapia","title":"Fisioterapia","shortDescription":"s1","fullDescription":"f1","image":"/static/img/1.jpg","benefits":["a","b"]},
  {"id":"nutricion","title":"Nutrición","shortDescription":"s2","fullDescription":"f2","image":"/static/img/2.jpg","benefits":[]}
]`

func writeCatalog(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCatalogReader_All(t *testing.T) {
	path := filepath.Join(t.TempDir(), "services.json")
	writeCatalog(t, path, catalogJSON)
	r := NewCatalogReader(path, zerolog.Nop())

	got := r.All(context.Background())
	require.Len(t, got, 2)
	assert.Equal(t, "fisioterapia", got[0].ID)
	assert.Equal(t, []string{"a", "b"}, got[0].Benefits)
	assert.Equal(t, "Nutrición", got[1].Title)
}

func TestCatalogReader_AllMissingFile(t *testing.T) {
	r := NewCatalogReader(filepath.Join(t.TempDir(), "nope.json"), zerolog.Nop())
	assert.Empty(t, r.All(context.Background()))
}

func TestCatalogReader_ByID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "services.json")
	writeCatalog(t, path, catalogJSON)
	r := NewCatalogReader(path, zerolog.Nop())
	ctx := context.Background()

	s, err := r.ByID(ctx, "nutricion")
	require.NoError(t, err)
	assert.Equal(t, "Nutrición", s.Title)

	for _, id := range []string{"unknown", "", "FISIOTERAPIA"} {
		_, err := r.ByID(ctx, id)
		assert.True(t, errors.Is(err, domain.ErrServiceNotFound), "id %q", id)
	}
}

func TestCatalogReader_RereadsWithoutWatcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "services.json")
	writeCatalog(t, path, catalogJSON)
	r := NewCatalogReader(path, zerolog.Nop())
	ctx := context.Background()

	require.Len(t, r.All(ctx), 2)
	writeCatalog(t, path, `[{"id":"solo"}]`)
	assert.Len(t, r.All(ctx), 1)
}

func TestCatalogReader_WatchInvalidatesCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "services.json")
	writeCatalog(t, path, catalogJSON)

	var reloads atomic.Int32
	r := NewCatalogReader(path, zerolog.Nop(), OnReload(func() { reloads.Add(1) }))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Watch(ctx) }()

	require.Eventually(t, func() bool {
		r.mu.RLock()
		defer r.mu.RUnlock()
		return r.watching
	}, 2*time.Second, 10*time.Millisecond)

	require.Len(t, r.All(context.Background()), 2)

	writeCatalog(t, path, `[{"id":"solo","title":"Solo"}]`)

	require.Eventually(t, func() bool {
		return len(r.All(context.Background())) == 1
	}, 2*time.Second, 20*time.Millisecond)
	assert.Positive(t, reloads.Load())

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	assert.False(t, r.watching)
	assert.Nil(t, r.cached)
}

func TestCatalogReader_WatchMissingDir(t *testing.T) {
	r := NewCatalogReader(filepath.Join(t.TempDir(), "missing", "services.json"), zerolog.Nop())
	err := r.Watch(context.Background())
	assert.Error(t, err)
}
