package flatfile

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/integra/health-sport-site/internal/core/domain"
	"github.com/integra/health-sport-site/internal/core/ports"
)

// CatalogReader loads the service catalog file. Without a running Watch it
// rereads the file on every call. While Watch runs, the parsed catalog is
// cached until the file changes on disk.
type CatalogReader struct {
	store *Store[domain.Service]
	log   zerolog.Logger

	mu         sync.RWMutex
	watching   bool
	cached     []domain.Service
	generation uint64

	onReload func()
}

// CatalogOption customizes a CatalogReader.
type CatalogOption func(*CatalogReader)

// OnReload registers fn to run every time a file change drops the cache.
func OnReload(fn func()) CatalogOption {
	return func(r *CatalogReader) { r.onReload = fn }
}

func NewCatalogReader(path string, log zerolog.Logger, opts ...CatalogOption) *CatalogReader {
	r := &CatalogReader{
		store: NewStore[domain.Service](path, log),
		log:   log,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Path returns the catalog file location.
func (r *CatalogReader) Path() string { return r.store.Path }

func (r *CatalogReader) All(_ context.Context) []domain.Service {
	r.mu.RLock()
	if r.watching && r.cached != nil {
		out := slices.Clone(r.cached)
		r.mu.RUnlock()
		return out
	}
	gen := r.generation
	r.mu.RUnlock()

	services := r.store.ReadAll()

	r.mu.Lock()
	if r.watching && r.generation == gen {
		r.cached = services
	}
	r.mu.Unlock()

	return slices.Clone(services)
}

// ByID does a linear scan; an empty id never matches.
func (r *CatalogReader) ByID(ctx context.Context, id string) (domain.Service, error) {
	if id == "" {
		return domain.Service{}, domain.ErrServiceNotFound
	}
	for _, s := range r.All(ctx) {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.Service{}, domain.ErrServiceNotFound
}

// Watch enables caching and drops the cache whenever the catalog file is
// written, created, renamed or removed. The parent directory is watched so
// editors that save through rename are picked up. Watch blocks until ctx is
// cancelled.
func (r *CatalogReader) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("catalog watch: %w", err)
	}
	defer w.Close()

	dir := filepath.Dir(r.store.Path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("catalog watch %s: %w", dir, err)
	}
	base := filepath.Base(r.store.Path)

	r.mu.Lock()
	r.watching = true
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		r.watching = false
		r.cached = nil
		r.generation++
		r.mu.Unlock()
	}()

	r.log.Info().Str("path", r.store.Path).Msg("watching service catalog")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base || event.Op == fsnotify.Chmod {
				continue
			}
			r.invalidate(event)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			r.log.Warn().Err(err).Msg("catalog watcher error")
		}
	}
}

func (r *CatalogReader) invalidate(event fsnotify.Event) {
	r.mu.Lock()
	r.cached = nil
	r.generation++
	r.mu.Unlock()

	r.log.Debug().Str("op", event.Op.String()).Str("path", event.Name).Msg("service catalog changed")
	if r.onReload != nil {
		r.onReload()
	}
}

var _ ports.CatalogReader = (*CatalogReader)(nil)
