package flatfile

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/integra/health-sport-site/internal/core/domain"
	"github.com/integra/health-sport-site/internal/core/ports"
)

// ContactRepository implements ports.ContactRepository on top of a Store.
//
// mu serializes read-modify-write cycles inside this process, so concurrent
// requests no longer drop each other's changes. A second process writing
// the same file (e.g. the CLI while the server runs) can still lose updates.
type ContactRepository struct {
	mu    sync.Mutex
	store *Store[domain.Contact]

	now   func() time.Time
	newID func() string
}

// ContactOption customizes a ContactRepository.
type ContactOption func(*ContactRepository)

// WithClock overrides the submission timestamp source.
func WithClock(now func() time.Time) ContactOption {
	return func(r *ContactRepository) { r.now = now }
}

// WithIDGenerator overrides the contact id source.
func WithIDGenerator(gen func() string) ContactOption {
	return func(r *ContactRepository) { r.newID = gen }
}

func NewContactRepository(path string, log zerolog.Logger, opts ...ContactOption) *ContactRepository {
	r := &ContactRepository{
		store: NewStore[domain.Contact](path, log),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *ContactRepository) List(_ context.Context) []domain.Contact {
	return r.store.ReadAll()
}

func (r *ContactRepository) Add(_ context.Context, fields domain.ContactFields) (domain.Contact, error) {
	c := domain.Contact{
		ID:          r.newID(),
		Name:        fields.Name,
		Email:       fields.Email,
		Phone:       fields.Phone,
		Message:     fields.Message,
		SubmittedAt: r.now().UTC().Format(domain.SubmittedAtLayout),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	contacts := append(r.store.ReadAll(), c)
	if err := r.store.WriteAll(contacts); err != nil {
		return domain.Contact{}, err
	}
	return c, nil
}

func (r *ContactRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contacts := r.store.ReadAll()
	kept := make([]domain.Contact, 0, len(contacts))
	for _, c := range contacts {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(contacts) {
		return false, nil
	}
	if err := r.store.WriteAll(kept); err != nil {
		return false, err
	}
	return true, nil
}

var _ ports.ContactRepository = (*ContactRepository)(nil)
