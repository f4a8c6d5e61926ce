package ports

import (
	"context"

	"github.com/integra/health-sport-site/internal/core/domain"
)

// ContactRepository is the only path to stored contact submissions.
type ContactRepository interface {
	// List returns every stored contact in insertion order. Unreadable
	// storage yields an empty slice, never an error.
	List(ctx context.Context) []domain.Contact
	// Add assigns a fresh id and submission time, appends and persists.
	Add(ctx context.Context, fields domain.ContactFields) (domain.Contact, error)
	// Delete removes the contact with id and reports whether one existed.
	Delete(ctx context.Context, id string) (bool, error)
}
