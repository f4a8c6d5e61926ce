package ports

import (
	"context"

	"github.com/integra/health-sport-site/internal/core/domain"
)

type ContactService interface {
	Submit(ctx context.Context, fields domain.ContactFields) (domain.Contact, error)
	List(ctx context.Context) []domain.Contact
	Delete(ctx context.Context, id string) (bool, error)
}
