package ports

import (
	"context"

	"github.com/integra/health-sport-site/internal/core/domain"
)

// CatalogReader loads the service catalog. All never fails; ByID returns
// domain.ErrServiceNotFound for unknown ids.
type CatalogReader interface {
	All(ctx context.Context) []domain.Service
	ByID(ctx context.Context, id string) (domain.Service, error)
}

// ServiceDetail is a single service plus the rest of the catalog.
type ServiceDetail struct {
	Service domain.Service
	Others  []domain.Service
}

type CatalogService interface {
	All(ctx context.Context) []domain.Service
	Detail(ctx context.Context, id string) (*ServiceDetail, error)
}
