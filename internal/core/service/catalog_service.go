package service

import (
	"context"
	"fmt"

	"github.com/integra/health-sport-site/internal/core/domain"
	"github.com/integra/health-sport-site/internal/core/ports"
)

type CatalogService struct {
	reader ports.CatalogReader
}

func NewCatalogService(reader ports.CatalogReader) *CatalogService {
	return &CatalogService{reader: reader}
}

func (s *CatalogService) All(ctx context.Context) []domain.Service {
	return s.reader.All(ctx)
}

// Detail returns the service with id plus every other catalog entry.
func (s *CatalogService) Detail(ctx context.Context, id string) (*ports.ServiceDetail, error) {
	svc, err := s.reader.ByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service %q: %w", id, err)
	}
	return &ports.ServiceDetail{Service: svc, Others: domain.Others(s.reader.All(ctx), id)}, nil
}

var _ ports.CatalogService = (*CatalogService)(nil)
