package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/integra/health-sport-site/internal/core/domain"
	"github.com/integra/health-sport-site/internal/core/ports"
)

type ContactService struct {
	repo   ports.ContactRepository
	logger zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, logger zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, logger: logger}
}

// Submit stores a contact form submission as-is. No field is required.
func (s *ContactService) Submit(ctx context.Context, fields domain.ContactFields) (domain.Contact, error) {
	c, err := s.repo.Add(ctx, fields)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to store contact")
		return domain.Contact{}, fmt.Errorf("submit contact: %w", err)
	}

	s.logger.Info().Str("contact_id", c.ID).Msg("contact submitted")
	return c, nil
}

func (s *ContactService) List(ctx context.Context) []domain.Contact {
	return s.repo.List(ctx)
}

// Delete removes a contact. An unknown id reports false without error.
func (s *ContactService) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("contact_id", id).Msg("failed to delete contact")
		return false, fmt.Errorf("delete contact: %w", err)
	}
	if removed {
		s.logger.Info().Str("contact_id", id).Msg("contact deleted")
	} else {
		s.logger.Debug().Str("contact_id", id).Msg("delete of unknown contact ignored")
	}
	return removed, nil
}

var _ ports.ContactService = (*ContactService)(nil)
