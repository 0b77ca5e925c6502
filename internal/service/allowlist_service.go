package service

import (
	"context"
	"fmt"

	"card-marketplace/internal/core/domain"
	"card-marketplace/internal/core/ports"
	"card-marketplace/pkg/apperror"

	"github.com/rs/zerolog"
)

// AllowlistServiceImpl implements ports.AllowlistService, the administrative
// surface over the per-issuer listing floors.
type AllowlistServiceImpl struct {
	allowRepo ports.AllowlistRepository
	log       zerolog.Logger
}

// NewAllowlistService creates a new AllowlistServiceImpl.
func NewAllowlistService(allowRepo ports.AllowlistRepository, log zerolog.Logger) *AllowlistServiceImpl {
	return &AllowlistServiceImpl{allowRepo: allowRepo, log: log}
}

// Allow upserts the floor price for an issuer. Subsequent listings for the
// issuer must quote at least minPrice.
func (s *AllowlistServiceImpl) Allow(ctx context.Context, issuer string, minPrice domain.Amount) error {
	entry := &domain.AllowlistEntry{Issuer: issuer, MinPrice: minPrice}
	if err := s.allowRepo.Upsert(ctx, entry); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("upsert allowlist entry: %w", err))
	}

	s.log.Info().
		Str("issuer", issuer).
		Str("min_price", minPrice.String()).
		Msg("issuer allowlisted")
	return nil
}

// Disallow removes the floor. Active listings are unaffected; new listings for
// the issuer fail until it is re-allowed.
func (s *AllowlistServiceImpl) Disallow(ctx context.Context, issuer string) error {
	if err := s.allowRepo.Delete(ctx, issuer); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("delete allowlist entry: %w", err))
	}

	s.log.Info().Str("issuer", issuer).Msg("issuer disallowed")
	return nil
}

// GetFloor returns the issuer's floor entry.
func (s *AllowlistServiceImpl) GetFloor(ctx context.Context, issuer string) (*domain.AllowlistEntry, error) {
	entry, err := s.allowRepo.Get(ctx, issuer)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get allowlist entry: %w", err))
	}
	if entry == nil {
		return nil, apperror.ErrNotFound("Allowlist entry")
	}
	return entry, nil
}
