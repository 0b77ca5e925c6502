package service

import (
	"context"
	"fmt"
	"time"

	"card-marketplace/internal/core/domain"
	"card-marketplace/internal/core/ports"
	"card-marketplace/pkg/apperror"

	"github.com/rs/zerolog"
)

// ListingServiceImpl implements ports.ListingService.
type ListingServiceImpl struct {
	saleRepo  ports.SaleRepository
	allowRepo ports.AllowlistRepository
	log       zerolog.Logger
}

// NewListingService creates a new ListingServiceImpl.
func NewListingService(
	saleRepo ports.SaleRepository,
	allowRepo ports.AllowlistRepository,
	log zerolog.Logger,
) *ListingServiceImpl {
	return &ListingServiceImpl{
		saleRepo:  saleRepo,
		allowRepo: allowRepo,
		log:       log,
	}
}

// List creates a listing for the seller's asset, enforcing the issuer floor.
func (s *ListingServiceImpl) List(ctx context.Context, seller, issuer, assetID string, price domain.Amount) (*domain.Sale, error) {
	entry, err := s.allowRepo.Get(ctx, issuer)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get allowlist entry: %w", err))
	}
	if entry == nil {
		return nil, apperror.ErrNotAllowlisted()
	}
	if price.Cmp(entry.MinPrice) < 0 {
		return nil, apperror.ErrPriceTooLow(entry.MinPrice.String())
	}

	// The approval token is registry size + 1: a locally monotonic sequence
	// number the registry checks at settlement time. Collisions across
	// delete/insert churn are accepted; the token is opaque to this engine.
	count, err := s.saleRepo.Count(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("count sales: %w", err))
	}

	sale := &domain.Sale{
		Seller:        seller,
		ApprovalToken: count + 1,
		AssetIssuer:   issuer,
		AssetID:       assetID,
		Price:         price,
		ListedAt:      time.Now().UTC(),
	}

	if err := s.saleRepo.Insert(ctx, sale); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("insert sale: %w", err))
	}

	s.log.Info().
		Str("sale_key", sale.Key()).
		Str("seller", seller).
		Str("price", price.String()).
		Uint64("approval_token", sale.ApprovalToken).
		Msg("sale listed")

	return sale, nil
}

// UpdatePrice overwrites the listing price. Only the seller may reprice.
func (s *ListingServiceImpl) UpdatePrice(ctx context.Context, caller, issuer, assetID string, newPrice domain.Amount) (*domain.Sale, error) {
	key := domain.SaleKeyFor(issuer, assetID)

	sale, err := s.saleRepo.Get(ctx, key)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get sale: %w", err))
	}
	if sale == nil {
		return nil, apperror.ErrNotFound("Sale")
	}
	if caller != sale.Seller {
		return nil, apperror.ErrNotSaleOwner()
	}

	sale.Price = newPrice
	if err := s.saleRepo.Insert(ctx, sale); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("reinsert sale: %w", err))
	}

	s.log.Info().
		Str("sale_key", key).
		Str("price", newPrice.String()).
		Msg("sale repriced")

	return sale, nil
}

// Unlist removes the listing. The sale is removed before the ownership check:
// a non-owner caller still causes removal and receives an authorization error.
// Intentional remove-then-check split, pinned by tests.
func (s *ListingServiceImpl) Unlist(ctx context.Context, caller, issuer, assetID string) error {
	key := domain.SaleKeyFor(issuer, assetID)

	sale, err := s.saleRepo.Remove(ctx, key)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("remove sale: %w", err))
	}
	if sale == nil {
		return apperror.ErrNotFound("Sale")
	}
	if caller != sale.Seller {
		s.log.Warn().
			Str("sale_key", key).
			Str("caller", caller).
			Str("seller", sale.Seller).
			Msg("unlist by non-owner; sale removed, caller rejected")
		return apperror.ErrNotSaleOwner()
	}

	s.log.Info().
		Str("sale_key", key).
		Str("seller", sale.Seller).
		Msg("sale unlisted")

	return nil
}
