package service

import (
	"context"
	"fmt"

	"card-marketplace/internal/core/domain"
	"card-marketplace/internal/core/ports"
	"card-marketplace/pkg/apperror"
)

const defaultPageSize = 50

// QueryServiceImpl implements ports.QueryService, the read-only projections
// over the sale registry. No mutation, no authorization.
type QueryServiceImpl struct {
	saleRepo ports.SaleRepository
}

// NewQueryService creates a new QueryServiceImpl.
func NewQueryService(saleRepo ports.SaleRepository) *QueryServiceImpl {
	return &QueryServiceImpl{saleRepo: saleRepo}
}

// GetSale fetches one listing by issuer and asset id.
func (s *QueryServiceImpl) GetSale(ctx context.Context, issuer, assetID string) (*domain.Sale, error) {
	sale, err := s.saleRepo.Get(ctx, domain.SaleKeyFor(issuer, assetID))
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get sale: %w", err))
	}
	if sale == nil {
		return nil, apperror.ErrNotFound("Sale")
	}
	return sale, nil
}

// Sales returns a page of all listings.
func (s *QueryServiceImpl) Sales(ctx context.Context, limit, offset int) ([]domain.Sale, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	sales, err := s.saleRepo.ListAll(ctx, limit, offset)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list sales: %w", err))
	}
	return sales, nil
}

// SalesBySeller returns every listing owned by the seller.
func (s *QueryServiceImpl) SalesBySeller(ctx context.Context, seller string) ([]domain.Sale, error) {
	sales, err := s.saleRepo.ListBySeller(ctx, seller)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list sales by seller: %w", err))
	}
	return sales, nil
}

// SalesByIssuer returns every listing under the issuer.
func (s *QueryServiceImpl) SalesByIssuer(ctx context.Context, issuer string) ([]domain.Sale, error) {
	sales, err := s.saleRepo.ListByIssuer(ctx, issuer)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list sales by issuer: %w", err))
	}
	return sales, nil
}

// SupplySales returns the total number of active listings.
func (s *QueryServiceImpl) SupplySales(ctx context.Context) (uint64, error) {
	n, err := s.saleRepo.Count(ctx)
	if err != nil {
		return 0, apperror.ErrDatabaseError(fmt.Errorf("count sales: %w", err))
	}
	return n, nil
}

// SupplyBySeller returns the number of listings owned by the seller.
func (s *QueryServiceImpl) SupplyBySeller(ctx context.Context, seller string) (uint64, error) {
	n, err := s.saleRepo.CountBySeller(ctx, seller)
	if err != nil {
		return 0, apperror.ErrDatabaseError(fmt.Errorf("count sales by seller: %w", err))
	}
	return n, nil
}

// SupplyByIssuer returns the number of listings under the issuer.
func (s *QueryServiceImpl) SupplyByIssuer(ctx context.Context, issuer string) (uint64, error) {
	n, err := s.saleRepo.CountByIssuer(ctx, issuer)
	if err != nil {
		return 0, apperror.ErrDatabaseError(fmt.Errorf("count sales by issuer: %w", err))
	}
	return n, nil
}
