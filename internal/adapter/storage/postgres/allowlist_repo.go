package postgres

import (
	"context"
	"errors"
	"fmt"

	"card-marketplace/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// AllowlistRepo implements ports.AllowlistRepository.
type AllowlistRepo struct {
	pool Pool
}

// NewAllowlistRepo creates a new AllowlistRepo.
func NewAllowlistRepo(pool Pool) *AllowlistRepo {
	return &AllowlistRepo{pool: pool}
}

// Upsert stores or replaces the issuer's floor entry.
func (r *AllowlistRepo) Upsert(ctx context.Context, entry *domain.AllowlistEntry) error {
	query := `INSERT INTO allowlist (issuer, min_price)
		VALUES ($1, $2)
		ON CONFLICT (issuer) DO UPDATE SET min_price=EXCLUDED.min_price`

	_, err := r.pool.Exec(ctx, query, entry.Issuer, entry.MinPrice.String())
	if err != nil {
		return fmt.Errorf("upsert allowlist entry: %w", err)
	}
	return nil
}

// Get fetches the issuer's floor entry, or (nil, nil) if absent.
func (r *AllowlistRepo) Get(ctx context.Context, issuer string) (*domain.AllowlistEntry, error) {
	query := `SELECT issuer, min_price FROM allowlist WHERE issuer = $1`

	var (
		entry       domain.AllowlistEntry
		minPriceRaw string
	)
	err := r.pool.QueryRow(ctx, query, issuer).Scan(&entry.Issuer, &minPriceRaw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get allowlist entry: %w", err)
	}

	minPrice, err := domain.ParseAmount(minPriceRaw)
	if err != nil {
		return nil, fmt.Errorf("parse stored min price %q: %w", minPriceRaw, err)
	}
	entry.MinPrice = minPrice
	return &entry, nil
}

// Delete removes the issuer's floor entry. Deleting an absent issuer is a
// no-op.
func (r *AllowlistRepo) Delete(ctx context.Context, issuer string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM allowlist WHERE issuer = $1`, issuer)
	if err != nil {
		return fmt.Errorf("delete allowlist entry: %w", err)
	}
	return nil
}
