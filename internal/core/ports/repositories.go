package ports

import (
	"context"

	"card-marketplace/internal/core/domain"
)

// SaleRepository is the authoritative sale registry: the primary listing map
// plus the by-seller and by-issuer secondary indices. Every mutation updates
// the primary map and both indices as a single unit of work; no caller may
// observe them diverge, and empty index buckets are pruned.
type SaleRepository interface {
	// Insert adds or overwrites a listing under its composite key.
	Insert(ctx context.Context, sale *domain.Sale) error
	// Remove deletes and returns the listing. Returns (nil, nil) when the key
	// is absent; callers treat that as fatal for the operation.
	Remove(ctx context.Context, key string) (*domain.Sale, error)
	// Get fetches a listing without mutating. Returns (nil, nil) when absent.
	Get(ctx context.Context, key string) (*domain.Sale, error)
	// Count returns the number of active listings.
	Count(ctx context.Context) (uint64, error)

	// Enumeration projections over the indices. They must never return a key
	// absent from the primary map.
	ListAll(ctx context.Context, limit, offset int) ([]domain.Sale, error)
	ListBySeller(ctx context.Context, seller string) ([]domain.Sale, error)
	ListByIssuer(ctx context.Context, issuer string) ([]domain.Sale, error)
	CountBySeller(ctx context.Context, seller string) (uint64, error)
	CountByIssuer(ctx context.Context, issuer string) (uint64, error)
}

// AllowlistRepository stores the per-issuer listing floor prices.
type AllowlistRepository interface {
	// Upsert creates or replaces the floor entry for an issuer.
	Upsert(ctx context.Context, entry *domain.AllowlistEntry) error
	// Get returns (nil, nil) when the issuer has no entry.
	Get(ctx context.Context, issuer string) (*domain.AllowlistEntry, error)
	// Delete removes the floor; deleting a missing entry is a no-op.
	Delete(ctx context.Context, issuer string) error
}
