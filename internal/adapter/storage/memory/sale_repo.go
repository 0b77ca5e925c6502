package memory

import (
	"context"
	"sort"
	"sync"

	"card-marketplace/internal/core/domain"
)

// SaleRepo is the in-memory sale registry: the primary listing map plus the
// by-seller and by-issuer secondary indices. One mutex covers all three, so
// every mutation lands in the primary map and both indices as a single unit
// of work. Empty index buckets are pruned on removal.
type SaleRepo struct {
	mu       sync.RWMutex
	sales    map[string]domain.Sale
	bySeller map[string]map[string]struct{} // seller -> set of sale keys
	byIssuer map[string]map[string]struct{} // issuer -> set of asset ids
}

// NewSaleRepo creates an empty in-memory sale registry.
func NewSaleRepo() *SaleRepo {
	return &SaleRepo{
		sales:    make(map[string]domain.Sale),
		bySeller: make(map[string]map[string]struct{}),
		byIssuer: make(map[string]map[string]struct{}),
	}
}

// Insert adds or overwrites a listing and both index entries.
func (r *SaleRepo) Insert(ctx context.Context, sale *domain.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := sale.Key()
	if existing, ok := r.sales[key]; ok {
		r.unindex(&existing)
	}

	r.sales[key] = *sale

	if r.bySeller[sale.Seller] == nil {
		r.bySeller[sale.Seller] = make(map[string]struct{})
	}
	r.bySeller[sale.Seller][key] = struct{}{}

	if r.byIssuer[sale.AssetIssuer] == nil {
		r.byIssuer[sale.AssetIssuer] = make(map[string]struct{})
	}
	r.byIssuer[sale.AssetIssuer][sale.AssetID] = struct{}{}

	return nil
}

// Remove deletes and returns the listing, pruning emptied index buckets.
// Returns (nil, nil) when the key is absent.
func (r *SaleRepo) Remove(ctx context.Context, key string) (*domain.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sale, ok := r.sales[key]
	if !ok {
		return nil, nil
	}
	delete(r.sales, key)
	r.unindex(&sale)
	return &sale, nil
}

// unindex drops a sale from both secondary indices. Caller holds the lock.
func (r *SaleRepo) unindex(sale *domain.Sale) {
	key := sale.Key()
	if set, ok := r.bySeller[sale.Seller]; ok {
		delete(set, key)
		if len(set) == 0 {
			delete(r.bySeller, sale.Seller)
		}
	}
	if set, ok := r.byIssuer[sale.AssetIssuer]; ok {
		delete(set, sale.AssetID)
		if len(set) == 0 {
			delete(r.byIssuer, sale.AssetIssuer)
		}
	}
}

// Get fetches a listing without mutating. Returns (nil, nil) when absent.
func (r *SaleRepo) Get(ctx context.Context, key string) (*domain.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sale, ok := r.sales[key]
	if !ok {
		return nil, nil
	}
	return &sale, nil
}

// Count returns the number of active listings.
func (r *SaleRepo) Count(ctx context.Context) (uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return uint64(len(r.sales)), nil
}

// ListAll returns a stable page of listings ordered by sale key.
func (r *SaleRepo) ListAll(ctx context.Context, limit, offset int) ([]domain.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.sales))
	for k := range r.sales {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if offset >= len(keys) {
		return []domain.Sale{}, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(keys) {
		end = len(keys)
	}

	result := make([]domain.Sale, 0, end-offset)
	for _, k := range keys[offset:end] {
		result = append(result, r.sales[k])
	}
	return result, nil
}

// ListBySeller returns every listing owned by the seller.
func (r *SaleRepo) ListBySeller(ctx context.Context, seller string) ([]domain.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Sale, 0, len(r.bySeller[seller]))
	for key := range r.bySeller[seller] {
		result = append(result, r.sales[key])
	}
	sortSales(result)
	return result, nil
}

// ListByIssuer returns every listing for assets minted by the issuer.
func (r *SaleRepo) ListByIssuer(ctx context.Context, issuer string) ([]domain.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Sale, 0, len(r.byIssuer[issuer]))
	for assetID := range r.byIssuer[issuer] {
		result = append(result, r.sales[domain.SaleKeyFor(issuer, assetID)])
	}
	sortSales(result)
	return result, nil
}

// CountBySeller returns the number of listings owned by the seller.
func (r *SaleRepo) CountBySeller(ctx context.Context, seller string) (uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return uint64(len(r.bySeller[seller])), nil
}

// CountByIssuer returns the number of listings under the issuer.
func (r *SaleRepo) CountByIssuer(ctx context.Context, issuer string) (uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return uint64(len(r.byIssuer[issuer])), nil
}

// HasSellerBucket reports whether the seller index still holds a bucket.
// Exposed for tests asserting bucket pruning.
func (r *SaleRepo) HasSellerBucket(seller string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.bySeller[seller]
	return ok
}

// HasIssuerBucket reports whether the issuer index still holds a bucket.
func (r *SaleRepo) HasIssuerBucket(issuer string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byIssuer[issuer]
	return ok
}

func sortSales(sales []domain.Sale) {
	sort.Slice(sales, func(i, j int) bool {
		return sales[i].Key() < sales[j].Key()
	})
}
