package memory

import (
	"context"
	"sync"

	"card-marketplace/internal/core/domain"
)

// AllowlistRepo is the in-memory issuer floor-price store.
type AllowlistRepo struct {
	mu      sync.RWMutex
	entries map[string]domain.AllowlistEntry
}

// NewAllowlistRepo creates an empty in-memory allowlist store.
func NewAllowlistRepo() *AllowlistRepo {
	return &AllowlistRepo{entries: make(map[string]domain.AllowlistEntry)}
}

// Upsert creates or replaces the floor entry for an issuer.
func (r *AllowlistRepo) Upsert(ctx context.Context, entry *domain.AllowlistEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.Issuer] = *entry
	return nil
}

// Get returns (nil, nil) when the issuer has no entry.
func (r *AllowlistRepo) Get(ctx context.Context, issuer string) (*domain.AllowlistEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[issuer]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

// Delete removes the floor entry; deleting a missing entry is a no-op.
func (r *AllowlistRepo) Delete(ctx context.Context, issuer string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, issuer)
	return nil
}
