package domain

import (
	"time"

	"github.com/google/uuid"
)

// SettlementStatus is the lifecycle state of a purchase settlement.
type SettlementStatus string

const (
	// SettlementStatusPending means the external registry call is in flight.
	// Pending state is process-local only: it is the suspended continuation of
	// the initiating call, never persisted.
	SettlementStatusPending SettlementStatus = "PENDING"
	// SettlementStatusSettled means the payout plan was valid and funds were
	// distributed (minus the platform fee).
	SettlementStatusSettled SettlementStatus = "SETTLED"
	// SettlementStatusRefunded means the registry call failed or returned a
	// malformed plan and the full price was returned to the buyer. The asset
	// transfer is NOT reversed.
	SettlementStatusRefunded SettlementStatus = "REFUNDED"
)

// Settlement is the correlation record for a purchase working its way through
// the two-phase settlement protocol.
type Settlement struct {
	ID          uuid.UUID        `json:"id"`
	SaleKey     string           `json:"sale_key"`
	AssetIssuer string           `json:"asset_issuer"`
	AssetID     string           `json:"asset_id"`
	Buyer       string           `json:"buyer"`
	Seller      string           `json:"seller"`
	// Price is the listing price the purchase settles at. It is the settlement's
	// reported moved value regardless of which path resolution takes.
	Price      Amount           `json:"price"`
	Status     SettlementStatus `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
	ResolvedAt *time.Time       `json:"resolved_at,omitempty"`
}

// IsTerminal returns true once the settlement reached SETTLED or REFUNDED.
func (s *Settlement) IsTerminal() bool {
	return s.Status == SettlementStatusSettled || s.Status == SettlementStatusRefunded
}
