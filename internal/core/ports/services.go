package ports

import (
	"context"
	"time"

	"card-marketplace/internal/core/domain"

	"github.com/google/uuid"
)

// --- Service Ports (Business Logic) ---

// ListingService is the listing lifecycle: create, reprice, remove.
type ListingService interface {
	List(ctx context.Context, seller, issuer, assetID string, price domain.Amount) (*domain.Sale, error)
	UpdatePrice(ctx context.Context, caller, issuer, assetID string, newPrice domain.Amount) (*domain.Sale, error)
	Unlist(ctx context.Context, caller, issuer, assetID string) error
}

// BuyRequest holds validated input for the purchase flow. Deposit is the
// payment attached by the buyer.
type BuyRequest struct {
	Buyer       string
	AssetIssuer string
	AssetID     string
	Deposit     domain.Amount
}

// PurchaseService runs the two-phase purchase settlement protocol.
type PurchaseService interface {
	// Buy validates the offer and starts settlement. It returns the pending
	// settlement record without waiting for the external registry call; the
	// continuation resolves it to SETTLED or REFUNDED later.
	Buy(ctx context.Context, req BuyRequest) (*domain.Settlement, error)
	// GetSettlement looks up an in-flight or resolved settlement by its
	// correlation id.
	GetSettlement(id uuid.UUID) (*domain.Settlement, bool)
}

// AllowlistService is the administrative surface over the listing floors.
type AllowlistService interface {
	Allow(ctx context.Context, issuer string, minPrice domain.Amount) error
	Disallow(ctx context.Context, issuer string) error
	GetFloor(ctx context.Context, issuer string) (*domain.AllowlistEntry, error)
}

// QueryService is the read-only surface over the sale registry.
type QueryService interface {
	GetSale(ctx context.Context, issuer, assetID string) (*domain.Sale, error)
	Sales(ctx context.Context, limit, offset int) ([]domain.Sale, error)
	SalesBySeller(ctx context.Context, seller string) ([]domain.Sale, error)
	SalesByIssuer(ctx context.Context, issuer string) ([]domain.Sale, error)
	SupplySales(ctx context.Context) (uint64, error)
	SupplyBySeller(ctx context.Context, seller string) (uint64, error)
	SupplyByIssuer(ctx context.Context, issuer string) (uint64, error)
}

// --- External Collaborator Ports ---

// TransferPayoutRequest is the single external request issued per settlement:
// transfer the asset to the receiver and compute a payout plan for the total.
type TransferPayoutRequest struct {
	AssetIssuer   string
	AssetID       string
	Receiver      string
	ApprovalToken uint64
	Memo          string
	Price         domain.Amount
	MaxRecipients int
}

// AssetRegistry is the external system of record for asset ownership. The
// call is issued once per settlement; any error or unparseable response is an
// opaque failure that resolves the settlement to a refund.
type AssetRegistry interface {
	TransferAndReportPayout(ctx context.Context, req TransferPayoutRequest) (domain.PayoutPlan, error)
}

// FundTransferor is the value-transfer primitive: fire-and-forget transfers of
// an exact amount to an identity, assumed to always eventually succeed.
type FundTransferor interface {
	Transfer(ctx context.Context, recipient string, amount domain.Amount) error
}

// NonceStore manages single-use confirmation nonces for mutation endpoints.
type NonceStore interface {
	// CheckAndSet atomically checks if the nonce exists, sets it if not.
	// Returns true if the nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, account string, nonce string, ttl time.Duration) (bool, error)
}

// TokenService validates platform-issued caller identity tokens.
type TokenService interface {
	Generate(account string, admin bool) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed identity claims.
type TokenClaims struct {
	Account string
	Admin   bool
}
