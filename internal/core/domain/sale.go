package domain

import "time"

// SaleKeyDelimiter separates the issuer and asset id in a sale key.
const SaleKeyDelimiter = "."

// Sale is one active listing on the market.
type Sale struct {
	// Seller owns the right to reprice or remove the listing.
	Seller string `json:"seller"`
	// ApprovalToken is the opaque credential the asset registry issued to the
	// market, authorizing transfer of this specific asset on the seller's
	// behalf. Assigned as a locally monotonic sequence number; its real
	// validity is enforced by the registry, not by this engine.
	ApprovalToken uint64 `json:"approval_token"`
	// AssetIssuer is the external registry that minted the asset.
	AssetIssuer string `json:"asset_issuer"`
	// AssetID identifies the asset unit within the issuer's namespace.
	AssetID string `json:"asset_id"`
	// Price is the minimum accepted payment.
	Price    Amount    `json:"price"`
	ListedAt time.Time `json:"listed_at"`
}

// Key returns the globally unique composite key for this sale.
func (s *Sale) Key() string {
	return SaleKeyFor(s.AssetIssuer, s.AssetID)
}

// SaleKeyFor builds the composite sale key `issuer + delimiter + asset id`.
func SaleKeyFor(issuer, assetID string) string {
	return issuer + SaleKeyDelimiter + assetID
}

// AllowlistEntry is the per-issuer listing floor. Listing creation fails for
// issuers without an entry.
type AllowlistEntry struct {
	Issuer   string `json:"issuer"`
	MinPrice Amount `json:"min_price"`
}
