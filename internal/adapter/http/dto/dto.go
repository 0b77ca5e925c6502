package dto

// ListSaleRequest is the request body for creating a listing.
type ListSaleRequest struct {
	AssetIssuer string `json:"asset_issuer" binding:"required,max=100"`
	AssetID     string `json:"asset_id" binding:"required,max=100"`
	Price       string `json:"price" binding:"required"`
}

// UpdatePriceRequest is the request body for repricing a listing.
type UpdatePriceRequest struct {
	Price string `json:"price" binding:"required"`
}

// BuyRequest is the request body for purchasing a listing. Deposit is the
// value the buyer attaches to the offer.
type BuyRequest struct {
	Deposit string `json:"deposit" binding:"required"`
}

// AllowRequest is the request body for allowlisting an issuer.
type AllowRequest struct {
	Issuer   string `json:"issuer" binding:"required,max=100"`
	MinPrice string `json:"min_price" binding:"required"`
}

// SaleResponse is the response body for a single listing.
type SaleResponse struct {
	Seller        string `json:"seller"`
	ApprovalToken uint64 `json:"approval_token"`
	AssetIssuer   string `json:"asset_issuer"`
	AssetID       string `json:"asset_id"`
	Price         string `json:"price"`
	ListedAt      string `json:"listed_at"`
}

// SaleListResponse wraps a list of sales.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Count int            `json:"count"`
}

// SupplyResponse is the response body for supply counts.
type SupplyResponse struct {
	Supply uint64 `json:"supply"`
}

// AllowlistEntryResponse is the response body for an issuer floor.
type AllowlistEntryResponse struct {
	Issuer   string `json:"issuer"`
	MinPrice string `json:"min_price"`
}

// SettlementResponse is the response body for a purchase settlement.
type SettlementResponse struct {
	ID          string  `json:"id"`
	SaleKey     string  `json:"sale_key"`
	AssetIssuer string  `json:"asset_issuer"`
	AssetID     string  `json:"asset_id"`
	Buyer       string  `json:"buyer"`
	Seller      string  `json:"seller"`
	Price       string  `json:"price"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	ResolvedAt  *string `json:"resolved_at,omitempty"`
}
