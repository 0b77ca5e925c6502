// Package registry provides the HTTP client for the external asset registry,
// the system of record for asset ownership and payout splits.
package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"card-marketplace/internal/core/domain"
	"card-marketplace/internal/core/ports"

	"github.com/rs/zerolog"
)

// maxResponseBytes bounds how much of the registry response is read. A payout
// envelope for ten recipients fits in far less.
const maxResponseBytes = 1 << 20

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.AssetRegistry over the registry's HTTP API.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a registry client rooted at baseURL.
func NewClient(baseURL string, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		log:        log,
	}
}

type transferPayoutBody struct {
	Receiver      string        `json:"receiver"`
	ApprovalToken uint64        `json:"approval_token"`
	Memo          string        `json:"memo,omitempty"`
	Price         domain.Amount `json:"price"`
	MaxRecipients int           `json:"max_recipients"`
}

// TransferAndReportPayout asks the registry to move the asset to the receiver
// and report how the price splits across payees. The response body is the
// payout envelope; anything else is returned as an error so the caller takes
// the refund path.
func (c *Client) TransferAndReportPayout(ctx context.Context, req ports.TransferPayoutRequest) (domain.PayoutPlan, error) {
	body, err := json.Marshal(transferPayoutBody{
		Receiver:      req.Receiver,
		ApprovalToken: req.ApprovalToken,
		Memo:          req.Memo,
		Price:         req.Price,
		MaxRecipients: req.MaxRecipients,
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling transfer request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/issuers/%s/assets/%s/transfer-payout",
		c.baseURL, url.PathEscape(req.AssetIssuer), url.PathEscape(req.AssetID))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating transfer request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling asset registry: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("reading registry response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn().
			Int("status", resp.StatusCode).
			Str("issuer", req.AssetIssuer).
			Str("asset_id", req.AssetID).
			Msg("registry: transfer-payout rejected")
		return nil, fmt.Errorf("registry returned status %d", resp.StatusCode)
	}

	plan, err := domain.ParsePayoutPlan(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing payout envelope: %w", err)
	}
	return plan, nil
}
