// Package bank provides the HTTP client for the platform ledger, the
// value-transfer primitive behind payouts and refunds.
package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"card-marketplace/internal/core/domain"

	"github.com/rs/zerolog"
)

// transferRetryIntervals defines the pause before each re-attempt. Transfers
// are assumed to eventually succeed, so the client absorbs transient failures
// before reporting one upward.
var transferRetryIntervals = []time.Duration{
	250 * time.Millisecond,
	1 * time.Second,
	3 * time.Second,
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.FundTransferor over the ledger's HTTP API.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a ledger client rooted at baseURL.
func NewClient(baseURL string, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		log:        log,
	}
}

type transferBody struct {
	Recipient string        `json:"recipient"`
	Amount    domain.Amount `json:"amount"`
}

// Transfer posts one value transfer, retrying transient failures. A non-2xx
// response or transport error on the final attempt is returned to the caller.
func (c *Client) Transfer(ctx context.Context, recipient string, amount domain.Amount) error {
	body, err := json.Marshal(transferBody{Recipient: recipient, Amount: amount})
	if err != nil {
		return fmt.Errorf("marshaling transfer: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= len(transferRetryIntervals); attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(transferRetryIntervals[attempt-1]):
			case <-ctx.Done():
				return fmt.Errorf("transfer aborted: %w", ctx.Err())
			}
		}

		lastErr = c.post(ctx, body)
		if lastErr == nil {
			if attempt > 0 {
				c.log.Info().
					Str("recipient", recipient).
					Int("attempt", attempt+1).
					Msg("bank: transfer succeeded after retry")
			}
			return nil
		}

		c.log.Warn().Err(lastErr).
			Str("recipient", recipient).
			Str("amount", amount.String()).
			Int("attempt", attempt+1).
			Msg("bank: transfer attempt failed")
	}

	return fmt.Errorf("transfer to %s failed: %w", recipient, lastErr)
}

func (c *Client) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/transfers", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating transfer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling ledger: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("ledger returned status %d", resp.StatusCode)
	}
	return nil
}
