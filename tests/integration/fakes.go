package integration

import (
	"context"
	"sync"

	"card-marketplace/internal/core/domain"
	"card-marketplace/internal/core/ports"
)

// fakeRegistry is a scripted ports.AssetRegistry. Each call returns the
// configured plan or error and records the request it saw.
type fakeRegistry struct {
	mu      sync.Mutex
	plan    domain.PayoutPlan
	err     error
	calls   int
	lastReq ports.TransferPayoutRequest
}

func (f *fakeRegistry) TransferAndReportPayout(_ context.Context, req ports.TransferPayoutRequest) (domain.PayoutPlan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastReq = req
	return f.plan, f.err
}

func (f *fakeRegistry) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeRegistry) lastRequest() ports.TransferPayoutRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastReq
}

// recordingTransferor is a ports.FundTransferor that records every transfer.
type recordingTransferor struct {
	mu        sync.Mutex
	transfers []transferRecord
}

type transferRecord struct {
	Recipient string
	Amount    domain.Amount
}

func (r *recordingTransferor) Transfer(_ context.Context, recipient string, amount domain.Amount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transfers = append(r.transfers, transferRecord{Recipient: recipient, Amount: amount})
	return nil
}

// totalTo sums every transfer sent to the recipient.
func (r *recordingTransferor) totalTo(recipient string) domain.Amount {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := domain.NewAmount(0)
	for _, tr := range r.transfers {
		if tr.Recipient == recipient {
			total = total.Add(tr.Amount)
		}
	}
	return total
}

// totalMoved sums every transfer regardless of recipient.
func (r *recordingTransferor) totalMoved() domain.Amount {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := domain.NewAmount(0)
	for _, tr := range r.transfers {
		total = total.Add(tr.Amount)
	}
	return total
}

func (r *recordingTransferor) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.transfers)
}
