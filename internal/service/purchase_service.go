package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"card-marketplace/internal/core/domain"
	"card-marketplace/internal/core/ports"
	"card-marketplace/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PurchaseConfig carries the platform settlement parameters.
type PurchaseConfig struct {
	// FeeRate is the platform fee in percent, truncated per payout entry.
	FeeRate uint64
	// FeeRecipient receives the platform fee share of every payout entry.
	FeeRecipient string
	// TransferMemo is attached to the registry transfer request.
	TransferMemo string
	// RegistryCallTimeout bounds the external transfer-and-payout call.
	RegistryCallTimeout time.Duration
}

// PurchaseServiceImpl implements ports.PurchaseService: the two-phase purchase
// settlement protocol. Phase one (Buy) validates the offer and removes the
// sale; phase two (the continuation) runs after the external registry call
// returns and either distributes the payout plan or refunds the buyer. No lock
// spans the two phases.
type PurchaseServiceImpl struct {
	saleRepo ports.SaleRepository
	registry ports.AssetRegistry
	bank     ports.FundTransferor
	cfg      PurchaseConfig
	log      zerolog.Logger

	mu            sync.RWMutex
	settlements   map[uuid.UUID]*domain.Settlement
	resolvedOrder []uuid.UUID // terminal records, oldest first
	inflight      sync.WaitGroup
}

// maxResolvedSettlements bounds the terminal records kept for lookup. Once
// exceeded, the oldest resolved settlements are evicted. Pending records are
// never evicted.
var maxResolvedSettlements = 4096

// NewPurchaseService creates a new PurchaseServiceImpl.
func NewPurchaseService(
	saleRepo ports.SaleRepository,
	registry ports.AssetRegistry,
	bank ports.FundTransferor,
	cfg PurchaseConfig,
	log zerolog.Logger,
) *PurchaseServiceImpl {
	if cfg.RegistryCallTimeout <= 0 {
		cfg.RegistryCallTimeout = 30 * time.Second
	}
	return &PurchaseServiceImpl{
		saleRepo:    saleRepo,
		registry:    registry,
		bank:        bank,
		cfg:         cfg,
		log:         log,
		settlements: make(map[uuid.UUID]*domain.Settlement),
	}
}

// Buy validates the offer and starts settlement. The returned settlement is
// PENDING; the continuation resolves it once the registry call completes.
func (s *PurchaseServiceImpl) Buy(ctx context.Context, req ports.BuyRequest) (*domain.Settlement, error) {
	if !req.Deposit.IsPositive() {
		return nil, apperror.ErrZeroDeposit()
	}

	key := domain.SaleKeyFor(req.AssetIssuer, req.AssetID)
	sale, err := s.saleRepo.Get(ctx, key)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get sale: %w", err))
	}
	if sale == nil {
		return nil, apperror.ErrNotFound("Sale")
	}
	if req.Buyer == sale.Seller {
		return nil, apperror.ErrSelfPurchase()
	}
	if req.Deposit.Cmp(sale.Price) < 0 {
		return nil, apperror.ErrInsufficientOffer(sale.Price.String())
	}

	return s.processPurchase(ctx, req)
}

// processPurchase removes the sale from the registry BEFORE issuing the
// external call. Once the continuation is launched the listing can never be
// double-sold, even if the registry call fails; the sale is never reinstated
// after that point. The only reinstatement happens before the continuation,
// when the offer no longer covers the removed sale's price.
func (s *PurchaseServiceImpl) processPurchase(ctx context.Context, req ports.BuyRequest) (*domain.Settlement, error) {
	key := domain.SaleKeyFor(req.AssetIssuer, req.AssetID)

	sale, err := s.saleRepo.Remove(ctx, key)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("remove sale: %w", err))
	}
	if sale == nil {
		// Lost the race: another buy or an unlist removed the key first.
		return nil, apperror.ErrNotFound("Sale")
	}

	// A reprice may land between the lookup and the removal, so the offer is
	// re-checked against the sale actually removed. The external call has not
	// been issued yet, so reinstating the sale cannot double-sell the asset.
	if req.Deposit.Cmp(sale.Price) < 0 {
		if err := s.saleRepo.Insert(ctx, sale); err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("reinstate sale: %w", err))
		}
		return nil, apperror.ErrInsufficientOffer(sale.Price.String())
	}

	// Policy: the purchase settles at the listing price; any deposit excess is
	// refunded to the buyer, not forwarded into the payout plan.
	excess, ok := req.Deposit.Sub(sale.Price)
	if !ok {
		excess = domain.NewAmount(0)
	}

	now := time.Now().UTC()
	settlement := &domain.Settlement{
		ID:          uuid.New(),
		SaleKey:     key,
		AssetIssuer: sale.AssetIssuer,
		AssetID:     sale.AssetID,
		Buyer:       req.Buyer,
		Seller:      sale.Seller,
		Price:       sale.Price,
		Status:      domain.SettlementStatusPending,
		CreatedAt:   now,
	}

	s.mu.Lock()
	s.settlements[settlement.ID] = settlement
	s.mu.Unlock()

	s.log.Info().
		Str("settlement_id", settlement.ID.String()).
		Str("sale_key", key).
		Str("buyer", req.Buyer).
		Str("price", sale.Price.String()).
		Msg("sale removed, settlement started")

	// The map record is shared with the continuation; the caller's copy is
	// taken before the continuation can start mutating it.
	snapshot := *settlement

	// The continuation runs as its own independently scheduled invocation; the
	// initiating call returns without blocking on the registry.
	s.inflight.Add(1)
	go s.settle(settlement.ID, sale, req.Buyer, excess)

	return &snapshot, nil
}

// settle is the suspended continuation of processPurchase. It runs detached
// from the initiating request's context: once the external call is issued the
// flow always reaches SETTLED or REFUNDED, with no cancellation.
func (s *PurchaseServiceImpl) settle(id uuid.UUID, sale *domain.Sale, buyer string, excess domain.Amount) {
	defer s.inflight.Done()

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.RegistryCallTimeout)
	defer cancel()

	if excess.IsPositive() {
		s.transfer(ctx, buyer, excess, "excess deposit refund")
	}

	plan, err := s.registry.TransferAndReportPayout(ctx, ports.TransferPayoutRequest{
		AssetIssuer:   sale.AssetIssuer,
		AssetID:       sale.AssetID,
		Receiver:      buyer,
		ApprovalToken: sale.ApprovalToken,
		Memo:          s.cfg.TransferMemo,
		Price:         sale.Price,
		MaxRecipients: domain.MaxPayoutRecipients,
	})

	s.resolvePurchase(ctx, id, buyer, sale.Price, plan, err)
}

// resolvePurchase inspects the registry call's outcome. A failed call or a
// plan that fails validation takes the safe path: the full price goes back to
// the buyer. The asset transfer is never reversed either way; a refund
// returns the price, not the asset.
func (s *PurchaseServiceImpl) resolvePurchase(ctx context.Context, id uuid.UUID, buyer string, price domain.Amount, plan domain.PayoutPlan, callErr error) {
	if callErr != nil {
		s.log.Warn().Err(callErr).
			Str("settlement_id", id.String()).
			Msg("registry call failed, refunding buyer")
		s.refund(ctx, id, buyer, price)
		return
	}
	if err := plan.Validate(price); err != nil {
		s.log.Warn().Err(err).
			Str("settlement_id", id.String()).
			Int("recipients", len(plan)).
			Msg("payout plan rejected, refunding buyer")
		s.refund(ctx, id, buyer, price)
		return
	}

	// Valid plan: every recipient is paid exactly once, platform fee carved
	// out of each entry with integer truncation. Iteration order is
	// unspecified.
	for recipient, amount := range plan {
		fee := amount.PercentFee(s.cfg.FeeRate)
		net, _ := amount.Sub(fee)

		if fee.IsPositive() {
			s.transfer(ctx, s.cfg.FeeRecipient, fee, "platform fee")
		}
		if net.IsPositive() {
			s.transfer(ctx, recipient, net, "payout")
		}
	}

	s.markResolved(id, domain.SettlementStatusSettled)
	s.log.Info().
		Str("settlement_id", id.String()).
		Str("moved_value", price.String()).
		Int("recipients", len(plan)).
		Msg("settlement complete")
}

// refund returns the full price to the buyer and terminates the settlement.
// There is no retry and no partial payout.
func (s *PurchaseServiceImpl) refund(ctx context.Context, id uuid.UUID, buyer string, price domain.Amount) {
	s.transfer(ctx, buyer, price, "refund")
	s.markResolved(id, domain.SettlementStatusRefunded)
	s.log.Info().
		Str("settlement_id", id.String()).
		Str("moved_value", price.String()).
		Msg("settlement refunded; asset transfer not reversed")
}

// transfer issues one fire-and-forget value transfer. The primitive is assumed
// to eventually succeed; a returned error is logged and not retried here (the
// bank adapter owns retries).
func (s *PurchaseServiceImpl) transfer(ctx context.Context, recipient string, amount domain.Amount, kind string) {
	if err := s.bank.Transfer(ctx, recipient, amount); err != nil {
		s.log.Error().Err(err).
			Str("recipient", recipient).
			Str("amount", amount.String()).
			Str("kind", kind).
			Msg("value transfer reported failure")
	}
}

func (s *PurchaseServiceImpl) markResolved(id uuid.UUID, status domain.SettlementStatus) {
	now := time.Now().UTC()
	s.mu.Lock()
	defer s.mu.Unlock()
	settlement, ok := s.settlements[id]
	if !ok {
		return
	}
	settlement.Status = status
	settlement.ResolvedAt = &now

	s.resolvedOrder = append(s.resolvedOrder, id)
	for len(s.resolvedOrder) > maxResolvedSettlements {
		evict := s.resolvedOrder[0]
		s.resolvedOrder = s.resolvedOrder[1:]
		delete(s.settlements, evict)
	}
}

// GetSettlement returns a snapshot of a settlement by correlation id.
func (s *PurchaseServiceImpl) GetSettlement(id uuid.UUID) (*domain.Settlement, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	settlement, ok := s.settlements[id]
	if !ok {
		return nil, false
	}
	snapshot := *settlement
	return &snapshot, true
}

// Drain blocks until every in-flight continuation has resolved. Used during
// graceful shutdown so issued registry calls still land in a terminal state.
func (s *PurchaseServiceImpl) Drain() {
	s.inflight.Wait()
}
