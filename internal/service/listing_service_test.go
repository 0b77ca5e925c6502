package service

import (
	"context"
	"testing"
	"time"

	"card-marketplace/internal/core/domain"
	"card-marketplace/internal/core/ports/mocks"
	"card-marketplace/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type listingTestDeps struct {
	svc       *ListingServiceImpl
	saleRepo  *mocks.MockSaleRepository
	allowRepo *mocks.MockAllowlistRepository
	ctrl      *gomock.Controller
}

func setupListingService(t *testing.T) *listingTestDeps {
	ctrl := gomock.NewController(t)
	d := &listingTestDeps{
		saleRepo:  mocks.NewMockSaleRepository(ctrl),
		allowRepo: mocks.NewMockAllowlistRepository(ctrl),
		ctrl:      ctrl,
	}
	d.svc = NewListingService(d.saleRepo, d.allowRepo, zerolog.Nop())
	return d
}

func floorEntry(issuer string, min uint64) *domain.AllowlistEntry {
	return &domain.AllowlistEntry{Issuer: issuer, MinPrice: domain.NewAmount(min)}
}

func listedSale(seller, issuer, assetID string, price uint64) *domain.Sale {
	return &domain.Sale{
		Seller:        seller,
		ApprovalToken: 3,
		AssetIssuer:   issuer,
		AssetID:       assetID,
		Price:         domain.NewAmount(price),
		ListedAt:      time.Now().UTC(),
	}
}

// ==================== List Tests ====================

func TestListingService_List_Success(t *testing.T) {
	d := setupListingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.allowRepo.EXPECT().Get(ctx, "cards").Return(floorEntry("cards", 100), nil)
	d.saleRepo.EXPECT().Count(ctx).Return(uint64(4), nil)
	d.saleRepo.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, sale *domain.Sale) error {
			assert.Equal(t, "alice", sale.Seller)
			assert.Equal(t, uint64(5), sale.ApprovalToken, "approval token is registry size + 1")
			assert.Equal(t, "cards.card-1", sale.Key())
			return nil
		})

	sale, err := d.svc.List(ctx, "alice", "cards", "card-1", domain.NewAmount(150))
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.Equal(t, "alice", sale.Seller)
	assert.Equal(t, "150", sale.Price.String())
}

func TestListingService_List_NotAllowlisted(t *testing.T) {
	d := setupListingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.allowRepo.EXPECT().Get(ctx, "cards").Return(nil, nil)

	sale, err := d.svc.List(ctx, "alice", "cards", "card-1", domain.NewAmount(150))
	assert.Nil(t, sale)
	assertAppError(t, err, "MKT_003")
}

func TestListingService_List_PriceTooLow(t *testing.T) {
	d := setupListingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.allowRepo.EXPECT().Get(ctx, "cards").Return(floorEntry("cards", 100), nil)

	// Registry is never touched: the floor check aborts with no state change.
	sale, err := d.svc.List(ctx, "alice", "cards", "card-1", domain.NewAmount(99))
	assert.Nil(t, sale)
	assertAppError(t, err, "MKT_004")
}

func TestListingService_List_PriceAtFloor(t *testing.T) {
	d := setupListingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.allowRepo.EXPECT().Get(ctx, "cards").Return(floorEntry("cards", 100), nil)
	d.saleRepo.EXPECT().Count(ctx).Return(uint64(0), nil)
	d.saleRepo.EXPECT().Insert(ctx, gomock.Any()).Return(nil)

	sale, err := d.svc.List(ctx, "alice", "cards", "card-1", domain.NewAmount(100))
	require.NoError(t, err)
	assert.Equal(t, "100", sale.Price.String())
}

// ==================== UpdatePrice Tests ====================

func TestListingService_UpdatePrice_Success(t *testing.T) {
	d := setupListingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.saleRepo.EXPECT().Get(ctx, "cards.card-1").Return(listedSale("alice", "cards", "card-1", 150), nil)
	d.saleRepo.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, sale *domain.Sale) error {
			assert.Equal(t, "200", sale.Price.String())
			return nil
		})

	sale, err := d.svc.UpdatePrice(ctx, "alice", "cards", "card-1", domain.NewAmount(200))
	require.NoError(t, err)
	assert.Equal(t, "200", sale.Price.String())
}

func TestListingService_UpdatePrice_NotFound(t *testing.T) {
	d := setupListingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.saleRepo.EXPECT().Get(ctx, "cards.card-1").Return(nil, nil)

	sale, err := d.svc.UpdatePrice(ctx, "alice", "cards", "card-1", domain.NewAmount(200))
	assert.Nil(t, sale)
	assertAppError(t, err, "MKT_001")
}

func TestListingService_UpdatePrice_NotOwner(t *testing.T) {
	d := setupListingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.saleRepo.EXPECT().Get(ctx, "cards.card-1").Return(listedSale("alice", "cards", "card-1", 150), nil)

	sale, err := d.svc.UpdatePrice(ctx, "mallory", "cards", "card-1", domain.NewAmount(1))
	assert.Nil(t, sale)
	assertAppError(t, err, "MKT_002")
}

// ==================== Unlist Tests ====================

func TestListingService_Unlist_Success(t *testing.T) {
	d := setupListingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.saleRepo.EXPECT().Remove(ctx, "cards.card-1").Return(listedSale("alice", "cards", "card-1", 150), nil)

	err := d.svc.Unlist(ctx, "alice", "cards", "card-1")
	require.NoError(t, err)
}

func TestListingService_Unlist_NotFound(t *testing.T) {
	d := setupListingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.saleRepo.EXPECT().Remove(ctx, "cards.card-1").Return(nil, nil)

	err := d.svc.Unlist(ctx, "alice", "cards", "card-1")
	assertAppError(t, err, "MKT_001")
}

// Pins the remove-then-check ordering: an unauthorized caller still causes
// removal but gets an authorization error back.
func TestListingService_Unlist_NotOwner_StillRemoves(t *testing.T) {
	d := setupListingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.saleRepo.EXPECT().Remove(ctx, "cards.card-1").Return(listedSale("alice", "cards", "card-1", 150), nil)

	err := d.svc.Unlist(ctx, "mallory", "cards", "card-1")
	assertAppError(t, err, "MKT_002")
}

// ==================== Helper ====================

func assertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
}
