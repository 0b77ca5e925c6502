package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"card-marketplace/internal/adapter/http/dto"
	"card-marketplace/internal/adapter/http/middleware"
	"card-marketplace/internal/core/domain"
	"card-marketplace/internal/core/ports"
	"card-marketplace/internal/core/ports/mocks"
	"card-marketplace/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(w *httptest.ResponseRecorder, method, path string, body []byte, account string) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	if account != "" {
		c.Set(middleware.CtxAccount, account)
	}
	return c
}

func saleParams(c *gin.Context, issuer, assetID string) {
	c.Params = gin.Params{
		{Key: "issuer", Value: issuer},
		{Key: "asset_id", Value: assetID},
	}
}

func sampleSale() *domain.Sale {
	return &domain.Sale{
		Seller:        "alice",
		ApprovalToken: 3,
		AssetIssuer:   "cards",
		AssetID:       "card-1",
		Price:         domain.NewAmount(150),
		ListedAt:      time.Now().UTC(),
	}
}

// --- Listing Handler Tests ---

func TestCreateSale_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockListing := mocks.NewMockListingService(ctrl)
	h := NewListingHandler(mockListing, zerolog.Nop())

	mockListing.EXPECT().
		List(gomock.Any(), "alice", "cards", "card-1", domain.NewAmount(150)).
		Return(sampleSale(), nil)

	body, _ := json.Marshal(dto.ListSaleRequest{
		AssetIssuer: "cards",
		AssetID:     "card-1",
		Price:       "150",
	})

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodPost, "/api/v1/sales", body, "alice")

	h.CreateSale(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "alice", data["seller"])
	assert.Equal(t, "150", data["price"])
	assert.Equal(t, float64(3), data["approval_token"])
}

func TestCreateSale_InvalidPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockListing := mocks.NewMockListingService(ctrl)
	h := NewListingHandler(mockListing, zerolog.Nop())

	body, _ := json.Marshal(dto.ListSaleRequest{
		AssetIssuer: "cards",
		AssetID:     "card-1",
		Price:       "not-a-number",
	})

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodPost, "/api/v1/sales", body, "alice")

	h.CreateSale(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSale_PriceBelowFloor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockListing := mocks.NewMockListingService(ctrl)
	h := NewListingHandler(mockListing, zerolog.Nop())

	mockListing.EXPECT().
		List(gomock.Any(), "alice", "cards", "card-1", domain.NewAmount(10)).
		Return(nil, apperror.ErrPriceTooLow("100"))

	body, _ := json.Marshal(dto.ListSaleRequest{
		AssetIssuer: "cards",
		AssetID:     "card-1",
		Price:       "10",
	})

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodPost, "/api/v1/sales", body, "alice")

	h.CreateSale(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "MKT_004", resp["error_code"])
}

func TestUpdatePrice_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockListing := mocks.NewMockListingService(ctrl)
	h := NewListingHandler(mockListing, zerolog.Nop())

	updated := sampleSale()
	updated.Price = domain.NewAmount(200)
	mockListing.EXPECT().
		UpdatePrice(gomock.Any(), "alice", "cards", "card-1", domain.NewAmount(200)).
		Return(updated, nil)

	body, _ := json.Marshal(dto.UpdatePriceRequest{Price: "200"})

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodPut, "/api/v1/sales/cards/card-1/price", body, "alice")
	saleParams(c, "cards", "card-1")

	h.UpdatePrice(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUnlist_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockListing := mocks.NewMockListingService(ctrl)
	h := NewListingHandler(mockListing, zerolog.Nop())

	mockListing.EXPECT().
		Unlist(gomock.Any(), "mallory", "cards", "card-1").
		Return(apperror.ErrNotSaleOwner())

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodDelete, "/api/v1/sales/cards/card-1", nil, "mallory")
	saleParams(c, "cards", "card-1")

	h.Unlist(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "MKT_002", resp["error_code"])
}

// --- Purchase Handler Tests ---

func TestBuy_Accepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPurchase := mocks.NewMockPurchaseService(ctrl)
	h := NewPurchaseHandler(mockPurchase)

	settlement := &domain.Settlement{
		ID:          uuid.New(),
		SaleKey:     "cards.card-1",
		AssetIssuer: "cards",
		AssetID:     "card-1",
		Buyer:       "bob",
		Seller:      "alice",
		Price:       domain.NewAmount(150),
		Status:      domain.SettlementStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	mockPurchase.EXPECT().
		Buy(gomock.Any(), ports.BuyRequest{
			Buyer:       "bob",
			AssetIssuer: "cards",
			AssetID:     "card-1",
			Deposit:     domain.NewAmount(150),
		}).
		Return(settlement, nil)

	body, _ := json.Marshal(dto.BuyRequest{Deposit: "150"})

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodPost, "/api/v1/sales/cards/card-1/buy", body, "bob")
	saleParams(c, "cards", "card-1")

	h.Buy(c)

	assert.Equal(t, http.StatusAccepted, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, settlement.ID.String(), data["id"])
	assert.Equal(t, "PENDING", data["status"])
}

func TestBuy_InsufficientOffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPurchase := mocks.NewMockPurchaseService(ctrl)
	h := NewPurchaseHandler(mockPurchase)

	mockPurchase.EXPECT().
		Buy(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrInsufficientOffer("150"))

	body, _ := json.Marshal(dto.BuyRequest{Deposit: "10"})

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodPost, "/api/v1/sales/cards/card-1/buy", body, "bob")
	saleParams(c, "cards", "card-1")

	h.Buy(c)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}

func TestGetSettlement_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPurchase := mocks.NewMockPurchaseService(ctrl)
	h := NewPurchaseHandler(mockPurchase)

	resolvedAt := time.Now().UTC()
	settlement := &domain.Settlement{
		ID:         uuid.New(),
		SaleKey:    "cards.card-1",
		Buyer:      "bob",
		Seller:     "alice",
		Price:      domain.NewAmount(150),
		Status:     domain.SettlementStatusSettled,
		CreatedAt:  resolvedAt.Add(-time.Second),
		ResolvedAt: &resolvedAt,
	}
	mockPurchase.EXPECT().GetSettlement(settlement.ID).Return(settlement, true)

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodGet, "/api/v1/settlements/"+settlement.ID.String(), nil, "bob")
	c.Params = gin.Params{{Key: "id", Value: settlement.ID.String()}}

	h.GetSettlement(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "SETTLED", data["status"])
	assert.NotEmpty(t, data["resolved_at"])
}

func TestGetSettlement_BadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPurchase := mocks.NewMockPurchaseService(ctrl)
	h := NewPurchaseHandler(mockPurchase)

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodGet, "/api/v1/settlements/nope", nil, "bob")
	c.Params = gin.Params{{Key: "id", Value: "nope"}}

	h.GetSettlement(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSettlement_Unknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPurchase := mocks.NewMockPurchaseService(ctrl)
	h := NewPurchaseHandler(mockPurchase)

	id := uuid.New()
	mockPurchase.EXPECT().GetSettlement(id).Return(nil, false)

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodGet, "/api/v1/settlements/"+id.String(), nil, "bob")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.GetSettlement(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Admin Handler Tests ---

func TestAllow_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAllowlist := mocks.NewMockAllowlistService(ctrl)
	h := NewAdminHandler(mockAllowlist)

	mockAllowlist.EXPECT().
		Allow(gomock.Any(), "cards", domain.NewAmount(100)).
		Return(nil)

	body, _ := json.Marshal(dto.AllowRequest{Issuer: "cards", MinPrice: "100"})

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodPost, "/api/v1/admin/allowlist", body, "ops")

	h.Allow(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAllow_InvalidMinPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAllowlist := mocks.NewMockAllowlistService(ctrl)
	h := NewAdminHandler(mockAllowlist)

	body, _ := json.Marshal(dto.AllowRequest{Issuer: "cards", MinPrice: "-5"})

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodPost, "/api/v1/admin/allowlist", body, "ops")

	h.Allow(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDisallow_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAllowlist := mocks.NewMockAllowlistService(ctrl)
	h := NewAdminHandler(mockAllowlist)

	mockAllowlist.EXPECT().Disallow(gomock.Any(), "cards").Return(nil)

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodDelete, "/api/v1/admin/allowlist/cards", nil, "ops")
	c.Params = gin.Params{{Key: "issuer", Value: "cards"}}

	h.Disallow(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Query Handler Tests ---

func TestGetSale_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuery := mocks.NewMockQueryService(ctrl)
	h := NewQueryHandler(mockQuery)

	mockQuery.EXPECT().GetSale(gomock.Any(), "cards", "card-1").Return(sampleSale(), nil)

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodGet, "/api/v1/sales/cards/card-1", nil, "")
	saleParams(c, "cards", "card-1")

	h.GetSale(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListSales_BySeller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuery := mocks.NewMockQueryService(ctrl)
	h := NewQueryHandler(mockQuery)

	mockQuery.EXPECT().
		SalesBySeller(gomock.Any(), "alice").
		Return([]domain.Sale{*sampleSale()}, nil)

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodGet, "/api/v1/sales?seller=alice", nil, "")

	h.ListSales(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["count"])
}

func TestGetSupply_ByIssuer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuery := mocks.NewMockQueryService(ctrl)
	h := NewQueryHandler(mockQuery)

	mockQuery.EXPECT().SupplyByIssuer(gomock.Any(), "cards").Return(uint64(5), nil)

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodGet, "/api/v1/sales/supply?issuer=cards", nil, "")

	h.GetSupply(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(5), data["supply"])
}
