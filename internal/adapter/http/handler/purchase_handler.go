package handler

import (
	"card-marketplace/internal/adapter/http/dto"
	"card-marketplace/internal/adapter/http/middleware"
	"card-marketplace/internal/core/domain"
	"card-marketplace/internal/core/ports"
	"card-marketplace/pkg/apperror"
	"card-marketplace/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PurchaseHandler handles the purchase settlement endpoints.
type PurchaseHandler struct {
	purchaseSvc ports.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(purchaseSvc ports.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseSvc: purchaseSvc}
}

// Buy handles POST /api/v1/sales/:issuer/:asset_id/buy. The response is 202:
// the settlement resolves asynchronously once the registry call lands.
func (h *PurchaseHandler) Buy(c *gin.Context) {
	buyer := c.GetString(middleware.CtxAccount)

	var req dto.BuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	deposit, err := domain.ParseAmount(req.Deposit)
	if err != nil {
		response.Error(c, apperror.Validation("deposit must be a non-negative decimal string"))
		return
	}

	settlement, err := h.purchaseSvc.Buy(c.Request.Context(), ports.BuyRequest{
		Buyer:       buyer,
		AssetIssuer: c.Param("issuer"),
		AssetID:     c.Param("asset_id"),
		Deposit:     deposit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Accepted(c, toSettlementResponse(settlement))
}

// GetSettlement handles GET /api/v1/settlements/:id.
func (h *PurchaseHandler) GetSettlement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid settlement id"))
		return
	}

	settlement, ok := h.purchaseSvc.GetSettlement(id)
	if !ok {
		response.Error(c, apperror.ErrNotFound("Settlement"))
		return
	}

	response.OK(c, toSettlementResponse(settlement))
}

// toSettlementResponse converts domain.Settlement to DTO.
func toSettlementResponse(s *domain.Settlement) dto.SettlementResponse {
	resp := dto.SettlementResponse{
		ID:          s.ID.String(),
		SaleKey:     s.SaleKey,
		AssetIssuer: s.AssetIssuer,
		AssetID:     s.AssetID,
		Buyer:       s.Buyer,
		Seller:      s.Seller,
		Price:       s.Price.String(),
		Status:      string(s.Status),
		CreatedAt:   s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if s.ResolvedAt != nil {
		t := s.ResolvedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.ResolvedAt = &t
	}
	return resp
}
