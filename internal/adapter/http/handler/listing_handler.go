package handler

import (
	"card-marketplace/internal/adapter/http/dto"
	"card-marketplace/internal/adapter/http/middleware"
	"card-marketplace/internal/core/domain"
	"card-marketplace/internal/core/ports"
	"card-marketplace/pkg/apperror"
	"card-marketplace/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ListingHandler handles the listing lifecycle endpoints.
type ListingHandler struct {
	listingSvc ports.ListingService
	log        zerolog.Logger
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(listingSvc ports.ListingService, log zerolog.Logger) *ListingHandler {
	return &ListingHandler{listingSvc: listingSvc, log: log}
}

// CreateSale handles POST /api/v1/sales.
func (h *ListingHandler) CreateSale(c *gin.Context) {
	seller := c.GetString(middleware.CtxAccount)

	var req dto.ListSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	price, err := domain.ParseAmount(req.Price)
	if err != nil {
		response.Error(c, apperror.Validation("price must be a non-negative decimal string"))
		return
	}

	sale, err := h.listingSvc.List(c.Request.Context(), seller, req.AssetIssuer, req.AssetID, price)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toSaleResponse(sale))
}

// UpdatePrice handles PUT /api/v1/sales/:issuer/:asset_id/price.
func (h *ListingHandler) UpdatePrice(c *gin.Context) {
	caller := c.GetString(middleware.CtxAccount)

	var req dto.UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	price, err := domain.ParseAmount(req.Price)
	if err != nil {
		response.Error(c, apperror.Validation("price must be a non-negative decimal string"))
		return
	}

	sale, err := h.listingSvc.UpdatePrice(c.Request.Context(), caller, c.Param("issuer"), c.Param("asset_id"), price)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toSaleResponse(sale))
}

// Unlist handles DELETE /api/v1/sales/:issuer/:asset_id.
func (h *ListingHandler) Unlist(c *gin.Context) {
	caller := c.GetString(middleware.CtxAccount)

	err := h.listingSvc.Unlist(c.Request.Context(), caller, c.Param("issuer"), c.Param("asset_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, nil)
}

// toSaleResponse converts domain.Sale to DTO.
func toSaleResponse(sale *domain.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		Seller:        sale.Seller,
		ApprovalToken: sale.ApprovalToken,
		AssetIssuer:   sale.AssetIssuer,
		AssetID:       sale.AssetID,
		Price:         sale.Price.String(),
		ListedAt:      sale.ListedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
