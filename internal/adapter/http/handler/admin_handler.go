package handler

import (
	"card-marketplace/internal/adapter/http/dto"
	"card-marketplace/internal/core/domain"
	"card-marketplace/internal/core/ports"
	"card-marketplace/pkg/apperror"
	"card-marketplace/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles the allowlist administration endpoints.
type AdminHandler struct {
	allowlistSvc ports.AllowlistService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(allowlistSvc ports.AllowlistService) *AdminHandler {
	return &AdminHandler{allowlistSvc: allowlistSvc}
}

// Allow handles POST /api/v1/admin/allowlist.
func (h *AdminHandler) Allow(c *gin.Context) {
	var req dto.AllowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	minPrice, err := domain.ParseAmount(req.MinPrice)
	if err != nil {
		response.Error(c, apperror.Validation("min_price must be a non-negative decimal string"))
		return
	}

	if err := h.allowlistSvc.Allow(c.Request.Context(), req.Issuer, minPrice); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.AllowlistEntryResponse{
		Issuer:   req.Issuer,
		MinPrice: minPrice.String(),
	})
}

// Disallow handles DELETE /api/v1/admin/allowlist/:issuer.
func (h *AdminHandler) Disallow(c *gin.Context) {
	if err := h.allowlistSvc.Disallow(c.Request.Context(), c.Param("issuer")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, nil)
}

// GetFloor handles GET /api/v1/admin/allowlist/:issuer.
func (h *AdminHandler) GetFloor(c *gin.Context) {
	entry, err := h.allowlistSvc.GetFloor(c.Request.Context(), c.Param("issuer"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AllowlistEntryResponse{
		Issuer:   entry.Issuer,
		MinPrice: entry.MinPrice.String(),
	})
}
