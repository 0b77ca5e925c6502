package handler

import (
	"strconv"

	"card-marketplace/internal/adapter/http/dto"
	"card-marketplace/internal/core/domain"
	"card-marketplace/internal/core/ports"
	"card-marketplace/pkg/response"

	"github.com/gin-gonic/gin"
)

// QueryHandler handles the read-only marketplace views.
type QueryHandler struct {
	querySvc ports.QueryService
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(querySvc ports.QueryService) *QueryHandler {
	return &QueryHandler{querySvc: querySvc}
}

// GetSale handles GET /api/v1/sales/:issuer/:asset_id.
func (h *QueryHandler) GetSale(c *gin.Context) {
	sale, err := h.querySvc.GetSale(c.Request.Context(), c.Param("issuer"), c.Param("asset_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toSaleResponse(sale))
}

// ListSales handles GET /api/v1/sales. A seller or issuer query parameter
// narrows the view; otherwise the full registry is paged.
func (h *QueryHandler) ListSales(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		sales []domain.Sale
		err   error
	)
	switch {
	case c.Query("seller") != "":
		sales, err = h.querySvc.SalesBySeller(ctx, c.Query("seller"))
	case c.Query("issuer") != "":
		sales, err = h.querySvc.SalesByIssuer(ctx, c.Query("issuer"))
	default:
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
		sales, err = h.querySvc.Sales(ctx, limit, offset)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		items = append(items, toSaleResponse(&sales[i]))
	}

	response.OK(c, dto.SaleListResponse{Items: items, Count: len(items)})
}

// GetSupply handles GET /api/v1/sales/supply. A seller or issuer query
// parameter narrows the count.
func (h *QueryHandler) GetSupply(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		supply uint64
		err    error
	)
	switch {
	case c.Query("seller") != "":
		supply, err = h.querySvc.SupplyBySeller(ctx, c.Query("seller"))
	case c.Query("issuer") != "":
		supply, err = h.querySvc.SupplyByIssuer(ctx, c.Query("issuer"))
	default:
		supply, err = h.querySvc.SupplySales(ctx)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SupplyResponse{Supply: supply})
}
