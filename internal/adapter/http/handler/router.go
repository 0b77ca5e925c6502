package handler

import (
	"card-marketplace/internal/adapter/http/middleware"
	"card-marketplace/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	ListingSvc     ports.ListingService
	PurchaseSvc    ports.PurchaseService
	AllowlistSvc   ports.AllowlistService
	QuerySvc       ports.QueryService
	NonceStore     ports.NonceStore
	TokenSvc       ports.TokenService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	confirm := middleware.Confirmation(deps.NonceStore, deps.Logger)

	v1 := r.Group("/api/v1")

	// --- Public read-only views ---
	queryHandler := NewQueryHandler(deps.QuerySvc)
	v1.GET("/sales", queryHandler.ListSales)
	v1.GET("/sales/supply", queryHandler.GetSupply)
	v1.GET("/sales/:issuer/:asset_id", queryHandler.GetSale)

	// --- Listing lifecycle (JWT + single-use confirmation) ---
	listingHandler := NewListingHandler(deps.ListingSvc, deps.Logger)
	sales := v1.Group("/sales", jwtAuth)
	{
		sales.POST("", confirm, listingHandler.CreateSale)
		sales.PUT("/:issuer/:asset_id/price", confirm, listingHandler.UpdatePrice)
		sales.DELETE("/:issuer/:asset_id", confirm, listingHandler.Unlist)
	}

	// --- Purchase settlement ---
	purchaseHandler := NewPurchaseHandler(deps.PurchaseSvc)
	sales.POST("/:issuer/:asset_id/buy", confirm, purchaseHandler.Buy)

	settlements := v1.Group("/settlements", jwtAuth)
	{
		settlements.GET("/:id", purchaseHandler.GetSettlement)
	}

	// --- Allowlist administration (admin claim required) ---
	adminHandler := NewAdminHandler(deps.AllowlistSvc)
	admin := v1.Group("/admin/allowlist", jwtAuth, middleware.AdminOnly())
	{
		admin.POST("", confirm, adminHandler.Allow)
		admin.DELETE("/:issuer", confirm, adminHandler.Disallow)
		admin.GET("/:issuer", adminHandler.GetFloor)
	}

	return r
}
