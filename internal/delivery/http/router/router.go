// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"harvest/internal/delivery/http/middleware"
	"harvest/internal/delivery/http/router/handler"
	"harvest/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler          *handler.UserHandler
	ProductHandler       *handler.ProductHandler
	CertificationHandler *handler.CertificationHandler
	OrderHandler         *handler.OrderHandler
	MarketHandler        *handler.MarketHandler
	ChatHandler          *handler.ChatHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler          *handler.UserHandler
	productHandler       *handler.ProductHandler
	certificationHandler *handler.CertificationHandler
	orderHandler         *handler.OrderHandler
	marketHandler        *handler.MarketHandler
	chatHandler          *handler.ChatHandler
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:          params.UserHandler,
		productHandler:       params.ProductHandler,
		certificationHandler: params.CertificationHandler,
		orderHandler:         params.OrderHandler,
		marketHandler:        params.MarketHandler,
		chatHandler:          params.ChatHandler,
		authMiddleware:       params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/farmer", r.userHandler.RegisterFarmer)
		authGroup.POST("/register/consumer", r.userHandler.RegisterConsumer)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Reference market data for any signed-in user
	marketGroup := e.Group("/market")
	marketGroup.Use(r.authMiddleware.Authenticate)
	{
		marketGroup.GET("/prices", r.marketHandler.Prices)
	}

	// Catalog browsing for any signed-in user, mutations for farmers only
	productGroup := e.Group("/products")
	productGroup.Use(r.authMiddleware.Authenticate)
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.GET("/:id", r.productHandler.GetByID)
		productGroup.POST("", r.productHandler.Create, r.authMiddleware.RequireRole(entity.RoleFarmer))
		productGroup.PUT("/:id", r.productHandler.Update, r.authMiddleware.RequireRole(entity.RoleFarmer))
		productGroup.DELETE("/:id", r.productHandler.Delete, r.authMiddleware.RequireRole(entity.RoleFarmer))
	}

	// Farmer's own listings
	farmerGroup := e.Group("/farmer")
	farmerGroup.Use(r.authMiddleware.Authenticate)
	farmerGroup.Use(r.authMiddleware.RequireRole(entity.RoleFarmer))
	{
		farmerGroup.GET("/products", r.productHandler.ListOwn)
	}

	// Farmer certification submissions
	certificationGroup := e.Group("/certifications")
	certificationGroup.Use(r.authMiddleware.Authenticate)
	certificationGroup.Use(r.authMiddleware.RequireRole(entity.RoleFarmer))
	{
		certificationGroup.POST("", r.certificationHandler.Submit)
		certificationGroup.GET("", r.certificationHandler.ListOwn)
	}

	// Orders, visible to both sides of the marketplace
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.Create)
		orderGroup.GET("", r.orderHandler.List)
		orderGroup.GET("/:id", r.orderHandler.GetByID)
		orderGroup.PUT("/:id/status", r.orderHandler.UpdateStatus)
	}

	// Chat assistant
	chatGroup := e.Group("/chat")
	chatGroup.Use(r.authMiddleware.Authenticate)
	{
		chatGroup.POST("", r.chatHandler.Ask)
	}

	// Admin moderation and maintenance
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/certifications/pending", r.certificationHandler.ListPending)
		adminGroup.PUT("/certifications/:id/status", r.certificationHandler.Decide)
		adminGroup.GET("/certifications/stats", r.certificationHandler.Stats)
		adminGroup.POST("/products/recompute-discounts", r.productHandler.RecomputeDiscounts)
	}
}
