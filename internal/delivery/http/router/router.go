// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"folio/internal/delivery/http/middleware"
	"folio/internal/delivery/http/router/handler"
	"folio/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	AnalysisHandler     *handler.AnalysisHandler
	PortfolioHandler    *handler.PortfolioHandler
	AccessHandler       *handler.AccessHandler
	ProductHandler      *handler.ProductHandler
	WebhookHandler      *handler.WebhookHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.UserHandler.RegisterUser)
		authGroup.POST("/login", r.params.UserHandler.Login)
	}

	// Public blog feed
	e.GET("/analyses", r.params.AnalysisHandler.ListPublished)

	// Authenticated self-service account routes
	usersGroup := e.Group("/users")
	usersGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		usersGroup.PUT("/me", r.params.UserHandler.UpdateProfile)
	}

	// Gated reader content, entitlement enforced by the usecase
	portfolioGroup := e.Group("/portfolio")
	portfolioGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		portfolioGroup.GET("", r.params.PortfolioHandler.GetActive)
	}

	// Payment processor webhook. No auth; the signature check is the
	// authentication. Rate limited to blunt replay floods.
	e.POST("/webhooks/stripe", r.params.WebhookHandler.HandleStripeEvent,
		r.params.RateLimitMiddleware.Limit)

	// Admin surface, shared by admins and authors. The token role gate is a
	// fast rejection; each usecase re-checks the role against the database.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.params.AuthMiddleware.Authenticate)
	adminGroup.Use(r.params.AuthMiddleware.RequireRole(
		entity.RoleAdmin.String(), entity.RoleAuthor.String()))
	{
		adminGroup.POST("/analyses", r.params.AnalysisHandler.Publish)
		adminGroup.POST("/analyses/attachments", r.params.AnalysisHandler.UploadAttachment)
		adminGroup.POST("/portfolio", r.params.PortfolioHandler.Publish)
		adminGroup.POST("/access/grant", r.params.AccessHandler.Grant)
		adminGroup.POST("/access/revoke", r.params.AccessHandler.Revoke)
		adminGroup.GET("/users/:id/orders", r.params.AccessHandler.ListUserOrders)
		adminGroup.POST("/products", r.params.ProductHandler.Create)
		adminGroup.GET("/products", r.params.ProductHandler.List)
		adminGroup.GET("/products/:slug/qr", r.params.ProductHandler.PurchaseQR)
	}
}
