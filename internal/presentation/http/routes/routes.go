package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stationops/fuelpos-api/internal/config"
	"github.com/stationops/fuelpos-api/internal/presentation/http/handler"
	"github.com/stationops/fuelpos-api/internal/presentation/http/middleware"
	"github.com/stationops/fuelpos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Catalog  *handler.CatalogHandler
	Customer *handler.CustomerHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Catalog
	catalog := protected.Group("/catalog")
	{
		catalog.GET("/fuel", h.Catalog.ListFuel)
		catalog.GET("/fuel/:id", h.Catalog.GetFuel)
		catalog.GET("/services", h.Catalog.ListServices)
		catalog.GET("/services/:id", h.Catalog.GetService)
	}

	// Customers
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)

		// Cart
		customers.GET("/:id/cart", h.Cart.Get)
		customers.POST("/:id/cart/items", h.Cart.AddItem)
		customers.DELETE("/:id/cart/items", h.Cart.RemoveByItem)
		customers.DELETE("/:id/cart", h.Cart.Clear)

		// Checkout
		customers.GET("/:id/checkout", h.Checkout.Status)
		customers.POST("/:id/checkout/partial", h.Checkout.PartialPayment)
		customers.POST("/:id/checkout/full", h.Checkout.FullCheckout)
		customers.POST("/:id/checkout/full/combined", h.Checkout.FullCheckoutCombined)

		// Payment history
		customers.GET("/:id/payments", h.Checkout.PaymentHistory)
	}

	// Cart lines addressed by their own ID
	protected.DELETE("/cart/items/:id", h.Cart.RemoveItem)
}
