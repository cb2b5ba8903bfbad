package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/letashop/backoffice-api/internal/config"
	"github.com/letashop/backoffice-api/internal/presentation/http/handler"
	"github.com/letashop/backoffice-api/internal/presentation/http/middleware"
	"github.com/letashop/backoffice-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	User      *handler.UserHandler
	Customer  *handler.CustomerHandler
	Category  *handler.CategoryHandler
	Product   *handler.ProductHandler
	Supplier  *handler.SupplierHandler
	Order     *handler.OrderHandler
	Discount  *handler.DiscountHandler
	Analytics *handler.AnalyticsHandler
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
		registerAuthRoutes(v1, h)

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

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Profile
	protected.GET("/auth/me", h.Auth.Me)

	// Analytics
	analytics := protected.Group("/analytics")
	{
		analytics.GET("/revenue", h.Analytics.Revenue)
		analytics.GET("/best-selling-products", h.Analytics.BestSellers)
	}

	// Categories
	categories := protected.Group("/categories")
	{
		categories.GET("/", h.Category.List)
		categories.POST("/create/", h.Category.Create)
		categories.GET("/:id/", h.Category.Get)
		categories.PATCH("/:id/", h.Category.Update)
		categories.DELETE("/:id/", h.Category.Delete)
		categories.GET("/:id/nested-products/", h.Category.NestedProducts)
	}

	// Products
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/reorder-needed", h.Product.ReorderNeeded)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}

	// Suppliers
	suppliers := protected.Group("/suppliers")
	{
		suppliers.GET("", h.Supplier.List)
		suppliers.POST("", h.Supplier.Create)
		suppliers.GET("/:id", h.Supplier.Get)
		suppliers.PUT("/:id", h.Supplier.Update)
		suppliers.DELETE("/:id", h.Supplier.Delete)
	}

	// Customers
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PATCH("/:id/membership", h.Customer.UpdateMembership)
	}

	// Orders (read-only)
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.GET("/:id", h.Order.Get)
	}

	// Discounts
	discounts := protected.Group("/discounts")
	{
		discounts.GET("", h.Discount.List)
		discounts.POST("", h.Discount.Create)
		discounts.GET("/:id", h.Discount.Get)
	}

	// Users (staff only)
	users := protected.Group("/users")
	users.Use(middleware.RequireStaff())
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
	}
}
