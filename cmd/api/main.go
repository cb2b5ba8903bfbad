package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/letashop/backoffice-api/internal/application/service"
	"github.com/letashop/backoffice-api/internal/config"
	"github.com/letashop/backoffice-api/internal/infrastructure/database"
	"github.com/letashop/backoffice-api/internal/infrastructure/repository"
	"github.com/letashop/backoffice-api/internal/presentation/http/handler"
	"github.com/letashop/backoffice-api/internal/presentation/http/routes"
	"github.com/letashop/backoffice-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	discountRepo := repository.NewDiscountRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo)
	customerService := service.NewCustomerService(customerRepo, userRepo)
	categoryService := service.NewCategoryService(categoryRepo, productRepo)
	productService := service.NewProductService(productRepo, categoryRepo, supplierRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	orderService := service.NewOrderService(orderRepo)
	discountService := service.NewDiscountService(discountRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo, cfg.Analytics.BestSellersLimit)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		User:      handler.NewUserHandler(userService),
		Customer:  handler.NewCustomerHandler(customerService),
		Category:  handler.NewCategoryHandler(categoryService),
		Product:   handler.NewProductHandler(productService),
		Supplier:  handler.NewSupplierHandler(supplierService),
		Order:     handler.NewOrderHandler(orderService),
		Discount:  handler.NewDiscountHandler(discountService),
		Analytics: handler.NewAnalyticsHandler(analyticsService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
