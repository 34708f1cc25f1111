package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/stationops/fuelpos-api/internal/application/service"
	"github.com/stationops/fuelpos-api/internal/config"
	"github.com/stationops/fuelpos-api/internal/infrastructure/database"
	"github.com/stationops/fuelpos-api/internal/infrastructure/repository"
	"github.com/stationops/fuelpos-api/internal/presentation/http/handler"
	"github.com/stationops/fuelpos-api/internal/presentation/http/routes"
	"github.com/stationops/fuelpos-api/pkg/utils"
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

	// Seed default data
	if err := database.SeedDefaultData(db, &cfg.Operator); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	catalogRepo := repository.NewCatalogRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	cartRepo := repository.NewCartRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	operatorRepo := repository.NewOperatorRepository(db)

	// Initialize services
	sessions := service.NewSessionStore()
	pricer := service.NewPricer(catalogRepo)
	authService := service.NewAuthService(operatorRepo, jwtManager)
	catalogService := service.NewCatalogService(catalogRepo)
	customerService := service.NewCustomerService(customerRepo)
	cartService := service.NewCartService(cartRepo, catalogRepo, pricer, sessions)
	paymentService := service.NewPaymentService(customerRepo, cartRepo, catalogRepo, paymentRepo)
	checkoutService := service.NewCheckoutService(cartService, paymentService, sessions)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Catalog:  handler.NewCatalogHandler(catalogService),
		Customer: handler.NewCustomerHandler(customerService),
		Cart:     handler.NewCartHandler(cartService),
		Checkout: handler.NewCheckoutHandler(checkoutService, paymentService),
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
