package database

import (
	"fmt"
	"log"

	"github.com/stationops/fuelpos-api/internal/config"
	"github.com/stationops/fuelpos-api/internal/domain/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Catalog entities
		&entity.FuelProduct{},
		&entity.StationService{},

		// Customer entities
		&entity.Customer{},
		&entity.CartItem{},
		&entity.Payment{},

		// System entities
		&entity.Operator{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the catalog, a demo customer and the default
// operator. Each block only runs when its table is still empty.
func SeedDefaultData(db *gorm.DB, cfg *config.OperatorConfig) error {
	log.Println("Seeding default data...")

	var fuelCount int64
	db.Model(&entity.FuelProduct{}).Count(&fuelCount)
	if fuelCount == 0 {
		fuels := []entity.FuelProduct{
			{Name: "Premium 95", UnitPrice: 56.0, StockLiters: 10000.0},
			{Name: "Diesel", UnitPrice: 50.0, StockLiters: 8000.0},
			{Name: "Electric charge", UnitPrice: 8.0, StockLiters: 5000.0},
		}
		for i := range fuels {
			if err := db.Create(&fuels[i]).Error; err != nil {
				log.Printf("Warning: failed to create fuel product %s: %v", fuels[i].Name, err)
			}
		}
	}

	var serviceCount int64
	db.Model(&entity.StationService{}).Count(&serviceCount)
	if serviceCount == 0 {
		services := []entity.StationService{
			{Name: "Car wash", Price: 300.0},
			{Name: "Tire inflation", Price: 150.0},
			{Name: "Coffee", Price: 70.0},
		}
		for i := range services {
			if err := db.Create(&services[i]).Error; err != nil {
				log.Printf("Warning: failed to create service %s: %v", services[i].Name, err)
			}
		}
	}

	var customerCount int64
	db.Model(&entity.Customer{}).Count(&customerCount)
	if customerCount == 0 {
		demo := entity.Customer{
			Name:        "Ivan Ivanov",
			CashBalance: 1000.00,
			CardBalance: 2000.00,
			BonusPoints: 150.00,
		}
		if err := db.Create(&demo).Error; err != nil {
			log.Printf("Warning: failed to create demo customer: %v", err)
		}
	}

	// Create the default operator if configured
	if cfg.Username != "" && cfg.Password != "" {
		var existing entity.Operator
		if err := db.Where("username = ?", cfg.Username).First(&existing).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash operator password: %v", err)
			} else {
				operator := entity.Operator{
					Username:     cfg.Username,
					PasswordHash: string(hashedPassword),
				}
				if err := db.Create(&operator).Error; err != nil {
					log.Printf("Warning: failed to create operator: %v", err)
				} else {
					log.Printf("Default operator created: %s", cfg.Username)
				}
			}
		}
	} else {
		log.Println("Warning: OPERATOR_PASSWORD not set, no operator account seeded")
	}

	log.Println("Default data seeding completed")
	return nil
}
