package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FuelProduct is a metered product sold by the liter. Stock is
// decremented on completed checkout and floors at zero.
type FuelProduct struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	UnitPrice   float64        `gorm:"not null" json:"unit_price"`
	StockLiters float64        `gorm:"not null;default:0" json:"stock_liters"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new fuel product
func (p *FuelProduct) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the FuelProduct model
func (FuelProduct) TableName() string {
	return "fuel_products"
}

// StationService is a flat-fee service (car wash, tire inflation).
// It charges a fixed price per sale; no stock is tracked.
type StationService struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Price     float64        `gorm:"not null" json:"price"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new station service
func (s *StationService) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StationService model
func (StationService) TableName() string {
	return "station_services"
}
