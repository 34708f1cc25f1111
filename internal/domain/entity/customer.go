package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/stationops/fuelpos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Customer represents a station customer with three independent
// payment balances. Balances are mutated only by the payment service
// and must never go negative.
type Customer struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	CashBalance float64        `gorm:"not null;default:0" json:"cash_balance"`
	CardBalance float64        `gorm:"not null;default:0" json:"card_balance"`
	BonusPoints float64        `gorm:"not null;default:0" json:"bonus_points"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	CartItems []CartItem `gorm:"foreignKey:CustomerID" json:"-"`
	Payments  []Payment  `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// Balance returns the balance for the given payment source.
func (c *Customer) Balance(source enum.PaymentSource) float64 {
	switch source {
	case enum.PaymentSourceCard:
		return c.CardBalance
	case enum.PaymentSourceBonus:
		return c.BonusPoints
	default:
		return c.CashBalance
	}
}

// Debit subtracts amount from the given balance. Callers must have
// checked sufficiency first.
func (c *Customer) Debit(source enum.PaymentSource, amount float64) {
	switch source {
	case enum.PaymentSourceCard:
		c.CardBalance -= amount
	case enum.PaymentSourceBonus:
		c.BonusPoints -= amount
	default:
		c.CashBalance -= amount
	}
}
