package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/stationops/fuelpos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Payment is a history record of one successful debit, partial or
// full, against a single balance.
type Payment struct {
	ID         uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID          `gorm:"type:uuid;not null;index" json:"customer_id"`
	Source     enum.PaymentSource `gorm:"not null" json:"source"`
	Amount     float64            `gorm:"not null" json:"amount"`
	CreatedAt  time.Time          `json:"created_at"`

	// Relationships
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
