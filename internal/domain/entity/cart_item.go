package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/stationops/fuelpos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// CartItem is one line in a customer's cart. It references a catalog
// entry by (kind, item id) and carries a quantity: liters for fuel,
// always 1 for a service. At most one line may exist per
// (customer, kind, item).
type CartItem struct {
	ID         uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	Position   int64         `gorm:"autoIncrement;uniqueIndex" json:"-"`
	CustomerID uuid.UUID     `gorm:"type:uuid;not null;index" json:"customer_id"`
	ItemKind   enum.ItemKind `gorm:"not null" json:"item_kind"`
	ItemID     uuid.UUID     `gorm:"type:uuid;not null" json:"item_id"`
	Quantity   float64       `gorm:"not null" json:"quantity"`
	CreatedAt  time.Time     `json:"created_at"`

	// Relationships
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new cart item
func (i *CartItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CartItem model
func (CartItem) TableName() string {
	return "cart_items"
}
