package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stationops/fuelpos-api/internal/domain/entity"
	"github.com/stationops/fuelpos-api/internal/domain/enum"
)

// CartRepository defines the interface for cart line persistence
type CartRepository interface {
	Insert(ctx context.Context, item *entity.CartItem) error
	// ListByCustomer returns the customer's lines in insertion order.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.CartItem, error)
	GetByItem(ctx context.Context, customerID uuid.UUID, kind enum.ItemKind, itemID uuid.UUID) (*entity.CartItem, error)
	Delete(ctx context.Context, id uuid.UUID) (*entity.CartItem, error)
	DeleteByItem(ctx context.Context, customerID uuid.UUID, kind enum.ItemKind, itemID uuid.UUID) error
	DeleteAllByCustomer(ctx context.Context, customerID uuid.UUID) error
}
