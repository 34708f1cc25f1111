package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stationops/fuelpos-api/internal/domain/entity"
)

// PaymentRepository defines the interface for payment history records
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Payment, error)
}
