package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stationops/fuelpos-api/internal/domain/entity"
)

// CatalogRepository defines the interface for fuel and service catalog data operations
type CatalogRepository interface {
	CreateFuel(ctx context.Context, fuel *entity.FuelProduct) error
	GetFuelByID(ctx context.Context, id uuid.UUID) (*entity.FuelProduct, error)
	ListFuel(ctx context.Context) ([]entity.FuelProduct, error)
	UpdateFuel(ctx context.Context, fuel *entity.FuelProduct) error
	// DecrementFuelStock atomically subtracts amount liters from the
	// fuel's stock, flooring at zero.
	DecrementFuelStock(ctx context.Context, id uuid.UUID, amount float64) error

	CreateService(ctx context.Context, svc *entity.StationService) error
	GetServiceByID(ctx context.Context, id uuid.UUID) (*entity.StationService, error)
	ListServices(ctx context.Context) ([]entity.StationService, error)
}
