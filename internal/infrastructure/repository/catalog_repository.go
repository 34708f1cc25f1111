package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stationops/fuelpos-api/internal/domain/entity"
	domainRepo "github.com/stationops/fuelpos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB) domainRepo.CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) CreateFuel(ctx context.Context, fuel *entity.FuelProduct) error {
	return r.db.WithContext(ctx).Create(fuel).Error
}

func (r *catalogRepository) GetFuelByID(ctx context.Context, id uuid.UUID) (*entity.FuelProduct, error) {
	var fuel entity.FuelProduct
	err := r.db.WithContext(ctx).First(&fuel, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &fuel, err
}

func (r *catalogRepository) ListFuel(ctx context.Context) ([]entity.FuelProduct, error) {
	var fuels []entity.FuelProduct
	err := r.db.WithContext(ctx).Order("name ASC").Find(&fuels).Error
	return fuels, err
}

func (r *catalogRepository) UpdateFuel(ctx context.Context, fuel *entity.FuelProduct) error {
	return r.db.WithContext(ctx).Save(fuel).Error
}

// DecrementFuelStock floors the stock at zero in a single UPDATE, so a
// decrement larger than the remaining stock empties the tank instead
// of driving it negative.
func (r *catalogRepository) DecrementFuelStock(ctx context.Context, id uuid.UUID, amount float64) error {
	return r.db.WithContext(ctx).
		Model(&entity.FuelProduct{}).
		Where("id = ?", id).
		Update("stock_liters", gorm.Expr("GREATEST(stock_liters - ?, 0)", amount)).Error
}

func (r *catalogRepository) CreateService(ctx context.Context, svc *entity.StationService) error {
	return r.db.WithContext(ctx).Create(svc).Error
}

func (r *catalogRepository) GetServiceByID(ctx context.Context, id uuid.UUID) (*entity.StationService, error) {
	var svc entity.StationService
	err := r.db.WithContext(ctx).First(&svc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &svc, err
}

func (r *catalogRepository) ListServices(ctx context.Context) ([]entity.StationService, error) {
	var services []entity.StationService
	err := r.db.WithContext(ctx).Order("name ASC").Find(&services).Error
	return services, err
}
