package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stationops/fuelpos-api/internal/domain/entity"
	"github.com/stationops/fuelpos-api/internal/domain/repository"
	"github.com/stationops/fuelpos-api/pkg/apperror"
)

// CatalogService exposes read access to the fuel and service catalog.
type CatalogService struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

// ListFuel returns all fuel products.
func (s *CatalogService) ListFuel(ctx context.Context) ([]entity.FuelProduct, error) {
	return s.catalogRepo.ListFuel(ctx)
}

// GetFuel returns one fuel product by ID.
func (s *CatalogService) GetFuel(ctx context.Context, id uuid.UUID) (*entity.FuelProduct, error) {
	fuel, err := s.catalogRepo.GetFuelByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fuel == nil {
		return nil, apperror.ErrItemNotFound
	}
	return fuel, nil
}

// ListServices returns all station services.
func (s *CatalogService) ListServices(ctx context.Context) ([]entity.StationService, error) {
	return s.catalogRepo.ListServices(ctx)
}

// GetService returns one station service by ID.
func (s *CatalogService) GetService(ctx context.Context, id uuid.UUID) (*entity.StationService, error) {
	svc, err := s.catalogRepo.GetServiceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, apperror.ErrItemNotFound
	}
	return svc, nil
}
