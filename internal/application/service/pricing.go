package service

import (
	"context"

	"github.com/stationops/fuelpos-api/internal/domain/entity"
	"github.com/stationops/fuelpos-api/internal/domain/enum"
	"github.com/stationops/fuelpos-api/internal/domain/repository"
	"github.com/stationops/fuelpos-api/pkg/apperror"
)

// PricingStrategy computes the price of one cart line against the
// catalog. Implementations are pure lookups with no side effects.
type PricingStrategy interface {
	Price(ctx context.Context, item *entity.CartItem) (float64, error)
}

// Pricer dispatches over the closed item-kind set to the matching
// strategy.
type Pricer struct {
	fuel    PricingStrategy
	service PricingStrategy
}

// NewPricer creates a pricer backed by the catalog
func NewPricer(catalogRepo repository.CatalogRepository) *Pricer {
	return &Pricer{
		fuel:    &fuelPricing{catalogRepo: catalogRepo},
		service: &servicePricing{catalogRepo: catalogRepo},
	}
}

// Price computes the amount for a single cart line.
func (p *Pricer) Price(ctx context.Context, item *entity.CartItem) (float64, error) {
	switch item.ItemKind {
	case enum.ItemKindService:
		return p.service.Price(ctx, item)
	default:
		return p.fuel.Price(ctx, item)
	}
}

// fuelPricing charges unit price per liter times the metered quantity.
type fuelPricing struct {
	catalogRepo repository.CatalogRepository
}

func (s *fuelPricing) Price(ctx context.Context, item *entity.CartItem) (float64, error) {
	fuel, err := s.catalogRepo.GetFuelByID(ctx, item.ItemID)
	if err != nil {
		return 0, err
	}
	if fuel == nil {
		return 0, apperror.ErrItemNotFound
	}
	return fuel.UnitPrice * item.Quantity, nil
}

// servicePricing charges the flat service price. The stored line
// quantity is ignored: a service is always sold as exactly one unit.
type servicePricing struct {
	catalogRepo repository.CatalogRepository
}

func (s *servicePricing) Price(ctx context.Context, item *entity.CartItem) (float64, error) {
	svc, err := s.catalogRepo.GetServiceByID(ctx, item.ItemID)
	if err != nil {
		return 0, err
	}
	if svc == nil {
		return 0, apperror.ErrItemNotFound
	}
	return svc.Price, nil
}
