package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stationops/fuelpos-api/internal/domain/entity"
	"github.com/stationops/fuelpos-api/internal/domain/enum"
	"github.com/stationops/fuelpos-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricer_FuelLine(t *testing.T) {
	catalog := newMockCatalogRepo()
	fuel := &entity.FuelProduct{Name: "Premium 95", UnitPrice: 56.0, StockLiters: 10000}
	require.NoError(t, catalog.CreateFuel(context.Background(), fuel))

	pricer := NewPricer(catalog)

	price, err := pricer.Price(context.Background(), &entity.CartItem{
		ItemKind: enum.ItemKindFuel,
		ItemID:   fuel.ID,
		Quantity: 5,
	})
	require.NoError(t, err)
	assert.InDelta(t, 280.0, price, 1e-9)
}

func TestPricer_ServiceLineIgnoresQuantity(t *testing.T) {
	catalog := newMockCatalogRepo()
	svc := &entity.StationService{Name: "Tire inflation", Price: 150.0}
	require.NoError(t, catalog.CreateService(context.Background(), svc))

	pricer := NewPricer(catalog)

	// Even a corrupted quantity must not change a service's flat price.
	for _, qty := range []float64{1, 3, 0.5} {
		price, err := pricer.Price(context.Background(), &entity.CartItem{
			ItemKind: enum.ItemKindService,
			ItemID:   svc.ID,
			Quantity: qty,
		})
		require.NoError(t, err)
		assert.InDelta(t, 150.0, price, 1e-9)
	}
}

func TestPricer_MissingCatalogEntry(t *testing.T) {
	pricer := NewPricer(newMockCatalogRepo())

	_, err := pricer.Price(context.Background(), &entity.CartItem{
		ItemKind: enum.ItemKindFuel,
		ItemID:   uuid.New(),
		Quantity: 1,
	})
	assert.ErrorIs(t, err, apperror.ErrItemNotFound)

	_, err = pricer.Price(context.Background(), &entity.CartItem{
		ItemKind: enum.ItemKindService,
		ItemID:   uuid.New(),
		Quantity: 1,
	})
	assert.ErrorIs(t, err, apperror.ErrItemNotFound)
}
