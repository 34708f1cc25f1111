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

type cartFixture struct {
	cart     *CartService
	catalog  *mockCatalogRepo
	cartRepo *mockCartRepo
	sessions *SessionStore
	fuel     *entity.FuelProduct
	wash     *entity.StationService
}

func newCartFixture(t *testing.T) *cartFixture {
	t.Helper()
	catalog := newMockCatalogRepo()
	fuel := &entity.FuelProduct{Name: "Premium 95", UnitPrice: 56.0, StockLiters: 10000}
	require.NoError(t, catalog.CreateFuel(context.Background(), fuel))
	wash := &entity.StationService{Name: "Car wash", Price: 300.0}
	require.NoError(t, catalog.CreateService(context.Background(), wash))

	cartRepo := newMockCartRepo()
	sessions := NewSessionStore()
	return &cartFixture{
		cart:     NewCartService(cartRepo, catalog, NewPricer(catalog), sessions),
		catalog:  catalog,
		cartRepo: cartRepo,
		sessions: sessions,
		fuel:     fuel,
		wash:     wash,
	}
}

func TestCartService_AddAndTotal(t *testing.T) {
	f := newCartFixture(t)
	customerID := uuid.New()

	_, err := f.cart.Add(context.Background(), &AddInput{
		CustomerID: customerID,
		ItemKind:   enum.ItemKindFuel,
		ItemID:     f.fuel.ID,
		Quantity:   5,
	})
	require.NoError(t, err)

	_, err = f.cart.Add(context.Background(), &AddInput{
		CustomerID: customerID,
		ItemKind:   enum.ItemKindService,
		ItemID:     f.wash.ID,
		Quantity:   1,
	})
	require.NoError(t, err)

	total, err := f.cart.Total(context.Background(), customerID)
	require.NoError(t, err)
	assert.InDelta(t, 580.0, total, 1e-9)
}

func TestCartService_EmptyCartTotalsZero(t *testing.T) {
	f := newCartFixture(t)

	total, err := f.cart.Total(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestCartService_AddRejectsNonPositiveQuantity(t *testing.T) {
	f := newCartFixture(t)

	for _, qty := range []float64{0, -3} {
		_, err := f.cart.Add(context.Background(), &AddInput{
			CustomerID: uuid.New(),
			ItemKind:   enum.ItemKindFuel,
			ItemID:     f.fuel.ID,
			Quantity:   qty,
		})
		assert.ErrorIs(t, err, apperror.ErrInvalidAmount)
	}
}

func TestCartService_AddRejectsDuplicateLine(t *testing.T) {
	f := newCartFixture(t)
	customerID := uuid.New()

	input := &AddInput{
		CustomerID: customerID,
		ItemKind:   enum.ItemKindFuel,
		ItemID:     f.fuel.ID,
		Quantity:   10,
	}
	_, err := f.cart.Add(context.Background(), input)
	require.NoError(t, err)

	_, err = f.cart.Add(context.Background(), input)
	assert.ErrorIs(t, err, apperror.ErrDuplicateCartItem)

	items, err := f.cart.Items(context.Background(), customerID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCartService_AddRejectsUnknownItem(t *testing.T) {
	f := newCartFixture(t)

	_, err := f.cart.Add(context.Background(), &AddInput{
		CustomerID: uuid.New(),
		ItemKind:   enum.ItemKindFuel,
		ItemID:     uuid.New(),
		Quantity:   5,
	})
	assert.ErrorIs(t, err, apperror.ErrItemNotFound)
}

func TestCartService_ServiceQuantityNormalizedToOne(t *testing.T) {
	f := newCartFixture(t)
	customerID := uuid.New()

	item, err := f.cart.Add(context.Background(), &AddInput{
		CustomerID: customerID,
		ItemKind:   enum.ItemKindService,
		ItemID:     f.wash.ID,
		Quantity:   4,
	})
	require.NoError(t, err)
	assert.Equal(t, 1.0, item.Quantity)
}

func TestCartService_ItemsKeepInsertionOrder(t *testing.T) {
	f := newCartFixture(t)
	customerID := uuid.New()

	diesel := &entity.FuelProduct{Name: "Diesel", UnitPrice: 50.0, StockLiters: 8000}
	require.NoError(t, f.catalog.CreateFuel(context.Background(), diesel))

	for _, in := range []*AddInput{
		{CustomerID: customerID, ItemKind: enum.ItemKindService, ItemID: f.wash.ID, Quantity: 1},
		{CustomerID: customerID, ItemKind: enum.ItemKindFuel, ItemID: f.fuel.ID, Quantity: 2},
		{CustomerID: customerID, ItemKind: enum.ItemKindFuel, ItemID: diesel.ID, Quantity: 3},
	} {
		_, err := f.cart.Add(context.Background(), in)
		require.NoError(t, err)
	}

	items, err := f.cart.Items(context.Background(), customerID)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, f.wash.ID, items[0].ItemID)
	assert.Equal(t, f.fuel.ID, items[1].ItemID)
	assert.Equal(t, diesel.ID, items[2].ItemID)
}

func TestCartService_TotalPropagatesMissingCatalogEntry(t *testing.T) {
	f := newCartFixture(t)
	customerID := uuid.New()

	_, err := f.cart.Add(context.Background(), &AddInput{
		CustomerID: customerID,
		ItemKind:   enum.ItemKindFuel,
		ItemID:     f.fuel.ID,
		Quantity:   5,
	})
	require.NoError(t, err)

	// Catalog entry disappears after the line was added.
	f.catalog.mu.Lock()
	delete(f.catalog.fuels, f.fuel.ID)
	f.catalog.mu.Unlock()

	_, err = f.cart.Total(context.Background(), customerID)
	assert.ErrorIs(t, err, apperror.ErrItemNotFound)
}

func TestCartService_MutationsResetSession(t *testing.T) {
	f := newCartFixture(t)
	customerID := uuid.New()

	f.sessions.Add(customerID, 100)
	item, err := f.cart.Add(context.Background(), &AddInput{
		CustomerID: customerID,
		ItemKind:   enum.ItemKindFuel,
		ItemID:     f.fuel.ID,
		Quantity:   5,
	})
	require.NoError(t, err)
	assert.Zero(t, f.sessions.Paid(customerID))

	f.sessions.Add(customerID, 100)
	require.NoError(t, f.cart.Remove(context.Background(), item.ID))
	assert.Zero(t, f.sessions.Paid(customerID))

	_, err = f.cart.Add(context.Background(), &AddInput{
		CustomerID: customerID,
		ItemKind:   enum.ItemKindService,
		ItemID:     f.wash.ID,
		Quantity:   1,
	})
	require.NoError(t, err)

	f.sessions.Add(customerID, 100)
	require.NoError(t, f.cart.RemoveByItem(context.Background(), customerID, enum.ItemKindService, f.wash.ID))
	assert.Zero(t, f.sessions.Paid(customerID))

	f.sessions.Add(customerID, 100)
	require.NoError(t, f.cart.Clear(context.Background(), customerID))
	assert.Zero(t, f.sessions.Paid(customerID))
}

func TestCartService_RemoveUnknownLine(t *testing.T) {
	f := newCartFixture(t)

	err := f.cart.Remove(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
