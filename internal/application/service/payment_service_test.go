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

type paymentFixture struct {
	payment      *PaymentService
	customerRepo *mockCustomerRepo
	cartRepo     *mockCartRepo
	catalog      *mockCatalogRepo
	paymentRepo  *mockPaymentRepo
	customer     *entity.Customer
	fuel         *entity.FuelProduct
	wash         *entity.StationService
}

// newPaymentFixture seeds the demo station data: a customer with
// cash=1000, card=2000, bonus=150, fuel at 56/L with 10000 L in stock
// and a 300 car wash.
func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()

	customerRepo := newMockCustomerRepo()
	customer := &entity.Customer{
		Name:        "Ivan Ivanov",
		CashBalance: 1000,
		CardBalance: 2000,
		BonusPoints: 150,
	}
	require.NoError(t, customerRepo.Create(context.Background(), customer))

	catalog := newMockCatalogRepo()
	fuel := &entity.FuelProduct{Name: "Premium 95", UnitPrice: 56.0, StockLiters: 10000}
	require.NoError(t, catalog.CreateFuel(context.Background(), fuel))
	wash := &entity.StationService{Name: "Car wash", Price: 300.0}
	require.NoError(t, catalog.CreateService(context.Background(), wash))

	cartRepo := newMockCartRepo()
	paymentRepo := newMockPaymentRepo()

	return &paymentFixture{
		payment:      NewPaymentService(customerRepo, cartRepo, catalog, paymentRepo),
		customerRepo: customerRepo,
		cartRepo:     cartRepo,
		catalog:      catalog,
		paymentRepo:  paymentRepo,
		customer:     customer,
		fuel:         fuel,
		wash:         wash,
	}
}

func (f *paymentFixture) addFuelLine(t *testing.T, liters float64) {
	t.Helper()
	require.NoError(t, f.cartRepo.Insert(context.Background(), &entity.CartItem{
		CustomerID: f.customer.ID,
		ItemKind:   enum.ItemKindFuel,
		ItemID:     f.fuel.ID,
		Quantity:   liters,
	}))
}

func (f *paymentFixture) addServiceLine(t *testing.T) {
	t.Helper()
	require.NoError(t, f.cartRepo.Insert(context.Background(), &entity.CartItem{
		CustomerID: f.customer.ID,
		ItemKind:   enum.ItemKindService,
		ItemID:     f.wash.ID,
		Quantity:   1,
	}))
}

func (f *paymentFixture) reload(t *testing.T) *entity.Customer {
	t.Helper()
	customer, err := f.customerRepo.GetByID(context.Background(), f.customer.ID)
	require.NoError(t, err)
	require.NotNil(t, customer)
	return customer
}

func (f *paymentFixture) cartLen(t *testing.T) int {
	t.Helper()
	items, err := f.cartRepo.ListByCustomer(context.Background(), f.customer.ID)
	require.NoError(t, err)
	return len(items)
}

func TestDebitPartial_NeverTouchesStockOrCart(t *testing.T) {
	f := newPaymentFixture(t)
	f.addFuelLine(t, 5)

	err := f.payment.DebitPartial(context.Background(), f.customer.ID, enum.PaymentSourceBonus, 100)
	require.NoError(t, err)

	customer := f.reload(t)
	assert.InDelta(t, 50.0, customer.BonusPoints, 1e-9)
	assert.Equal(t, 1, f.cartLen(t))

	fuel, err := f.catalog.GetFuelByID(context.Background(), f.fuel.ID)
	require.NoError(t, err)
	assert.InDelta(t, 10000.0, fuel.StockLiters, 1e-9)
}

func TestDebitPartial_InsufficientFunds(t *testing.T) {
	f := newPaymentFixture(t)

	err := f.payment.DebitPartial(context.Background(), f.customer.ID, enum.PaymentSourceBonus, 280)
	assert.ErrorIs(t, err, apperror.ErrInsufficientFunds)

	customer := f.reload(t)
	assert.InDelta(t, 1000.0, customer.CashBalance, 1e-9)
	assert.InDelta(t, 2000.0, customer.CardBalance, 1e-9)
	assert.InDelta(t, 150.0, customer.BonusPoints, 1e-9)
}

func TestDebitPartial_InvalidAmount(t *testing.T) {
	f := newPaymentFixture(t)

	for _, amount := range []float64{0, -50} {
		err := f.payment.DebitPartial(context.Background(), f.customer.ID, enum.PaymentSourceCash, amount)
		assert.ErrorIs(t, err, apperror.ErrInvalidAmount)
	}
}

func TestDebitPartial_CustomerNotFound(t *testing.T) {
	f := newPaymentFixture(t)

	err := f.payment.DebitPartial(context.Background(), uuid.New(), enum.PaymentSourceCash, 10)
	assert.ErrorIs(t, err, apperror.ErrCustomerNotFound)
}

func TestSettleFull_DecrementsStockAndClearsCart(t *testing.T) {
	f := newPaymentFixture(t)
	f.addFuelLine(t, 5)

	err := f.payment.SettleFull(context.Background(), f.customer.ID, enum.PaymentSourceCard, 280)
	require.NoError(t, err)

	customer := f.reload(t)
	assert.InDelta(t, 1720.0, customer.CardBalance, 1e-9)
	assert.Zero(t, f.cartLen(t))

	fuel, err := f.catalog.GetFuelByID(context.Background(), f.fuel.ID)
	require.NoError(t, err)
	assert.InDelta(t, 9995.0, fuel.StockLiters, 1e-9)
}

func TestSettleFull_ExactBonusBalance(t *testing.T) {
	f := newPaymentFixture(t)
	f.addServiceLine(t)

	err := f.payment.SettleFull(context.Background(), f.customer.ID, enum.PaymentSourceBonus, 150)
	require.NoError(t, err)

	customer := f.reload(t)
	assert.Zero(t, customer.BonusPoints)
	assert.Zero(t, f.cartLen(t))
}

func TestSettleFull_InsufficientFundsLeavesEverything(t *testing.T) {
	f := newPaymentFixture(t)
	f.addFuelLine(t, 5)

	err := f.payment.SettleFull(context.Background(), f.customer.ID, enum.PaymentSourceBonus, 280)
	assert.ErrorIs(t, err, apperror.ErrInsufficientFunds)

	customer := f.reload(t)
	assert.InDelta(t, 1000.0, customer.CashBalance, 1e-9)
	assert.InDelta(t, 2000.0, customer.CardBalance, 1e-9)
	assert.InDelta(t, 150.0, customer.BonusPoints, 1e-9)
	assert.Equal(t, 1, f.cartLen(t))

	fuel, err := f.catalog.GetFuelByID(context.Background(), f.fuel.ID)
	require.NoError(t, err)
	assert.InDelta(t, 10000.0, fuel.StockLiters, 1e-9)
}

func TestSettleFull_StockFloorsAtZero(t *testing.T) {
	f := newPaymentFixture(t)
	f.fuel.StockLiters = 3
	require.NoError(t, f.catalog.UpdateFuel(context.Background(), f.fuel))
	f.addFuelLine(t, 5)

	err := f.payment.SettleFull(context.Background(), f.customer.ID, enum.PaymentSourceCard, 280)
	require.NoError(t, err)

	fuel, err := f.catalog.GetFuelByID(context.Background(), f.fuel.ID)
	require.NoError(t, err)
	assert.Zero(t, fuel.StockLiters)
}

func TestSettleFullCombined_DrawsCashFirst(t *testing.T) {
	f := newPaymentFixture(t)
	f.addFuelLine(t, 5)

	err := f.payment.SettleFullCombined(context.Background(), f.customer.ID, 280)
	require.NoError(t, err)

	customer := f.reload(t)
	assert.InDelta(t, 720.0, customer.CashBalance, 1e-9)
	assert.InDelta(t, 2000.0, customer.CardBalance, 1e-9)
	assert.InDelta(t, 150.0, customer.BonusPoints, 1e-9)
	assert.Zero(t, f.cartLen(t))
}

func TestSettleFullCombined_SpillsInPriorityOrder(t *testing.T) {
	f := newPaymentFixture(t)
	f.customer.CashBalance = 100
	f.customer.CardBalance = 50
	f.customer.BonusPoints = 40
	require.NoError(t, f.customerRepo.Update(context.Background(), f.customer))
	f.addFuelLine(t, 3)

	err := f.payment.SettleFullCombined(context.Background(), f.customer.ID, 168)
	require.NoError(t, err)

	customer := f.reload(t)
	assert.Zero(t, customer.CashBalance)
	assert.Zero(t, customer.CardBalance)
	assert.InDelta(t, 22.0, customer.BonusPoints, 1e-9)
}

func TestSettleFullCombined_InsufficientLeavesBalances(t *testing.T) {
	f := newPaymentFixture(t)
	f.customer.CashBalance = 10
	f.customer.CardBalance = 20
	f.customer.BonusPoints = 30
	require.NoError(t, f.customerRepo.Update(context.Background(), f.customer))
	f.addFuelLine(t, 5)

	err := f.payment.SettleFullCombined(context.Background(), f.customer.ID, 280)
	assert.ErrorIs(t, err, apperror.ErrInsufficientCombinedFunds)

	customer := f.reload(t)
	assert.InDelta(t, 10.0, customer.CashBalance, 1e-9)
	assert.InDelta(t, 20.0, customer.CardBalance, 1e-9)
	assert.InDelta(t, 30.0, customer.BonusPoints, 1e-9)
	assert.Equal(t, 1, f.cartLen(t))
}

func TestSettleFullCombined_CustomerNotFound(t *testing.T) {
	f := newPaymentFixture(t)

	err := f.payment.SettleFullCombined(context.Background(), uuid.New(), 100)
	assert.ErrorIs(t, err, apperror.ErrCustomerNotFound)
}

func TestSuccessfulDebitsAreRecorded(t *testing.T) {
	f := newPaymentFixture(t)
	f.addFuelLine(t, 5)

	require.NoError(t, f.payment.DebitPartial(context.Background(), f.customer.ID, enum.PaymentSourceCash, 100))
	require.NoError(t, f.payment.SettleFullCombined(context.Background(), f.customer.ID, 180))

	payments, err := f.payment.PaymentHistory(context.Background(), f.customer.ID)
	require.NoError(t, err)
	require.Len(t, payments, 2)

	var total float64
	for _, p := range payments {
		total += p.Amount
	}
	assert.InDelta(t, 280.0, total, 1e-9)
}

func TestFailedDebitIsNotRecorded(t *testing.T) {
	f := newPaymentFixture(t)

	_ = f.payment.DebitPartial(context.Background(), f.customer.ID, enum.PaymentSourceBonus, 9999)

	payments, err := f.payment.PaymentHistory(context.Background(), f.customer.ID)
	require.NoError(t, err)
	assert.Empty(t, payments)
}
