package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/stationops/fuelpos-api/internal/domain/entity"
	"github.com/stationops/fuelpos-api/internal/domain/enum"
)

type mockCatalogRepo struct {
	mu       sync.RWMutex
	fuels    map[uuid.UUID]*entity.FuelProduct
	services map[uuid.UUID]*entity.StationService
	err      error
}

func newMockCatalogRepo() *mockCatalogRepo {
	return &mockCatalogRepo{
		fuels:    make(map[uuid.UUID]*entity.FuelProduct),
		services: make(map[uuid.UUID]*entity.StationService),
	}
}

func (m *mockCatalogRepo) CreateFuel(_ context.Context, fuel *entity.FuelProduct) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if fuel.ID == uuid.Nil {
		fuel.ID = uuid.New()
	}
	cp := *fuel
	m.fuels[fuel.ID] = &cp
	return m.err
}

func (m *mockCatalogRepo) GetFuelByID(_ context.Context, id uuid.UUID) (*entity.FuelProduct, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	fuel, ok := m.fuels[id]
	if !ok {
		return nil, nil
	}
	cp := *fuel
	return &cp, nil
}

func (m *mockCatalogRepo) ListFuel(_ context.Context) ([]entity.FuelProduct, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]entity.FuelProduct, 0, len(m.fuels))
	for _, f := range m.fuels {
		out = append(out, *f)
	}
	return out, m.err
}

func (m *mockCatalogRepo) UpdateFuel(_ context.Context, fuel *entity.FuelProduct) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *fuel
	m.fuels[fuel.ID] = &cp
	return m.err
}

func (m *mockCatalogRepo) DecrementFuelStock(_ context.Context, id uuid.UUID, amount float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	fuel, ok := m.fuels[id]
	if !ok {
		return nil
	}
	fuel.StockLiters -= amount
	if fuel.StockLiters < 0 {
		fuel.StockLiters = 0
	}
	return nil
}

func (m *mockCatalogRepo) CreateService(_ context.Context, svc *entity.StationService) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if svc.ID == uuid.Nil {
		svc.ID = uuid.New()
	}
	cp := *svc
	m.services[svc.ID] = &cp
	return m.err
}

func (m *mockCatalogRepo) GetServiceByID(_ context.Context, id uuid.UUID) (*entity.StationService, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	svc, ok := m.services[id]
	if !ok {
		return nil, nil
	}
	cp := *svc
	return &cp, nil
}

func (m *mockCatalogRepo) ListServices(_ context.Context) ([]entity.StationService, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]entity.StationService, 0, len(m.services))
	for _, s := range m.services {
		out = append(out, *s)
	}
	return out, m.err
}

type mockCustomerRepo struct {
	mu        sync.RWMutex
	customers map[uuid.UUID]*entity.Customer
	updateErr error
}

func newMockCustomerRepo() *mockCustomerRepo {
	return &mockCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (m *mockCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	cp := *customer
	m.customers[customer.ID] = &cp
	return nil
}

func (m *mockCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	customer, ok := m.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *customer
	return &cp, nil
}

func (m *mockCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return m.updateErr
	}
	cp := *customer
	m.customers[customer.ID] = &cp
	return nil
}

func (m *mockCustomerRepo) List(_ context.Context) ([]entity.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]entity.Customer, 0, len(m.customers))
	for _, c := range m.customers {
		out = append(out, *c)
	}
	return out, nil
}

type mockCartRepo struct {
	mu    sync.RWMutex
	items []entity.CartItem
	next  int64
}

func newMockCartRepo() *mockCartRepo {
	return &mockCartRepo{}
}

func (m *mockCartRepo) Insert(_ context.Context, item *entity.CartItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	m.next++
	item.Position = m.next
	m.items = append(m.items, *item)
	return nil
}

func (m *mockCartRepo) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]entity.CartItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []entity.CartItem
	for _, item := range m.items {
		if item.CustomerID == customerID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *mockCartRepo) GetByItem(_ context.Context, customerID uuid.UUID, kind enum.ItemKind, itemID uuid.UUID) (*entity.CartItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, item := range m.items {
		if item.CustomerID == customerID && item.ItemKind == kind && item.ItemID == itemID {
			cp := item
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockCartRepo) Delete(_ context.Context, id uuid.UUID) (*entity.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, item := range m.items {
		if item.ID == id {
			cp := item
			m.items = append(m.items[:i], m.items[i+1:]...)
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockCartRepo) DeleteByItem(_ context.Context, customerID uuid.UUID, kind enum.ItemKind, itemID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.items[:0]
	for _, item := range m.items {
		if item.CustomerID == customerID && item.ItemKind == kind && item.ItemID == itemID {
			continue
		}
		kept = append(kept, item)
	}
	m.items = kept
	return nil
}

func (m *mockCartRepo) DeleteAllByCustomer(_ context.Context, customerID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.items[:0]
	for _, item := range m.items {
		if item.CustomerID == customerID {
			continue
		}
		kept = append(kept, item)
	}
	m.items = kept
	return nil
}

type mockPaymentRepo struct {
	mu       sync.RWMutex
	payments []entity.Payment
}

func newMockPaymentRepo() *mockPaymentRepo {
	return &mockPaymentRepo{}
}

func (m *mockPaymentRepo) Create(_ context.Context, payment *entity.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	m.payments = append(m.payments, *payment)
	return nil
}

func (m *mockPaymentRepo) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]entity.Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []entity.Payment
	for _, p := range m.payments {
		if p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	return out, nil
}
