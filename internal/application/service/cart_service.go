package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stationops/fuelpos-api/internal/domain/entity"
	"github.com/stationops/fuelpos-api/internal/domain/enum"
	"github.com/stationops/fuelpos-api/internal/domain/repository"
	"github.com/stationops/fuelpos-api/pkg/apperror"
)

// CartService manages a customer's cart lines and computes the cart
// total through the pricer. Every mutation resets the customer's
// checkout session, since the bill has changed.
type CartService struct {
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
	pricer      *Pricer
	sessions    *SessionStore
}

// NewCartService creates a new cart service
func NewCartService(
	cartRepo repository.CartRepository,
	catalogRepo repository.CatalogRepository,
	pricer *Pricer,
	sessions *SessionStore,
) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		pricer:      pricer,
		sessions:    sessions,
	}
}

// AddInput represents the add-to-cart input
type AddInput struct {
	CustomerID uuid.UUID
	ItemKind   enum.ItemKind
	ItemID     uuid.UUID
	Quantity   float64
}

// Add inserts a new line. Quantity must be positive; service lines are
// normalized to quantity 1. Re-adding an item already in the cart is
// rejected rather than merged or duplicated.
func (s *CartService) Add(ctx context.Context, input *AddInput) (*entity.CartItem, error) {
	if !input.ItemKind.Valid() {
		return nil, apperror.NewBadRequestError("Unknown item kind")
	}
	if input.Quantity <= 0 {
		return nil, apperror.ErrInvalidAmount
	}

	quantity := input.Quantity
	switch input.ItemKind {
	case enum.ItemKindFuel:
		fuel, err := s.catalogRepo.GetFuelByID(ctx, input.ItemID)
		if err != nil {
			return nil, err
		}
		if fuel == nil {
			return nil, apperror.ErrItemNotFound
		}
	case enum.ItemKindService:
		svc, err := s.catalogRepo.GetServiceByID(ctx, input.ItemID)
		if err != nil {
			return nil, err
		}
		if svc == nil {
			return nil, apperror.ErrItemNotFound
		}
		quantity = 1
	}

	existing, err := s.cartRepo.GetByItem(ctx, input.CustomerID, input.ItemKind, input.ItemID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateCartItem
	}

	item := &entity.CartItem{
		CustomerID: input.CustomerID,
		ItemKind:   input.ItemKind,
		ItemID:     input.ItemID,
		Quantity:   quantity,
	}
	if err := s.cartRepo.Insert(ctx, item); err != nil {
		return nil, err
	}

	s.sessions.Reset(input.CustomerID)
	return item, nil
}

// Remove deletes a line by its ID.
func (s *CartService) Remove(ctx context.Context, id uuid.UUID) error {
	item, err := s.cartRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Cart item")
	}
	s.sessions.Reset(item.CustomerID)
	return nil
}

// RemoveByItem deletes the line matching (customer, kind, item).
func (s *CartService) RemoveByItem(ctx context.Context, customerID uuid.UUID, kind enum.ItemKind, itemID uuid.UUID) error {
	if err := s.cartRepo.DeleteByItem(ctx, customerID, kind, itemID); err != nil {
		return err
	}
	s.sessions.Reset(customerID)
	return nil
}

// Clear deletes all lines for the customer.
func (s *CartService) Clear(ctx context.Context, customerID uuid.UUID) error {
	if err := s.cartRepo.DeleteAllByCustomer(ctx, customerID); err != nil {
		return err
	}
	s.sessions.Reset(customerID)
	return nil
}

// Items returns the customer's lines in insertion order.
func (s *CartService) Items(ctx context.Context, customerID uuid.UUID) ([]entity.CartItem, error) {
	return s.cartRepo.ListByCustomer(ctx, customerID)
}

// Total sums the per-line prices for the customer's cart. An empty
// cart totals zero. A line whose catalog entry has been deleted fails
// the whole total rather than being skipped.
func (s *CartService) Total(ctx context.Context, customerID uuid.UUID) (float64, error) {
	items, err := s.cartRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for i := range items {
		price, err := s.pricer.Price(ctx, &items[i])
		if err != nil {
			return 0, err
		}
		total += price
	}
	return total, nil
}
