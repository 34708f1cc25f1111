package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stationops/fuelpos-api/internal/domain/enum"
	"github.com/stationops/fuelpos-api/pkg/apperror"
)

// CheckoutService drives the payment workflow for one customer:
// remaining-balance tracking across partial payments, and full
// settlement through a single source or the combined cash/card/bonus
// order.
type CheckoutService struct {
	cartService    *CartService
	paymentService *PaymentService
	sessions       *SessionStore
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	cartService *CartService,
	paymentService *PaymentService,
	sessions *SessionStore,
) *CheckoutService {
	return &CheckoutService{
		cartService:    cartService,
		paymentService: paymentService,
		sessions:       sessions,
	}
}

// Status is a snapshot of the checkout state for one customer.
type Status struct {
	Total     float64 `json:"total"`
	Paid      float64 `json:"paid"`
	Remaining float64 `json:"remaining"`
}

// GetPaid returns the accumulated partial payments for the customer.
func (s *CheckoutService) GetPaid(customerID uuid.UUID) float64 {
	return s.sessions.Paid(customerID)
}

// GetRemaining returns the cart total minus accumulated partial
// payments, floored at zero.
func (s *CheckoutService) GetRemaining(ctx context.Context, customerID uuid.UUID) (float64, error) {
	total, err := s.cartService.Total(ctx, customerID)
	if err != nil {
		return 0, err
	}
	remaining := total - s.sessions.Paid(customerID)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// GetStatus returns total, paid and remaining in one call.
func (s *CheckoutService) GetStatus(ctx context.Context, customerID uuid.UUID) (*Status, error) {
	total, err := s.cartService.Total(ctx, customerID)
	if err != nil {
		return nil, err
	}
	paid := s.sessions.Paid(customerID)
	remaining := total - paid
	if remaining < 0 {
		remaining = 0
	}
	return &Status{Total: total, Paid: paid, Remaining: remaining}, nil
}

// RecordPartialPayment debits amount from one balance and advances the
// paid accumulator. The cart and fuel stock are untouched: when the
// remaining balance reaches zero the caller decides to clear the cart.
func (s *CheckoutService) RecordPartialPayment(ctx context.Context, customerID uuid.UUID, source enum.PaymentSource, amount float64) error {
	remaining, err := s.GetRemaining(ctx, customerID)
	if err != nil {
		return err
	}
	if amount <= 0 || amount > remaining {
		return apperror.ErrInvalidAmount
	}

	if err := s.paymentService.DebitPartial(ctx, customerID, source, amount); err != nil {
		return err
	}

	s.sessions.Add(customerID, amount)
	return nil
}

// CheckoutFull settles the whole remaining balance from a single
// source. On success the cart is already cleared and fuel stock
// decremented by the settlement; the paid accumulator is reset here.
func (s *CheckoutService) CheckoutFull(ctx context.Context, customerID uuid.UUID, source enum.PaymentSource) error {
	remaining, err := s.GetRemaining(ctx, customerID)
	if err != nil {
		return err
	}
	if remaining <= 0 {
		return apperror.ErrNothingToPay
	}

	if err := s.paymentService.SettleFull(ctx, customerID, source, remaining); err != nil {
		return err
	}

	s.sessions.Reset(customerID)
	return nil
}

// CheckoutFullCombined settles the whole remaining balance drawing
// cash, then card, then bonus.
func (s *CheckoutService) CheckoutFullCombined(ctx context.Context, customerID uuid.UUID) error {
	remaining, err := s.GetRemaining(ctx, customerID)
	if err != nil {
		return err
	}
	if remaining <= 0 {
		return apperror.ErrNothingToPay
	}

	if err := s.paymentService.SettleFullCombined(ctx, customerID, remaining); err != nil {
		return err
	}

	s.sessions.Reset(customerID)
	return nil
}
