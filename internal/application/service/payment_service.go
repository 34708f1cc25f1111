package service

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/stationops/fuelpos-api/internal/domain/entity"
	"github.com/stationops/fuelpos-api/internal/domain/enum"
	"github.com/stationops/fuelpos-api/internal/domain/repository"
	"github.com/stationops/fuelpos-api/pkg/apperror"
)

// coverageTolerance absorbs floating-point accumulation when checking
// that a combined settlement covered the full amount.
const coverageTolerance = 1e-4

// PaymentService is the settlement engine. It debits customer
// balances and, on full settlement only, decrements fuel stock and
// clears the cart. Partial debits never touch stock or cart.
//
// Operations on the same customer are serialized through a
// per-customer mutex so a failed settlement can never interleave with
// a successful one and leave a balance negative.
type PaymentService struct {
	customerRepo repository.CustomerRepository
	cartRepo     repository.CartRepository
	catalogRepo  repository.CatalogRepository
	paymentRepo  repository.PaymentRepository

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	customerRepo repository.CustomerRepository,
	cartRepo repository.CartRepository,
	catalogRepo repository.CatalogRepository,
	paymentRepo repository.PaymentRepository,
) *PaymentService {
	return &PaymentService{
		customerRepo: customerRepo,
		cartRepo:     cartRepo,
		catalogRepo:  catalogRepo,
		paymentRepo:  paymentRepo,
		locks:        make(map[uuid.UUID]*sync.Mutex),
	}
}

func (s *PaymentService) customerLock(customerID uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[customerID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[customerID] = lock
	}
	return lock
}

// DebitPartial debits exactly amount from one balance. It never
// decrements stock or clears the cart; the checkout session tracks the
// cumulative paid amount.
func (s *PaymentService) DebitPartial(ctx context.Context, customerID uuid.UUID, source enum.PaymentSource, amount float64) error {
	lock := s.customerLock(customerID)
	lock.Lock()
	defer lock.Unlock()

	return s.debit(ctx, customerID, source, amount)
}

// SettleFull debits exactly amount from one balance, then decrements
// fuel stock for every fuel line in the cart and clears the cart.
// Amount must equal the full remaining balance for the cart; the
// checkout service is responsible for passing it.
func (s *PaymentService) SettleFull(ctx context.Context, customerID uuid.UUID, source enum.PaymentSource, amount float64) error {
	lock := s.customerLock(customerID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.debit(ctx, customerID, source, amount); err != nil {
		return err
	}
	return s.deductStockAndClearCart(ctx, customerID)
}

// SettleFullCombined draws cash first, then card, then bonus, each
// capped at min(balance, remaining). The three-way allocation is
// computed on an in-memory copy and persisted only once full coverage
// is confirmed, so a failure leaves every balance untouched.
func (s *PaymentService) SettleFullCombined(ctx context.Context, customerID uuid.UUID, amount float64) error {
	if amount <= 0 {
		return apperror.ErrInvalidAmount
	}

	lock := s.customerLock(customerID)
	lock.Lock()
	defer lock.Unlock()

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.ErrCustomerNotFound
	}

	remaining := amount
	drawn := make(map[enum.PaymentSource]float64, len(enum.CombinedOrder))
	for _, source := range enum.CombinedOrder {
		if remaining <= coverageTolerance {
			break
		}
		draw := customer.Balance(source)
		if draw > remaining {
			draw = remaining
		}
		if draw <= 0 {
			continue
		}
		customer.Debit(source, draw)
		drawn[source] = draw
		remaining -= draw
	}

	if remaining > coverageTolerance {
		// Not coverable; nothing was persisted.
		return apperror.ErrInsufficientCombinedFunds
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return err
	}

	for _, source := range enum.CombinedOrder {
		if drawn[source] > 0 {
			s.recordPayment(ctx, customerID, source, drawn[source])
		}
	}

	return s.deductStockAndClearCart(ctx, customerID)
}

// debit performs the sufficiency check and single-source deduction
// shared by partial and full settlement. Callers hold the customer
// lock.
func (s *PaymentService) debit(ctx context.Context, customerID uuid.UUID, source enum.PaymentSource, amount float64) error {
	if amount <= 0 {
		return apperror.ErrInvalidAmount
	}
	if !source.Valid() {
		return apperror.NewBadRequestError("Unknown payment source")
	}

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.ErrCustomerNotFound
	}

	if customer.Balance(source) < amount {
		return apperror.ErrInsufficientFunds
	}

	customer.Debit(source, amount)
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return err
	}

	s.recordPayment(ctx, customerID, source, amount)
	return nil
}

// recordPayment appends a payment history row. History is
// supplemental: a write failure is logged, not surfaced, so it cannot
// undo a settlement that already happened.
func (s *PaymentService) recordPayment(ctx context.Context, customerID uuid.UUID, source enum.PaymentSource, amount float64) {
	payment := &entity.Payment{
		CustomerID: customerID,
		Source:     source,
		Amount:     amount,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		log.Printf("Warning: failed to record payment for customer %s: %v", customerID, err)
	}
}

// deductStockAndClearCart runs the post-settlement side effects:
// decrement fuel stock per fuel line (floored at zero by the catalog
// store), then delete every line. Service lines carry no stock.
func (s *PaymentService) deductStockAndClearCart(ctx context.Context, customerID uuid.UUID) error {
	items, err := s.cartRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ItemKind != enum.ItemKindFuel {
			continue
		}
		if err := s.catalogRepo.DecrementFuelStock(ctx, items[i].ItemID, items[i].Quantity); err != nil {
			return err
		}
	}

	return s.cartRepo.DeleteAllByCustomer(ctx, customerID)
}

// PaymentHistory returns the customer's payment records, newest first.
func (s *PaymentService) PaymentHistory(ctx context.Context, customerID uuid.UUID) ([]entity.Payment, error) {
	return s.paymentRepo.ListByCustomer(ctx, customerID)
}
