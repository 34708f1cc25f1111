package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stationops/fuelpos-api/internal/domain/entity"
	"github.com/stationops/fuelpos-api/internal/domain/repository"
	"github.com/stationops/fuelpos-api/pkg/apperror"
)

// CustomerService handles customer lookup and registration. Balances
// are only ever mutated by the payment service.
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name        string
	CashBalance float64
	CardBalance float64
	BonusPoints float64
}

// CreateCustomer registers a new customer with opening balances.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Customer name is required")
	}
	if input.CashBalance < 0 || input.CardBalance < 0 || input.BonusPoints < 0 {
		return nil, apperror.NewBadRequestError("Balances must not be negative")
	}

	customer := &entity.Customer{
		Name:        input.Name,
		CashBalance: input.CashBalance,
		CardBalance: input.CardBalance,
		BonusPoints: input.BonusPoints,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer returns one customer by ID.
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.ErrCustomerNotFound
	}
	return customer, nil
}

// ListCustomers returns all customers.
func (s *CustomerService) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	return s.customerRepo.List(ctx)
}
