package service

import (
	"sync"

	"github.com/google/uuid"
)

// SessionStore tracks the amount a customer has already paid toward
// the current cart. It is process-local and ephemeral: any cart
// mutation or completed settlement resets the accumulator.
type SessionStore struct {
	mu   sync.RWMutex
	paid map[uuid.UUID]float64
}

// NewSessionStore creates an empty session store
func NewSessionStore() *SessionStore {
	return &SessionStore{paid: make(map[uuid.UUID]float64)}
}

// Paid returns the accumulated partial payments for a customer, 0 if
// none are recorded.
func (s *SessionStore) Paid(customerID uuid.UUID) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.paid[customerID]
}

// Add increases the customer's paid accumulator by amount.
func (s *SessionStore) Add(customerID uuid.UUID, amount float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paid[customerID] += amount
}

// Reset zeroes the customer's paid accumulator.
func (s *SessionStore) Reset(customerID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paid[customerID] = 0
}
