package testutil

import (
	"context"
	"sync"

	"github.com/hostora/hostora/internal/domain/customer"
	ierr "github.com/hostora/hostora/internal/errors"
)

type InMemoryCustomerStore struct {
	mu        sync.RWMutex
	customers map[int64]*customer.Customer
}

func NewInMemoryCustomerStore() *InMemoryCustomerStore {
	return &InMemoryCustomerStore{
		customers: make(map[int64]*customer.Customer),
	}
}

func (s *InMemoryCustomerStore) Add(c *customer.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[c.ID] = c
}

func (s *InMemoryCustomerStore) Get(ctx context.Context, id int64) (*customer.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, exists := s.customers[id]
	if !exists {
		return nil, ierr.NewError("customer not found").
			WithHint("Customer not found").
			Mark(ierr.ErrNotFound)
	}
	return c, nil
}
