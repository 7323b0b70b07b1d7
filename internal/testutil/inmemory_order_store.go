package testutil

import (
	"context"
	"sync"

	"github.com/hostora/hostora/internal/domain/order"
	ierr "github.com/hostora/hostora/internal/errors"
)

type InMemoryOrderStore struct {
	mu        sync.RWMutex
	orders    map[int64]*order.Order
	lineItems map[int64][]*order.LineItem
}

func NewInMemoryOrderStore() *InMemoryOrderStore {
	return &InMemoryOrderStore{
		orders:    make(map[int64]*order.Order),
		lineItems: make(map[int64][]*order.LineItem),
	}
}

func (s *InMemoryOrderStore) Add(o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = o
}

func (s *InMemoryOrderStore) AddLineItem(orderID int64, item *order.LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lineItems[orderID] = append(s.lineItems[orderID], item)
}

func (s *InMemoryOrderStore) Get(ctx context.Context, id int64) (*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, exists := s.orders[id]
	if !exists {
		return nil, ierr.NewError("order not found").
			WithHint("Order not found").
			Mark(ierr.ErrNotFound)
	}
	return o, nil
}

func (s *InMemoryOrderStore) ListLineItems(ctx context.Context, orderID int64) ([]*order.LineItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lineItems[orderID], nil
}
