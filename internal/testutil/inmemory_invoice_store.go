package testutil

import (
	"context"
	"sync"

	"github.com/hostora/hostora/internal/domain/invoice"
	ierr "github.com/hostora/hostora/internal/errors"
)

type InMemoryInvoiceStore struct {
	mu        sync.RWMutex
	invoices  map[int64]*invoice.Invoice
	lineItems map[int64][]*invoice.LineItem
}

func NewInMemoryInvoiceStore() *InMemoryInvoiceStore {
	return &InMemoryInvoiceStore{
		invoices:  make(map[int64]*invoice.Invoice),
		lineItems: make(map[int64][]*invoice.LineItem),
	}
}

func (s *InMemoryInvoiceStore) Add(inv *invoice.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices[inv.ID] = inv
}

func (s *InMemoryInvoiceStore) AddLineItem(invoiceID int64, item *invoice.LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lineItems[invoiceID] = append(s.lineItems[invoiceID], item)
}

func (s *InMemoryInvoiceStore) Get(ctx context.Context, id int64) (*invoice.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inv, exists := s.invoices[id]
	if !exists {
		return nil, ierr.NewError("invoice not found").
			WithHint("Invoice not found").
			Mark(ierr.ErrNotFound)
	}
	return inv, nil
}

func (s *InMemoryInvoiceStore) ListLineItems(ctx context.Context, invoiceID int64) ([]*invoice.LineItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lineItems[invoiceID], nil
}
