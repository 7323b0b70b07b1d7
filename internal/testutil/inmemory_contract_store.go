package testutil

import (
	"context"
	"sync"

	"github.com/hostora/hostora/internal/domain/contract"
	ierr "github.com/hostora/hostora/internal/errors"
)

type InMemoryContractStore struct {
	mu        sync.RWMutex
	contracts map[int64]*contract.Contract
}

func NewInMemoryContractStore() *InMemoryContractStore {
	return &InMemoryContractStore{
		contracts: make(map[int64]*contract.Contract),
	}
}

func (s *InMemoryContractStore) Add(c *contract.Contract) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contracts[c.ID] = c
}

func (s *InMemoryContractStore) Get(ctx context.Context, id int64) (*contract.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, exists := s.contracts[id]
	if !exists {
		return nil, ierr.NewError("contract not found").
			WithHint("Contract not found").
			Mark(ierr.ErrNotFound)
	}
	return c, nil
}
