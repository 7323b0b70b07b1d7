package testutil

import (
	"context"
	"sync"

	"github.com/hostora/hostora/internal/domain/catalog"
)

// InMemoryCatalogStore mirrors the batched partial-result semantics of the
// postgres catalog repository: unknown IDs are silently skipped.
type InMemoryCatalogStore struct {
	mu      sync.RWMutex
	domains map[int64]*catalog.Domain
	hosting map[int64]*catalog.Hosting
	vps     map[int64]*catalog.VPS
}

func NewInMemoryCatalogStore() *InMemoryCatalogStore {
	return &InMemoryCatalogStore{
		domains: make(map[int64]*catalog.Domain),
		hosting: make(map[int64]*catalog.Hosting),
		vps:     make(map[int64]*catalog.VPS),
	}
}

func (s *InMemoryCatalogStore) AddDomain(d *catalog.Domain) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.domains[d.ID] = d
}

func (s *InMemoryCatalogStore) AddHosting(h *catalog.Hosting) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hosting[h.ID] = h
}

func (s *InMemoryCatalogStore) AddVPS(v *catalog.VPS) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vps[v.ID] = v
}

func (s *InMemoryCatalogStore) ListDomainsByIDs(ctx context.Context, ids []int64) ([]*catalog.Domain, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*catalog.Domain, 0, len(ids))
	for _, id := range ids {
		if d, exists := s.domains[id]; exists {
			result = append(result, d)
		}
	}
	return result, nil
}

func (s *InMemoryCatalogStore) ListHostingByIDs(ctx context.Context, ids []int64) ([]*catalog.Hosting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*catalog.Hosting, 0, len(ids))
	for _, id := range ids {
		if h, exists := s.hosting[id]; exists {
			result = append(result, h)
		}
	}
	return result, nil
}

func (s *InMemoryCatalogStore) ListVPSByIDs(ctx context.Context, ids []int64) ([]*catalog.VPS, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*catalog.VPS, 0, len(ids))
	for _, id := range ids {
		if v, exists := s.vps[id]; exists {
			result = append(result, v)
		}
	}
	return result, nil
}
