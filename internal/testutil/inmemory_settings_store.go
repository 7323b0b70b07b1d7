package testutil

import (
	"context"
	"sync"

	"github.com/hostora/hostora/internal/domain/settings"
)

type InMemorySettingsStore struct {
	mu      sync.RWMutex
	profile *settings.CompanyProfile
	err     error
}

func NewInMemorySettingsStore() *InMemorySettingsStore {
	return &InMemorySettingsStore{}
}

func (s *InMemorySettingsStore) SetProfile(p *settings.CompanyProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
}

// FailWith makes the next reads return the given error. Used to verify that
// settings lookup failures degrade to configured defaults.
func (s *InMemorySettingsStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *InMemorySettingsStore) GetCompanyProfile(ctx context.Context) (*settings.CompanyProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.err != nil {
		return nil, s.err
	}
	return s.profile, nil
}
