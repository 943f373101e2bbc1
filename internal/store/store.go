package store

import (
	"context"
	"sync"
)

// Repository is the injected data source the decision core reads from.
// All reads return snapshots; AcknowledgeAlert is the single mutation.
type Repository interface {
	Drives(ctx context.Context) []Drive
	Drive(ctx context.Context, id string) (Drive, error)
	Files(ctx context.Context) []File
	File(ctx context.Context, id string) (File, error)
	Pricing(ctx context.Context) CloudPricing
	Strategies(ctx context.Context) []StrategyEntry
	Alerts(ctx context.Context) []Alert
	AcknowledgeAlert(ctx context.Context, id string) error
}

// MemoryStore is an in-memory Repository seeded from a SeedData document.
type MemoryStore struct {
	mu         sync.RWMutex
	drives     []Drive
	files      []File
	pricing    CloudPricing
	strategies []StrategyEntry
	alerts     []Alert
}

// NewMemoryStore builds a store from seed data.
func NewMemoryStore(seed *SeedData) *MemoryStore {
	s := &MemoryStore{
		drives:     append([]Drive(nil), seed.Drives...),
		files:      append([]File(nil), seed.Files...),
		pricing:    seed.CloudPricing,
		strategies: append([]StrategyEntry(nil), seed.Strategies...),
		alerts:     append([]Alert(nil), seed.Alerts...),
	}
	if s.pricing == nil {
		s.pricing = CloudPricing{}
	}
	return s
}

func (s *MemoryStore) Drives(_ context.Context) []Drive {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Drive(nil), s.drives...)
}

func (s *MemoryStore) Drive(_ context.Context, id string) (Drive, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.drives {
		if d.ID == id {
			return d, nil
		}
	}
	return Drive{}, ErrNotFound("drive", id)
}

func (s *MemoryStore) Files(_ context.Context) []File {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]File(nil), s.files...)
}

func (s *MemoryStore) File(_ context.Context, id string) (File, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.files {
		if f.ID == id {
			return f, nil
		}
	}
	return File{}, ErrNotFound("file", id)
}

func (s *MemoryStore) Pricing(_ context.Context) CloudPricing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pricing
}

func (s *MemoryStore) Strategies(_ context.Context) []StrategyEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]StrategyEntry(nil), s.strategies...)
}

func (s *MemoryStore) Alerts(_ context.Context) []Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Alert(nil), s.alerts...)
}

// AcknowledgeAlert flips the acknowledged flag. Acknowledging twice is a
// no-op; the flag never goes back to false.
func (s *MemoryStore) AcknowledgeAlert(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.alerts {
		if s.alerts[i].ID == id {
			s.alerts[i].Acknowledged = true
			return nil
		}
	}
	return ErrNotFound("alert", id)
}
