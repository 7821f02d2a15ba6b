package store

import (
	"context"
	"sync"

	"github.com/iwvelando/finance-projections/pkg/projection"
)

// MemoryStore keeps scenarios in process memory. Records are lost on exit.
type MemoryStore struct {
	mu        sync.RWMutex
	scenarios map[string]Record
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scenarios: make(map[string]Record)}
}

// Upsert stores a record under id, generating one when id is empty.
func (s *MemoryStore) Upsert(_ context.Context, id string, inputs projection.ScenarioInput, results projection.InvestmentResult) (Record, error) {
	if id == "" {
		id = newID()
	}
	record := Record{ID: id, Inputs: inputs, Results: results}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.scenarios[id] = record
	return record, nil
}

// Get returns the record for id or ErrNotFound.
func (s *MemoryStore) Get(_ context.Context, id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.scenarios[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return record, nil
}

// List returns a snapshot of every stored record.
func (s *MemoryStore) List(_ context.Context) (map[string]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make(map[string]Record, len(s.scenarios))
	for id, record := range s.scenarios {
		snapshot[id] = record
	}
	return snapshot, nil
}

// Delete removes the record for id or returns ErrNotFound.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.scenarios[id]; !ok {
		return ErrNotFound
	}
	delete(s.scenarios, id)
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}
