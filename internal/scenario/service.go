// Package scenario computes investment scenarios and keeps them in a store.
package scenario

import (
	"context"
	"fmt"

	"github.com/iwvelando/finance-projections/internal/store"
	"github.com/iwvelando/finance-projections/pkg/projection"
	"go.uber.org/zap"
)

// Service ties the investment projection to a scenario store.
type Service struct {
	store  store.Store
	logger *zap.Logger
}

// NewService creates a Service backed by s.
func NewService(s store.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: s, logger: logger}
}

// Save computes the projection for in and stores it under in.ID, or under a
// new identifier when in.ID is empty. Nothing is written if the computation
// fails.
func (s *Service) Save(ctx context.Context, in projection.ScenarioInput) (store.Record, error) {
	results, err := projection.ComputeInvestment(in)
	if err != nil {
		return store.Record{}, err
	}

	record, err := s.store.Upsert(ctx, in.ID, in, results)
	if err != nil {
		return store.Record{}, fmt.Errorf("failed to save scenario: %w", err)
	}

	s.logger.Info("scenario saved",
		zap.String("op", "scenario.Save"),
		zap.String("id", record.ID),
		zap.Float64("futureValue", record.Results.FutureValue),
	)
	return record, nil
}

// Get returns a stored scenario; store.ErrNotFound when it does not exist.
func (s *Service) Get(ctx context.Context, id string) (store.Record, error) {
	return s.store.Get(ctx, id)
}

// List returns every stored scenario keyed by id.
func (s *Service) List(ctx context.Context) (map[string]store.Record, error) {
	return s.store.List(ctx)
}

// Delete removes a stored scenario; store.ErrNotFound when it does not exist.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("scenario deleted",
		zap.String("op", "scenario.Delete"),
		zap.String("id", id),
	)
	return nil
}
