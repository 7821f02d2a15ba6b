// Package store persists investment scenarios keyed by identifier.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/iwvelando/finance-projections/pkg/constants"
	"github.com/iwvelando/finance-projections/pkg/projection"
	"go.uber.org/zap"
)

// ErrNotFound is returned when no scenario exists for an identifier.
var ErrNotFound = errors.New("scenario not found")

// Record is a stored scenario: the inputs as received and the computed results.
type Record struct {
	ID      string                      `json:"id"`
	Inputs  projection.ScenarioInput    `json:"inputs"`
	Results projection.InvestmentResult `json:"results"`
}

// Store is a keyed collection of scenario records. Upsert with an existing id
// replaces the previous record entirely; an empty id gets a fresh UUID.
type Store interface {
	Upsert(ctx context.Context, id string, inputs projection.ScenarioInput, results projection.InvestmentResult) (Record, error)
	Get(ctx context.Context, id string) (Record, error)
	List(ctx context.Context) (map[string]Record, error)
	Delete(ctx context.Context, id string) error
	Close() error
}

// Config selects and configures a Store implementation.
type Config struct {
	Driver string `yaml:"driver"` // memory, sqlite
	Path   string `yaml:"path"`   // sqlite database file
}

// Open constructs the Store described by cfg.
func Open(ctx context.Context, cfg Config, logger *zap.Logger) (Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	switch driver {
	case "", constants.StoreDriverMemory:
		logger.Info("using in-memory scenario store",
			zap.String("op", "store.Open"),
		)
		return NewMemoryStore(), nil
	case constants.StoreDriverSQLite:
		path := cfg.Path
		if path == "" {
			path = constants.DefaultSQLitePath
		}
		logger.Info("using sqlite scenario store",
			zap.String("op", "store.Open"),
			zap.String("path", path),
		)
		return NewSQLiteStore(ctx, path, logger)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}
}

func newID() string {
	return uuid.NewString()
}
