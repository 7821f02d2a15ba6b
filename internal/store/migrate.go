package store

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var schemaFS embed.FS

// migrateSchema applies any pending scenario table migrations to the database
// at dbPath and returns the resulting schema version. A dirty schema left by
// an interrupted migration is reported rather than repaired.
func migrateSchema(dbPath string, logger *zap.Logger) (uint, error) {
	const op = "store.migrateSchema"

	// The migrator closes its connection, so it must not share the store's pool.
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return 0, fmt.Errorf("open schema connection: %w", err)
	}
	defer conn.Close()

	target, err := sqlite.WithInstance(conn, &sqlite.Config{})
	if err != nil {
		return 0, fmt.Errorf("prepare schema target: %w", err)
	}
	source, err := iofs.New(schemaFS, "migrations")
	if err != nil {
		return 0, fmt.Errorf("load embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", target)
	if err != nil {
		return 0, fmt.Errorf("prepare migrations: %w", err)
	}
	defer m.Close()

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return 0, fmt.Errorf("apply migrations: %w", upErr)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("scenario schema version %d is dirty", version)
	}

	logger.Debug("scenario schema ready",
		zap.String("op", op),
		zap.String("path", dbPath),
		zap.Uint("version", version),
		zap.Bool("changed", upErr == nil),
	)
	return version, nil
}
