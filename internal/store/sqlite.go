package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iwvelando/finance-projections/pkg/projection"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

const (
	upsertScenarioQuery = `
		INSERT INTO scenarios (id, inputs, results, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			inputs = excluded.inputs,
			results = excluded.results,
			updated_at = excluded.updated_at`
	getScenarioQuery    = `SELECT id, inputs, results FROM scenarios WHERE id = ?`
	listScenariosQuery  = `SELECT id, inputs, results FROM scenarios ORDER BY id`
	deleteScenarioQuery = `DELETE FROM scenarios WHERE id = ?`
)

// SQLiteStore persists scenarios in a SQLite database file. Inputs and
// results are stored as JSON documents.
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLiteStore opens (creating if needed) the database at dbPath and runs
// schema migrations.
func NewSQLiteStore(ctx context.Context, dbPath string, logger *zap.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// One writer at a time; concurrent upserts serialize instead of failing with SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := migrateSchema(dbPath, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db, logger: logger}, nil
}

// Upsert inserts or replaces the record for id, generating one when id is empty.
func (s *SQLiteStore) Upsert(ctx context.Context, id string, inputs projection.ScenarioInput, results projection.InvestmentResult) (Record, error) {
	if id == "" {
		id = newID()
	}

	inputsJSON, err := json.Marshal(inputs)
	if err != nil {
		return Record{}, fmt.Errorf("encode scenario inputs: %w", err)
	}
	resultsJSON, err := json.Marshal(results)
	if err != nil {
		return Record{}, fmt.Errorf("encode scenario results: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, upsertScenarioQuery, id, string(inputsJSON), string(resultsJSON)); err != nil {
		return Record{}, fmt.Errorf("upsert scenario %s: %w", id, err)
	}

	s.logger.Debug("scenario saved",
		zap.String("op", "store.SQLiteStore.Upsert"),
		zap.String("id", id),
	)
	return Record{ID: id, Inputs: inputs, Results: results}, nil
}

// Get returns the record for id or ErrNotFound.
func (s *SQLiteStore) Get(ctx context.Context, id string) (Record, error) {
	record, err := scanRecord(s.db.QueryRowContext(ctx, getScenarioQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("get scenario %s: %w", id, err)
	}
	return record, nil
}

// List returns every stored record.
func (s *SQLiteStore) List(ctx context.Context) (map[string]Record, error) {
	rows, err := s.db.QueryContext(ctx, listScenariosQuery)
	if err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}
	defer rows.Close()

	records := make(map[string]Record)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("list scenarios: %w", err)
		}
		records[record.ID] = record
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}
	return records, nil
}

// Delete removes the record for id or returns ErrNotFound.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, deleteScenarioQuery, id)
	if err != nil {
		return fmt.Errorf("delete scenario %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete scenario %s: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var (
		record      Record
		inputsJSON  string
		resultsJSON string
	)
	if err := row.Scan(&record.ID, &inputsJSON, &resultsJSON); err != nil {
		return Record{}, err
	}
	if err := json.Unmarshal([]byte(inputsJSON), &record.Inputs); err != nil {
		return Record{}, fmt.Errorf("decode inputs of %s: %w", record.ID, err)
	}
	if err := json.Unmarshal([]byte(resultsJSON), &record.Results); err != nil {
		return Record{}, fmt.Errorf("decode results of %s: %w", record.ID, err)
	}
	return record, nil
}
