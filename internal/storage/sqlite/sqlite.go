// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/storage"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	if dbPath != MemoryPath {
		// Create parent directory if it doesn't exist
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every pooled connection to :memory: would otherwise see its own empty database
	if dbPath == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Run migrations
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateTrip persists a new trip to the database.
func (s *SQLiteStore) CreateTrip(ctx context.Context, trip *models.Trip) error {
	return insertTrip(ctx, s.db, trip)
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// insertTrip fills in the ID, CreatedAt and a default name if unset and inserts the row.
func insertTrip(ctx context.Context, db execer, trip *models.Trip) error {
	// Generate ID if not set
	if trip.ID == "" {
		trip.ID = uuid.New().String()
	}
	if trip.CreatedAt == 0 {
		trip.CreatedAt = time.Now().Unix()
	}
	if trip.Name == "" {
		trip.Name = generateName(time.Unix(trip.CreatedAt, 0))
	}

	_, err := db.ExecContext(ctx,
		"INSERT INTO trips (id, name, location, dates, created_at) VALUES (?, ?, ?, ?, ?)",
		trip.ID, trip.Name, trip.Location, trip.Dates, trip.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}

	return nil
}

// GetTrip retrieves a trip by ID.
func (s *SQLiteStore) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	trip := &models.Trip{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, location, dates, created_at FROM trips WHERE id = ?",
		tripID,
	).Scan(&trip.ID, &trip.Name, &trip.Location, &trip.Dates, &trip.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("trip %s: %w", tripID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return trip, nil
}

// ListTrips retrieves all trips, newest first.
func (s *SQLiteStore) ListTrips(ctx context.Context) ([]*models.Trip, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, location, dates, created_at FROM trips ORDER BY created_at DESC, rowid DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	var trips []*models.Trip
	for rows.Next() {
		trip := &models.Trip{}
		if err := rows.Scan(&trip.ID, &trip.Name, &trip.Location, &trip.Dates, &trip.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trips: %w", err)
	}

	return trips, nil
}

// UpdateTrip updates the details of an existing trip.
func (s *SQLiteStore) UpdateTrip(ctx context.Context, trip *models.Trip) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE trips SET name = ?, location = ?, dates = ? WHERE id = ?",
		trip.Name, trip.Location, trip.Dates, trip.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}
	return requireAffected(result, trip.ID)
}

// ResetTrip clears the trip details and removes its participants and expenses.
func (s *SQLiteStore) ResetTrip(ctx context.Context, tripID string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			"UPDATE trips SET name = '', location = '', dates = '' WHERE id = ?",
			tripID,
		)
		if err != nil {
			return fmt.Errorf("failed to reset trip: %w", err)
		}
		if err := requireAffected(result, tripID); err != nil {
			return err
		}
		return deleteLedger(ctx, tx, tripID)
	})
}

// DeleteTrip removes a trip and everything recorded against it.
func (s *SQLiteStore) DeleteTrip(ctx context.Context, tripID string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := deleteLedger(ctx, tx, tripID); err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx, "DELETE FROM trips WHERE id = ?", tripID)
		if err != nil {
			return fmt.Errorf("failed to delete trip: %w", err)
		}
		return requireAffected(result, tripID)
	})
}

// withTx runs fn in a transaction, committing only if fn succeeds.
func (s *SQLiteStore) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// deleteLedger removes the participants and expenses of a trip.
func deleteLedger(ctx context.Context, tx *sql.Tx, tripID string) error {
	statements := []string{
		"DELETE FROM expense_shares WHERE expense_id IN (SELECT id FROM expenses WHERE trip_id = ?)",
		"DELETE FROM expenses WHERE trip_id = ?",
		"DELETE FROM participants WHERE trip_id = ?",
	}
	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt, tripID); err != nil {
			return fmt.Errorf("failed to clear trip ledger: %w", err)
		}
	}
	return nil
}

// requireAffected turns an update that touched no rows into ErrNotFound.
func requireAffected(result sql.Result, tripID string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("trip %s: %w", tripID, storage.ErrNotFound)
	}
	return nil
}

// generateName creates a default trip name from its creation date.
func generateName(createdAt time.Time) string {
	return fmt.Sprintf("Trip - %s", createdAt.Format("Jan 2, 2006"))
}
