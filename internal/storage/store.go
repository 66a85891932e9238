// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/tripsplit/internal/models"
)

// ErrNotFound is wrapped by every store error caused by a missing record.
var ErrNotFound = errors.New("not found")

// Store defines the interface for trip ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, in-memory, etc.)
// without changing the service layer.
//
// List operations return records in insertion order.
type Store interface {
	// CreateTrip persists a new trip.
	// The trip.ID and trip.CreatedAt fields will be populated by the store.
	CreateTrip(ctx context.Context, trip *models.Trip) error

	// GetTrip retrieves a trip by its ID.
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)

	// ListTrips retrieves all trips, newest first.
	ListTrips(ctx context.Context) ([]*models.Trip, error)

	// UpdateTrip replaces the name, location and dates of an existing trip.
	UpdateTrip(ctx context.Context, trip *models.Trip) error

	// ResetTrip clears the trip details and removes all of its participants and expenses.
	ResetTrip(ctx context.Context, tripID string) error

	// DeleteTrip removes a trip together with its participants and expenses.
	DeleteTrip(ctx context.Context, tripID string) error

	// AddParticipant persists a new participant of participant.TripID.
	// The participant.ID and participant.CreatedAt fields will be populated by the store.
	AddParticipant(ctx context.Context, participant *models.Participant) error

	// ListParticipants retrieves the participants of a trip.
	ListParticipants(ctx context.Context, tripID string) ([]*models.Participant, error)

	// AddExpense persists a new expense of expense.TripID.
	// The expense.ID and expense.CreatedAt fields will be populated by the store.
	// References to participants are stored as given.
	AddExpense(ctx context.Context, expense *models.Expense) error

	// ListExpenses retrieves the expenses of a trip.
	ListExpenses(ctx context.Context, tripID string) ([]*models.Expense, error)

	// ImportTrip persists a trip together with its participants and expenses.
	// Either everything is written or nothing is. TripID fields of the
	// participants and expenses are set to the new trip's ID.
	ImportTrip(ctx context.Context, trip *models.Trip, participants []*models.Participant, expenses []*models.Expense) error

	// Close releases any resources held by the store.
	Close() error
}
