package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/storage"
	"github.com/mmynk/tripsplit/internal/storage/storagetest"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Store {
		return newTestStore(t)
	})
}

func TestSQLiteStore_InMemory(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Store {
		store, err := New(MemoryPath)
		if err != nil {
			t.Fatalf("Failed to create store: %v", err)
		}
		t.Cleanup(func() { store.Close() })
		return store
	})
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "nested", "trips.db")

	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	trip := &models.Trip{Name: "Goa"}
	if err := store.CreateTrip(ctx, trip); err != nil {
		t.Fatalf("CreateTrip failed: %v", err)
	}
	alice := models.NewParticipant(trip.ID, "Alice")
	if err := store.AddParticipant(ctx, alice); err != nil {
		t.Fatalf("AddParticipant failed: %v", err)
	}
	err = store.AddExpense(ctx, &models.Expense{
		TripID:                 trip.ID,
		Title:                  "Fuel",
		Amount:                 decimal.RequireFromString("1234.56"),
		PayerID:                alice.ID,
		IncludedParticipantIDs: []string{alice.ID},
	})
	if err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}
	store.Close()

	reopened, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer reopened.Close()

	expenses, err := reopened.ListExpenses(ctx, trip.ID)
	if err != nil {
		t.Fatalf("ListExpenses failed: %v", err)
	}
	if len(expenses) != 1 {
		t.Fatalf("Expected 1 expense, got %d", len(expenses))
	}
	if !expenses[0].Amount.Equal(decimal.RequireFromString("1234.56")) {
		t.Errorf("Amount mismatch: got %s, want 1234.56", expenses[0].Amount)
	}
}

func TestGenerateName(t *testing.T) {
	got := generateName(time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC))
	if got != "Trip - Mar 7, 2026" {
		t.Errorf("generateName() = %q, want %q", got, "Trip - Mar 7, 2026")
	}
}

func TestSQLiteStore_ImportTripRollsBack(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.db.ExecContext(ctx, `
		CREATE TRIGGER expenses_full BEFORE INSERT ON expenses
		BEGIN SELECT RAISE(ABORT, 'disk full'); END`)
	if err != nil {
		t.Fatalf("Failed to create trigger: %v", err)
	}

	trip := &models.Trip{Name: "Goa"}
	alice := models.NewParticipant("", "Alice")
	dinner := &models.Expense{Title: "Dinner", Amount: decimal.NewFromInt(10)}
	err = store.ImportTrip(ctx, trip, []*models.Participant{alice}, []*models.Expense{dinner})
	if err == nil {
		t.Fatal("Expected ImportTrip to fail")
	}

	trips, err := store.ListTrips(ctx)
	if err != nil {
		t.Fatalf("ListTrips failed: %v", err)
	}
	if len(trips) != 0 {
		t.Errorf("Expected no trips after failed import, got %d", len(trips))
	}
	participants, err := store.ListParticipants(ctx, trip.ID)
	if err != nil {
		t.Fatalf("ListParticipants failed: %v", err)
	}
	if len(participants) != 0 {
		t.Errorf("Expected no participants after failed import, got %d", len(participants))
	}
}
