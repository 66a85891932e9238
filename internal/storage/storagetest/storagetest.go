// Package storagetest runs the behavior every storage.Store must share.
package storagetest

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/storage"
)

// Run exercises store against the storage.Store contract.
// newStore must return an empty store; it is called once per subtest.
func Run(t *testing.T, newStore func(t *testing.T) storage.Store) {
	ctx := context.Background()

	t.Run("CreateTrip assigns ID, timestamp and default name", func(t *testing.T) {
		s := newStore(t)

		trip := &models.Trip{Location: "Goa"}
		require.NoError(t, s.CreateTrip(ctx, trip))

		assert.NotEmpty(t, trip.ID)
		assert.NotZero(t, trip.CreatedAt)
		assert.Contains(t, trip.Name, "Trip - ")

		got, err := s.GetTrip(ctx, trip.ID)
		require.NoError(t, err)
		assert.Equal(t, trip, got)
	})

	t.Run("GetTrip returns ErrNotFound", func(t *testing.T) {
		s := newStore(t)

		_, err := s.GetTrip(ctx, "nonexistent-id")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("ListTrips returns newest first", func(t *testing.T) {
		s := newStore(t)

		older := &models.Trip{Name: "Older", CreatedAt: 1000}
		newer := &models.Trip{Name: "Newer", CreatedAt: 2000}
		require.NoError(t, s.CreateTrip(ctx, older))
		require.NoError(t, s.CreateTrip(ctx, newer))

		trips, err := s.ListTrips(ctx)
		require.NoError(t, err)
		require.Len(t, trips, 2)
		assert.Equal(t, "Newer", trips[0].Name)
		assert.Equal(t, "Older", trips[1].Name)
	})

	t.Run("UpdateTrip replaces details", func(t *testing.T) {
		s := newStore(t)

		trip := &models.Trip{Name: "Draft"}
		require.NoError(t, s.CreateTrip(ctx, trip))

		require.NoError(t, s.UpdateTrip(ctx, &models.Trip{ID: trip.ID, Name: "Goa", Location: "India", Dates: "Dec 1-5"}))

		got, err := s.GetTrip(ctx, trip.ID)
		require.NoError(t, err)
		assert.Equal(t, "Goa · India · Dec 1-5", got.Line())
		assert.Equal(t, trip.CreatedAt, got.CreatedAt)

		err = s.UpdateTrip(ctx, &models.Trip{ID: "nonexistent-id", Name: "x"})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("participants keep insertion order", func(t *testing.T) {
		s := newStore(t)
		trip := mustTrip(t, s)

		for _, name := range []string{"Zoe", "Adam", "Mia"} {
			require.NoError(t, s.AddParticipant(ctx, models.NewParticipant(trip.ID, name)))
		}

		got, err := s.ListParticipants(ctx, trip.ID)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "Zoe", got[0].Name)
		assert.Equal(t, "Adam", got[1].Name)
		assert.Equal(t, "Mia", got[2].Name)
		assert.Equal(t, "Z", got[0].Initials)
		for _, p := range got {
			assert.NotEmpty(t, p.ID)
			assert.Equal(t, trip.ID, p.TripID)
		}
	})

	t.Run("AddParticipant to missing trip returns ErrNotFound", func(t *testing.T) {
		s := newStore(t)

		err := s.AddParticipant(ctx, models.NewParticipant("nonexistent-id", "Ghost"))
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("expenses round-trip with shares", func(t *testing.T) {
		s := newStore(t)
		trip := mustTrip(t, s)
		alice := mustParticipant(t, s, trip.ID, "Alice")
		bob := mustParticipant(t, s, trip.ID, "Bob")

		dinner := &models.Expense{
			TripID:                 trip.ID,
			Title:                  "Dinner",
			Amount:                 decimal.RequireFromString("90.50"),
			PayerID:                alice.ID,
			IncludedParticipantIDs: []string{alice.ID, bob.ID},
		}
		cab := &models.Expense{
			TripID:                 trip.ID,
			Title:                  "Cab",
			Amount:                 decimal.RequireFromString("12"),
			PayerID:                bob.ID,
			IncludedParticipantIDs: []string{bob.ID, "stale-id", bob.ID},
		}
		require.NoError(t, s.AddExpense(ctx, dinner))
		require.NoError(t, s.AddExpense(ctx, cab))
		assert.NotEmpty(t, dinner.ID)
		assert.NotZero(t, dinner.CreatedAt)

		got, err := s.ListExpenses(ctx, trip.ID)
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, "Dinner", got[0].Title)
		assert.True(t, got[0].Amount.Equal(decimal.RequireFromString("90.5")), "amount = %s", got[0].Amount)
		assert.Equal(t, alice.ID, got[0].PayerID)
		assert.Equal(t, []string{alice.ID, bob.ID}, got[0].IncludedParticipantIDs)

		assert.Equal(t, "Cab", got[1].Title)
		assert.Equal(t, []string{bob.ID, "stale-id"}, got[1].IncludedParticipantIDs)
	})

	t.Run("expense without shares lists an empty slice", func(t *testing.T) {
		s := newStore(t)
		trip := mustTrip(t, s)
		alice := mustParticipant(t, s, trip.ID, "Alice")

		require.NoError(t, s.AddExpense(ctx, &models.Expense{
			TripID: trip.ID, Title: "Tip jar", Amount: decimal.NewFromInt(3), PayerID: alice.ID,
		}))

		got, err := s.ListExpenses(ctx, trip.ID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.NotNil(t, got[0].IncludedParticipantIDs)
		assert.Empty(t, got[0].IncludedParticipantIDs)
	})

	t.Run("AddExpense to missing trip returns ErrNotFound", func(t *testing.T) {
		s := newStore(t)

		err := s.AddExpense(ctx, &models.Expense{TripID: "nonexistent-id", Title: "x", Amount: decimal.NewFromInt(1)})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("ledgers are scoped to their trip", func(t *testing.T) {
		s := newStore(t)
		first := mustTrip(t, s)
		second := mustTrip(t, s)
		mustParticipant(t, s, first.ID, "Alice")

		got, err := s.ListParticipants(ctx, second.ID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("ImportTrip stores the whole ledger", func(t *testing.T) {
		s := newStore(t)

		trip := &models.Trip{Name: "Goa"}
		alice := models.NewParticipant("", "Alice")
		bob := models.NewParticipant("", "Bob")
		alice.ID, bob.ID = "alice", "bob"
		dinner := &models.Expense{
			Title: "Dinner", Amount: decimal.NewFromInt(40),
			PayerID: alice.ID, IncludedParticipantIDs: []string{alice.ID, bob.ID},
		}
		require.NoError(t, s.ImportTrip(ctx, trip, []*models.Participant{alice, bob}, []*models.Expense{dinner}))
		assert.NotEmpty(t, trip.ID)
		assert.NotEmpty(t, dinner.ID)
		assert.Equal(t, trip.ID, dinner.TripID)

		participants, err := s.ListParticipants(ctx, trip.ID)
		require.NoError(t, err)
		require.Len(t, participants, 2)
		assert.Equal(t, "Alice", participants[0].Name)
		assert.Equal(t, "Bob", participants[1].Name)

		expenses, err := s.ListExpenses(ctx, trip.ID)
		require.NoError(t, err)
		require.Len(t, expenses, 1)
		assert.Equal(t, []string{"alice", "bob"}, expenses[0].IncludedParticipantIDs)
	})

	t.Run("ImportTrip writes nothing when an expense fails", func(t *testing.T) {
		s := newStore(t)
		existing := mustTrip(t, s)
		taken := &models.Expense{TripID: existing.ID, Title: "Taken", Amount: decimal.NewFromInt(1)}
		require.NoError(t, s.AddExpense(ctx, taken))

		trip := &models.Trip{Name: "Half"}
		alice := models.NewParticipant("", "Alice")
		clash := &models.Expense{ID: taken.ID, Title: "Clash", Amount: decimal.NewFromInt(5)}
		err := s.ImportTrip(ctx, trip, []*models.Participant{alice}, []*models.Expense{clash})
		require.Error(t, err)

		trips, err := s.ListTrips(ctx)
		require.NoError(t, err)
		require.Len(t, trips, 1)
		assert.Equal(t, existing.ID, trips[0].ID)

		participants, err := s.ListParticipants(ctx, existing.ID)
		require.NoError(t, err)
		assert.Empty(t, participants)
	})

	t.Run("ImportTrip rejects repeated participant IDs", func(t *testing.T) {
		s := newStore(t)

		first := models.NewParticipant("", "Alice")
		second := models.NewParticipant("", "Alicia")
		first.ID, second.ID = "same", "same"
		err := s.ImportTrip(ctx, &models.Trip{Name: "Dup"}, []*models.Participant{first, second}, nil)
		require.Error(t, err)

		trips, err := s.ListTrips(ctx)
		require.NoError(t, err)
		assert.Empty(t, trips)
	})

	t.Run("ResetTrip clears details and ledger", func(t *testing.T) {
		s := newStore(t)
		trip := &models.Trip{Name: "Goa", Location: "India", Dates: "Dec"}
		require.NoError(t, s.CreateTrip(ctx, trip))
		alice := mustParticipant(t, s, trip.ID, "Alice")
		require.NoError(t, s.AddExpense(ctx, &models.Expense{
			TripID: trip.ID, Title: "Snacks", Amount: decimal.NewFromInt(5),
			PayerID: alice.ID, IncludedParticipantIDs: []string{alice.ID},
		}))

		require.NoError(t, s.ResetTrip(ctx, trip.ID))

		got, err := s.GetTrip(ctx, trip.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Line())

		participants, err := s.ListParticipants(ctx, trip.ID)
		require.NoError(t, err)
		assert.Empty(t, participants)

		expenses, err := s.ListExpenses(ctx, trip.ID)
		require.NoError(t, err)
		assert.Empty(t, expenses)

		assert.ErrorIs(t, s.ResetTrip(ctx, "nonexistent-id"), storage.ErrNotFound)
	})

	t.Run("DeleteTrip removes trip", func(t *testing.T) {
		s := newStore(t)
		trip := mustTrip(t, s)
		mustParticipant(t, s, trip.ID, "Alice")

		require.NoError(t, s.DeleteTrip(ctx, trip.ID))

		_, err := s.GetTrip(ctx, trip.ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)

		participants, err := s.ListParticipants(ctx, trip.ID)
		require.NoError(t, err)
		assert.Empty(t, participants)

		assert.ErrorIs(t, s.DeleteTrip(ctx, trip.ID), storage.ErrNotFound)
	})
}

func mustTrip(t *testing.T, s storage.Store) *models.Trip {
	t.Helper()
	trip := &models.Trip{Name: "Test Trip"}
	require.NoError(t, s.CreateTrip(context.Background(), trip))
	return trip
}

func mustParticipant(t *testing.T, s storage.Store, tripID, name string) *models.Participant {
	t.Helper()
	p := models.NewParticipant(tripID, name)
	require.NoError(t, s.AddParticipant(context.Background(), p))
	return p
}
