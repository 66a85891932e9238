package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/storage"
	"github.com/mmynk/tripsplit/internal/storage/storagetest"
)

func TestStore(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Store {
		return New()
	})
}

func TestStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := New()
	trip := &models.Trip{Name: "Goa"}
	require.NoError(t, s.CreateTrip(ctx, trip))
	require.NoError(t, s.AddParticipant(ctx, models.NewParticipant(trip.ID, "Alice")))

	got, err := s.ListParticipants(ctx, trip.ID)
	require.NoError(t, err)
	got[0].Name = "Mallory"

	again, err := s.ListParticipants(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", again[0].Name)
}

func TestStore_ConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	s := New()
	trip := &models.Trip{Name: "Goa"}
	require.NoError(t, s.CreateTrip(ctx, trip))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.AddParticipant(ctx, models.NewParticipant(trip.ID, "Friend")))
		}()
	}
	wg.Wait()

	got, err := s.ListParticipants(ctx, trip.ID)
	require.NoError(t, err)
	assert.Len(t, got, 50)
}

func TestStore_CreateTripDuplicateLeavesTripUntouched(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.CreateTrip(ctx, &models.Trip{ID: "goa", Name: "Goa"}))

	dup := &models.Trip{ID: "goa"}
	require.Error(t, s.CreateTrip(ctx, dup))
	assert.Equal(t, &models.Trip{ID: "goa"}, dup)

	got, err := s.GetTrip(ctx, "goa")
	require.NoError(t, err)
	assert.Equal(t, "Goa", got.Name)
}

func TestStore_IDsFreedOnDelete(t *testing.T) {
	ctx := context.Background()
	s := New()
	trip := &models.Trip{Name: "Goa"}
	require.NoError(t, s.CreateTrip(ctx, trip))
	p := models.NewParticipant(trip.ID, "Alice")
	p.ID = "alice"
	require.NoError(t, s.AddParticipant(ctx, p))

	again := models.NewParticipant(trip.ID, "Alice")
	again.ID = "alice"
	require.Error(t, s.AddParticipant(ctx, again))

	require.NoError(t, s.DeleteTrip(ctx, trip.ID))
	other := &models.Trip{Name: "Pune"}
	require.NoError(t, s.CreateTrip(ctx, other))
	reused := models.NewParticipant(other.ID, "Alice")
	reused.ID = "alice"
	assert.NoError(t, s.AddParticipant(ctx, reused))
}
