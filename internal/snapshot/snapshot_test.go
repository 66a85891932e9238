package snapshot

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/tripsplit/internal/calculator"
	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/storage"
	"github.com/mmynk/tripsplit/internal/storage/memory"
)

// seed stores the dinner trip plus an expense that points at a removed participant.
func seed(t *testing.T, store storage.Store) string {
	t.Helper()
	ctx := context.Background()

	trip := &models.Trip{Name: "Goa", Location: "North Goa", Dates: "Dec 20 - Dec 24"}
	require.NoError(t, store.CreateTrip(ctx, trip))

	ids := make([]string, 0, 3)
	for _, name := range []string{"Asha", "Bala", "Chitra"} {
		p := models.NewParticipant(trip.ID, name)
		require.NoError(t, store.AddParticipant(ctx, p))
		ids = append(ids, p.ID)
	}

	require.NoError(t, store.AddExpense(ctx, &models.Expense{
		TripID:                 trip.ID,
		Title:                  "Dinner",
		Amount:                 decimal.RequireFromString("90.50"),
		PayerID:                ids[0],
		IncludedParticipantIDs: ids,
	}))
	require.NoError(t, store.AddExpense(ctx, &models.Expense{
		TripID:                 trip.ID,
		Title:                  "Ferry",
		Amount:                 decimal.NewFromInt(40),
		PayerID:                ids[1],
		IncludedParticipantIDs: []string{ids[1], "former-friend"},
	}))
	return trip.ID
}

func summarize(t *testing.T, store storage.Store, tripID string) *calculator.Summary {
	t.Helper()
	ctx := context.Background()
	participants, err := store.ListParticipants(ctx, tripID)
	require.NoError(t, err)
	expenses, err := store.ListExpenses(ctx, tripID)
	require.NoError(t, err)
	return calculator.Summarize(participants, expenses)
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			ctx := context.Background()
			src := memory.New()
			srcID := seed(t, src)

			doc, err := Export(ctx, src, srcID)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, doc, format))

			decoded, err := Decode(&buf, format)
			require.NoError(t, err)

			dst := memory.New()
			trip, err := Import(ctx, dst, decoded)
			require.NoError(t, err)

			assert.NotEqual(t, srcID, trip.ID)
			assert.Equal(t, "Goa · North Goa · Dec 20 - Dec 24", trip.Line())

			want := summarize(t, src, srcID)
			got := summarize(t, dst, trip.ID)
			assert.True(t, want.TotalAmount.Equal(got.TotalAmount))
			require.Len(t, got.Members, len(want.Members))
			for i := range want.Members {
				assert.Equal(t, want.Members[i].Name, got.Members[i].Name)
				assert.Equal(t, want.Members[i].Initials, got.Members[i].Initials)
				assert.True(t, want.Members[i].NetBalance.Equal(got.Members[i].NetBalance),
					"%s: want %s, got %s", want.Members[i].Name, want.Members[i].NetBalance, got.Members[i].NetBalance)
			}
			require.Len(t, got.Settlements, len(want.Settlements))
		})
	}
}

func TestImport_RekeysAndKeepsUnknownReferences(t *testing.T) {
	ctx := context.Background()
	doc := &Document{
		Version:      Version,
		Trip:         Trip{Name: "Manali"},
		Participants: []Participant{{ID: "p1", Name: "Asha"}, {ID: "p2", Name: "Bala"}},
		Expenses: []Expense{{
			ID:                     "e1",
			Title:                  "Tea",
			Amount:                 "30",
			PayerID:                "p1",
			IncludedParticipantIDs: []string{"p1", "p2", "ghost"},
		}},
	}

	store := memory.New()
	trip, err := Import(ctx, store, doc)
	require.NoError(t, err)

	participants, err := store.ListParticipants(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, participants, 2)
	assert.NotEqual(t, "p1", participants[0].ID)

	expenses, err := store.ListExpenses(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.NotEqual(t, "e1", expenses[0].ID)
	assert.Equal(t, participants[0].ID, expenses[0].PayerID)
	assert.Equal(t, []string{participants[0].ID, participants[1].ID, "ghost"}, expenses[0].IncludedParticipantIDs)
}

func TestImport_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  *Document
		err  error
	}{
		{"wrong version", &Document{Version: 2}, ErrUnsupportedVersion},
		{"unnamed participant", &Document{Version: Version, Participants: []Participant{{ID: "p1", Name: " "}}}, ErrInvalid},
		{"duplicate participant id", &Document{Version: Version, Participants: []Participant{{ID: "p1", Name: "A"}, {ID: "p1", Name: "B"}}}, ErrInvalid},
		{"bad amount", &Document{Version: Version, Expenses: []Expense{{Title: "Tea", Amount: "thirty"}}}, ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.New()
			_, err := Import(context.Background(), store, tt.doc)
			assert.ErrorIs(t, err, tt.err)

			trips, listErr := store.ListTrips(context.Background())
			require.NoError(t, listErr)
			assert.Empty(t, trips, "nothing is written for an invalid document")
		})
	}
}

// fullStore refuses bulk writes.
type fullStore struct {
	*memory.Store
}

func (fullStore) ImportTrip(context.Context, *models.Trip, []*models.Participant, []*models.Expense) error {
	return errors.New("disk full")
}

func TestImport_StoreFailureLeavesNothing(t *testing.T) {
	ctx := context.Background()
	store := fullStore{memory.New()}
	doc := &Document{
		Version:      Version,
		Trip:         Trip{Name: "Manali"},
		Participants: []Participant{{ID: "p1", Name: "Asha"}},
		Expenses:     []Expense{{Title: "Tea", Amount: "30", PayerID: "p1", IncludedParticipantIDs: []string{"p1"}}},
	}

	_, err := Import(ctx, store, doc)
	require.EqualError(t, err, "disk full")

	trips, err := store.ListTrips(ctx)
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestDecode_YAMLByHand(t *testing.T) {
	in := `
version: 1
trip:
  name: Coorg
participants:
  - id: a
    name: Asha
expenses:
  - id: x
    title: Coffee
    amount: 12.5
    payerId: a
    includedParticipantIds: [a]
`
	doc, err := Decode(strings.NewReader(in), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "Coorg", doc.Trip.Name)
	require.Len(t, doc.Expenses, 1)
	assert.Equal(t, "12.5", doc.Expenses[0].Amount)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(strings.NewReader("version: 3\n"), FormatYAML)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)

	_, err = Decode(strings.NewReader("{not json"), FormatJSON)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestExport_NotFound(t *testing.T) {
	_, err := Export(context.Background(), memory.New(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFromPath("trip.JSON"))
	assert.Equal(t, FormatYAML, FormatFromPath("trip.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("trip"))
}
