package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/tripsplit/internal/storage/sqlite"
	"github.com/mmynk/tripsplit/pkg/api"
	"github.com/mmynk/tripsplit/pkg/api/apiconnect"
)

// setupTestServer creates a test server with both Trip and Split services
// backed by a temp-file SQLite database.
func setupTestServer(t *testing.T) (apiconnect.TripServiceClient, apiconnect.SplitServiceClient, func()) {
	t.Helper()

	// Create temp database
	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	tripPath, tripHandler := apiconnect.NewTripServiceHandler(NewTripService(store))
	splitPath, splitHandler := apiconnect.NewSplitServiceHandler(NewSplitService(store))

	mux := http.NewServeMux()
	mux.Handle(tripPath, tripHandler)
	mux.Handle(splitPath, splitHandler)

	server := httptest.NewServer(mux)

	tripClient := apiconnect.NewTripServiceClient(
		http.DefaultClient,
		server.URL,
	)

	splitClient := apiconnect.NewSplitServiceClient(
		http.DefaultClient,
		server.URL,
	)

	cleanup := func() {
		server.Close()
		store.Close()
		os.Remove(tmpFile.Name())
	}

	return tripClient, splitClient, cleanup
}

// createTrip creates a trip with the given participants and returns the trip
// ID and participant IDs in the same order as names.
func createTrip(t *testing.T, client apiconnect.TripServiceClient, names ...string) (string, []string) {
	t.Helper()
	ctx := context.Background()

	resp, err := client.CreateTrip(ctx, connect.NewRequest(&api.CreateTripRequest{Name: "Goa"}))
	if err != nil {
		t.Fatalf("CreateTrip failed: %v", err)
	}
	tripID := resp.Msg.Trip.Id

	ids := make([]string, len(names))
	for i, name := range names {
		p, err := client.AddParticipant(ctx, connect.NewRequest(&api.AddParticipantRequest{
			TripId: tripID,
			Name:   name,
		}))
		if err != nil {
			t.Fatalf("AddParticipant(%q) failed: %v", name, err)
		}
		ids[i] = p.Msg.Participant.Id
	}
	return tripID, ids
}

func expectCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Errorf("expected %v, got %v (%v)", want, got, err)
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
