package apiconnect

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/tripsplit/pkg/api"
)

func TestCodec_Name(t *testing.T) {
	assert.Equal(t, "json", Codec{}.Name())
}

func TestCodec_PlainStruct(t *testing.T) {
	in := &api.AddExpenseRequest{
		TripId:                 "trip-1",
		Title:                  "Dinner",
		Amount:                 decimal.RequireFromString("90.50"),
		PayerId:                "a",
		IncludedParticipantIds: []string{"a", "b"},
	}

	data, err := Codec{}.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"tripId":"trip-1"`)
	assert.Contains(t, string(data), `"amount":"90.5"`)

	var out api.AddExpenseRequest
	require.NoError(t, Codec{}.Unmarshal(data, &out))
	assert.Equal(t, in.Title, out.Title)
	assert.True(t, in.Amount.Equal(out.Amount))
	assert.Equal(t, in.IncludedParticipantIds, out.IncludedParticipantIds)
}

func TestCodec_NumericAmountAccepted(t *testing.T) {
	var out api.QuickSplitRequest
	require.NoError(t, Codec{}.Unmarshal([]byte(`{"total":1200,"people":4,"tipPercent":"12.5"}`), &out))
	assert.True(t, out.Total.Equal(decimal.NewFromInt(1200)))
	assert.Equal(t, int32(4), out.People)
	assert.True(t, out.TipPercent.Equal(decimal.RequireFromString("12.5")))
}

func TestCodec_EmptyPayload(t *testing.T) {
	out := api.GetTripRequest{TripId: "keep"}
	require.NoError(t, Codec{}.Unmarshal(nil, &out))
	assert.Equal(t, "keep", out.TripId)
}
