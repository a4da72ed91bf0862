package models

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TripVibes/trip-vibes-backend/types"
)

func validRequest() types.TripRequest {
	return types.TripRequest{
		Destination: "Tokyo",
		Vibe:        "Culture",
		Days:        5,
		Budget:      800,
	}
}

func TestValidateTripRequestMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.TripRequest)
	}{
		{"missing destination", func(r *types.TripRequest) { r.Destination = "" }},
		{"whitespace destination", func(r *types.TripRequest) { r.Destination = "   " }},
		{"missing vibe", func(r *types.TripRequest) { r.Vibe = "" }},
		{"zero days", func(r *types.TripRequest) { r.Days = 0 }},
		{"zero budget", func(r *types.TripRequest) { r.Budget = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := ValidateTripRequest(req)
			require.NotNil(t, err)
			assert.Equal(t, http.StatusBadRequest, err.GetHTTPStatus())
			assert.Contains(t, err.Message, "Missing required fields")
		})
	}
}

func TestValidateTripRequestDaysRange(t *testing.T) {
	for _, days := range []int{-1, 31, 100} {
		req := validRequest()
		req.Days = days
		_, err := ValidateTripRequest(req)
		require.NotNil(t, err, "days=%d should be rejected", days)
		assert.Contains(t, err.Message, "between 1 and 30")
	}

	for _, days := range []int{1, 30} {
		req := validRequest()
		req.Days = days
		_, err := ValidateTripRequest(req)
		assert.Nil(t, err, "days=%d should be accepted", days)
	}
}

func TestValidateTripRequestBudgetRange(t *testing.T) {
	req := validRequest()
	req.Budget = -5
	_, err := ValidateTripRequest(req)
	require.NotNil(t, err)

	req.Budget = 0.01
	_, err = ValidateTripRequest(req)
	assert.Nil(t, err)
}

func TestValidateTripRequestVibeCaseInsensitive(t *testing.T) {
	for _, vibe := range []string{"adventure", "Adventure", "ADVENTURE"} {
		req := validRequest()
		req.Vibe = vibe
		normalized, err := ValidateTripRequest(req)
		require.Nil(t, err, "vibe=%q should be accepted", vibe)
		assert.Equal(t, types.VibeAdventure, normalized.Vibe)
	}

	req := validRequest()
	req.Vibe = "Extreme"
	_, err := ValidateTripRequest(req)
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "Invalid vibe")
}

func TestValidateTripRequestDefaults(t *testing.T) {
	normalized, err := ValidateTripRequest(validRequest())
	require.Nil(t, err)
	assert.Equal(t, 2, normalized.GroupSize)
	assert.Equal(t, "flexible", normalized.StartDate)

	req := validRequest()
	req.GroupSize = 4
	req.StartDate = "2026-09-15"
	normalized, err = ValidateTripRequest(req)
	require.Nil(t, err)
	assert.Equal(t, 4, normalized.GroupSize)
	assert.Equal(t, "2026-09-15", normalized.StartDate)
}
