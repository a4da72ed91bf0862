package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TripVibes/trip-vibes-backend/middleware"
	"github.com/TripVibes/trip-vibes-backend/services"
	"github.com/TripVibes/trip-vibes-backend/types"
)

func newDiscoveryRouter() *gin.Engine {
	handler := NewDiscoveryHandler(services.NewDiscoveryService(nil, 0))

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.POST("/api/recommendations", handler.RecommendationsHandler)
	r.POST("/api/enrich-activity", handler.EnrichActivityHandler)
	return r
}

func TestRecommendationsFallback(t *testing.T) {
	r := newDiscoveryRouter()

	w := doJSON(t, r, http.MethodPost, "/api/recommendations", types.TravelPreferences{
		Budget:      "budget",
		TravelStyle: "culture",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Destinations []types.Destination `json:"destinations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Destinations)
	assert.Equal(t, "Bali", resp.Destinations[0].Name)
	assert.Contains(t, resp.Destinations[0].WhyPerfectForYou, "culture")
}

func TestEnrichActivityValidation(t *testing.T) {
	r := newDiscoveryRouter()

	w := doJSON(t, r, http.MethodPost, "/api/enrich-activity", types.EnrichActivityRequest{
		ActivityTitle: "Senso-ji Temple",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEnrichActivityFallback(t *testing.T) {
	r := newDiscoveryRouter()

	w := doJSON(t, r, http.MethodPost, "/api/enrich-activity", types.EnrichActivityRequest{
		ActivityTitle: "Senso-ji Temple",
		Destination:   "Tokyo",
		TripType:      "Culture",
		Category:      "attraction",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var enriched types.EnrichedActivity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &enriched))
	assert.Equal(t, "Senso-ji Temple", enriched.Title)
	assert.NotEmpty(t, enriched.Tips)
}
