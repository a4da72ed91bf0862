package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/TripVibes/trip-vibes-backend/errors"
	"github.com/TripVibes/trip-vibes-backend/services"
	"github.com/TripVibes/trip-vibes-backend/types"
)

// DiscoveryServiceInterface defines the methods used by DiscoveryHandler.
type DiscoveryServiceInterface interface {
	RecommendDestinations(ctx context.Context, prefs types.TravelPreferences) []types.Destination
	EnrichActivity(ctx context.Context, req types.EnrichActivityRequest) *types.EnrichedActivity
}

var _ DiscoveryServiceInterface = (*services.DiscoveryService)(nil)

// DiscoveryHandler serves destination recommendations and activity
// enrichment. Both endpoints always succeed once input validates; the service
// degrades to deterministic content when the LLM is unavailable.
type DiscoveryHandler struct {
	discoveryService DiscoveryServiceInterface
}

func NewDiscoveryHandler(service DiscoveryServiceInterface) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryService: service,
	}
}

// RecommendationsHandler handles POST /api/recommendations.
func (h *DiscoveryHandler) RecommendationsHandler(c *gin.Context) {
	var prefs types.TravelPreferences
	if !bindJSONOrError(c, &prefs) {
		return
	}

	destinations := h.discoveryService.RecommendDestinations(c.Request.Context(), prefs)
	c.JSON(http.StatusOK, gin.H{"destinations": destinations})
}

// EnrichActivityHandler handles POST /api/enrich-activity.
func (h *DiscoveryHandler) EnrichActivityHandler(c *gin.Context) {
	var req types.EnrichActivityRequest
	if !bindJSONOrError(c, &req) {
		return
	}

	if req.ActivityTitle == "" || req.Destination == "" {
		_ = c.Error(apperrors.ValidationFailed("Missing required fields: activityTitle, destination", ""))
		return
	}

	enriched := h.discoveryService.EnrichActivity(c.Request.Context(), req)
	c.JSON(http.StatusOK, enriched)
}
