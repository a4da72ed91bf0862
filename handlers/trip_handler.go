package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/TripVibes/trip-vibes-backend/errors"
	"github.com/TripVibes/trip-vibes-backend/models"
	"github.com/TripVibes/trip-vibes-backend/types"
)

// TripServiceInterface defines the methods used by TripHandler, allowing the
// handler to be tested with a mock.
type TripServiceInterface interface {
	CreateTrip(ctx context.Context, req types.TripRequest) (string, *apperrors.AppError)
	GetTrip(ctx context.Context, id string) (*types.TripWithVotes, *apperrors.AppError)
	CastVote(ctx context.Context, tripID string, req types.VoteRequest) *apperrors.AppError
}

// compile-time check: *models.TripModel satisfies TripServiceInterface
var _ TripServiceInterface = (*models.TripModel)(nil)

// TripHandler serves the itinerary-generation, trip-retrieval and voting
// endpoints.
type TripHandler struct {
	tripService TripServiceInterface
}

func NewTripHandler(service TripServiceInterface) *TripHandler {
	return &TripHandler{
		tripService: service,
	}
}

// GenerateItineraryHandler handles POST /api/generate-itinerary. Once the
// request validates, the response is always 200 with an id: AI failures fall
// back to the deterministic generator and store failures mint a local id.
func (h *TripHandler) GenerateItineraryHandler(c *gin.Context) {
	var req types.TripRequest
	if !bindJSONOrError(c, &req) {
		return
	}

	id, appErr := h.tripService.CreateTrip(c.Request.Context(), req)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// GetTripHandler handles GET /api/trip/:id, returning the trip and its
// per-activity vote tallies.
func (h *TripHandler) GetTripHandler(c *gin.Context) {
	result, appErr := h.tripService.GetTrip(c.Request.Context(), c.Param("id"))
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}

	c.JSON(http.StatusOK, result)
}

// VoteHandler handles POST /api/trip/:id/vote.
func (h *TripHandler) VoteHandler(c *gin.Context) {
	var req types.VoteRequest
	if !bindJSONOrError(c, &req) {
		return
	}

	if appErr := h.tripService.CastVote(c.Request.Context(), c.Param("id"), req); appErr != nil {
		_ = c.Error(appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
