package models

import (
	"strings"

	apperrors "github.com/TripVibes/trip-vibes-backend/errors"
	"github.com/TripVibes/trip-vibes-backend/types"
)

const (
	minDays = 1
	maxDays = 30
)

// ValidateTripRequest checks the four required trip-creation inputs and
// returns a normalized copy: vibe canonicalized, groupSize defaulted to 2 and
// startDate defaulted to "flexible". It has no side effects; a failed request
// never reaches the LLM or the store.
func ValidateTripRequest(req types.TripRequest) (types.TripRequest, *apperrors.AppError) {
	if strings.TrimSpace(req.Destination) == "" || req.Vibe == "" || req.Days == 0 || req.Budget == 0 {
		return types.TripRequest{}, apperrors.ValidationFailed(
			"Missing required fields: destination, vibe, days, budget", "")
	}

	if req.Days < minDays || req.Days > maxDays {
		return types.TripRequest{}, apperrors.ValidationFailed(
			"Days must be a number between 1 and 30", "")
	}

	if req.Budget <= 0 {
		return types.TripRequest{}, apperrors.ValidationFailed(
			"Budget must be a positive number", "")
	}

	vibe, ok := canonicalVibe(req.Vibe)
	if !ok {
		return types.TripRequest{}, apperrors.ValidationFailed(
			"Invalid vibe. Must be one of: Adventure, Chill, Party, Culture, Spontaneous", "")
	}

	normalized := req
	normalized.Destination = strings.TrimSpace(req.Destination)
	normalized.Vibe = vibe
	if normalized.GroupSize == 0 {
		normalized.GroupSize = types.DefaultGroupSize
	}
	if normalized.StartDate == "" {
		normalized.StartDate = types.StartDateFlexible
	}

	return normalized, nil
}

func canonicalVibe(raw string) (string, bool) {
	for _, v := range types.Vibes {
		if strings.EqualFold(raw, v) {
			return v, true
		}
	}
	return "", false
}
