package models

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/TripVibes/trip-vibes-backend/errors"
	"github.com/TripVibes/trip-vibes-backend/internal/store"
	"github.com/TripVibes/trip-vibes-backend/logger"
	"github.com/TripVibes/trip-vibes-backend/types"
)

// ItineraryGenerator produces an itinerary for a validated request. It never
// fails; the second return value names the source (ai or fallback).
type ItineraryGenerator interface {
	Generate(ctx context.Context, req types.TripRequest) (*types.Itinerary, string)
}

// TripModel orchestrates trip creation, retrieval and voting over the store
// and the itinerary generator. A nil store puts the model in demo mode:
// creation mints demo- ids and votes are accepted without persistence.
type TripModel struct {
	store     store.TripStore
	generator ItineraryGenerator
}

// NewTripModel creates a TripModel. store may be nil when no database is
// configured.
func NewTripModel(tripStore store.TripStore, generator ItineraryGenerator) *TripModel {
	return &TripModel{
		store:     tripStore,
		generator: generator,
	}
}

// CreateTrip validates the request, generates an itinerary and persists the
// trip. Once validation passes the caller always gets an id back: generation
// failures fall back to the deterministic generator inside the generator, and
// persistence failures mint a local placeholder id instead of erroring.
func (m *TripModel) CreateTrip(ctx context.Context, raw types.TripRequest) (string, *apperrors.AppError) {
	log := logger.GetLogger()

	req, appErr := ValidateTripRequest(raw)
	if appErr != nil {
		return "", appErr
	}

	itinerary, source := m.generator.Generate(ctx, req)
	log.Infow("Itinerary generated",
		"destination", req.Destination,
		"days", req.Days,
		"source", source,
	)

	if m.store == nil {
		id := fmt.Sprintf("demo-%d", time.Now().UnixMilli())
		log.Infow("Database not configured, using demo trip ID", "trip_id", id)
		return id, nil
	}

	var startDate *string
	if req.StartDate != types.StartDateFlexible {
		startDate = &req.StartDate
	}

	record := &types.TripRecord{
		Destination: req.Destination,
		Vibe:        req.Vibe,
		Days:        req.Days,
		Budget:      req.Budget,
		StartDate:   startDate,
		Itinerary:   *itinerary,
	}

	id, err := m.store.InsertTrip(ctx, record)
	if err != nil {
		// Availability over durability: the trip still exists client-side,
		// so hand back a placeholder id rather than failing the request.
		id = fmt.Sprintf("fallback-%d", time.Now().UnixMilli())
		log.Errorw("Trip insert failed, using fallback trip ID",
			"trip_id", id,
			"error", err,
		)
	}

	return id, nil
}

// GetTrip fetches a trip and its vote tallies. Tallies are recomputed from
// the vote rows on every call, never cached.
func (m *TripModel) GetTrip(ctx context.Context, id string) (*types.TripWithVotes, *apperrors.AppError) {
	if id == "" {
		return nil, apperrors.ValidationFailed("MISSING_ID", "trip ID is required")
	}

	if strings.HasPrefix(id, "demo-") {
		return demoTrip(), nil
	}

	if m.store == nil {
		return nil, apperrors.InternalServerError("SERVER_ERROR")
	}

	trip, err := m.store.GetTrip(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Trip", id)
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	votes, err := m.store.ListVotes(ctx, id)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	return &types.TripWithVotes{
		Trip: types.TripView{
			Destination: trip.Destination,
			Days:        trip.Days,
			Budget:      trip.Budget,
			Itinerary:   trip.Itinerary,
		},
		Votes: AggregateVotes(votes),
	}, nil
}

// CastVote records a voter's choice on an activity. The upsert keyed on
// (trip, activity, voter) means a repeat vote replaces the prior choice.
// A failed write is logged but still acknowledged to the caller; votes are
// advisory and losing one beats failing the request.
func (m *TripModel) CastVote(ctx context.Context, tripID string, req types.VoteRequest) *apperrors.AppError {
	log := logger.GetLogger()

	if tripID == "" || req.ActivityID == "" || req.Choice == "" || req.VoterID == "" {
		return apperrors.ValidationFailed("Missing required fields: activityId, choice, voterId", "")
	}

	if !types.IsValidChoice(req.Choice) {
		return apperrors.ValidationFailed("Invalid choice. Must be yes, no, or maybe", "")
	}

	if m.store == nil {
		log.Infow("Database not configured, vote not persisted",
			"trip_id", tripID,
			"activity_id", req.ActivityID,
		)
		return nil
	}

	vote := &types.Vote{
		TripID:     tripID,
		ActivityID: req.ActivityID,
		VoterID:    req.VoterID,
		Choice:     req.Choice,
	}

	if err := m.store.UpsertVote(ctx, vote); err != nil {
		log.Warnw("Vote not saved, request still acknowledged",
			"trip_id", tripID,
			"activity_id", req.ActivityID,
			"error", err,
		)
	}

	return nil
}
