// Package store defines the persistence interfaces the domain models depend
// on. The pgx implementation lives in the postgres subpackage.
package store

import (
	"context"
	"errors"

	"github.com/TripVibes/trip-vibes-backend/types"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// TripStore persists trips and their votes.
type TripStore interface {
	// InsertTrip stores a new trip and returns its server-assigned ID.
	InsertTrip(ctx context.Context, trip *types.TripRecord) (string, error)

	// GetTrip fetches a trip by ID. Returns ErrNotFound when absent.
	GetTrip(ctx context.Context, id string) (*types.TripRecord, error)

	// ListVotes returns all vote rows for a trip.
	ListVotes(ctx context.Context, tripID string) ([]types.Vote, error)

	// UpsertVote stores a vote, replacing any prior choice by the same voter
	// on the same activity.
	UpsertVote(ctx context.Context, vote *types.Vote) error
}
