package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/TripVibes/trip-vibes-backend/internal/store"
	"github.com/TripVibes/trip-vibes-backend/types"
)

// DB is the subset of pgxpool.Pool the store needs. pgxmock satisfies it in
// tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripStore implements store.TripStore using PostgreSQL.
type TripStore struct {
	db DB
}

// NewTripStore creates a TripStore backed by the given connection pool.
func NewTripStore(db DB) *TripStore {
	return &TripStore{db: db}
}

// InsertTrip stores a new trip and returns the generated UUID.
func (s *TripStore) InsertTrip(ctx context.Context, trip *types.TripRecord) (string, error) {
	doc, err := json.Marshal(trip.Itinerary)
	if err != nil {
		return "", fmt.Errorf("marshal itinerary: %w", err)
	}

	query := `
		INSERT INTO trips (destination, vibe, days, budget, start_date, itinerary)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id string
	err = s.db.QueryRow(ctx, query,
		trip.Destination,
		trip.Vibe,
		trip.Days,
		trip.Budget,
		trip.StartDate,
		doc,
	).Scan(&id)
	if err != nil {
		return "", err
	}

	return id, nil
}

// GetTrip fetches a trip by ID. IDs that are not valid UUIDs (locally minted
// fallback ids, garbage input) cannot exist in the table and map straight to
// ErrNotFound.
func (s *TripStore) GetTrip(ctx context.Context, id string) (*types.TripRecord, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, store.ErrNotFound
	}

	query := `
		SELECT id, destination, vibe, days, budget, start_date, itinerary, created_at
		FROM trips
		WHERE id = $1`

	trip := &types.TripRecord{}
	var doc []byte
	err := s.db.QueryRow(ctx, query, id).Scan(
		&trip.ID,
		&trip.Destination,
		&trip.Vibe,
		&trip.Days,
		&trip.Budget,
		&trip.StartDate,
		&doc,
		&trip.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(doc, &trip.Itinerary); err != nil {
		return nil, fmt.Errorf("unmarshal itinerary: %w", err)
	}

	return trip, nil
}

// ListVotes returns every vote row for a trip.
func (s *TripStore) ListVotes(ctx context.Context, tripID string) ([]types.Vote, error) {
	if _, err := uuid.Parse(tripID); err != nil {
		return nil, nil
	}

	query := `
		SELECT trip_id, activity_id, voter_id, choice, created_at
		FROM votes
		WHERE trip_id = $1`

	rows, err := s.db.Query(ctx, query, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var votes []types.Vote
	for rows.Next() {
		var v types.Vote
		if err := rows.Scan(&v.TripID, &v.ActivityID, &v.VoterID, &v.Choice, &v.CreatedAt); err != nil {
			return nil, err
		}
		votes = append(votes, v)
	}

	return votes, rows.Err()
}

// UpsertVote stores a vote. The composite primary key serializes concurrent
// votes by the same voter on the same activity; the last write wins.
func (s *TripStore) UpsertVote(ctx context.Context, vote *types.Vote) error {
	query := `
		INSERT INTO votes (trip_id, activity_id, voter_id, choice, created_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (trip_id, activity_id, voter_id)
		DO UPDATE SET choice = EXCLUDED.choice, created_at = EXCLUDED.created_at`

	_, err := s.db.Exec(ctx, query,
		vote.TripID,
		vote.ActivityID,
		vote.VoterID,
		vote.Choice,
	)
	return err
}
