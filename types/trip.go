package types

import "time"

// Vibe is the trip's thematic style. The five canonical values below are the
// only ones accepted; matching is case-insensitive and the canonical form is
// stored.
const (
	VibeAdventure   = "Adventure"
	VibeChill       = "Chill"
	VibeParty       = "Party"
	VibeCulture     = "Culture"
	VibeSpontaneous = "Spontaneous"
)

// Vibes lists the canonical vibe values in their documented order.
var Vibes = []string{VibeAdventure, VibeChill, VibeParty, VibeCulture, VibeSpontaneous}

// StartDateFlexible is the default start date when the client leaves it out.
const StartDateFlexible = "flexible"

// DefaultGroupSize is applied when the client omits groupSize.
const DefaultGroupSize = 2

// TripRequest is the body of POST /api/generate-itinerary.
type TripRequest struct {
	Destination string  `json:"destination"`
	Vibe        string  `json:"vibe"`
	Days        int     `json:"days"`
	Budget      float64 `json:"budget"`
	StartDate   string  `json:"startDate,omitempty"`
	GroupSize   int     `json:"groupSize,omitempty"`
}

// TripRecord is a persisted trip: the request inputs plus the generated
// itinerary. Immutable after creation.
type TripRecord struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	Vibe        string    `json:"vibe"`
	Days        int       `json:"days"`
	Budget      float64   `json:"budget"`
	StartDate   *string   `json:"start_date,omitempty"`
	Itinerary   Itinerary `json:"itinerary"`
	CreatedAt   time.Time `json:"created_at"`
}

// TripView is the trip portion of the GET /api/trip/:id response.
type TripView struct {
	Destination string    `json:"destination"`
	Days        int       `json:"days"`
	Budget      float64   `json:"budget"`
	Itinerary   Itinerary `json:"itinerary"`
}

// TripWithVotes combines a trip with its per-activity vote tallies.
type TripWithVotes struct {
	Trip  TripView  `json:"trip"`
	Votes VoteTally `json:"votes"`
}
