package types

import "time"

// Vote choices. Anything else in a stored row is ignored at aggregation time.
const (
	VoteYes   = "yes"
	VoteNo    = "no"
	VoteMaybe = "maybe"
)

// IsValidChoice reports whether choice is one of yes/no/maybe.
func IsValidChoice(choice string) bool {
	return choice == VoteYes || choice == VoteNo || choice == VoteMaybe
}

// Vote is a persisted vote row. A voter holds at most one choice per activity
// per trip; a repeat vote overwrites the prior one.
type Vote struct {
	TripID     string    `json:"trip_id"`
	ActivityID string    `json:"activity_id"`
	VoterID    string    `json:"voter_id"`
	Choice     string    `json:"choice"`
	CreatedAt  time.Time `json:"created_at"`
}

// VoteRequest is the body of POST /api/trip/:id/vote.
type VoteRequest struct {
	ActivityID string `json:"activityId"`
	Choice     string `json:"choice"`
	VoterID    string `json:"voterId"`
}

// VoteCounts tallies the votes for a single activity.
type VoteCounts struct {
	Yes   int `json:"yes"`
	No    int `json:"no"`
	Maybe int `json:"maybe"`
}

// VoteTally maps activity IDs to their counts. Activities nobody voted on are
// simply absent.
type VoteTally map[string]*VoteCounts
