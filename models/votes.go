package models

import "github.com/TripVibes/trip-vibes-backend/types"

// AggregateVotes folds flat vote rows into per-activity yes/no/maybe counts.
// Rows with an unknown choice are dropped silently. Activities with no votes
// never appear in the tally; absence means zero.
func AggregateVotes(rows []types.Vote) types.VoteTally {
	tally := types.VoteTally{}
	for _, row := range rows {
		counts, ok := tally[row.ActivityID]
		if !ok {
			counts = &types.VoteCounts{}
			tally[row.ActivityID] = counts
		}
		switch row.Choice {
		case types.VoteYes:
			counts.Yes++
		case types.VoteNo:
			counts.No++
		case types.VoteMaybe:
			counts.Maybe++
		}
	}
	return tally
}
