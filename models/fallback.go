package models

import (
	"fmt"
	"math"
	"strings"

	"github.com/TripVibes/trip-vibes-backend/types"
)

// ecoNotes is emitted verbatim on every fallback itinerary.
var ecoNotes = []string{
	"Use public transportation when possible",
	"Choose local restaurants to reduce carbon footprint",
	"Bring a reusable water bottle",
}

// GenerateFallbackItinerary deterministically synthesizes a complete
// itinerary without any AI call. It is total for validated input and is the
// unconditional backstop whenever the LLM path fails.
//
// The daily budget is split across a nominal 4 activities even though only 3
// are emitted, so the estimated total deliberately under-spends the budget by
// one activity's worth per day. That arithmetic is load-bearing for clients
// and must not be "fixed" here.
func GenerateFallbackItinerary(destination string, days int, budget float64, vibe string, groupSize int) *types.Itinerary {
	costPerActivity := math.Floor(budget / float64(days) / 4)
	lowerVibe := strings.ToLower(vibe)

	dayPlans := make([]types.DayPlan, 0, days)
	for i := 1; i <= days; i++ {
		dayPlans = append(dayPlans, types.DayPlan{
			Day:     i,
			Summary: fmt.Sprintf("Day %d in %s", i, destination),
			Cluster: fmt.Sprintf("%s Center", destination),
			Activities: []types.Activity{
				{
					ID:               fmt.Sprintf("day-%d-activity-1", i),
					Title:            fmt.Sprintf("Morning %s activity", lowerVibe),
					Time:             "09:00",
					DurationMin:      120,
					EstCostPerPerson: costPerActivity,
					Tags:             []string{lowerVibe, "morning"},
					HiddenGem:        i == 1,
					PhotoHint:        fmt.Sprintf("%s morning scene", destination),
				},
				{
					ID:               fmt.Sprintf("day-%d-activity-2", i),
					Title:            "Afternoon exploration",
					Time:             "14:00",
					DurationMin:      180,
					EstCostPerPerson: costPerActivity,
					Tags:             []string{"exploration", "afternoon"},
					HiddenGem:        false,
					PhotoHint:        fmt.Sprintf("%s afternoon activity", destination),
				},
				{
					ID:               fmt.Sprintf("day-%d-activity-3", i),
					Title:            fmt.Sprintf("Evening %s experience", lowerVibe),
					Time:             "19:00",
					DurationMin:      150,
					EstCostPerPerson: costPerActivity,
					Tags:             []string{lowerVibe, "evening"},
					HiddenGem:        false,
					PhotoHint:        fmt.Sprintf("%s evening scene", destination),
				},
			},
		})
	}

	totalCost := costPerActivity * 3 * float64(days)

	var swaps []types.SwapSuggestion
	if totalCost > budget {
		swaps = []types.SwapSuggestion{
			{
				ReplaceActivityID: "day-1-activity-1",
				With:              "Free walking tour",
				EstSaving:         costPerActivity,
			},
		}
	} else {
		swaps = []types.SwapSuggestion{}
	}

	return &types.Itinerary{
		Trip: types.TripSummary{
			Destination: destination,
			Days:        days,
			Budget:      budget,
			Vibe:        vibe,
			GroupSize:   groupSize,
			Currency:    "USD",
		},
		Days:               dayPlans,
		EstimatedTotalCost: totalCost,
		OverBudget:         totalCost > budget,
		SwapSuggestions:    swaps,
		EcoNotes:           append([]string(nil), ecoNotes...),
	}
}
