package models

import "github.com/TripVibes/trip-vibes-backend/types"

// demoTrip is served for demo- ids so the share flow works without a
// database. The document is fixed and carries no votes.
func demoTrip() *types.TripWithVotes {
	return &types.TripWithVotes{
		Trip: types.TripView{
			Destination: "Demo Destination",
			Days:        3,
			Budget:      1000,
			Itinerary: types.Itinerary{
				Trip: types.TripSummary{
					Destination: "Demo Destination",
					Days:        3,
					Budget:      1000,
					Vibe:        "adventure",
					GroupSize:   2,
					Currency:    "USD",
				},
				Days: []types.DayPlan{
					{
						Day:     1,
						Summary: "Day 1 exploring Demo Destination",
						Cluster: "Demo Center",
						Activities: []types.Activity{
							{
								ID:               "demo-activity-1",
								Title:            "Morning Demo Activity",
								Time:             "09:00",
								DurationMin:      180,
								EstCostPerPerson: 25,
								Tags:             []string{"demo", "sightseeing"},
								HiddenGem:        true,
								PhotoHint:        "Beautiful demo location",
							},
						},
					},
				},
				EstimatedTotalCost: 300,
				OverBudget:         false,
				SwapSuggestions:    []types.SwapSuggestion{},
				EcoNotes:           []string{"This is a demo trip"},
			},
		},
		Votes: types.VoteTally{},
	}
}
