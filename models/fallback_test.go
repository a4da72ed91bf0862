package models

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackDeterminism(t *testing.T) {
	a := GenerateFallbackItinerary("Paris", 3, 300, "Chill", 2)
	b := GenerateFallbackItinerary("Paris", 3, 300, "Chill", 2)

	aJSON, err := json.Marshal(a)
	require.NoError(t, err)
	bJSON, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, aJSON, bJSON)
}

func TestFallbackBudgetArithmetic(t *testing.T) {
	it := GenerateFallbackItinerary("Lisbon", 4, 400, "Party", 2)

	// floor(400/4/4) = 25 per activity, 25*3*4 = 300 total.
	assert.Equal(t, float64(300), it.EstimatedTotalCost)
	assert.False(t, it.OverBudget)
	assert.Empty(t, it.SwapSuggestions)

	for _, day := range it.Days {
		for _, act := range day.Activities {
			assert.Equal(t, float64(25), act.EstCostPerPerson)
		}
	}
}

func TestFallbackShape(t *testing.T) {
	it := GenerateFallbackItinerary("Tokyo", 5, 1000, "Culture", 3)

	assert.Equal(t, "Tokyo", it.Trip.Destination)
	assert.Equal(t, 5, it.Trip.Days)
	assert.Equal(t, "USD", it.Trip.Currency)
	assert.Equal(t, 3, it.Trip.GroupSize)
	require.Len(t, it.Days, 5)

	for i, day := range it.Days {
		assert.Equal(t, i+1, day.Day)
		require.Len(t, day.Activities, 3)
		for slot, act := range day.Activities {
			assert.Equal(t, fmt.Sprintf("day-%d-activity-%d", i+1, slot+1), act.ID)
			assert.Greater(t, act.DurationMin, 0)
		}
		assert.Equal(t, "09:00", day.Activities[0].Time)
		assert.Equal(t, "14:00", day.Activities[1].Time)
		assert.Equal(t, "19:00", day.Activities[2].Time)
	}

	assert.Equal(t, "Morning culture activity", it.Days[0].Activities[0].Title)
	assert.Len(t, it.EcoNotes, 3)
}

func TestFallbackHiddenGemPlacement(t *testing.T) {
	for _, days := range []int{1, 3, 30} {
		it := GenerateFallbackItinerary("Oslo", days, 900, "Adventure", 2)

		var gems []string
		for _, day := range it.Days {
			for _, act := range day.Activities {
				if act.HiddenGem {
					gems = append(gems, act.ID)
				}
			}
		}
		require.Len(t, gems, 1, "days=%d", days)
		assert.Equal(t, "day-1-activity-1", gems[0])
	}
}

func TestFallbackOverBudgetInvariant(t *testing.T) {
	// cost = floor(budget/days/4), total = cost*3*days <= 3/4 of budget, so
	// the generator can never overshoot and the swap list stays empty. The
	// invariant still has to hold for every input.
	inputs := []struct {
		days   int
		budget float64
	}{
		{1, 0.01},
		{1, 3.9},
		{2, 100},
		{30, 12000},
	}
	for _, in := range inputs {
		it := GenerateFallbackItinerary("Reykjavik", in.days, in.budget, "Chill", 2)
		assert.Equal(t, it.EstimatedTotalCost > in.budget, it.OverBudget,
			"days=%d budget=%v", in.days, in.budget)
		if it.OverBudget {
			require.Len(t, it.SwapSuggestions, 1)
			assert.Equal(t, "day-1-activity-1", it.SwapSuggestions[0].ReplaceActivityID)
		} else {
			assert.Empty(t, it.SwapSuggestions)
		}
	}
}
