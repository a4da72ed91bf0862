package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TripVibes/trip-vibes-backend/logger"
	"github.com/TripVibes/trip-vibes-backend/types"
)

func init() {
	logger.IsTest = true
}

type fakeLLM struct {
	response string
	err      error
	calls    int
}

func (f *fakeLLM) GenerateJSON(_ context.Context, _, _ string) (string, error) {
	f.calls++
	return f.response, f.err
}

func testRequest() types.TripRequest {
	return types.TripRequest{
		Destination: "Tokyo",
		Vibe:        "Culture",
		Days:        2,
		Budget:      200,
		GroupSize:   2,
		StartDate:   "flexible",
	}
}

const validAIResponse = `{
	"trip": {"destination": "Tokyo", "days": 2, "budget": 200, "vibe": "Culture", "group_size": 2, "currency": "USD"},
	"days": [
		{"day": 1, "summary": "Old Tokyo", "cluster": "Asakusa", "activities": [
			{"id": "day-1-senso-ji", "title": "Senso-ji Temple", "time": "09:00", "duration_min": 90, "est_cost_per_person": 0, "tags": ["culture"], "hidden_gem": false, "photo_hint": "temple gate"}
		]},
		{"day": 2, "summary": "Modern Tokyo", "cluster": "Shibuya", "activities": [
			{"id": "day-2-crossing", "title": "Shibuya Crossing", "time": "10:00", "duration_min": 60, "est_cost_per_person": 0, "tags": ["urban"], "hidden_gem": false, "photo_hint": "crossing"}
		]}
	],
	"estimated_total_cost": 150,
	"over_budget": false,
	"swap_suggestions": [],
	"eco_notes": ["Walk between sights", "Carry a reusable bottle"]
}`

func TestGenerateWithoutLLMUsesFallback(t *testing.T) {
	svc := NewItineraryService(nil, time.Second)

	itinerary, source := svc.Generate(context.Background(), testRequest())
	assert.Equal(t, SourceFallback, source)
	require.Len(t, itinerary.Days, 2)
	assert.Equal(t, "day-1-activity-1", itinerary.Days[0].Activities[0].ID)
}

func TestGenerateUsesAIResponse(t *testing.T) {
	llm := &fakeLLM{response: validAIResponse}
	svc := NewItineraryService(llm, time.Second)

	itinerary, source := svc.Generate(context.Background(), testRequest())
	assert.Equal(t, SourceAI, source)
	assert.Equal(t, 1, llm.calls)
	require.Len(t, itinerary.Days, 2)
	assert.Equal(t, "day-1-senso-ji", itinerary.Days[0].Activities[0].ID)
	assert.Equal(t, float64(150), itinerary.EstimatedTotalCost)
}

func TestGenerateFallsBackOnFailures(t *testing.T) {
	tests := []struct {
		name string
		llm  *fakeLLM
	}{
		{"transport error", &fakeLLM{err: errors.New("deadline exceeded")}},
		{"non-json response", &fakeLLM{response: "Sure! Here is your itinerary:"}},
		{"missing days array", &fakeLLM{response: `{"trip": {"destination": "Tokyo"}}`}},
		{"missing trip object", &fakeLLM{response: `{"days": []}`}},
		{"empty days array", &fakeLLM{response: `{"trip": {"destination": "Tokyo"}, "days": []}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewItineraryService(tt.llm, time.Second)

			itinerary, source := svc.Generate(context.Background(), testRequest())
			assert.Equal(t, SourceFallback, source)
			require.Len(t, itinerary.Days, 2)
			assert.Equal(t, "USD", itinerary.Trip.Currency)
		})
	}
}

func TestUserPromptSubstitution(t *testing.T) {
	prompt := userPrompt(testRequest())
	assert.Contains(t, prompt, "2-day itinerary for Tokyo")
	assert.Contains(t, prompt, "vibe Culture")
	assert.Contains(t, prompt, "budget 200 USD")
	assert.Contains(t, prompt, "group_size 2")
	assert.Contains(t, prompt, "start flexible")
}
