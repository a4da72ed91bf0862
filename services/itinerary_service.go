package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/TripVibes/trip-vibes-backend/logger"
	"github.com/TripVibes/trip-vibes-backend/models"
	"github.com/TripVibes/trip-vibes-backend/pkg/gemini"
	"github.com/TripVibes/trip-vibes-backend/types"
)

// Generation sources reported in logs and metrics.
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

var itineraryGenerations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "itinerary_generation_total",
		Help: "Itinerary generations by source (ai or fallback).",
	},
	[]string{"source"},
)

// systemPrompt pins the model to the exact itinerary JSON schema. Field names
// here must stay in sync with types.Itinerary.
const systemPrompt = `You are a budget travel planner for Gen Z. Output VALID JSON ONLY with this schema:
{
  trip:{ destination:string, days:number, budget:number, vibe:string, group_size:number, currency:'USD' },
  days:[{ day:number, summary:string, cluster:string, activities:[{ id:string, title:string, time:string, duration_min:number, est_cost_per_person:number, tags:string[], hidden_gem:boolean, photo_hint:string }] }],
  estimated_total_cost:number,
  over_budget:boolean,
  swap_suggestions:[{ replace_activity_id:string, with:string, est_saving:number }],
  eco_notes:string[]
}
Rules: keep estimated_total_cost <= budget (hard cap) whenever possible; 3-5 activities/day; cluster by walkable areas; prefer public transit; tailor to vibe (Adventure/Chill/Party/Culture/Spontaneous); at least 1 hidden gem per day; short titles (<50 chars); stable slug-like ids; costs per person; include 2-3 eco_notes. If over budget, set over_budget true and add swap_suggestions. Return JSON only.`

// ItineraryService produces itineraries, preferring the LLM and falling back
// to the deterministic generator on any failure. Generate never fails for
// validated input.
type ItineraryService struct {
	llm     gemini.ClientInterface
	timeout time.Duration
}

// NewItineraryService creates the service. A nil llm client disables the AI
// path entirely; every request is served by the fallback generator.
func NewItineraryService(llm gemini.ClientInterface, timeout time.Duration) *ItineraryService {
	return &ItineraryService{
		llm:     llm,
		timeout: timeout,
	}
}

// Generate returns an itinerary for a validated request along with the source
// that produced it. Timeouts, transport errors, malformed JSON and schema
// violations are all one failure mode: the fallback generator takes over.
func (s *ItineraryService) Generate(ctx context.Context, req types.TripRequest) (*types.Itinerary, string) {
	log := logger.GetLogger()

	if s.llm != nil {
		itinerary, err := s.generateWithAI(ctx, req)
		if err == nil {
			itineraryGenerations.WithLabelValues(SourceAI).Inc()
			return itinerary, SourceAI
		}
		log.Warnw("AI generation failed, using fallback",
			"destination", req.Destination,
			"error", err,
		)
	} else {
		log.Debugw("LLM not configured, using fallback generator")
	}

	itineraryGenerations.WithLabelValues(SourceFallback).Inc()
	return models.GenerateFallbackItinerary(req.Destination, req.Days, req.Budget, req.Vibe, req.GroupSize), SourceFallback
}

func (s *ItineraryService) generateWithAI(ctx context.Context, req types.TripRequest) (*types.Itinerary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.llm.GenerateJSON(ctx, systemPrompt, userPrompt(req))
	if err != nil {
		return nil, err
	}

	// The model is untrusted input: the response must at least carry the
	// trip object and the days array before it is accepted.
	var probe struct {
		Trip json.RawMessage `json:"trip"`
		Days json.RawMessage `json:"days"`
	}
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	if probe.Trip == nil || probe.Days == nil {
		return nil, fmt.Errorf("response missing trip or days")
	}

	var itinerary types.Itinerary
	if err := json.Unmarshal([]byte(raw), &itinerary); err != nil {
		return nil, fmt.Errorf("parse itinerary: %w", err)
	}
	if len(itinerary.Days) == 0 {
		return nil, fmt.Errorf("response has no day plans")
	}

	return &itinerary, nil
}

func userPrompt(req types.TripRequest) string {
	return fmt.Sprintf(
		"Create a %d-day itinerary for %s with vibe %s, budget %s USD, group_size %d, start %s. Use the exact JSON schema from the system prompt and output JSON only.",
		req.Days,
		req.Destination,
		req.Vibe,
		strconv.FormatFloat(req.Budget, 'f', -1, 64),
		req.GroupSize,
		req.StartDate,
	)
}
