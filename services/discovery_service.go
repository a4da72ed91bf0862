package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/TripVibes/trip-vibes-backend/logger"
	"github.com/TripVibes/trip-vibes-backend/pkg/gemini"
	"github.com/TripVibes/trip-vibes-backend/types"
)

// DiscoveryService brokers the LLM for destination recommendations and
// activity enrichment. Both operations degrade to deterministic content when
// the LLM is unavailable or returns garbage.
type DiscoveryService struct {
	llm     gemini.ClientInterface
	timeout time.Duration
}

// NewDiscoveryService creates the service. A nil llm client routes every call
// to the deterministic fallbacks.
func NewDiscoveryService(llm gemini.ClientInterface, timeout time.Duration) *DiscoveryService {
	return &DiscoveryService{
		llm:     llm,
		timeout: timeout,
	}
}

const recommendationsSystemPrompt = `You are a travel advisor. Output VALID JSON ONLY with this schema:
{"destinations":[{ name:string, country:string, rating:number, overview:string, whyPerfectForYou:string, highlights:string[], personalizedActivities:string[], budgetInfo:{ dailyBudget:string, costBreakdown:string[] }, bestTimeToVisit:string, travelTips:string[], localInsights:string[] }]}
Rules: suggest 6 destinations matched to the traveler profile; explain why each fits this specific traveler; realistic daily budgets; return JSON only.`

// RecommendDestinations returns personalized destination suggestions for a
// traveler profile.
func (s *DiscoveryService) RecommendDestinations(ctx context.Context, prefs types.TravelPreferences) []types.Destination {
	if s.llm == nil {
		return fallbackDestinations(prefs)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt := fmt.Sprintf(
		"Suggest destinations for this traveler profile: budget %s, climate %s, travel style %s, group %s.",
		prefs.Budget, prefs.Climate, prefs.TravelStyle, prefs.GroupSize,
	)

	raw, err := s.llm.GenerateJSON(ctx, recommendationsSystemPrompt, prompt)
	if err != nil {
		logger.GetLogger().Warnw("Recommendation generation failed, using fallback", "error", err)
		return fallbackDestinations(prefs)
	}

	var parsed struct {
		Destinations []types.Destination `json:"destinations"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil || len(parsed.Destinations) == 0 {
		logger.GetLogger().Warnw("Recommendation response unusable, using fallback", "error", err)
		return fallbackDestinations(prefs)
	}

	return parsed.Destinations
}

const enrichmentSystemPrompt = `You are a travel content writer. Output VALID JSON ONLY with this schema:
{ title:string, description:string, detailedDescription:string, tips:string[], bestTimeToVisit:string, duration:string, difficulty:string, highlights:string[], localInsights:string[], budgetTips:string[] }
Rules: engaging but practical content; concrete local insights; return JSON only.`

// EnrichActivity returns detailed content for a single activity.
func (s *DiscoveryService) EnrichActivity(ctx context.Context, req types.EnrichActivityRequest) *types.EnrichedActivity {
	if s.llm == nil {
		return fallbackEnrichment(req)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt := fmt.Sprintf(
		"Create enriched content for this travel activity. Activity: %s. Destination: %s. Trip type: %s. Category: %s.",
		req.ActivityTitle, req.Destination, req.TripType, req.Category,
	)

	raw, err := s.llm.GenerateJSON(ctx, enrichmentSystemPrompt, prompt)
	if err != nil {
		logger.GetLogger().Warnw("Activity enrichment failed, using fallback", "error", err)
		return fallbackEnrichment(req)
	}

	var enriched types.EnrichedActivity
	if err := json.Unmarshal([]byte(raw), &enriched); err != nil || enriched.Title == "" {
		logger.GetLogger().Warnw("Enrichment response unusable, using fallback", "error", err)
		return fallbackEnrichment(req)
	}

	return &enriched
}

func fallbackDestinations(prefs types.TravelPreferences) []types.Destination {
	style := prefs.TravelStyle
	if style == "" {
		style = "curious"
	}

	return []types.Destination{
		{
			Name:             "Bali",
			Country:          "Indonesia",
			Rating:           4.7,
			Overview:         "A tropical paradise perfect for relaxation and cultural exploration.",
			WhyPerfectForYou: fmt.Sprintf("Ideal for %s travelers seeking warm-climate experiences.", style),
			Highlights:       []string{"Beautiful temples", "Rice terraces", "Beach relaxation", "Yoga retreats"},
			PersonalizedActivities: []string{
				"Temple hopping", "Cooking classes", "Beach time", "Spa treatments",
			},
			BudgetInfo: BudgetInfoForTier(prefs.Budget, "$25-40 per day", "$50-100 per day", "$150+ per day"),
			BestTimeToVisit: "April to October for dry season",
			TravelTips: []string{
				"Rent a scooter for easy transport",
				"Try local warungs for authentic food",
				"Respect temple dress codes",
			},
			LocalInsights: []string{
				"Ubud is perfect for culture lovers",
				"Canggu great for digital nomads",
				"Sanur ideal for families",
			},
		},
		{
			Name:             "Portugal",
			Country:          "Portugal",
			Rating:           4.6,
			Overview:         "Charming European destination with great weather and affordable prices.",
			WhyPerfectForYou: fmt.Sprintf("Perfect for %s budget travelers who love %s experiences.", orDefault(prefs.Budget, "any"), style),
			Highlights:       []string{"Historic cities", "Beautiful coastline", "Great food scene", "Friendly locals"},
			PersonalizedActivities: []string{
				"Porto wine tasting", "Lisbon tram tours", "Algarve beaches", "Sintra palaces",
			},
			BudgetInfo: BudgetInfoForTier(prefs.Budget, "$40-60 per day", "$60-120 per day", "$120+ per day"),
			BestTimeToVisit: "May to September for best weather",
			TravelTips: []string{
				"Use public transport in cities",
				"Try pasteis de nata everywhere",
				"Book accommodations early in summer",
			},
			LocalInsights: []string{
				"Porto is great for culture",
				"Algarve perfect for beaches",
				"Lisbon offers urban excitement",
			},
		},
	}
}

// BudgetInfoForTier picks a daily-budget string by tier and carries a fixed
// cost breakdown.
func BudgetInfoForTier(tier, budget, midRange, luxury string) types.BudgetInfo {
	daily := midRange
	switch tier {
	case "budget":
		daily = budget
	case "luxury":
		daily = luxury
	}
	return types.BudgetInfo{
		DailyBudget: daily,
		CostBreakdown: []string{
			"Accommodation: $10-80",
			"Food: $5-40",
			"Activities: $10-30",
			"Transport: $5-20",
		},
	}
}

func fallbackEnrichment(req types.EnrichActivityRequest) *types.EnrichedActivity {
	return &types.EnrichedActivity{
		Title:               req.ActivityTitle,
		Description:         fmt.Sprintf("%s in %s.", req.ActivityTitle, req.Destination),
		DetailedDescription: fmt.Sprintf("%s is a popular %s experience in %s, well suited to a %s trip.", req.ActivityTitle, req.Category, req.Destination, req.TripType),
		Tips: []string{
			"Arrive early to avoid crowds",
			"Check opening hours before you go",
			"Bring cash for small vendors",
		},
		BestTimeToVisit: "Morning",
		Duration:        "2-3 hours",
		Difficulty:      "Easy",
		Highlights:      []string{fmt.Sprintf("Authentic %s atmosphere", req.Destination)},
		LocalInsights:   []string{"Ask locals for their favorite nearby spots"},
		BudgetTips:      []string{"Look for combination tickets", "Many viewpoints nearby are free"},
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
