package types

// Itinerary is the generated day-by-day plan. The AI path and the fallback
// generator both produce this shape; the JSON field names are part of the
// public API and must not change.
type Itinerary struct {
	Trip               TripSummary      `json:"trip"`
	Days               []DayPlan        `json:"days"`
	EstimatedTotalCost float64          `json:"estimated_total_cost"`
	OverBudget         bool             `json:"over_budget"`
	SwapSuggestions    []SwapSuggestion `json:"swap_suggestions"`
	EcoNotes           []string         `json:"eco_notes"`
}

// TripSummary echoes the trip inputs inside the itinerary document.
type TripSummary struct {
	Destination string  `json:"destination"`
	Days        int     `json:"days"`
	Budget      float64 `json:"budget"`
	Vibe        string  `json:"vibe"`
	GroupSize   int     `json:"group_size"`
	Currency    string  `json:"currency"`
}

// DayPlan holds one day's activities, grouped by a walkable cluster.
type DayPlan struct {
	Day        int        `json:"day"`
	Summary    string     `json:"summary"`
	Cluster    string     `json:"cluster"`
	Activities []Activity `json:"activities"`
}

// Activity is a single itinerary entry. IDs are stable slugs of the form
// day-<day>-activity-<slot> so votes can reference them.
type Activity struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Time             string   `json:"time"`
	DurationMin      int      `json:"duration_min"`
	EstCostPerPerson float64  `json:"est_cost_per_person"`
	Tags             []string `json:"tags"`
	HiddenGem        bool     `json:"hidden_gem"`
	PhotoHint        string   `json:"photo_hint"`
}

// SwapSuggestion proposes replacing an activity to pull an over-budget
// itinerary back toward the target.
type SwapSuggestion struct {
	ReplaceActivityID string  `json:"replace_activity_id"`
	With              string  `json:"with"`
	EstSaving         float64 `json:"est_saving"`
}
