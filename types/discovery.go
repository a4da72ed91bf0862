package types

// TravelPreferences describe a traveler profile for destination
// recommendations.
type TravelPreferences struct {
	Budget      string `json:"budget"`
	Climate     string `json:"climate"`
	TravelStyle string `json:"travelStyle"`
	GroupSize   string `json:"groupSize"`
}

// BudgetInfo summarizes expected daily spend for a recommended destination.
type BudgetInfo struct {
	DailyBudget   string   `json:"dailyBudget"`
	CostBreakdown []string `json:"costBreakdown"`
}

// Destination is a single personalized recommendation.
type Destination struct {
	Name                   string     `json:"name"`
	Country                string     `json:"country"`
	Rating                 float64    `json:"rating"`
	Overview               string     `json:"overview"`
	WhyPerfectForYou       string     `json:"whyPerfectForYou"`
	Highlights             []string   `json:"highlights"`
	PersonalizedActivities []string   `json:"personalizedActivities"`
	BudgetInfo             BudgetInfo `json:"budgetInfo"`
	BestTimeToVisit        string     `json:"bestTimeToVisit"`
	TravelTips             []string   `json:"travelTips"`
	LocalInsights          []string   `json:"localInsights"`
}

// EnrichActivityRequest asks for richer content around one activity.
type EnrichActivityRequest struct {
	ActivityTitle string `json:"activityTitle"`
	Destination   string `json:"destination"`
	TripType      string `json:"tripType"`
	Category      string `json:"category"`
}

// EnrichedActivity is the detailed content for a single activity.
type EnrichedActivity struct {
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	DetailedDescription string   `json:"detailedDescription"`
	Tips                []string `json:"tips"`
	BestTimeToVisit     string   `json:"bestTimeToVisit"`
	Duration            string   `json:"duration"`
	Difficulty          string   `json:"difficulty"`
	Highlights          []string `json:"highlights"`
	LocalInsights       []string `json:"localInsights"`
	BudgetTips          []string `json:"budgetTips"`
}
