package models

type AnalyticsSummary struct {
	Period        string  `json:"period"`
	ItemsConsumed int     `json:"items_consumed"`
	ItemsWasted   int     `json:"items_wasted"`
	WasteRate     float64 `json:"waste_rate,omitempty"`
	MoneySaved    float64 `json:"money_saved,omitempty"`
	MoneyWasted   float64 `json:"money_wasted,omitempty"`
}

type AnalyticsSummaryResponse struct {
	Success bool              `json:"success"`
	Data    *AnalyticsSummary `json:"data"`
}

type Insight struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
	Kind  string `json:"kind,omitempty"`
}

type InsightsResponse struct {
	Success bool      `json:"success"`
	Data    []Insight `json:"data"`
}

type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Unlocked    bool   `json:"unlocked"`
	UnlockedAt  string `json:"unlocked_at,omitempty"`
}

type AchievementsResponse struct {
	Success bool          `json:"success"`
	Data    []Achievement `json:"data"`
}
