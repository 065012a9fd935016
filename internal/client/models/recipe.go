package models

type Recipe struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Cuisine      string   `json:"cuisine,omitempty"`
	Diet         string   `json:"diet,omitempty"`
	PrepMinutes  int      `json:"prep_minutes,omitempty"`
	MatchScore   float64  `json:"match_score,omitempty"`
	UsesExpiring []string `json:"uses_expiring,omitempty"`
	Ingredients  []string `json:"ingredients,omitempty"`
	Instructions []string `json:"instructions,omitempty"`
}

type RecipeListResponse struct {
	Success bool     `json:"success"`
	Data    []Recipe `json:"data"`
}

type RecipeResponse struct {
	Success bool    `json:"success"`
	Data    *Recipe `json:"data"`
}

// RecipeSearch holds the search endpoint parameters; Ingredients is joined
// with commas on the wire.
type RecipeSearch struct {
	Ingredients []string
	Cuisine     string
	Diet        string
}
