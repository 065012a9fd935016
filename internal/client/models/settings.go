package models

type NotificationSettings struct {
	ExpiryReminders  *bool `json:"expiry_reminders,omitempty"`
	ExpiryLeadDays   *int  `json:"expiry_lead_days,omitempty"`
	RecipeSuggestion *bool `json:"recipe_suggestions,omitempty"`
	WeeklySummary    *bool `json:"weekly_summary,omitempty"`
}

type FoodPreferences struct {
	Diet      string   `json:"diet,omitempty"`
	Allergies []string `json:"allergies,omitempty"`
	Dislikes  []string `json:"dislikes,omitempty"`
}

type Settings struct {
	Timezone      string                `json:"timezone,omitempty"`
	Notifications *NotificationSettings `json:"notifications,omitempty"`
	Food          *FoodPreferences      `json:"food,omitempty"`
}

type SettingsResponse struct {
	Success bool      `json:"success"`
	Data    *Settings `json:"data"`
}
