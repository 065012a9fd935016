// Package models defines the payload types exchanged with the FreshKeep
// backend. Shapes follow the REST API; fields the client never reads are
// omitted rather than guessed.
package models

import "time"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Timezone  string    `json:"timezone,omitempty"`
	FamilyID  string    `json:"family_id,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// AuthResponse is the shape returned by signup, login, and refresh. The
// token fields are present only when the backend issued a new pair.
type AuthResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message,omitempty"`
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
	User         *User  `json:"user,omitempty"`
}

// UserResponse is the shape returned by the current-user endpoint.
type UserResponse struct {
	Success bool  `json:"success"`
	Data    *User `json:"data"`
}
