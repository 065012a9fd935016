package models

import "time"

type Notification struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind,omitempty"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type NotificationsResponse struct {
	Success bool           `json:"success"`
	Data    []Notification `json:"data"`
}

type NotificationCountResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Unread  int  `json:"unread"`
}
