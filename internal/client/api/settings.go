package api

import (
	"context"
	"net/http"

	"github.com/freshkeep/freshkeep-cli/internal/client/models"
)

func (c *Client) Settings(ctx context.Context) (*models.SettingsResponse, error) {
	var resp models.SettingsResponse
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/settings"}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateSettings(ctx context.Context, settings models.Settings) (*models.SettingsResponse, error) {
	var resp models.SettingsResponse
	err := c.Do(ctx, Request{Method: http.MethodPut, Path: "/api/settings", Body: settings}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateNotificationSettings(ctx context.Context, prefs models.NotificationSettings) (*models.SettingsResponse, error) {
	var resp models.SettingsResponse
	err := c.Do(ctx, Request{Method: http.MethodPut, Path: "/api/settings/notifications", Body: prefs}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateFoodPreferences(ctx context.Context, prefs models.FoodPreferences) (*models.SettingsResponse, error) {
	var resp models.SettingsResponse
	err := c.Do(ctx, Request{Method: http.MethodPut, Path: "/api/settings/food", Body: prefs}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
