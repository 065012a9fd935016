package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/freshkeep/freshkeep-cli/internal/client/models"
)

func (c *Client) Notifications(ctx context.Context, unreadOnly bool) (*models.NotificationsResponse, error) {
	q := url.Values{"unread_only": []string{strconv.FormatBool(unreadOnly)}}

	var resp models.NotificationsResponse
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/notifications", Query: q}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DismissNotification(ctx context.Context, notificationID string) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: "/api/notifications/" + notificationID + "/dismiss"}, nil)
}

func (c *Client) DismissAllNotifications(ctx context.Context) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: "/api/notifications/dismiss-all"}, nil)
}

func (c *Client) NotificationCount(ctx context.Context) (*models.NotificationCountResponse, error) {
	var resp models.NotificationCountResponse
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/notifications/count"}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
