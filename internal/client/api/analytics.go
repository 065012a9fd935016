package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/freshkeep/freshkeep-cli/internal/client/models"
)

// AnalyticsSummary fetches the aggregate view for a period such as "7d" or
// "30d"; empty means the server default of "7d".
func (c *Client) AnalyticsSummary(ctx context.Context, period string) (*models.AnalyticsSummaryResponse, error) {
	if period == "" {
		period = "7d"
	}
	q := url.Values{"period": []string{period}}

	var resp models.AnalyticsSummaryResponse
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/analytics/summary", Query: q}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Insights(ctx context.Context) (*models.InsightsResponse, error) {
	var resp models.InsightsResponse
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/analytics/insights"}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Achievements(ctx context.Context) (*models.AchievementsResponse, error) {
	var resp models.AchievementsResponse
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/analytics/achievements"}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
