package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/freshkeep/freshkeep-cli/internal/client/models"
)

// Recipes fetches recommendations driven by the current inventory. When
// prioritizeExpiring is set, the backend ranks recipes that consume
// soon-to-expire items first.
func (c *Client) Recipes(ctx context.Context, limit int, prioritizeExpiring bool) (*models.RecipeListResponse, error) {
	if limit == 0 {
		limit = 10
	}
	q := url.Values{
		"limit":               []string{strconv.Itoa(limit)},
		"prioritize_expiring": []string{strconv.FormatBool(prioritizeExpiring)},
	}

	var resp models.RecipeListResponse
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/recipes", Query: q}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) RecipeDetail(ctx context.Context, recipeID string) (*models.RecipeResponse, error) {
	var resp models.RecipeResponse
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/recipes/" + recipeID}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SearchRecipes(ctx context.Context, search models.RecipeSearch) (*models.RecipeListResponse, error) {
	q := url.Values{}
	if len(search.Ingredients) > 0 {
		q.Set("ingredients", strings.Join(search.Ingredients, ","))
	}
	if search.Cuisine != "" {
		q.Set("cuisine", search.Cuisine)
	}
	if search.Diet != "" {
		q.Set("diet", search.Diet)
	}

	var resp models.RecipeListResponse
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/recipes/search", Query: q}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
