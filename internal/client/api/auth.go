package api

import (
	"context"
	"net/http"

	"github.com/freshkeep/freshkeep-cli/internal/client/models"
)

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup registers a new account. Token persistence is the session
// facade's job; this method only performs the call.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/api/auth/signup", Body: req}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login authenticates an existing account.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/api/auth/login", Body: req}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me fetches the profile behind the stored access token. Used at startup to
// validate a pre-existing session.
func (c *Client) Me(ctx context.Context) (*models.UserResponse, error) {
	var resp models.UserResponse
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/auth/me"}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Refresh exchanges an explicitly supplied refresh token for a new pair.
// This is the externally callable variant; the pipeline's automatic recovery
// uses its own internal exchange.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	err := c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   refreshPath,
		Body:   refreshRequest{RefreshToken: refreshToken},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
