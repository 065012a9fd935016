// Package services contains the application services of the FreshKeep CLI.
// This file defines the session facade: the named operations that combine
// backend auth calls with credential-store updates.
package services

import (
	"context"

	"github.com/freshkeep/freshkeep-cli/internal/client/api"
	"github.com/freshkeep/freshkeep-cli/internal/client/credentials"
	"github.com/freshkeep/freshkeep-cli/internal/client/models"
	"github.com/freshkeep/freshkeep-cli/internal/logging"
)

// AuthAPI is the slice of the API client the session facade consumes.
type AuthAPI interface {
	Signup(ctx context.Context, req api.SignupRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (*models.AuthResponse, error)
	Me(ctx context.Context) (*models.UserResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error)
}

// SessionService exposes signup, login, current-user, refresh, and logout.
//
// Contract:
//   - Signup/Login: persist the returned token pair when one is present;
//     return the full payload regardless.
//   - CurrentUser: authenticated probe, no token side effects.
//   - Refresh: externally drivable refresh with an explicit token; persists
//     the resulting pair when present.
//   - Logout: clears local credentials unconditionally; no server round trip
//     is required for logout to succeed.
type SessionService struct {
	api   AuthAPI
	creds credentials.Store
	log   logging.Logger
}

func NewSessionService(api AuthAPI, creds credentials.Store, log logging.Logger) *SessionService {
	return &SessionService{api: api, creds: creds, log: log.With("component", "session")}
}

// Signup registers a new account. An empty timezone defaults to "UTC".
func (s *SessionService) Signup(ctx context.Context, email, password, name, timezone string) (*models.AuthResponse, error) {
	if timezone == "" {
		timezone = "UTC"
	}

	resp, err := s.api.Signup(ctx, api.SignupRequest{
		Email:    email,
		Password: password,
		Name:     name,
		Timezone: timezone,
	})
	if err != nil {
		return nil, err
	}

	s.storePair(ctx, resp)
	return resp, nil
}

func (s *SessionService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	resp, err := s.api.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	s.storePair(ctx, resp)
	return resp, nil
}

func (s *SessionService) CurrentUser(ctx context.Context) (*models.UserResponse, error) {
	return s.api.Me(ctx)
}

func (s *SessionService) Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	resp, err := s.api.Refresh(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	s.storePair(ctx, resp)
	return resp, nil
}

// Logout clears local credentials. Local state is the source of truth for
// "logged out" on this client.
func (s *SessionService) Logout(ctx context.Context) {
	s.creds.ClearTokens(ctx)
	s.log.Info(ctx, "logged out, credentials cleared")
}

// IsAuthenticated reports whether an access token is currently retrievable.
func (s *SessionService) IsAuthenticated(ctx context.Context) bool {
	_, ok := s.creds.AccessToken(ctx)
	return ok
}

func (s *SessionService) storePair(ctx context.Context, resp *models.AuthResponse) {
	if resp.AccessToken == "" {
		return
	}
	s.creds.StoreTokens(ctx, resp.AccessToken, resp.RefreshToken)
}
