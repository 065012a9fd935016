package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/freshkeep/freshkeep-cli/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory credentials.Store with call accounting.
type memStore struct {
	mu         sync.Mutex
	access     string
	refresh    string
	clearCalls int
}

func (m *memStore) AccessToken(ctx context.Context) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.access, m.access != ""
}

func (m *memStore) RefreshToken(ctx context.Context) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refresh, m.refresh != ""
}

func (m *memStore) StoreTokens(ctx context.Context, accessToken, refreshToken string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if accessToken != "" {
		m.access = accessToken
	}
	if refreshToken != "" {
		m.refresh = refreshToken
	}
}

func (m *memStore) ClearTokens(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.access, m.refresh = "", ""
	m.clearCalls++
}

func (m *memStore) snapshot() (access, refresh string, clears int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.access, m.refresh, m.clearCalls
}

// fakeBackend is an httptest server that issues and verifies real HS256
// token pairs, so expiry-driven 401s are exercised end to end.
type fakeBackend struct {
	t      *testing.T
	secret []byte
	srv    *httptest.Server

	refreshCalls atomic.Int64
	meCalls      atomic.Int64
	refreshDelay time.Duration
	// When set, the refresh endpoint rejects every exchange.
	refreshRejects bool
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	b := &fakeBackend{t: t, secret: []byte("test-signing-secret")}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", b.handleLogin)
	mux.HandleFunc("POST /api/auth/refresh", b.handleRefresh)
	mux.HandleFunc("GET /api/auth/me", b.handleMe)

	b.srv = httptest.NewServer(mux)
	t.Cleanup(b.srv.Close)
	return b
}

func (b *fakeBackend) url() string { return b.srv.URL }

// issuePair mints an access/refresh pair for sub with the given access TTL.
func (b *fakeBackend) issuePair(sub string, accessTTL time.Duration) (string, string) {
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(accessTTL).Unix(),
	}).SignedString(b.secret)
	require.NoError(b.t, err)

	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"typ": "refresh",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(b.secret)
	require.NoError(b.t, err)

	return access, refresh
}

func (b *fakeBackend) verify(token string) (*jwt.Token, error) {
	return jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return b.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
}

func (b *fakeBackend) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "malformed credentials"})
		return
	}
	if req.Password != "correct-horse" {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": "invalid email or password"})
		return
	}

	access, refresh := b.issuePair(req.Email, time.Minute)
	writeJSON(w, http.StatusOK, models.AuthResponse{
		Success:      true,
		AccessToken:  access,
		RefreshToken: refresh,
		User:         &models.User{ID: "u1", Email: req.Email, Name: "Tester"},
	})
}

func (b *fakeBackend) handleRefresh(w http.ResponseWriter, r *http.Request) {
	b.refreshCalls.Add(1)
	if b.refreshDelay > 0 {
		time.Sleep(b.refreshDelay)
	}

	if r.Header.Get("Authorization") != "" {
		// The refresh exchange must be unauthenticated.
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "unexpected authorization header"})
		return
	}

	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "malformed body"})
		return
	}

	if b.refreshRejects {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": "refresh token revoked"})
		return
	}

	tok, err := b.verify(req.RefreshToken)
	if err != nil || !tok.Valid {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": "invalid refresh token"})
		return
	}

	sub, _ := tok.Claims.GetSubject()
	access, refresh := b.issuePair(sub, time.Minute)
	writeJSON(w, http.StatusOK, models.AuthResponse{
		Success:      true,
		AccessToken:  access,
		RefreshToken: refresh,
	})
}

func (b *fakeBackend) handleMe(w http.ResponseWriter, r *http.Request) {
	b.meCalls.Add(1)

	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": "not authenticated"})
		return
	}

	tok, err := b.verify(strings.TrimPrefix(auth, "Bearer "))
	if err != nil || !tok.Valid {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": "token expired"})
		return
	}

	sub, _ := tok.Claims.GetSubject()
	writeJSON(w, http.StatusOK, models.UserResponse{
		Success: true,
		Data:    &models.User{ID: "u1", Email: sub, Name: "Tester"},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
