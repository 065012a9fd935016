package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/freshkeep/freshkeep-cli/internal/logging"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, backend *fakeBackend, store *memStore, opts ...Option) *Client {
	t.Helper()
	return New(backend.url(), store, logging.NewNopLogger(), opts...)
}

func TestDo_ValidTokenNeverTriggersRefresh(t *testing.T) {
	backend := newFakeBackend(t)
	store := &memStore{}
	store.access, store.refresh = backend.issuePair("user@example.com", time.Minute)

	client := newTestClient(t, backend, store)

	resp, err := client.Me(context.Background())
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Equal(t, "user@example.com", resp.Data.Email)
	require.EqualValues(t, 0, backend.refreshCalls.Load())
}

func TestDo_NoTokenDispatchesUnauthenticated(t *testing.T) {
	backend := newFakeBackend(t)
	store := &memStore{}
	client := newTestClient(t, backend, store)

	_, err := client.Me(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	require.EqualValues(t, 0, backend.refreshCalls.Load())
}

func TestDo_ExpiredTokenIsRefreshedAndRetriedOnce(t *testing.T) {
	backend := newFakeBackend(t)
	store := &memStore{}
	// Access token already expired server-side; refresh token still good.
	store.access, store.refresh = backend.issuePair("user@example.com", -time.Minute)
	staleAccess := store.access

	client := newTestClient(t, backend, store)

	resp, err := client.Me(context.Background())
	require.NoError(t, err)
	require.True(t, resp.Success)

	// Exactly one exchange, exactly one re-dispatch.
	require.EqualValues(t, 1, backend.refreshCalls.Load())
	require.EqualValues(t, 2, backend.meCalls.Load())

	// The new pair was persisted.
	access, refresh, clears := store.snapshot()
	require.NotEqual(t, staleAccess, access)
	require.NotEmpty(t, refresh)
	require.Zero(t, clears)
}

func TestDo_RefreshFailureClearsTokensAndSurfacesSessionExpired(t *testing.T) {
	backend := newFakeBackend(t)
	backend.refreshRejects = true

	store := &memStore{}
	store.access, store.refresh = backend.issuePair("user@example.com", -time.Minute)

	client := newTestClient(t, backend, store)

	_, err := client.Me(context.Background())
	require.ErrorIs(t, err, ErrSessionExpired)
	// The refresh failure, not the original 401, is what surfaces.
	require.NotErrorIs(t, err, ErrUnauthorized)

	access, refresh, clears := store.snapshot()
	require.Empty(t, access)
	require.Empty(t, refresh)
	require.Equal(t, 1, clears)
}

func TestDo_SecondUnauthorizedAfterRetryPropagates(t *testing.T) {
	// Backend rejects the access token no matter how fresh it is.
	var meCalls, refreshCalls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/refresh":
			refreshCalls++
			writeJSON(w, http.StatusOK, map[string]any{
				"success":       true,
				"access_token":  "fresh-access",
				"refresh_token": "fresh-refresh",
			})
		default:
			meCalls++
			writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": "nope"})
		}
	}))
	t.Cleanup(srv.Close)

	store := &memStore{access: "stale", refresh: "still-valid"}
	client := New(srv.URL, store, logging.NewNopLogger())

	_, err := client.Me(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)

	require.Equal(t, 1, refreshCalls)
	require.Equal(t, 2, meCalls)
}

func TestDo_UnauthorizedWithoutRefreshTokenPropagatesOriginal(t *testing.T) {
	backend := newFakeBackend(t)
	store := &memStore{access: "expired-and-alone"}

	client := newTestClient(t, backend, store)

	_, err := client.Me(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	require.EqualValues(t, 0, backend.refreshCalls.Load())

	// Tokens are not cleared for a plain 401 without recovery attempt.
	_, _, clears := store.snapshot()
	require.Zero(t, clears)
}

func TestDo_TransportErrorIsNotRetried(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from now on

	store := &memStore{access: "a", refresh: "r"}
	client := New(srv.URL, store, logging.NewNopLogger())

	_, err := client.Me(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)

	_, _, clears := store.snapshot()
	require.Zero(t, clears)
}

func TestDo_TimeoutSurfacesAsTransportError(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	t.Cleanup(func() { close(block); srv.Close() })

	store := &memStore{}
	client := New(srv.URL, store, logging.NewNopLogger(), WithTimeout(50*time.Millisecond))

	_, err := client.Me(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestDo_OtherStatusesPassThroughUninterpreted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]any{"detail": "item already exists"})
	}))
	t.Cleanup(srv.Close)

	client := New(srv.URL, &memStore{}, logging.NewNopLogger())

	err := client.Do(context.Background(), Request{Method: http.MethodPost, Path: "/api/inventory"}, nil)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusConflict, apiErr.Status)
	require.Equal(t, "item already exists", apiErr.Detail)
	require.Contains(t, string(apiErr.Body), "item already exists")
}

func TestDo_ConcurrentUnauthorizedShareOneRefresh(t *testing.T) {
	backend := newFakeBackend(t)
	backend.refreshDelay = 150 * time.Millisecond

	store := &memStore{}
	store.access, store.refresh = backend.issuePair("user@example.com", -time.Minute)

	client := newTestClient(t, backend, store)

	const n = 5
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = client.Me(context.Background())
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
	}
	require.EqualValues(t, 1, backend.refreshCalls.Load())
}
