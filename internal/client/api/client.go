package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/freshkeep/freshkeep-cli/internal/client/credentials"
	"github.com/freshkeep/freshkeep-cli/internal/client/models"
	"github.com/freshkeep/freshkeep-cli/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// DefaultTimeout is the per-request budget, matching the mobile client.
const DefaultTimeout = 30 * time.Second

const refreshPath = "/api/auth/refresh"

// Request is an immutable description of one backend call. The retry
// bookkeeping lives in the pipeline's dispatch loop, never on the request,
// so a descriptor can be re-dispatched safely.
type Request struct {
	Method string
	Path   string
	Query  url.Values

	// Body is JSON-encoded when non-nil. For non-JSON payloads set RawBody
	// and ContentType instead.
	Body        any
	RawBody     []byte
	ContentType string
}

// Client is the authenticated request pipeline plus the typed endpoint
// methods built on it.
type Client struct {
	baseURL string
	http    *http.Client
	creds   credentials.Store
	log     logging.Logger

	// Coalesces concurrent refresh exchanges: when several in-flight
	// requests hit 401 together, only one exchange runs and all of them
	// reuse its outcome.
	refreshGroup singleflight.Group
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout overrides the per-request budget.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient substitutes the underlying HTTP client (tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New builds a Client for the backend at baseURL. Tokens are read from and
// written to creds; the Client never owns credential state itself.
func New(baseURL string, creds credentials.Store, log logging.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
		creds:   creds,
		log:     log.With("component", "api"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do executes req against the backend and decodes a 2xx JSON response into
// out (which may be nil).
//
// Outcomes:
//   - transport failure: error matching ErrUnavailable, never retried;
//   - first 401 with a stored refresh token: one refresh exchange and one
//     re-dispatch; invisible here when recovery succeeds;
//   - failed refresh exchange: stored tokens cleared, error matching
//     ErrSessionExpired;
//   - any other non-2xx, or a 401 after the retry: *Error with the raw body.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	requestID := uuid.NewString()

	for attempt := 0; ; attempt++ {
		err := c.dispatch(ctx, req, out, requestID, true)

		var apiErr *Error
		if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized || attempt > 0 {
			return err
		}

		if _, ok := c.creds.RefreshToken(ctx); !ok {
			// Nothing to recover with; the original rejection stands.
			return err
		}

		if refreshErr := c.refreshCredentials(ctx); refreshErr != nil {
			c.creds.ClearTokens(ctx)
			c.log.Warn(ctx, "token refresh failed, session terminated",
				"request_id", requestID, "error", refreshErr)
			return fmt.Errorf("%w: %v", ErrSessionExpired, refreshErr)
		}

		c.log.Debug(ctx, "access token refreshed, retrying request",
			"request_id", requestID, "method", req.Method, "path", req.Path)
	}
}

// dispatch performs a single attempt: build, send, decode. Non-2xx statuses
// come back as *Error.
func (c *Client) dispatch(ctx context.Context, req Request, out any, requestID string, authenticated bool) error {
	httpReq, err := c.newHTTPRequest(ctx, req)
	if err != nil {
		return err
	}
	httpReq.Header.Set("X-Request-Id", requestID)

	if authenticated {
		// The token is re-read on every attempt, so a retry after refresh
		// automatically carries the new credential.
		if token, ok := c.creds.AccessToken(ctx); ok {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, req.Method, req.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp.StatusCode, body)
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", req.Method, req.Path, err)
	}
	return nil
}

func (c *Client) newHTTPRequest(ctx context.Context, req Request) (*http.Request, error) {
	u := c.baseURL + req.Path
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}

	var body io.Reader
	contentType := req.ContentType

	switch {
	case req.RawBody != nil:
		body = bytes.NewReader(req.RawBody)
	case req.Body != nil:
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s request: %w", req.Method, req.Path, err)
		}
		body = bytes.NewReader(encoded)
		if contentType == "" {
			contentType = "application/json"
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", req.Method, req.Path, err)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	return httpReq, nil
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// refreshCredentials exchanges the stored refresh token for a new pair and
// persists it. The exchange is unauthenticated and never itself retried.
// Concurrent callers share a single exchange via the singleflight group, and
// the token is read inside the critical section so a caller queued behind a
// sibling's successful exchange picks up the rotated token instead of
// re-spending the consumed one.
func (c *Client) refreshCredentials(ctx context.Context) error {
	_, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		refreshToken, ok := c.creds.RefreshToken(ctx)
		if !ok {
			return nil, errors.New("no refresh token stored")
		}

		var resp models.AuthResponse
		req := Request{
			Method: http.MethodPost,
			Path:   refreshPath,
			Body:   refreshRequest{RefreshToken: refreshToken},
		}
		if err := c.dispatch(ctx, req, &resp, uuid.NewString(), false); err != nil {
			return nil, err
		}
		if resp.AccessToken == "" {
			return nil, fmt.Errorf("refresh response carried no access token")
		}
		c.creds.StoreTokens(ctx, resp.AccessToken, resp.RefreshToken)
		return nil, nil
	})
	return err
}
