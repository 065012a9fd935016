package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable marks transport-level failures: timeout, refused
	// connection, DNS. Never retried by the pipeline.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized matches any 401 surfaced to the caller, i.e. one that
	// the refresh-and-retry sequence did not absorb.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrSessionExpired marks a failed refresh exchange. Stored credentials
	// have already been cleared; the user must authenticate again.
	ErrSessionExpired = errors.New("session expired")
)

// Error carries a non-2xx response back to the caller with the raw body
// preserved. The pipeline does not interpret domain error payloads; Detail
// is a best-effort extraction of the backend's "detail" field for display.
type Error struct {
	Status int
	Body   []byte
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error: status %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("api error: status %d", e.Status)
}

func (e *Error) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}

func newError(status int, body []byte) *Error {
	apiErr := &Error{Status: status, Body: body}
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Detail != "" {
			apiErr.Detail = payload.Detail
		} else {
			apiErr.Detail = payload.Message
		}
	}
	return apiErr
}
