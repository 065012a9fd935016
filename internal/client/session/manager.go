// Package session derives the client's authentication state. Nothing here
// is persisted: the state is recomputed at startup by probing the credential
// store and validating any found token against the current-user endpoint.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/freshkeep/freshkeep-cli/internal/client/api"
	"github.com/freshkeep/freshkeep-cli/internal/client/models"
	"github.com/freshkeep/freshkeep-cli/internal/logging"
)

type State int

const (
	// StateUnknown holds until the startup probe completes.
	StateUnknown State = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Facade is the slice of the session service the manager consumes.
type Facade interface {
	Signup(ctx context.Context, email, password, name, timezone string) (*models.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	CurrentUser(ctx context.Context) (*models.UserResponse, error)
	Logout(ctx context.Context)
	IsAuthenticated(ctx context.Context) bool
}

// Manager is the session state machine. There is no terminal state; it
// cycles between authenticated and unauthenticated for the life of the
// install.
type Manager struct {
	mu      sync.Mutex
	facade  Facade
	state   State
	user    *models.User
	log     logging.Logger
}

func NewManager(facade Facade, log logging.Logger) *Manager {
	return &Manager{facade: facade, state: StateUnknown, log: log.With("component", "session-state")}
}

// Bootstrap resolves the initial Unknown state: no stored token means
// unauthenticated; a stored token is validated against the backend, and any
// validation failure (including a terminal refresh failure) also lands on
// unauthenticated.
func (m *Manager) Bootstrap(ctx context.Context) State {
	if !m.facade.IsAuthenticated(ctx) {
		return m.transition(ctx, StateUnauthenticated, nil)
	}

	resp, err := m.facade.CurrentUser(ctx)
	if err != nil {
		m.log.Info(ctx, "stored session rejected", "error", err)
		return m.transition(ctx, StateUnauthenticated, nil)
	}
	if !resp.Success || resp.Data == nil {
		return m.transition(ctx, StateUnauthenticated, nil)
	}

	return m.transition(ctx, StateAuthenticated, resp.Data)
}

func (m *Manager) Login(ctx context.Context, email, password string) error {
	resp, err := m.facade.Login(ctx, email, password)
	if err != nil {
		m.transition(ctx, StateUnauthenticated, nil)
		return err
	}
	if !resp.Success {
		m.transition(ctx, StateUnauthenticated, nil)
		if resp.Message != "" {
			return errors.New(resp.Message)
		}
		return errors.New("login failed")
	}

	m.transition(ctx, StateAuthenticated, resp.User)
	return nil
}

func (m *Manager) Signup(ctx context.Context, email, password, name, timezone string) error {
	resp, err := m.facade.Signup(ctx, email, password, name, timezone)
	if err != nil {
		m.transition(ctx, StateUnauthenticated, nil)
		return err
	}
	if !resp.Success {
		m.transition(ctx, StateUnauthenticated, nil)
		if resp.Message != "" {
			return errors.New(resp.Message)
		}
		return errors.New("signup failed")
	}

	m.transition(ctx, StateAuthenticated, resp.User)
	return nil
}

func (m *Manager) Logout(ctx context.Context) {
	m.facade.Logout(ctx)
	m.transition(ctx, StateUnauthenticated, nil)
}

// Observe inspects an error from any authenticated call and downgrades the
// session when it is a terminal authentication failure (the pipeline has
// already purged stored credentials by then).
func (m *Manager) Observe(ctx context.Context, err error) {
	if errors.Is(err, api.ErrSessionExpired) {
		m.log.Info(ctx, "session expired, re-authentication required")
		m.transition(ctx, StateUnauthenticated, nil)
	}
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// User returns the profile fetched on bootstrap or login; nil while not
// authenticated.
func (m *Manager) User() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

func (m *Manager) transition(ctx context.Context, next State, user *models.User) State {
	m.mu.Lock()
	prev := m.state
	m.state = next
	m.user = user
	m.mu.Unlock()

	if prev != next {
		m.log.Debug(ctx, "session state changed", "from", prev.String(), "to", next.String())
	}
	return next
}
