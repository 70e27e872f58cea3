// Package services contains the application services of the InternHub
// client. This file defines the session controller: the in-memory
// session state machine plus login, logout, register, and profile
// operations.
package services

import (
	"context"
	"errors"
	"sync"

	"github.com/internhub-dev/internhub/internal/client/api"
	"github.com/internhub-dev/internhub/internal/client/models"
	"github.com/internhub-dev/internhub/internal/client/repositories/tokens"
	"github.com/internhub-dev/internhub/internal/client/token"
	"github.com/internhub-dev/internhub/internal/logging"
)

// State is the session state tag.
type State string

const (
	StateAnonymous     State = "anonymous"
	StateLoading       State = "loading"
	StateAuthenticated State = "authenticated"
)

// Session is an immutable snapshot of the session state. Claims and
// Profile are non-nil only when State is StateAuthenticated, and
// Profile may be nil even then (profile fetch is best-effort).
type Session struct {
	State   State
	Claims  *token.Claims
	Profile *models.Profile
}

// Result is the discriminated outcome of a controller operation that
// talks to the network. Error carries the backend-provided message when
// one exists.
type Result struct {
	OK    bool
	Error string
}

// AuthService is the session controller.
//
// Contract:
//   - Initialize: restore a session from stored credentials at startup.
//   - Login: authenticate, persist the credential pair, settle state.
//   - Logout: clear credentials and state; always succeeds, idempotent.
//   - Register: pass-through account creation; never touches session state.
//   - UpdateProfile: partial profile update; replaces the cached copy.
//   - RefreshProfile: re-fetch the cached profile, best-effort.
//   - Invalidate: drop the in-memory session after a forced logout.
//   - Session: snapshot of the current state.
//
// Operations that talk to the network return a Result instead of
// raising; the session layer never throws past its boundary.
type AuthService interface {
	Initialize(ctx context.Context)
	Login(ctx context.Context, username, password string) Result
	Logout(ctx context.Context)
	Register(ctx context.Context, reg models.Registration) Result
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) Result
	RefreshProfile(ctx context.Context)
	Invalidate()
	Session() Session
}

type authService struct {
	client api.AuthAPI
	store  tokens.Repository
	log    logging.Logger

	mu      sync.Mutex
	state   State
	claims  *token.Claims
	profile *models.Profile
	// epoch increments on every transition away from the current
	// session. Async completions check it before writing, so a result
	// that outlives its session is dropped instead of clobbering the
	// next one.
	epoch uint64
}

// NewAuthService constructs the session controller in the Anonymous
// state.
func NewAuthService(client api.AuthAPI, store tokens.Repository, log logging.Logger) AuthService {
	return &authService{
		client: client,
		store:  store,
		log:    log,
		state:  StateAnonymous,
	}
}

func (a *authService) Session() Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Session{State: a.state, Claims: a.claims, Profile: a.profile}
}

// Initialize restores the session from stored credentials. An absent or
// expired access token settles to Anonymous; otherwise claims are
// decoded and the profile fetched best-effort. A profile failure is
// logged, not fatal: the session still settles Authenticated.
func (a *authService) Initialize(ctx context.Context) {
	a.mu.Lock()
	a.state = StateLoading
	epoch := a.epoch
	a.mu.Unlock()

	pair, ok, err := a.store.Load(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to load stored credentials", "error", err)
	}
	if err != nil || !ok || token.IsExpired(pair.Access) {
		if err := a.store.Clear(ctx); err != nil {
			a.log.Error(ctx, "failed to clear stored credentials", "error", err)
		}
		a.settle(epoch, StateAnonymous, nil, nil)
		return
	}

	claims, err := token.Decode(pair.Access)
	if err != nil {
		// unreachable in practice: IsExpired already decoded it
		if err := a.store.Clear(ctx); err != nil {
			a.log.Error(ctx, "failed to clear stored credentials", "error", err)
		}
		a.settle(epoch, StateAnonymous, nil, nil)
		return
	}

	profile := a.fetchProfile(ctx)
	if a.settle(epoch, StateAuthenticated, claims, profile) {
		a.log.Info(ctx, "session restored", "user", claims.UserID)
	}
}

// Login authenticates against the backend. On success the credential
// pair is persisted, claims decoded, the profile fetched best-effort,
// and the session settles Authenticated. On failure no observable state
// changes and the Result carries the backend's message.
func (a *authService) Login(ctx context.Context, username, password string) Result {
	pair, err := a.client.ObtainToken(ctx, username, password)
	if err != nil {
		return Result{Error: userMessage(err, "login failed")}
	}

	claims, err := token.Decode(pair.Access)
	if err != nil {
		a.log.Error(ctx, "received undecodable access token", "error", err)
		return Result{Error: "login failed"}
	}

	if err := a.store.Save(ctx, pair); err != nil {
		a.log.Error(ctx, "failed to persist credentials", "error", err)
		_ = a.store.Clear(ctx)
		return Result{Error: "login failed"}
	}

	profile := a.fetchProfile(ctx)

	a.mu.Lock()
	a.epoch++
	a.state = StateAuthenticated
	a.claims = claims
	a.profile = profile
	a.mu.Unlock()

	a.log.Info(ctx, "login successful", "user", claims.UserID)
	return Result{OK: true}
}

// Logout clears the store and discards in-memory claims and profile.
// Synchronous and idempotent; a store error is logged, never surfaced.
func (a *authService) Logout(ctx context.Context) {
	a.mu.Lock()
	a.epoch++
	a.state = StateAnonymous
	a.claims = nil
	a.profile = nil
	a.mu.Unlock()

	if err := a.store.Clear(ctx); err != nil {
		a.log.Error(ctx, "failed to clear stored credentials", "error", err)
	}
}

// Invalidate drops the in-memory session without touching the store.
// It is the hook target for the API client's forced logout, which has
// already cleared the store.
func (a *authService) Invalidate() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.epoch++
	a.state = StateAnonymous
	a.claims = nil
	a.profile = nil
}

// Register creates an account. Session state is untouched regardless of
// outcome: registration does not imply login.
func (a *authService) Register(ctx context.Context, reg models.Registration) Result {
	if err := a.client.Register(ctx, reg); err != nil {
		return Result{Error: userMessage(err, "registration failed")}
	}
	return Result{OK: true}
}

// UpdateProfile applies a partial update and replaces the cached
// profile. A role change takes effect on the next navigation; guards
// read the cache only when evaluating one.
func (a *authService) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) Result {
	p, err := a.client.UpdateProfile(ctx, upd)
	if err != nil {
		return Result{Error: userMessage(err, "profile update failed")}
	}

	a.mu.Lock()
	if a.state == StateAuthenticated {
		a.profile = p
	}
	a.mu.Unlock()
	return Result{OK: true}
}

// RefreshProfile re-fetches the cached profile. Best-effort: failures
// are logged and the stale copy kept.
func (a *authService) RefreshProfile(ctx context.Context) {
	a.mu.Lock()
	if a.state != StateAuthenticated {
		a.mu.Unlock()
		return
	}
	epoch := a.epoch
	a.mu.Unlock()

	p := a.fetchProfile(ctx)
	if p == nil {
		return
	}

	a.mu.Lock()
	if a.epoch == epoch && a.state == StateAuthenticated {
		a.profile = p
	}
	a.mu.Unlock()
}

// fetchProfile is the best-effort profile fetch shared by Initialize
// and Login. Returns nil on failure.
func (a *authService) fetchProfile(ctx context.Context) *models.Profile {
	p, err := a.client.FetchProfile(ctx)
	if err != nil {
		a.log.Warn(ctx, "profile fetch failed", "error", err)
		return nil
	}
	return p
}

// settle writes the terminal state for the session that started at
// epoch. Returns false when the session has moved on (logout or a newer
// login) and the result was dropped.
func (a *authService) settle(epoch uint64, s State, c *token.Claims, p *models.Profile) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.epoch != epoch {
		return false
	}
	a.state = s
	a.claims = c
	a.profile = p
	return true
}

// userMessage extracts a message fit for display: the backend's own
// words for validation failures, a generic line otherwise.
func userMessage(err error, fallback string) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	if errors.Is(err, api.ErrUnavailable) {
		return "server unavailable, please try again later"
	}
	return fallback
}
