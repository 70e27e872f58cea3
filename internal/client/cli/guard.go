package cli

import (
	"github.com/internhub-dev/internhub/internal/client/models"
	"github.com/internhub-dev/internhub/internal/client/services"
)

// Decision is the outcome of evaluating a route guard against the
// current session snapshot.
type Decision int

const (
	// DecisionRender lets the route's view run.
	DecisionRender Decision = iota
	// DecisionPending shows a neutral indicator while the session is
	// still loading. Never a redirect: that would flicker during
	// startup restore.
	DecisionPending
	// DecisionRedirectLogin sends an anonymous user to the login view.
	DecisionRedirectLogin
	// DecisionRedirectHome sends a user whose role is outside the
	// allow-set to the default landing route. A navigation policy, not
	// an error.
	DecisionRedirectHome
)

// RequireAuth gates a route on having an authenticated session.
func RequireAuth(s services.Session) Decision {
	switch s.State {
	case services.StateLoading:
		return DecisionPending
	case services.StateAuthenticated:
		return DecisionRender
	default:
		return DecisionRedirectLogin
	}
}

// RequireRole gates a route on an authenticated session whose profile
// role is in the allow-set. A session without a cached profile renders:
// the role is unknown locally and the backend enforces permissions
// regardless.
func RequireRole(s services.Session, allowed ...models.Role) Decision {
	if d := RequireAuth(s); d != DecisionRender {
		return d
	}
	if s.Profile == nil {
		return DecisionRender
	}
	for _, r := range allowed {
		if s.Profile.Role == r {
			return DecisionRender
		}
	}
	return DecisionRedirectHome
}

// roleGuard binds an allow-set into a route guard.
func roleGuard(allowed ...models.Role) func(services.Session) Decision {
	return func(s services.Session) Decision {
		return RequireRole(s, allowed...)
	}
}
