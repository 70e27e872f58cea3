// Package tokens persists the credential pair in the client-local
// database so a session survives process restarts.
package tokens

import (
	"context"

	"github.com/internhub-dev/internhub/internal/client/models"
)

// Storage keys for the two credentials. These are the only rows the
// repository manages.
const (
	accessKey  = "access_token"
	refreshKey = "refresh_token"
)

// Repository stores and retrieves the credential pair.
//
// Save is not transactional: a crash between the two writes can leave a
// mismatched pair. Load therefore reports ok only when both halves are
// present; a lone access or refresh token reads as logged-out.
type Repository interface {
	Save(ctx context.Context, pair models.TokenPair) error
	SaveAccess(ctx context.Context, access string) error
	Load(ctx context.Context) (models.TokenPair, bool, error)
	Clear(ctx context.Context) error
}
