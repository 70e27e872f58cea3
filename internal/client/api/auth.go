package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/internhub-dev/internhub/internal/client/models"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ObtainToken exchanges username/password for a credential pair at the
// token-issue endpoint. A 401 here carries the backend's message (bad
// credentials) as an *APIError; it never triggers a refresh.
func (c *Client) ObtainToken(ctx context.Context, username, password string) (models.TokenPair, error) {
	var pair models.TokenPair
	in := credentials{Username: username, Password: password}
	if err := c.plain(ctx, http.MethodPost, "/token/", in, &pair); err != nil {
		return models.TokenPair{}, err
	}
	if pair.Access == "" || pair.Refresh == "" {
		return models.TokenPair{}, fmt.Errorf("unexpected token response shape")
	}
	return pair, nil
}

// Register creates a new account. Registration does not imply login;
// the session is untouched regardless of outcome.
func (c *Client) Register(ctx context.Context, reg models.Registration) error {
	return c.plain(ctx, http.MethodPost, "/register/", reg, nil)
}

// FetchProfile retrieves the caller's profile. The role is validated at
// the boundary: an unknown role is a recoverable fetch error.
func (c *Client) FetchProfile(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	if err := c.getJSON(ctx, "/profile/", &p); err != nil {
		return nil, err
	}
	if !p.Role.Valid() {
		return nil, fmt.Errorf("unexpected profile shape: unknown role %q", p.Role)
	}
	return &p, nil
}

// UpdateProfile applies a partial update and returns the new record.
func (c *Client) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.Profile, error) {
	var p models.Profile
	if err := c.sendJSON(ctx, http.MethodPatch, "/profile/", upd, &p); err != nil {
		return nil, err
	}
	if !p.Role.Valid() {
		return nil, fmt.Errorf("unexpected profile shape: unknown role %q", p.Role)
	}
	return &p, nil
}
