// Package api implements the REST client for the InternHub backend.
//
// The Client attaches the stored access token as a bearer header and,
// on a 401, performs exactly one transparent refresh-and-retry before
// surfacing the failure. A failed refresh clears the stored credential
// pair and fires the registered session-expired hook.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/internhub-dev/internhub/internal/client/repositories/tokens"
	"github.com/internhub-dev/internhub/internal/logging"
)

type Client struct {
	baseURL string
	http    *http.Client
	store   tokens.Repository
	log     logging.Logger

	logoutMu         sync.Mutex
	sessionLive      bool
	onSessionExpired func()
}

func NewClient(baseURL string, timeout time.Duration, store tokens.Repository, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		store:   store,
		log:     log,
	}
}

// OnSessionExpired registers fn to run when a refresh attempt fails and
// the session is forcibly ended. It fires at most once per expired
// session, even under concurrent failing requests. Must be set before
// the client is used.
func (c *Client) OnSessionExpired(fn func()) {
	c.onSessionExpired = fn
}

// do issues one request with bearer attachment and the one-shot 401
// refresh-and-retry. The body is a byte slice so the retry can replay
// it. retried marks the replay; a replayed request never refreshes
// again.
func (c *Client) do(ctx context.Context, method, path, contentType string, body []byte, retried bool) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	// stored credentials mark the session live, so a later expiry can
	// fire the logout hook (once); an observed empty store disarms it,
	// a voluntary logout is not an expiry
	if pair, _, err := c.store.Load(ctx); err == nil {
		if pair.Access != "" {
			req.Header.Set("Authorization", "Bearer "+pair.Access)
		}
		c.logoutMu.Lock()
		c.sessionLive = pair.Access != ""
		c.logoutMu.Unlock()
	}

	reqID := uuid.NewString()

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "api request failed", "id", reqID, "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	c.log.Debug(ctx, "api request", "id", reqID, "method", method, "path", path, "status", resp.StatusCode, "retry", retried)

	if resp.StatusCode == http.StatusUnauthorized && !retried {
		if err := c.refreshAccess(ctx); err != nil {
			c.forceLogout(ctx)
			return nil, ErrUnauthorized
		}
		return c.do(ctx, method, path, contentType, body, true)
	}

	if err := mapStatus(resp.StatusCode, data); err != nil {
		return nil, err
	}
	return data, nil
}

// mapStatus translates a response on the authenticated path into the
// package error taxonomy.
func mapStatus(status int, body []byte) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status == http.StatusForbidden:
		return ErrForbidden
	case status == http.StatusNotFound:
		return ErrNotFound
	case status >= 400 && status < 500:
		return newAPIError(status, body)
	default:
		return fmt.Errorf("%w: server returned %d", ErrUnavailable, status)
	}
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type refreshResponse struct {
	Access string `json:"access"`
}

// refreshAccess exchanges the stored refresh token for a new access
// token and persists it. The call bypasses do so it can never recurse
// into another refresh.
func (c *Client) refreshAccess(ctx context.Context) error {
	pair, _, err := c.store.Load(ctx)
	if err != nil {
		return err
	}
	if pair.Refresh == "" {
		return ErrUnauthorized
	}

	body, err := json.Marshal(refreshRequest{Refresh: pair.Refresh})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/token/refresh/", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("refresh rejected with status %d", resp.StatusCode)
	}

	var rr refreshResponse
	if err := json.Unmarshal(data, &rr); err != nil || rr.Access == "" {
		return fmt.Errorf("unexpected refresh response shape")
	}

	c.log.Info(ctx, "access token refreshed")
	return c.store.SaveAccess(ctx, rr.Access)
}

// forceLogout clears stored credentials and fires the session-expired
// hook. sessionLive flips under logoutMu, so concurrent refresh
// failures fire the hook exactly once per expired session even when the
// store itself is erroring. The flag is rearmed when do attaches
// credentials again after a re-login.
func (c *Client) forceLogout(ctx context.Context) {
	c.logoutMu.Lock()
	defer c.logoutMu.Unlock()

	if !c.sessionLive {
		return
	}
	c.sessionLive = false

	if err := c.store.Clear(ctx); err != nil {
		c.log.Error(ctx, "failed to clear stored credentials", "error", err)
	}
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}

// plain issues a request outside the authenticated path: no bearer
// header, no refresh-and-retry. Used by the token and register
// endpoints, where a 401 means bad credentials, not an expired session,
// and the backend's message must reach the caller.
func (c *Client) plain(ctx context.Context, method, path string, in, out any) error {
	var reader io.Reader
	if in != nil {
		body, err := json.Marshal(in)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return decode(data, out)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return newAPIError(resp.StatusCode, data)
	default:
		return fmt.Errorf("%w: server returned %d", ErrUnavailable, resp.StatusCode)
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	data, err := c.do(ctx, http.MethodGet, path, "", nil, false)
	if err != nil {
		return err
	}
	return decode(data, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	var contentType string
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return err
		}
		contentType = "application/json"
	}

	data, err := c.do(ctx, method, path, contentType, body, false)
	if err != nil {
		return err
	}
	return decode(data, out)
}

// decode unmarshals a response body into out. A shape mismatch is a
// recoverable error for the caller, not a crash.
func decode(data []byte, out any) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unexpected response shape: %w", err)
	}
	return nil
}
