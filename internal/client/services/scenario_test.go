package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/internhub-dev/internhub/internal/client/api"
	"github.com/internhub-dev/internhub/internal/client/models"
	"github.com/stretchr/testify/require"
)

// End-to-end session flow against a fake backend: real api.Client, real
// SQLite store, real controller.

func newFakeBackend(t *testing.T, accessTok string) http.Handler {
	t.Helper()

	r := chi.NewRouter()
	r.Post("/token/", func(w http.ResponseWriter, req *http.Request) {
		var creds struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(req.Body).Decode(&creds)

		w.Header().Set("Content-Type", "application/json")
		if creds.Username != "alice" || creds.Password != "correct" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"detail": "No active account found with the given credentials",
			})
			return
		}
		_ = json.NewEncoder(w).Encode(models.TokenPair{Access: accessTok, Refresh: "refresh-1"})
	})
	r.Get("/profile/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if !strings.HasPrefix(req.Header.Get("Authorization"), "Bearer ") {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "credentials were not provided"})
			return
		}
		_ = json.NewEncoder(w).Encode(models.Profile{
			ID:   1,
			User: models.User{ID: 42, Username: "alice"},
			Role: models.RoleStudent,
		})
	})
	return r
}

func TestScenario_LoginThenProfile(t *testing.T) {
	ctx := context.Background()

	accessTok := accessToken(t, 42, time.Hour)
	srv := httptest.NewServer(newFakeBackend(t, accessTok))
	t.Cleanup(srv.Close)

	store := setupStore(t)
	client := api.NewClient(srv.URL, 5*time.Second, store, testLogger())
	svc := NewAuthService(client, store, testLogger())
	client.OnSessionExpired(svc.Invalidate)

	// wrong password: failure result with the backend's message, no
	// observable state change
	res := svc.Login(ctx, "alice", "wrong")
	require.False(t, res.OK)
	require.Equal(t, "No active account found with the given credentials", res.Error)
	require.Equal(t, StateAnonymous, svc.Session().State)
	_, ok, err := store.Load(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	// correct password: authenticated session whose profile reflects
	// the logged-in identity
	res = svc.Login(ctx, "alice", "correct")
	require.True(t, res.OK)

	s := svc.Session()
	require.Equal(t, StateAuthenticated, s.State)
	require.Equal(t, int64(42), s.Claims.UserID)
	require.NotNil(t, s.Profile)
	require.Equal(t, "alice", s.Profile.User.Username)

	pair, ok, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, accessTok, pair.Access)
}
