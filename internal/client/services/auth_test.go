package services

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/internhub-dev/internhub/internal/client/api"
	"github.com/internhub-dev/internhub/internal/client/models"
	"github.com/internhub-dev/internhub/internal/client/repositories/tokens"
	"github.com/internhub-dev/internhub/internal/client/token"
	"github.com/internhub-dev/internhub/internal/logging"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupStore(t *testing.T) tokens.Repository {
	t.Helper()
	db, err := sql.Open("sqlite", "file:authsvc?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE tokens (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`)
	require.NoError(t, err)
	return tokens.NewSQLiteRepository(db)
}

func accessToken(t *testing.T, userID int64, ttl time.Duration) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, token.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	})
	s, err := tok.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

func studentProfile() *models.Profile {
	return &models.Profile{
		ID:   1,
		User: models.User{ID: 42, Username: "alice"},
		Role: models.RoleStudent,
	}
}

// ---- fake api client ----

type fakeAuthAPI struct {
	ObtainTokenRet models.TokenPair
	ObtainTokenErr error

	RegisterErr error

	FetchProfileRet *models.Profile
	FetchProfileErr error
	// when non-nil, FetchProfile blocks until the channel is closed
	FetchProfileGate chan struct{}

	UpdateProfileRet *models.Profile
	UpdateProfileErr error

	LastObtainUser string
	LastObtainPass string
	LastRegister   models.Registration
	FetchCalls     int
}

func (f *fakeAuthAPI) ObtainToken(ctx context.Context, username, password string) (models.TokenPair, error) {
	f.LastObtainUser = username
	f.LastObtainPass = password
	return f.ObtainTokenRet, f.ObtainTokenErr
}

func (f *fakeAuthAPI) Register(ctx context.Context, reg models.Registration) error {
	f.LastRegister = reg
	return f.RegisterErr
}

func (f *fakeAuthAPI) FetchProfile(ctx context.Context) (*models.Profile, error) {
	f.FetchCalls++
	if f.FetchProfileGate != nil {
		<-f.FetchProfileGate
	}
	return f.FetchProfileRet, f.FetchProfileErr
}

func (f *fakeAuthAPI) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.Profile, error) {
	return f.UpdateProfileRet, f.UpdateProfileErr
}

// ---- TESTS ----

func TestLogin_Success_PersistsPairAndSettlesAuthenticated(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	access := accessToken(t, 42, time.Hour)
	fc := &fakeAuthAPI{
		ObtainTokenRet:  models.TokenPair{Access: access, Refresh: "ref-1"},
		FetchProfileRet: studentProfile(),
	}
	svc := NewAuthService(fc, store, testLogger())

	res := svc.Login(ctx, "alice", "secret")
	require.True(t, res.OK)
	require.Empty(t, res.Error)
	require.Equal(t, "alice", fc.LastObtainUser)

	pair, ok, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, access, pair.Access)
	require.Equal(t, "ref-1", pair.Refresh)

	s := svc.Session()
	require.Equal(t, StateAuthenticated, s.State)
	require.NotNil(t, s.Claims)
	require.Equal(t, int64(42), s.Claims.UserID)
	require.NotNil(t, s.Profile)
	require.Equal(t, models.RoleStudent, s.Profile.Role)
}

func TestLogin_Failure_NoObservableStateChange(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	fc := &fakeAuthAPI{
		ObtainTokenErr: &api.APIError{
			Status: 401,
			Detail: "No active account found with the given credentials",
		},
	}
	svc := NewAuthService(fc, store, testLogger())

	res := svc.Login(ctx, "alice", "wrong")
	require.False(t, res.OK)
	require.Equal(t, "No active account found with the given credentials", res.Error)

	_, ok, err := store.Load(ctx)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, StateAnonymous, svc.Session().State)
}

func TestLogin_ProfileFetchFailureIsNonFatal(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	fc := &fakeAuthAPI{
		ObtainTokenRet:  models.TokenPair{Access: accessToken(t, 7, time.Hour), Refresh: "r"},
		FetchProfileErr: errors.New("profile endpoint down"),
	}
	svc := NewAuthService(fc, store, testLogger())

	res := svc.Login(ctx, "bob", "pw")
	require.True(t, res.OK)

	s := svc.Session()
	require.Equal(t, StateAuthenticated, s.State)
	require.Nil(t, s.Profile)
}

func TestLogin_ServerUnavailable(t *testing.T) {
	store := setupStore(t)
	fc := &fakeAuthAPI{ObtainTokenErr: api.ErrUnavailable}
	svc := NewAuthService(fc, store, testLogger())

	res := svc.Login(context.Background(), "alice", "pw")
	require.False(t, res.OK)
	require.Equal(t, "server unavailable, please try again later", res.Error)
}

func TestLogout_ClearsStoreAndState(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	fc := &fakeAuthAPI{
		ObtainTokenRet:  models.TokenPair{Access: accessToken(t, 1, time.Hour), Refresh: "r"},
		FetchProfileRet: studentProfile(),
	}
	svc := NewAuthService(fc, store, testLogger())
	require.True(t, svc.Login(ctx, "alice", "pw").OK)

	svc.Logout(ctx)

	_, ok, err := store.Load(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	s := svc.Session()
	require.Equal(t, StateAnonymous, s.State)
	require.Nil(t, s.Claims)
	require.Nil(t, s.Profile)

	// idempotent
	svc.Logout(ctx)
	require.Equal(t, StateAnonymous, svc.Session().State)
}

func TestInitialize_NoStoredCredentials(t *testing.T) {
	svc := NewAuthService(&fakeAuthAPI{}, setupStore(t), testLogger())
	svc.Initialize(context.Background())
	require.Equal(t, StateAnonymous, svc.Session().State)
}

func TestInitialize_ExpiredTokenClearsStore(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	require.NoError(t, store.Save(ctx, models.TokenPair{
		Access:  accessToken(t, 1, -time.Minute),
		Refresh: "r",
	}))

	fc := &fakeAuthAPI{}
	svc := NewAuthService(fc, store, testLogger())
	svc.Initialize(ctx)

	require.Equal(t, StateAnonymous, svc.Session().State)
	require.Zero(t, fc.FetchCalls, "no profile fetch for an expired session")

	_, ok, err := store.Load(ctx)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestInitialize_ValidToken_RestoresSession(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	require.NoError(t, store.Save(ctx, models.TokenPair{
		Access:  accessToken(t, 42, time.Hour),
		Refresh: "r",
	}))

	fc := &fakeAuthAPI{FetchProfileRet: studentProfile()}
	svc := NewAuthService(fc, store, testLogger())
	svc.Initialize(ctx)

	s := svc.Session()
	require.Equal(t, StateAuthenticated, s.State)
	require.Equal(t, int64(42), s.Claims.UserID)
	require.NotNil(t, s.Profile)
}

func TestInitialize_ProfileFailureStillAuthenticates(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	require.NoError(t, store.Save(ctx, models.TokenPair{
		Access:  accessToken(t, 42, time.Hour),
		Refresh: "r",
	}))

	fc := &fakeAuthAPI{FetchProfileErr: errors.New("boom")}
	svc := NewAuthService(fc, store, testLogger())
	svc.Initialize(ctx)

	s := svc.Session()
	require.Equal(t, StateAuthenticated, s.State)
	require.Nil(t, s.Profile)
}

func TestInitialize_StaleCompletionDroppedAfterLogout(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	require.NoError(t, store.Save(ctx, models.TokenPair{
		Access:  accessToken(t, 42, time.Hour),
		Refresh: "r",
	}))

	gate := make(chan struct{})
	fc := &fakeAuthAPI{
		FetchProfileRet:  studentProfile(),
		FetchProfileGate: gate,
	}
	svc := NewAuthService(fc, store, testLogger())

	done := make(chan struct{})
	go func() {
		svc.Initialize(ctx)
		close(done)
	}()

	// wait until Initialize is in flight, then log out underneath it
	require.Eventually(t, func() bool {
		return svc.Session().State == StateLoading
	}, time.Second, time.Millisecond)
	svc.Logout(ctx)

	close(gate)
	<-done

	require.Equal(t, StateAnonymous, svc.Session().State, "stale initialize must not resurrect the session")
}

func TestRegister_NeverTouchesSession(t *testing.T) {
	ctx := context.Background()
	fc := &fakeAuthAPI{}
	svc := NewAuthService(fc, setupStore(t), testLogger())

	res := svc.Register(ctx, models.Registration{Username: "carol", Role: models.RoleCompany})
	require.True(t, res.OK)
	require.Equal(t, "carol", fc.LastRegister.Username)
	require.Equal(t, StateAnonymous, svc.Session().State)

	fc.RegisterErr = &api.APIError{Status: 400, Fields: map[string][]string{"email": {"invalid"}}}
	res = svc.Register(ctx, models.Registration{})
	require.False(t, res.OK)
	require.Contains(t, res.Error, "email")
	require.Equal(t, StateAnonymous, svc.Session().State)
}

func TestUpdateProfile_ReplacesCachedCopy(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	updated := studentProfile()
	updated.Bio = "new bio"

	fc := &fakeAuthAPI{
		ObtainTokenRet:  models.TokenPair{Access: accessToken(t, 1, time.Hour), Refresh: "r"},
		FetchProfileRet: studentProfile(),
		UpdateProfileRet: updated,
	}
	svc := NewAuthService(fc, store, testLogger())
	require.True(t, svc.Login(ctx, "alice", "pw").OK)

	bio := "new bio"
	res := svc.UpdateProfile(ctx, models.ProfileUpdate{Bio: &bio})
	require.True(t, res.OK)
	require.Equal(t, "new bio", svc.Session().Profile.Bio)
}

func TestUpdateProfile_FailurePropagatesMessage(t *testing.T) {
	fc := &fakeAuthAPI{
		UpdateProfileErr: &api.APIError{Status: 400, Fields: map[string][]string{"bio": {"too long"}}},
	}
	svc := NewAuthService(fc, setupStore(t), testLogger())

	res := svc.UpdateProfile(context.Background(), models.ProfileUpdate{})
	require.False(t, res.OK)
	require.Contains(t, res.Error, "too long")
}

func TestInvalidate_DropsSessionInMemory(t *testing.T) {
	ctx := context.Background()
	fc := &fakeAuthAPI{
		ObtainTokenRet:  models.TokenPair{Access: accessToken(t, 1, time.Hour), Refresh: "r"},
		FetchProfileRet: studentProfile(),
	}
	svc := NewAuthService(fc, setupStore(t), testLogger())
	require.True(t, svc.Login(ctx, "alice", "pw").OK)

	svc.Invalidate()

	s := svc.Session()
	require.Equal(t, StateAnonymous, s.State)
	require.Nil(t, s.Claims)
	require.Nil(t, s.Profile)
}
