package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fintrack/fintrack-go/internal/adapters/storage"
	"github.com/fintrack/fintrack-go/internal/api"
	"github.com/fintrack/fintrack-go/internal/domain/auth"
	"github.com/fintrack/fintrack-go/internal/mocks"
	"github.com/fintrack/fintrack-go/internal/session"
)

type authHarness struct {
	store   *session.Store
	storage *storage.Memory
	auth    *AuthService
}

func newAuthHarness(t *testing.T, handler http.Handler) *authHarness {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return newAuthHarnessForURL(t, srv.URL, nil)
}

func newAuthHarnessForURL(t *testing.T, baseURL string, verifier *mocks.MockTokenVerifier) *authHarness {
	t.Helper()

	mem := storage.NewMemory()
	store := session.NewStore(session.StoreOptions{Storage: mem})

	client, err := api.NewClient(api.Options{
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
		Tokens:  store,
	})
	require.NoError(t, err)

	opts := AuthServiceOptions{API: client, Sessions: store}
	if verifier != nil {
		opts.Verifier = verifier
	}
	return &authHarness{
		store:   store,
		storage: mem,
		auth:    NewAuthService(opts),
	}
}

func writeCredentials(w http.ResponseWriter, id, email, role, token string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"user":  map[string]any{"id": id, "name": "Test User", "email": email, "role": role},
		"token": token,
	})
}

func TestLoginSuccessSetsSession(t *testing.T) {
	t.Parallel()

	h := newAuthHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "a@x.com", body.Email)
		writeCredentials(w, "u-1", body.Email, "USER", "tok-1")
	}))

	user, err := h.auth.Login(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.True(t, h.store.IsAuthenticated())
	assert.Equal(t, "tok-1", h.store.Token())

	// Both entries are persisted together.
	userJSON, token, err := h.storage.Load(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, userJSON)
	assert.Equal(t, "tok-1", token)
}

func TestLoginRejectedLeavesSessionUntouched(t *testing.T) {
	t.Parallel()

	h := newAuthHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			var body struct {
				Email string `json:"email"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body.Email == "first@x.com" {
				writeCredentials(w, "u-first", body.Email, "USER", "tok-first")
				return
			}
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"invalid credentials"}`))
		default:
			http.NotFound(w, r)
		}
	}))

	// Log in as one user first; a failed second login must not overwrite.
	_, err := h.auth.Login(context.Background(), "first@x.com", "pw")
	require.NoError(t, err)
	before := h.store.Current()

	_, err = h.auth.Login(context.Background(), "a@x.com", "bad")
	require.Error(t, err)
	assert.True(t, api.IsUnauthorized(err))
	assert.Equal(t, "invalid credentials", api.Message(err))

	after := h.store.Current()
	assert.Equal(t, *before.User, *after.User)
	assert.Equal(t, before.Token, after.Token)
}

func TestLoginOfflineLeavesSessionUntouched(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	h := newAuthHarnessForURL(t, srv.URL, nil)

	_, err := h.auth.Login(context.Background(), "a@x.com", "pw")
	require.Error(t, err)

	apiErr, ok := api.AsError(err)
	require.True(t, ok)
	assert.True(t, apiErr.Network())
	assert.False(t, h.store.IsAuthenticated())
}

func TestRegisterLogsIn(t *testing.T) {
	t.Parallel()

	h := newAuthHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)
		writeCredentials(w, "u-new", "new@x.com", "USER", "tok-new")
	}))

	user, err := h.auth.Register(context.Background(), "New User", "new@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "u-new", user.ID)
	assert.True(t, h.store.IsAuthenticated(), "registration implies logged in")
}

func TestGoogleLoginVerifiesBeforeExchange(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	var exchanged bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		exchanged = true
		require.Equal(t, "/auth/google-login", r.URL.Path)
		writeCredentials(w, "u-g", "g@x.com", "USER", "tok-g")
	}))
	t.Cleanup(srv.Close)

	verifier := mocks.NewMockTokenVerifier(ctrl)
	verifier.EXPECT().Verify(gomock.Any(), "good-id-token").Return(nil).Times(1)

	h := newAuthHarnessForURL(t, srv.URL, verifier)

	user, err := h.auth.GoogleLogin(context.Background(), "good-id-token")
	require.NoError(t, err)
	assert.Equal(t, "u-g", user.ID)
	assert.True(t, exchanged)
}

func TestGoogleLoginRejectedTokenNeverReachesBackend(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	var exchanged bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		exchanged = true
	}))
	t.Cleanup(srv.Close)

	verifier := mocks.NewMockTokenVerifier(ctrl)
	verifier.EXPECT().Verify(gomock.Any(), "bad-id-token").Return(errors.New("audience mismatch")).Times(1)

	h := newAuthHarnessForURL(t, srv.URL, verifier)

	_, err := h.auth.GoogleLogin(context.Background(), "bad-id-token")
	require.Error(t, err)
	assert.False(t, exchanged)
	assert.False(t, h.store.IsAuthenticated())
}

func TestLogoutClearsSessionWhenServerUnreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/login" {
			writeCredentials(w, "u-1", "a@x.com", "USER", "tok-1")
		}
	}))
	h := newAuthHarnessForURL(t, srv.URL, nil)

	_, err := h.auth.Login(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)
	require.True(t, h.store.IsAuthenticated())

	// Network goes away before logout.
	srv.Close()

	require.NoError(t, h.auth.Logout(context.Background()))
	assert.False(t, h.store.IsAuthenticated())
}

func TestLoginStaleResponseDoesNotOverwrite(t *testing.T) {
	t.Parallel()

	var h *authHarness
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Another auth operation completes while this round-trip is in
		// flight; the store generation moves on.
		other := &auth.User{ID: "u-live", Email: "live@x.com", Role: auth.RoleUser}
		require.NoError(t, h.store.Set(r.Context(), other, "tok-live"))
		writeCredentials(w, "u-slow", "slow@x.com", "USER", "tok-slow")
	}))
	t.Cleanup(srv.Close)
	h = newAuthHarnessForURL(t, srv.URL, nil)

	_, err := h.auth.Login(context.Background(), "slow@x.com", "pw")
	assert.ErrorIs(t, err, session.ErrStaleSession)

	// The interleaved session wins; the late response is dropped.
	assert.Equal(t, "tok-live", h.store.Token())
	assert.Equal(t, "u-live", h.store.Current().User.ID)
}

func TestForgotPasswordAndVerifyOTP(t *testing.T) {
	t.Parallel()

	h := newAuthHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/auth/forgot-password":
			_, _ = w.Write([]byte(`{"message":"otp sent"}`))
		case "/auth/verify-otp":
			var body struct {
				OTP string `json:"otp"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body.OTP != "123456" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"invalid otp"}`))
				return
			}
			_, _ = w.Write([]byte(`{"message":"password updated"}`))
		default:
			http.NotFound(w, r)
		}
	}))

	msg, err := h.auth.ForgotPassword(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "otp sent", msg)

	_, err = h.auth.VerifyOTP(context.Background(), "a@x.com", "000000", "newpw")
	require.Error(t, err)
	assert.Equal(t, "invalid otp", api.Message(err))

	msg, err = h.auth.VerifyOTP(context.Background(), "a@x.com", "123456", "newpw")
	require.NoError(t, err)
	assert.Equal(t, "password updated", msg)
	assert.False(t, h.store.IsAuthenticated(), "password reset does not log in")
}

func TestMalformedCredentialResponseLeavesSessionUntouched(t *testing.T) {
	t.Parallel()

	h := newAuthHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":null,"token":""}`))
	}))

	_, err := h.auth.Login(context.Background(), "a@x.com", "pw")
	require.Error(t, err)
	assert.False(t, h.store.IsAuthenticated())
}
