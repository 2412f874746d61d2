package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fintrack/fintrack-go/internal/api"
	"github.com/fintrack/fintrack-go/internal/domain/auth"
	"github.com/fintrack/fintrack-go/internal/ports"
	"github.com/fintrack/fintrack-go/internal/session"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	API      *api.Client
	Sessions *session.Store
	// Verifier checks third-party ID tokens before exchange. Optional; nil
	// skips local verification and lets the backend decide.
	Verifier ports.TokenVerifier
	Logger   *slog.Logger
}

// AuthService holds the auth operations: the only legitimate writers of the
// session. Each operation mutates the session only after its own round-trip
// resolves, and never on failure.
type AuthService struct {
	api      *api.Client
	sessions *session.Store
	verifier ports.TokenVerifier
	logger   *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.API == nil {
		panic("service: api client is required")
	}
	if opts.Sessions == nil {
		panic("service: session store is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		api:      opts.API,
		sessions: opts.Sessions,
		verifier: opts.Verifier,
		logger:   logger,
	}
}

// credentialsResponse is the session shape all credential endpoints return.
type credentialsResponse struct {
	User  *auth.User `json:"user"`
	Token string     `json:"token"`
}

// Login exchanges email and password for a session. On failure the session
// is left exactly as it was, including when previously logged in as a
// different user.
func (s *AuthService) Login(ctx context.Context, email, password string) (*auth.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}

	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	return s.exchange(ctx, "/auth/login", body)
}

// Register creates an account. A successful registration is already logged
// in; no separate confirmation step is modeled.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*auth.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, errors.New("name, email and password are required")
	}

	body := struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Name: name, Email: email, Password: password}

	return s.exchange(ctx, "/auth/register", body)
}

// GoogleLogin exchanges a Google ID token for a session. When a verifier is
// configured the token is checked locally first, so an obviously bad token
// never reaches the backend.
func (s *AuthService) GoogleLogin(ctx context.Context, idToken string) (*auth.User, error) {
	if idToken == "" {
		return nil, errors.New("id token is required")
	}
	if s.verifier != nil {
		if err := s.verifier.Verify(ctx, idToken); err != nil {
			return nil, fmt.Errorf("verify google token: %w", err)
		}
	}

	body := struct {
		IDToken string `json:"idToken"`
	}{IDToken: idToken}

	return s.exchange(ctx, "/auth/google-login", body)
}

// exchange performs a credential round-trip and commits the resulting
// session. The generation captured before the call guards against a late
// response overwriting a session that changed while it was in flight.
func (s *AuthService) exchange(ctx context.Context, path string, body any) (*auth.User, error) {
	observed := s.sessions.Generation()

	var resp credentialsResponse
	if err := s.api.Post(ctx, path, body, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil || resp.Token == "" {
		return nil, &api.Error{Message: "malformed credential response"}
	}

	if err := s.sessions.SetIfCurrent(ctx, resp.User, resp.Token, observed); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Logout best-effort notifies the server, then unconditionally clears the
// local session. Ending a session must always succeed from the user's
// perspective, so a failed server call is only logged.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.api.Post(ctx, "/auth/logout", nil, nil); err != nil {
		s.logger.Warn("server logout failed, clearing local session anyway", "error", err)
	}
	return s.sessions.Clear(ctx)
}

// messageResponse carries the informational message reset endpoints return.
type messageResponse struct {
	Message string `json:"message"`
}

// ForgotPassword requests a one-time password be sent to the account email.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", errors.New("email is required")
	}

	body := struct {
		Email string `json:"email"`
	}{Email: email}

	var resp messageResponse
	if err := s.api.Post(ctx, "/auth/forgot-password", body, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// VerifyOTP completes the password reset with the one-time password. It does
// not log the user in; they sign in with the new password afterwards.
func (s *AuthService) VerifyOTP(ctx context.Context, email, otp, newPassword string) (string, error) {
	email = strings.TrimSpace(email)
	otp = strings.TrimSpace(otp)
	if email == "" || otp == "" || newPassword == "" {
		return "", errors.New("email, otp and new password are required")
	}

	body := struct {
		Email       string `json:"email"`
		OTP         string `json:"otp"`
		NewPassword string `json:"newPassword"`
	}{Email: email, OTP: otp, NewPassword: newPassword}

	var resp messageResponse
	if err := s.api.Post(ctx, "/auth/verify-otp", body, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
