package googleid

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// FlowConfig holds configuration for the loopback sign-in flow.
type FlowConfig struct {
	ClientID     string
	ClientSecret string
	// ListenAddr is the loopback address the one-shot callback server binds
	// to, e.g. "127.0.0.1:8812".
	ListenAddr string
	HTTPClient *http.Client // Optional
}

// Flow runs the authorization-code flow against Google on a loopback
// redirect and returns the resulting raw ID token. The caller presents the
// auth URL to the user and waits for the browser to hit the callback.
type Flow struct {
	config     FlowConfig
	httpClient *http.Client
}

// NewFlow creates a loopback sign-in flow.
func NewFlow(config FlowConfig) (*Flow, error) {
	if config.ClientID == "" {
		return nil, errors.New("client ID is required")
	}
	if config.ListenAddr == "" {
		config.ListenAddr = "127.0.0.1:8812"
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Flow{config: config, httpClient: httpClient}, nil
}

type callbackResult struct {
	code  string
	state string
	err   error
}

// Obtain starts the callback server, invokes notify with the URL the user
// must open, and blocks until the redirect arrives or ctx is done. It
// returns the verified raw ID token.
func (f *Flow) Obtain(ctx context.Context, notify func(authURL string)) (string, error) {
	dctx := context.WithValue(ctx, oauth2.HTTPClient, f.httpClient)
	provider, err := gooidc.NewProvider(dctx, googleIssuer)
	if err != nil {
		return "", fmt.Errorf("oidc new provider: %w", err)
	}

	listener, err := net.Listen("tcp", f.config.ListenAddr)
	if err != nil {
		return "", fmt.Errorf("listen on %s: %w", f.config.ListenAddr, err)
	}
	defer listener.Close()

	oauthConfig := &oauth2.Config{
		ClientID:     f.config.ClientID,
		ClientSecret: f.config.ClientSecret,
		RedirectURL:  fmt.Sprintf("http://%s/callback", listener.Addr().String()),
		Scopes:       []string{gooidc.ScopeOpenID, "email", "profile"},
		Endpoint:     provider.Endpoint(),
	}

	state, err := generateRandomString(32)
	if err != nil {
		return "", fmt.Errorf("generate state: %w", err)
	}

	results := make(chan callbackResult, 1)
	srv := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/callback" {
			http.NotFound(w, r)
			return
		}
		q := r.URL.Query()
		if errMsg := q.Get("error"); errMsg != "" {
			results <- callbackResult{err: fmt.Errorf("authorization denied: %s", errMsg)}
			http.Error(w, "Sign-in failed. You can close this window.", http.StatusBadRequest)
			return
		}
		results <- callbackResult{code: q.Get("code"), state: q.Get("state")}
		fmt.Fprintln(w, "Signed in. You can close this window.")
	})}
	go func() { _ = srv.Serve(listener) }()
	defer srv.Close()

	authURL := oauthConfig.AuthCodeURL(state,
		oauth2.SetAuthURLParam("prompt", "select_account"),
	)
	if notify != nil {
		notify(authURL)
	}

	var result callbackResult
	select {
	case result = <-results:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	if result.err != nil {
		return "", result.err
	}
	if result.state != state {
		return "", errors.New("state mismatch")
	}
	if result.code == "" {
		return "", errors.New("no authorization code in callback")
	}

	token, err := oauthConfig.Exchange(dctx, result.code)
	if err != nil {
		return "", fmt.Errorf("exchange code for token: %w", err)
	}
	rawID, ok := token.Extra("id_token").(string)
	if !ok || rawID == "" {
		return "", errors.New("token response missing id_token")
	}

	verifier := provider.Verifier(&gooidc.Config{ClientID: f.config.ClientID})
	if _, err := verifier.Verify(ctx, rawID); err != nil {
		return "", fmt.Errorf("verify id_token: %w", err)
	}

	return rawID, nil
}

// generateRandomString returns a URL-safe random string of n bytes entropy.
func generateRandomString(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
