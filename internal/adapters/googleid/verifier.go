package googleid

// Package googleid verifies Google ID tokens and drives the loopback
// sign-in flow that obtains them for the CLI.

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// googleIssuer is the fixed issuer for Google accounts.
const googleIssuer = "https://accounts.google.com"

// Verifier checks Google ID tokens against the Google JWKS before they are
// exchanged with the backend. It implements ports.TokenVerifier.
type Verifier struct {
	clientID   string
	httpClient *http.Client

	initOnce sync.Once
	initErr  error
	verifier *gooidc.IDTokenVerifier
}

// VerifierConfig holds configuration for the Verifier.
type VerifierConfig struct {
	ClientID   string
	HTTPClient *http.Client // Optional, defaults to a 30s-timeout client
}

// NewVerifier creates a Verifier. Discovery is deferred to the first Verify
// call so construction works offline.
func NewVerifier(config VerifierConfig) (*Verifier, error) {
	if config.ClientID == "" {
		return nil, errors.New("client ID is required")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Verifier{
		clientID:   config.ClientID,
		httpClient: httpClient,
	}, nil
}

func (v *Verifier) init(ctx context.Context) error {
	v.initOnce.Do(func() {
		dctx := context.WithValue(ctx, oauth2.HTTPClient, v.httpClient)
		provider, err := gooidc.NewProvider(dctx, googleIssuer)
		if err != nil {
			v.initErr = fmt.Errorf("oidc new provider: %w", err)
			return
		}
		v.verifier = provider.Verifier(&gooidc.Config{ClientID: v.clientID})
	})
	return v.initErr
}

// Verify checks the signature, issuer, audience and expiry of a raw ID
// token.
func (v *Verifier) Verify(ctx context.Context, rawIDToken string) error {
	if rawIDToken == "" {
		return errors.New("id token is required")
	}
	if err := v.init(ctx); err != nil {
		return err
	}
	if _, err := v.verifier.Verify(ctx, rawIDToken); err != nil {
		return fmt.Errorf("verify id_token: %w", err)
	}
	return nil
}
