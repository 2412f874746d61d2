package ports

// Package ports defines interfaces (hexagonal ports) for session persistence
// and third-party token verification. Implementations live in
// internal/adapters; orchestration in internal/session and internal/service.

import "context"

// SessionStorage persists the two durable session entries across process
// restarts: the serialized user identity and the raw bearer token. Absent
// entries are reported as empty strings, never as errors.
type SessionStorage interface {
	// Load returns the stored serialized user and raw token.
	Load(ctx context.Context) (userJSON, token string, err error)

	// Store writes both entries. Callers must pass both non-empty; partial
	// writes are a session-layer invariant violation, not a storage concern.
	Store(ctx context.Context, userJSON, token string) error

	// Clear removes both entries. Clearing an empty storage is not an error.
	Clear(ctx context.Context) error
}

// TokenVerifier checks a third-party ID token before it is exchanged with
// the API. It decouples the auth operations from the provider SDK's
// invocation style.
type TokenVerifier interface {
	Verify(ctx context.Context, rawIDToken string) error
}
