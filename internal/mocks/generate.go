// Package mocks provides generated mocks for the session and auth ports.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks.
// To regenerate after interface changes, run:
//
//	go generate ./internal/mocks
package mocks

// Generate mock for SessionStorage interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=session_storage_mock.go github.com/fintrack/fintrack-go/internal/ports SessionStorage

// Generate mock for TokenVerifier interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=token_verifier_mock.go github.com/fintrack/fintrack-go/internal/ports TokenVerifier
