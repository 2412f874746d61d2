package config

import (
	"strings"
	"time"
)

const defaultTimeoutMs = 15000

// APIConfig contains the remote finance REST API configuration.
// The base URL may point either at the backend directly or at a WSO2
// gateway in front of it.
type APIConfig struct {
	// BaseURL is the root of the finance REST API.
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:4000"`

	// TimeoutMs is the per-request timeout in milliseconds.
	TimeoutMs int `env:"API_TIMEOUT_MS" envDefault:"15000"`

	// SubscriptionKey is an optional WSO2 gateway subscription key.
	// When set it is sent as X-WSO2-ApiKey on every request, independently
	// of user authentication.
	SubscriptionKey string `env:"WSO2_API_KEY"`
}

// Sanitize applies guardrails to API configuration values.
func (a *APIConfig) Sanitize() {
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")
	if a.TimeoutMs <= 0 {
		a.TimeoutMs = defaultTimeoutMs
	}
}

// Timeout returns the request timeout as a duration.
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutMs) * time.Millisecond
}
