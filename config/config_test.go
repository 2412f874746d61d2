package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestSessionBackendUnmarshalText(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    SessionBackend
		expectError bool
	}{
		{name: "file backend", input: "file", expected: SessionBackendFile},
		{name: "redis backend", input: "redis", expected: SessionBackendRedis},
		{name: "uppercase is normalized", input: "REDIS", expected: SessionBackendRedis},
		{name: "unknown backend", input: "postgres", expectError: true},
		{name: "empty is invalid", input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b SessionBackend
			err := b.UnmarshalText([]byte(tt.input))
			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error for input %q, got none", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if b != tt.expected {
				t.Errorf("got %q, want %q", b, tt.expected)
			}
		})
	}
}

func TestAPIConfigSanitize(t *testing.T) {
	tests := []struct {
		name        string
		cfg         APIConfig
		wantBaseURL string
		wantTimeout time.Duration
	}{
		{
			name:        "trailing slash trimmed",
			cfg:         APIConfig{BaseURL: "https://api.example.com/", TimeoutMs: 5000},
			wantBaseURL: "https://api.example.com",
			wantTimeout: 5 * time.Second,
		},
		{
			name:        "zero timeout falls back to default",
			cfg:         APIConfig{BaseURL: "http://localhost:4000", TimeoutMs: 0},
			wantBaseURL: "http://localhost:4000",
			wantTimeout: 15 * time.Second,
		},
		{
			name:        "negative timeout falls back to default",
			cfg:         APIConfig{BaseURL: "http://localhost:4000", TimeoutMs: -1},
			wantBaseURL: "http://localhost:4000",
			wantTimeout: 15 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.Sanitize()
			if tt.cfg.BaseURL != tt.wantBaseURL {
				t.Errorf("BaseURL = %q, want %q", tt.cfg.BaseURL, tt.wantBaseURL)
			}
			if tt.cfg.Timeout() != tt.wantTimeout {
				t.Errorf("Timeout() = %v, want %v", tt.cfg.Timeout(), tt.wantTimeout)
			}
		})
	}
}

func TestAppConfigParseDefaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.API.BaseURL != "http://localhost:4000" {
		t.Errorf("default BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutMs != defaultTimeoutMs {
		t.Errorf("default TimeoutMs = %d", cfg.API.TimeoutMs)
	}
	if cfg.Session.Backend != SessionBackendFile {
		t.Errorf("default session backend = %q", cfg.Session.Backend)
	}
	if cfg.Session.KeyPrefix != "fintrack:session:" {
		t.Errorf("default key prefix = %q", cfg.Session.KeyPrefix)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("default redis addr = %q", cfg.Redis.Addr)
	}
}

func TestAppConfigParseEnv(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://gw.example.com/finance/")
	t.Setenv("API_TIMEOUT_MS", "2500")
	t.Setenv("WSO2_API_KEY", "sub-key-1")
	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis.internal:6380")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.API.BaseURL != "https://gw.example.com/finance" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout() != 2500*time.Millisecond {
		t.Errorf("Timeout() = %v", cfg.API.Timeout())
	}
	if cfg.API.SubscriptionKey != "sub-key-1" {
		t.Errorf("SubscriptionKey = %q", cfg.API.SubscriptionKey)
	}
	if cfg.Session.Backend != SessionBackendRedis {
		t.Errorf("session backend = %q", cfg.Session.Backend)
	}
	if cfg.Redis.Addr != "redis.internal:6380" {
		t.Errorf("redis addr = %q", cfg.Redis.Addr)
	}
}
