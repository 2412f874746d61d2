package config

import (
	"fmt"
	"strings"
)

// SessionBackend selects where the persisted session entries live.
type SessionBackend string

const (
	// SessionBackendFile stores the session in files under the state directory.
	SessionBackendFile SessionBackend = "file"
	// SessionBackendRedis stores the session in Redis (shared or containerized
	// front-ends).
	SessionBackendRedis SessionBackend = "redis"
)

// UnmarshalText implements encoding.TextUnmarshaler for SessionBackend.
func (b *SessionBackend) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "file", "redis":
		*b = SessionBackend(v)
		return nil
	default:
		return fmt.Errorf("invalid SessionBackend: %q (valid options: file, redis)", v)
	}
}

// SessionConfig contains local session persistence configuration.
type SessionConfig struct {
	// Backend selects the storage adapter.
	Backend SessionBackend `env:"SESSION_BACKEND" envDefault:"file"`

	// StateDir overrides the directory used by the file backend.
	// Empty means a per-user default under os.UserConfigDir().
	StateDir string `env:"FINTRACK_STATE_DIR"`

	// KeyPrefix namespaces the Redis entries when Backend is redis.
	KeyPrefix string `env:"SESSION_KEY_PREFIX" envDefault:"fintrack:session:"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.Backend == "" {
		s.Backend = SessionBackendFile
	}
	if s.KeyPrefix == "" {
		s.KeyPrefix = "fintrack:session:"
	}
}

// RedisConfig contains Redis connection settings for the redis session backend.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}
