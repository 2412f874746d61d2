package ports_test

import (
	"testing"

	"github.com/fintrack/fintrack-go/internal/adapters/googleid"
	"github.com/fintrack/fintrack-go/internal/adapters/storage"
	"github.com/fintrack/fintrack-go/internal/mocks"
	"github.com/fintrack/fintrack-go/internal/ports"
)

// This test only verifies that adapters and mocks conform to the ports at
// compile time.
func TestImplementationsConformToPorts(t *testing.T) {
	t.Helper()

	var _ ports.SessionStorage = (*storage.FileStorage)(nil)
	var _ ports.SessionStorage = (*storage.RedisStorage)(nil)
	var _ ports.SessionStorage = (*storage.Memory)(nil)
	var _ ports.SessionStorage = (*mocks.MockSessionStorage)(nil)
	var _ ports.TokenVerifier = (*mocks.MockTokenVerifier)(nil)
	var _ ports.TokenVerifier = (*googleid.Verifier)(nil)
}
