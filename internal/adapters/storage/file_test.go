package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorageRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fs, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	userJSON, token, err := fs.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, userJSON)
	assert.Empty(t, token)

	require.NoError(t, fs.Store(ctx, `{"id":"1"}`, "tok-1"))

	userJSON, token, err = fs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"1"}`, userJSON)
	assert.Equal(t, "tok-1", token)

	// A fresh adapter over the same directory sees the same state,
	// simulating a process restart.
	fresh, err := NewFileStorage(fs.Dir())
	require.NoError(t, err)
	userJSON, token, err = fresh.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"1"}`, userJSON)
	assert.Equal(t, "tok-1", token)
}

func TestFileStorageClearIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fs, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, fs.Store(ctx, `{"id":"1"}`, "tok-1"))
	require.NoError(t, fs.Clear(ctx))
	require.NoError(t, fs.Clear(ctx), "clearing an empty storage succeeds")

	userJSON, token, err := fs.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, userJSON)
	assert.Empty(t, token)
}

func TestFileStoragePermissions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	dir := t.TempDir()
	fs, err := NewFileStorage(dir)
	require.NoError(t, err)
	require.NoError(t, fs.Store(ctx, `{"id":"1"}`, "secret-token"))

	info, err := os.Stat(filepath.Join(dir, "auth_token"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStorageDefaultDirUnderConfig(t *testing.T) {
	ctx := context.Background()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	fs, err := NewFileStorage("")
	require.NoError(t, err)
	require.NoError(t, fs.Store(ctx, `{"id":"1"}`, "tok"))
	assert.Contains(t, fs.Dir(), "fintrack")
}
