package storage

// Package storage provides SessionStorage adapters. The session layout is
// two independent durable string entries: the serialized user identity and
// the raw token. Both absent means logged-out.

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	userEntry  = "auth_user"
	tokenEntry = "auth_token"

	dirPerm  = 0o700
	filePerm = 0o600
)

// FileStorage keeps the two session entries as files in a state directory.
// This is the default backend for a single-user workstation.
type FileStorage struct {
	dir string
}

// NewFileStorage creates the state directory if needed. An empty dir selects
// the per-user default under os.UserConfigDir().
func NewFileStorage(dir string) (*FileStorage, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve user config dir: %w", err)
		}
		dir = filepath.Join(base, "fintrack")
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &FileStorage{dir: dir}, nil
}

// Dir returns the state directory in use.
func (f *FileStorage) Dir() string { return f.dir }

func (f *FileStorage) Load(_ context.Context) (string, string, error) {
	userJSON, err := f.read(userEntry)
	if err != nil {
		return "", "", err
	}
	token, err := f.read(tokenEntry)
	if err != nil {
		return "", "", err
	}
	return userJSON, token, nil
}

func (f *FileStorage) Store(_ context.Context, userJSON, token string) error {
	if err := f.write(userEntry, userJSON); err != nil {
		return err
	}
	return f.write(tokenEntry, token)
}

func (f *FileStorage) Clear(_ context.Context) error {
	if err := f.remove(userEntry); err != nil {
		return err
	}
	return f.remove(tokenEntry)
}

func (f *FileStorage) read(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(f.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(data), nil
}

func (f *FileStorage) write(name, value string) error {
	// Write to a temp file and rename so a crash never leaves a torn entry.
	path := filepath.Join(f.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), filePerm); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", name, err)
	}
	return nil
}

func (f *FileStorage) remove(name string) error {
	err := os.Remove(filepath.Join(f.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", name, err)
	}
	return nil
}
