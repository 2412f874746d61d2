package storage

import (
	"context"
	"sync"
)

// Memory is an in-process SessionStorage. It backs unit tests and the
// ephemeral mode where nothing should outlive the process.
type Memory struct {
	mu       sync.Mutex
	userJSON string
	token    string
}

// NewMemory creates an empty in-memory storage.
func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Load(_ context.Context) (string, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.userJSON, m.token, nil
}

func (m *Memory) Store(_ context.Context, userJSON, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.userJSON = userJSON
	m.token = token
	return nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.userJSON = ""
	m.token = ""
	return nil
}

// Seed pre-populates the entries, simulating previously persisted state.
func (m *Memory) Seed(userJSON, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.userJSON = userJSON
	m.token = token
}
