package session

// Package session owns the local session: the single source of truth for the
// authenticated identity and bearer credential. All other components only
// read it; mutations go through the auth operations in internal/service.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fintrack/fintrack-go/internal/domain/auth"
	"github.com/fintrack/fintrack-go/internal/ports"
)

var (
	// ErrPartialSession is returned when Set is called with only one of the
	// two session fields. User and token are written together or not at all.
	ErrPartialSession = errors.New("session user and token must be set together")

	// ErrStaleSession is returned when a SetIfCurrent loses to a session
	// mutation that completed while the caller's round-trip was in flight.
	ErrStaleSession = errors.New("session changed while request was in flight")
)

// Subscriber is notified after every session mutation with a copy of the
// new session.
type Subscriber func(auth.Session)

// StoreOptions groups dependencies for Store.
type StoreOptions struct {
	Storage ports.SessionStorage
	Logger  *slog.Logger
}

// Store keeps the current session in memory and mirrors every mutation to
// durable storage before it becomes visible. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	storage ports.SessionStorage
	logger  *slog.Logger

	sess auth.Session
	gen  uint64

	subMu   sync.Mutex
	subs    map[int]Subscriber
	nextSub int
}

// NewStore constructs a Store backed by the given storage.
func NewStore(opts StoreOptions) *Store {
	if opts.Storage == nil {
		panic("session: storage is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		storage: opts.Storage,
		logger:  logger,
		subs:    make(map[int]Subscriber),
	}
}

// Initialize loads the persisted session. Malformed or half-present state
// degrades silently to logged-out and scrubs the storage; startup never
// fails because of a bad session read.
func (s *Store) Initialize(ctx context.Context) auth.Session {
	userJSON, token, err := s.storage.Load(ctx)
	if err != nil {
		s.logger.Warn("session load failed, starting logged out", "error", err)
		return auth.Session{}
	}

	if userJSON == "" || token == "" {
		if userJSON != "" || token != "" {
			// Only one entry present. Invalid, normalize to logged-out.
			s.scrub(ctx, "half-present session state")
		}
		return auth.Session{}
	}

	var user auth.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		s.scrub(ctx, "unparseable stored user")
		return auth.Session{}
	}

	s.mu.Lock()
	s.sess = auth.Session{User: &user, Token: token}
	sess := s.snapshotLocked()
	s.mu.Unlock()
	return sess
}

func (s *Store) scrub(ctx context.Context, reason string) {
	s.logger.Warn("clearing persisted session", "reason", reason)
	if err := s.storage.Clear(ctx); err != nil {
		s.logger.Warn("scrub persisted session failed", "error", err)
	}
}

// Set replaces the session with the given user and token. Both must be
// present. The pair is written through to durable storage before the
// in-memory state changes; a storage failure leaves the session untouched.
func (s *Store) Set(ctx context.Context, user *auth.User, token string) error {
	return s.set(ctx, user, token, nil)
}

// SetIfCurrent behaves like Set but refuses to write when the session has
// been mutated since the caller observed the given generation. This guards
// late-arriving responses from abandoned operations.
func (s *Store) SetIfCurrent(ctx context.Context, user *auth.User, token string, observed uint64) error {
	return s.set(ctx, user, token, &observed)
}

func (s *Store) set(ctx context.Context, user *auth.User, token string, observed *uint64) error {
	if user == nil || token == "" {
		return ErrPartialSession
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	s.mu.Lock()
	if observed != nil && *observed != s.gen {
		s.mu.Unlock()
		return ErrStaleSession
	}
	if err := s.storage.Store(ctx, string(userJSON), token); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("persist session: %w", err)
	}
	u := *user
	s.sess = auth.Session{User: &u, Token: token}
	s.gen++
	sess := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(sess)
	return nil
}

// Clear removes the session from memory and durable storage. It is
// idempotent: clearing an empty session is a no-op that still succeeds.
// Memory is cleared even when the storage clear fails, so a logout always
// takes effect locally.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	storageErr := s.storage.Clear(ctx)
	s.sess = auth.Session{}
	s.gen++
	sess := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(sess)
	if storageErr != nil {
		return fmt.Errorf("clear persisted session: %w", storageErr)
	}
	return nil
}

// Current returns a copy of the session.
func (s *Store) Current() auth.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Token returns the bearer token, or empty when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess.Token
}

// IsAuthenticated reports whether both identity and credential are present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess.IsAuthenticated()
}

// Generation returns a counter that increments on every mutation. Callers
// performing round-trips capture it before the call and pass it to
// SetIfCurrent afterwards.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen
}

// Subscribe registers fn to run after every mutation. The returned func
// removes the subscription.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// snapshotLocked returns a defensive copy; callers hold s.mu.
func (s *Store) snapshotLocked() auth.Session {
	if s.sess.User == nil {
		return auth.Session{Token: s.sess.Token}
	}
	u := *s.sess.User
	return auth.Session{User: &u, Token: s.sess.Token}
}

func (s *Store) notify(sess auth.Session) {
	s.subMu.Lock()
	subs := make([]Subscriber, 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(sess)
	}
}
