// Package session serializes access to conversation records. Two sessions
// are fully independent and run concurrently; two events for the same
// session key are applied one at a time, so a load-apply-save cycle can
// never lose an update.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/macizomedia/editorBot/internal/logging"
	"github.com/macizomedia/editorBot/pkg/domain"
	"github.com/macizomedia/editorBot/pkg/ports"
)

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager orchestrates record access, ensuring at-most-one-writer-at-a-time
// per session key. It uses reference counting to garbage collect unused
// locks.
type Manager struct {
	store ports.RecordStore

	mu    sync.Mutex            // Global lock for the map
	locks map[string]*lockEntry // Map of active locks

	locker ports.DistributedLocker // Optional, for multi-replica deployments
	logger *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLocker enables distributed locking.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(m *Manager) {
		m.locker = locker
	}
}

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a session Manager over the given record store.
func NewManager(store ports.RecordStore, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		locks:  make(map[string]*lockEntry),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
func (m *Manager) acquire(sessionID string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		entry = &lockEntry{}
		m.locks[sessionID] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry at zero.
func (m *Manager) release(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		return
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, sessionID)
	}
}

// WithLock executes fn while holding the per-key lock (and the distributed
// lock, when configured).
func (m *Manager) WithLock(ctx context.Context, sessionID string, fn func(context.Context) error) error {
	entry := m.acquire(sessionID)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(sessionID)
	}()

	if m.locker != nil {
		unlock, err := m.locker.Lock(ctx, sessionID, 30*time.Second)
		if err != nil {
			return fmt.Errorf("failed to acquire distributed lock: %w", err)
		}
		defer func() {
			if err := unlock(ctx); err != nil {
				m.logger.Warn("failed to release distributed lock (will expire via TTL)",
					"session_id", sessionID,
					"err", err,
				)
			}
		}()
	}

	return fn(ctx)
}

// Dispatch atomically loads the record for a session (creating a fresh Idle
// one on first contact), applies fn, and persists the replacement. On error
// from fn nothing is saved and the stored record is untouched.
func (m *Manager) Dispatch(ctx context.Context, sessionID string, fn func(domain.ConversationRecord) (domain.ConversationRecord, error)) (*domain.ConversationRecord, error) {
	var out *domain.ConversationRecord

	err := m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		rec, err := m.store.Load(ctx, sessionID)
		if errors.Is(err, domain.ErrSessionNotFound) {
			fresh := domain.NewRecord()
			rec = &fresh
		} else if err != nil {
			return fmt.Errorf("failed to load session: %w", err)
		}

		next, err := fn(*rec)
		if err != nil {
			return err
		}

		if err := m.store.Save(ctx, sessionID, &next); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
		out = &next
		return nil
	})

	return out, err
}

// Load retrieves an existing session record from the store.
func (m *Manager) Load(ctx context.Context, sessionID string) (*domain.ConversationRecord, error) {
	var rec *domain.ConversationRecord
	err := m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		var err error
		rec, err = m.store.Load(ctx, sessionID)
		return err
	})
	return rec, err
}

// Delete removes the session from the store.
func (m *Manager) Delete(ctx context.Context, sessionID string) error {
	return m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		return m.store.Delete(ctx, sessionID)
	})
}

// List delegates to the store.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.List(ctx)
}

// Store returns the underlying record store.
func (m *Manager) Store() ports.RecordStore {
	return m.store
}
