// Package session owns the admin session lifecycle. A Manager is created at
// startup, listeners subscribe to sign-in/sign-out events, and Close detaches
// them at shutdown.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mahathirrr/portfolio/internal/domain/profile"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

type State string

const (
	StateUnknown         State = "unknown"
	StateAuthenticated   State = "authenticated"
	StateUnauthenticated State = "unauthenticated"
)

type Session struct {
	ID        string    `json:"id"`
	ProfileID uuid.UUID `json:"profile_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

var (
	ErrNotFound = errors.New("session not found")
	ErrClosed   = errors.New("session manager closed")
)

type Store interface {
	Save(ctx context.Context, s *Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

type EventType string

const (
	EventSignedIn  EventType = "signed_in"
	EventSignedOut EventType = "signed_out"
)

type Event struct {
	Type    EventType
	Session Session
	At      time.Time
}

type Listener func(Event)

type Manager struct {
	store  Store
	ttl    time.Duration
	logger logger.Logger
	now    func() time.Time

	mu        sync.RWMutex
	listeners map[int]Listener
	nextID    int
	closed    bool
}

func NewManager(store Store, ttl time.Duration, log logger.Logger) *Manager {
	return &Manager{
		store:     store,
		ttl:       ttl,
		logger:    log,
		now:       time.Now,
		listeners: make(map[int]Listener),
	}
}

// Subscribe registers l. Call the returned func to remove it.
func (m *Manager) Subscribe(l Listener) (unsubscribe func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return func() {}
	}
	id := m.nextID
	m.nextID++
	m.listeners[id] = l
	return func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}
}

func (m *Manager) Start(ctx context.Context, p *profile.Profile) (*Session, error) {
	if m.isClosed() {
		return nil, ErrClosed
	}
	now := m.now().UTC()
	s := &Session{
		ID:        uuid.NewString(),
		ProfileID: p.ID,
		Email:     p.Email,
		Role:      p.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.Save(ctx, s, m.ttl); err != nil {
		return nil, err
	}
	m.emit(Event{Type: EventSignedIn, Session: *s, At: now})
	return s, nil
}

// Resolve never returns StateUnknown: either the id maps to a live session or
// it does not.
func (m *Manager) Resolve(ctx context.Context, id string) (State, *Session) {
	if id == "" {
		return StateUnauthenticated, nil
	}
	s, err := m.store.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			m.logger.Error("Failed to resolve session", err, zap.String("session_id", id))
		}
		return StateUnauthenticated, nil
	}
	if !s.ExpiresAt.IsZero() && m.now().After(s.ExpiresAt) {
		return StateUnauthenticated, nil
	}
	return StateAuthenticated, s
}

func (m *Manager) End(ctx context.Context, id string) error {
	s, err := m.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := m.store.Delete(ctx, id); err != nil {
		return err
	}
	m.emit(Event{Type: EventSignedOut, Session: *s, At: m.now().UTC()})
	return nil
}

func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.listeners = make(map[int]Listener)
}

func (m *Manager) isClosed() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.closed
}

func (m *Manager) emit(e Event) {
	m.mu.RLock()
	ls := make([]Listener, 0, len(m.listeners))
	for _, l := range m.listeners {
		ls = append(ls, l)
	}
	m.mu.RUnlock()
	for _, l := range ls {
		l(e)
	}
}

// AuditListener logs every session change.
func AuditListener(log logger.Logger) Listener {
	return func(e Event) {
		log.Info("Session changed",
			zap.String("event", string(e.Type)),
			zap.String("session_id", e.Session.ID),
			zap.String("email", e.Session.Email),
		)
	}
}
