package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahathirrr/portfolio/internal/domain/profile"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

func newTestManager(ttl time.Duration) *Manager {
	return NewManager(NewMemoryStore(time.Minute), ttl, logger.NewNop())
}

func testProfile() *profile.Profile {
	return &profile.Profile{ID: uuid.New(), Email: "owner@example.com", Role: profile.RoleAdmin}
}

func TestManager_StartResolveEnd(t *testing.T) {
	m := newTestManager(time.Hour)
	ctx := context.Background()

	s, err := m.Start(ctx, testProfile())
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", s.Email)
	assert.Equal(t, s.CreatedAt.Add(time.Hour), s.ExpiresAt)

	state, resolved := m.Resolve(ctx, s.ID)
	assert.Equal(t, StateAuthenticated, state)
	require.NotNil(t, resolved)
	assert.Equal(t, s.ID, resolved.ID)

	require.NoError(t, m.End(ctx, s.ID))
	state, resolved = m.Resolve(ctx, s.ID)
	assert.Equal(t, StateUnauthenticated, state)
	assert.Nil(t, resolved)

	assert.ErrorIs(t, m.End(ctx, s.ID), ErrNotFound)
}

func TestManager_ResolveUnknownOrEmpty(t *testing.T) {
	m := newTestManager(time.Hour)

	state, _ := m.Resolve(context.Background(), "")
	assert.Equal(t, StateUnauthenticated, state)
	state, _ = m.Resolve(context.Background(), "missing")
	assert.Equal(t, StateUnauthenticated, state)
}

func TestManager_ExpiredSessionIsUnauthenticated(t *testing.T) {
	m := newTestManager(time.Hour)
	ctx := context.Background()
	s, err := m.Start(ctx, testProfile())
	require.NoError(t, err)

	m.now = func() time.Time { return s.ExpiresAt.Add(time.Second) }

	state, _ := m.Resolve(ctx, s.ID)
	assert.Equal(t, StateUnauthenticated, state)
}

func TestManager_ListenersReceiveEvents(t *testing.T) {
	m := newTestManager(time.Hour)
	ctx := context.Background()

	var (
		mu     sync.Mutex
		events []EventType
	)
	unsubscribe := m.Subscribe(func(e Event) {
		mu.Lock()
		events = append(events, e.Type)
		mu.Unlock()
	})

	s, err := m.Start(ctx, testProfile())
	require.NoError(t, err)
	require.NoError(t, m.End(ctx, s.ID))
	assert.Equal(t, []EventType{EventSignedIn, EventSignedOut}, events)

	unsubscribe()
	_, err = m.Start(ctx, testProfile())
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestManager_Close(t *testing.T) {
	m := newTestManager(time.Hour)
	called := false
	m.Subscribe(func(Event) { called = true })

	m.Close()

	_, err := m.Start(context.Background(), testProfile())
	assert.ErrorIs(t, err, ErrClosed)
	assert.False(t, called)
	m.Subscribe(func(Event) { called = true })()
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()
	s := &Session{ID: "abc", Email: "a@example.com"}

	require.NoError(t, store.Save(ctx, s, time.Minute))
	s.Email = "mutated@example.com"

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", got.Email)

	require.NoError(t, store.Delete(ctx, "abc"))
	_, err = store.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrNotFound)
}
