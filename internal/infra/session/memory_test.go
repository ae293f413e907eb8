package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

	store := NewMemoryStore(24 * time.Hour)
	store.now = func() time.Time { return now }

	s, err := store.Create(ctx, 1, "admin@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, now.Add(24*time.Hour), s.ExpiresAt)

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.UserID)
	assert.Equal(t, "admin@example.com", got.Email)

	require.NoError(t, store.Delete(ctx, s.ID))
	_, err = store.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

	store := NewMemoryStore(time.Hour)
	store.now = func() time.Time { return now }

	s, err := store.Create(ctx, 1, "admin@example.com")
	require.NoError(t, err)

	now = now.Add(time.Hour)
	_, err = store.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = store.Create(ctx, 2, "other@example.com")
	require.NoError(t, err)
	assert.Len(t, store.sessions, 1, "expired sessions are dropped on create")
}

func TestContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	ctx := WithSession(context.Background(), &Session{ID: "x", UserID: 3})
	s, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(3), s.UserID)
}
