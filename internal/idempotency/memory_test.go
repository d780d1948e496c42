package idempotency

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_PutGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, found, err := s.Get(ctx, "key-1")
	require.NoError(t, err)
	assert.False(t, found)

	rec := Record{ReservationID: "res-1", SessionID: "sess-1", RedirectURL: "https://pay.example/sess-1"}
	require.NoError(t, s.Put(ctx, "key-1", rec))

	got, found, err := s.Get(ctx, "key-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, rec, got)
}

func TestMemoryStore_Expiry(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	current := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }

	require.NoError(t, s.Put(ctx, "key-1", Record{ReservationID: "res-1"}))

	current = current.Add(TTL - time.Second)
	_, found, err := s.Get(ctx, "key-1")
	require.NoError(t, err)
	assert.True(t, found, "record should still be fresh just inside the TTL")

	current = current.Add(2 * time.Second)
	_, found, err = s.Get(ctx, "key-1")
	require.NoError(t, err)
	assert.False(t, found, "record should expire past the TTL")
}
