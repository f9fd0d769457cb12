package history

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreAppendAndRecent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)

	require.NoError(t, s.Append(ctx, "a", "User: hello"))
	require.NoError(t, s.Append(ctx, "a", "Bot: hi"))
	require.NoError(t, s.Append(ctx, "b", "User: other session"))

	got, err := s.Recent(ctx, "a", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"User: hello", "Bot: hi"}, got)

	got, err = s.Recent(ctx, "b", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"User: other session"}, got)
}

func TestMemoryStoreRecentWindow(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)

	for i := 1; i <= 5; i++ {
		require.NoError(t, s.Append(ctx, "a", fmt.Sprintf("entry %d", i)))
	}

	got, err := s.Recent(ctx, "a", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"entry 4", "entry 5"}, got)
}

func TestMemoryStoreCapsEntries(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)

	for i := 1; i <= MaxEntries+4; i++ {
		require.NoError(t, s.Append(ctx, "a", fmt.Sprintf("entry %d", i)))
	}

	got, err := s.Recent(ctx, "a", MaxEntries*2)
	require.NoError(t, err)
	require.Len(t, got, MaxEntries)
	assert.Equal(t, "entry 5", got[0], "oldest entries are dropped first")
}

func TestMemoryStoreUnknownSession(t *testing.T) {
	got, err := NewMemoryStore(0).Recent(context.Background(), "nope", 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryStoreClose(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Minute)

	s.Close()
	s.Close() // idempotent

	require.NoError(t, s.Append(ctx, "a", "User: still here"))
	got, err := s.Recent(ctx, "a", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"User: still here"}, got)
}
