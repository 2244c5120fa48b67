package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	k := Key("GET", "/api/v1/locations")

	require.True(t, strings.HasPrefix(k, "flowerforecast:"))
	require.Len(t, k, len("flowerforecast:")+64)
	require.Equal(t, k, Key("GET", "/api/v1/locations"))
	require.NotEqual(t, k, Key("POST", "/api/v1/locations"))
	require.NotEqual(t, Key("ab", "c"), Key("a", "bc"))
}

func TestNoOpCache(t *testing.T) {
	c := NewNoOpCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v")))
	_, found := c.Get(ctx, "k")
	require.False(t, found)
	require.NoError(t, c.Close())
}

func TestMemoryCache_Expiry(t *testing.T) {
	clock := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemoryCache(time.Minute)
	c.now = func() time.Time { return clock }
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte(`{"ok":true}`)))

	got, found := c.Get(ctx, "k")
	require.True(t, found)
	require.Equal(t, []byte(`{"ok":true}`), got)

	clock = clock.Add(time.Minute)
	_, found = c.Get(ctx, "k")
	require.True(t, found, "entry is valid up to its expiry instant")

	clock = clock.Add(time.Second)
	_, found = c.Get(ctx, "k")
	require.False(t, found)
	require.Zero(t, c.Len())
}

func TestMemoryCache_Cleanup(t *testing.T) {
	clock := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemoryCache(time.Minute)
	c.now = func() time.Time { return clock }
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "old-1", []byte("a")))
	require.NoError(t, c.Set(ctx, "old-2", []byte("b")))
	clock = clock.Add(45 * time.Second)
	require.NoError(t, c.Set(ctx, "fresh", []byte("c")))

	clock = clock.Add(30 * time.Second)
	require.Equal(t, 2, c.Cleanup())
	require.Equal(t, 1, c.Len())

	_, found := c.Get(ctx, "fresh")
	require.True(t, found)

	require.NoError(t, c.Close())
	require.Zero(t, c.Len())
}

func TestMemoryCache_Overwrite(t *testing.T) {
	c := NewMemoryCache(time.Hour)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("one")))
	require.NoError(t, c.Set(ctx, "k", []byte("two")))

	got, found := c.Get(ctx, "k")
	require.True(t, found)
	require.Equal(t, "two", string(got))
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	if testing.Short() {
		t.Skip("dials a closed local port")
	}

	cfg := DefaultRedisConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = "1"

	_, err := NewRedisCache(cfg)
	require.Error(t, err)
}
