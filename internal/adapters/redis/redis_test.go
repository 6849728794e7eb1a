package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/mahabubulhasibshawon/spt-portal/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := NewCache(mr.Addr(), "", "", 0, time.Minute)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestCache_SetGet(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "orders:u1:1", map[string]int{"total": 3}))
	data, err := c.Get(ctx, "orders:u1:1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":3}`, string(data))
	assert.Equal(t, time.Minute, mr.TTL("orders:u1:1"))

	_, err = c.Get(ctx, "missing")
	assert.ErrorIs(t, err, ports.ErrCacheMiss)
}

func TestCache_DeleteByPrefix(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	for _, k := range []string{"orders:u1:1", "orders:u1:2", "orders:u2:1"} {
		require.NoError(t, c.Set(ctx, k, 1))
	}
	require.NoError(t, c.DeleteByPrefix(ctx, "orders:u1:"))

	_, err := c.Get(ctx, "orders:u1:1")
	assert.ErrorIs(t, err, ports.ErrCacheMiss)
	_, err = c.Get(ctx, "orders:u2:1")
	assert.NoError(t, err)
}

func TestCache_Revoke(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	revoked, err := c.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, c.Revoke(ctx, "jti-1", time.Hour))
	revoked, err = c.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	mr.FastForward(2 * time.Hour)
	revoked, err = c.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, c.Revoke(ctx, "jti-2", 0))
	assert.False(t, mr.Exists(revokedPrefix+"jti-2"))
}

func TestCache_GetFailureIsNotAMiss(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()
	_, err := c.Get(context.Background(), "orders:u1:1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ports.ErrCacheMiss)
}

func TestCache_Ping(t *testing.T) {
	c, mr := newTestCache(t)
	assert.NoError(t, c.Ping(context.Background()))
	mr.Close()
	assert.Error(t, c.Ping(context.Background()))
}
