package auth_test

import (
	"context"
	"testing"
	"time"

	"hrm-api/internal/auth"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTokenRevoker(t *testing.T) {
	ctx := context.Background()
	r := auth.NewMemoryTokenRevoker()

	revoked, err := r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, r.Revoke(ctx, "jti-1", time.Hour))
	revoked, err = r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	require.NoError(t, r.Revoke(ctx, "jti-2", 0))
	revoked, err = r.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked, "non-positive ttl is a no-op")
}

func TestMemoryTokenRevoker_Expiry(t *testing.T) {
	ctx := context.Background()
	r := auth.NewMemoryTokenRevoker()
	require.NoError(t, r.Revoke(ctx, "jti-1", time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	revoked, err := r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisTokenRevoker(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	r := auth.NewRedisTokenRevoker(client)

	require.NoError(t, r.Revoke(ctx, "jti-1", time.Minute))
	revoked, err := r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	mr.FastForward(2 * time.Minute)
	revoked, err = r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisTokenRevoker_Unavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	mr.Close()

	_, err := auth.NewRedisTokenRevoker(client).IsRevoked(context.Background(), "jti-1")
	assert.Error(t, err)
}
