package ratelimit

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T) (*RedisRateLimiter, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	config := DefaultConfig()
	return NewRedisRateLimiter(rdb, config), mr
}

func TestRedisRateLimiter_AllowsWithinBurst(t *testing.T) {
	limiter, _ := newTestLimiter(t)

	limit := limiter.GetLimit("POST:/api/v1/auth/login")
	require.Equal(t, 5, limit.BurstSize)

	for i := 0; i < limit.BurstSize; i++ {
		allowed, _, err := limiter.Allow("10.0.0.1", "POST:/api/v1/auth/login")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}
}

func TestRedisRateLimiter_BlocksOverBurst(t *testing.T) {
	limiter, _ := newTestLimiter(t)

	for i := 0; i < 5; i++ {
		_, _, err := limiter.Allow("10.0.0.2", "POST:/api/v1/auth/login")
		require.NoError(t, err)
	}

	allowed, resetTime, err := limiter.Allow("10.0.0.2", "POST:/api/v1/auth/login")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Greater(t, resetTime, time.Duration(0))

	stats := limiter.GetStats()
	assert.Equal(t, int64(6), stats.TotalRequests)
	assert.Equal(t, int64(1), stats.BlockedRequests)
}

func TestRedisRateLimiter_ClientsIsolated(t *testing.T) {
	limiter, _ := newTestLimiter(t)

	for i := 0; i < 5; i++ {
		_, _, err := limiter.Allow("10.0.0.3", "POST:/api/v1/auth/login")
		require.NoError(t, err)
	}

	allowed, _, err := limiter.Allow("10.0.0.4", "POST:/api/v1/auth/login")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_DisabledAllowsEverything(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	config := DefaultConfig()
	config.Enabled = false
	limiter := NewRedisRateLimiter(rdb, config)

	for i := 0; i < 100; i++ {
		allowed, _, err := limiter.Allow("10.0.0.5", "POST:/api/v1/auth/login")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}

func TestConfig_GetEndpointKey(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "auth_login", config.GetEndpointKey("POST:/api/v1/auth/login"))
	assert.Equal(t, "reads", config.GetEndpointKey("GET:/api/v1/classifications"))
	assert.Equal(t, "writes", config.GetEndpointKey("POST:/api/v1/vehicles"))
	assert.Equal(t, "writes", config.GetEndpointKey("PATCH:/api/v1/requests/abc/status"))
	assert.Equal(t, "writes", config.GetEndpointKey("DELETE:/api/v1/vehicles/abc"))
	assert.Equal(t, "default", config.GetEndpointKey("OPTIONS:/api/v1/vehicles"))
}

func TestMemoryRateLimiter_BlocksOverBurst(t *testing.T) {
	limiter := NewMemoryRateLimiter(DefaultConfig())

	for i := 0; i < 5; i++ {
		allowed, _, err := limiter.Allow("client-a", "POST:/api/v1/auth/login")
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, resetTime, err := limiter.Allow("client-a", "POST:/api/v1/auth/login")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Greater(t, resetTime, time.Duration(0))
}
