// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tokencache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/canonical/oidc-bridge/internal/logging"
	"github.com/canonical/oidc-bridge/internal/types"
)

func setupRedisCacheTest(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	cache, err := NewRedisCache("redis://"+mr.Addr(), logging.NewNoopLogger())
	require.NoError(t, err, "failed to create redis cache")
	t.Cleanup(func() { cache.Close() })

	return cache, mr
}

func TestRedisCache_GetSet(t *testing.T) {
	ctx := context.Background()
	cache, _ := setupRedisCacheTest(t)

	require.Nil(t, cache.Get(ctx, "unknown-token"))

	entry := &Entry{
		Claims: types.Claims{"email": "admin@example.com", "sub": "user-1"},
		Expiry: time.Now().Add(time.Minute),
	}
	cache.Set(ctx, "token-1", entry, time.Minute)

	got := cache.Get(ctx, "token-1")
	require.NotNil(t, got)

	email, err := got.Claims.String("email")
	require.NoError(t, err)
	require.Equal(t, "admin@example.com", email)
}

func TestRedisCache_TTLEviction(t *testing.T) {
	ctx := context.Background()
	cache, mr := setupRedisCacheTest(t)

	cache.Set(ctx, "token-1", &Entry{
		Claims: types.Claims{"sub": "user-1"},
		Expiry: time.Now().Add(time.Hour),
	}, 30*time.Second)

	require.NotNil(t, cache.Get(ctx, "token-1"))

	mr.FastForward(time.Minute)

	require.Nil(t, cache.Get(ctx, "token-1"))
}

func TestRedisCache_TokenNotStoredVerbatim(t *testing.T) {
	ctx := context.Background()
	cache, mr := setupRedisCacheTest(t)

	cache.Set(ctx, "super-secret-token", &Entry{
		Claims: types.Claims{"sub": "user-1"},
		Expiry: time.Now().Add(time.Minute),
	}, time.Minute)

	for _, key := range mr.Keys() {
		require.NotContains(t, key, "super-secret-token")
	}
}

func TestRedisCache_CorruptEntryIsMiss(t *testing.T) {
	ctx := context.Background()
	cache, mr := setupRedisCacheTest(t)

	require.NoError(t, mr.Set(cache.key("token-1"), "not-json"))

	require.Nil(t, cache.Get(ctx, "token-1"))
}
