// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tokencache

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/canonical/oidc-bridge/internal/logging"
)

// MemoryCache is an in-process size-bound LRU with TTL eviction. The
// underlying LRU is safe for concurrent use.
type MemoryCache struct {
	cache *lru.LRU[string, *Entry]

	logger logging.LoggerInterface
}

func (c *MemoryCache) Get(ctx context.Context, token string) *Entry {
	entry, ok := c.cache.Get(token)
	if !ok {
		return nil
	}

	// The LRU TTL is the ceiling for all entries, the token's own
	// expiry may be sooner.
	if !entry.Valid() {
		c.cache.Remove(token)
		return nil
	}

	return entry
}

func (c *MemoryCache) Set(ctx context.Context, token string, entry *Entry, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	c.cache.Add(token, entry)
}

func NewMemoryCache(size int, ttl time.Duration, logger logging.LoggerInterface) *MemoryCache {
	return &MemoryCache{
		cache:  lru.NewLRU[string, *Entry](size, nil, ttl),
		logger: logger,
	}
}
