// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tokencache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/canonical/oidc-bridge/internal/logging"
)

// RedisCache stores validation outcomes in Redis so multiple bridge
// replicas share one cache. Raw tokens are never used as keys, only
// their digest.
type RedisCache struct {
	client *redis.Client

	logger logging.LoggerInterface
}

func (c *RedisCache) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return fmt.Sprintf("oidc-bridge:token:%s", hex.EncodeToString(sum[:]))
}

func (c *RedisCache) Get(ctx context.Context, token string) *Entry {
	data, err := c.client.Get(ctx, c.key(token)).Result()
	if err == redis.Nil {
		return nil
	} else if err != nil {
		c.logger.Errorf("redis get failed: %v", err)
		return nil
	}

	var entry Entry
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		// Corrupt data degrades to a miss.
		c.client.Del(ctx, c.key(token))
		c.logger.Errorf("failed to unmarshal cache entry: %v", err)
		return nil
	}

	if !entry.Valid() {
		return nil
	}

	return &entry
}

func (c *RedisCache) Set(ctx context.Context, token string, entry *Entry, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	data, err := json.Marshal(entry)
	if err != nil {
		c.logger.Errorf("failed to marshal cache entry: %v", err)
		return
	}

	if err := c.client.Set(ctx, c.key(token), data, ttl).Err(); err != nil {
		c.logger.Errorf("redis set failed: %v", err)
	}
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func NewRedisCache(redisURL string, logger logging.LoggerInterface) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisCache{
		client: client,
		logger: logger,
	}, nil
}
