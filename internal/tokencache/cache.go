// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package tokencache holds short-lived token validation outcomes so a
// repeated bearer token does not hit the provider on every request.
// The cache is a pure performance optimization: a miss and a hit must
// always produce the same authentication decision.
package tokencache

import (
	"context"
	"time"

	"github.com/canonical/oidc-bridge/internal/types"
)

// Entry is a successful validation outcome for a bearer token.
type Entry struct {
	Claims types.Claims `json:"claims"`
	Expiry time.Time    `json:"expiry"`
}

// Valid reports whether the entry can still be served.
func (e *Entry) Valid() bool {
	return e != nil && time.Now().Before(e.Expiry)
}

type CacheInterface interface {
	// Get returns the cached entry for the token, or nil on a miss.
	// Cache failures are reported as a miss, never as an error that
	// changes the authentication decision.
	Get(ctx context.Context, token string) *Entry
	// Set stores the entry with the given TTL. Concurrent writers for
	// the same token are benign, the value is idempotent.
	Set(ctx context.Context, token string, entry *Entry, ttl time.Duration)
}
