// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"time"

	"github.com/canonical/oidc-bridge/internal/types"
)

// VerifyToken validates signature and expiry against the provider's
// key set and returns the claims carried in the token payload.
func (c *Client) VerifyToken(ctx context.Context, rawToken string) (types.Claims, time.Time, error) {
	ctx, span := c.tracer.Start(ctx, "authentication.Client.VerifyToken")
	defer span.End()

	if !c.IsConfigured() {
		return nil, time.Time{}, fmt.Errorf("OIDC provider is not configured")
	}

	token, err := c.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("token verification failed: %w", err)
	}

	var claims types.Claims
	if err := token.Claims(&claims); err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to extract claims: %w", err)
	}

	return claims, token.Expiry, nil
}
