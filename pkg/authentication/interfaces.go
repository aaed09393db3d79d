// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"net/http"
	"time"

	"github.com/canonical/oidc-bridge/internal/types"
)

// OIDCClientInterface is the provider capability the authenticator
// depends on. Local verification and introspection are alternatives
// selected by configuration, never a fallback chain.
type OIDCClientInterface interface {
	// IsConfigured reports whether a provider discovery document was
	// loaded. Unconfigured means bearer authentication is disabled.
	IsConfigured() bool
	// VerifyToken checks signature and expiry locally and returns the
	// claims from the token payload together with the token expiry.
	VerifyToken(ctx context.Context, rawToken string) (types.Claims, time.Time, error)
	// IntrospectToken asks the provider's introspection endpoint about
	// a token's live validity.
	IntrospectToken(ctx context.Context, rawToken string) (*Introspection, error)
	// UserInfo fetches the claims for the token's subject from the
	// userinfo endpoint.
	UserInfo(ctx context.Context, rawToken string) (types.Claims, error)
}

// UserLookupInterface resolves claims to a local account, implemented
// by pkg/users.
type UserLookupInterface interface {
	LookupUser(ctx context.Context, claims types.Claims) (*types.User, error)
}

// AuthenticatorInterface turns an incoming request into a resolved
// local user, or nil when no bearer credentials apply.
type AuthenticatorInterface interface {
	Authenticate(r *http.Request) *types.User
}
