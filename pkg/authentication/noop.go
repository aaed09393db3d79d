// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"

	"github.com/canonical/oidc-bridge/internal/types"
)

type NoopAuthenticator struct{}

// NewNoopAuthenticator returns an authenticator for development that
// treats the bearer token as the user ID, skipping the provider.
func NewNoopAuthenticator() *NoopAuthenticator {
	return &NoopAuthenticator{}
}

func (n *NoopAuthenticator) Authenticate(r *http.Request) *types.User {
	token, found := bearerToken(r.Header)
	if !found {
		return nil
	}

	return &types.User{ID: token}
}
