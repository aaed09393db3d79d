// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
)

// GuardInterface is the login-policy capability the hook enforces.
// It is implemented by the login package.
type GuardInterface interface {
	EnsurePasswordLoginOnlyForGuests(ctx context.Context, loginType, uid string) error
}

// ServiceInterface defines the webhook service operations.
type ServiceInterface interface {
	HandleLogin(ctx context.Context, identityID, method string) error
}
