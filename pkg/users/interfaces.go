// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"

	"github.com/canonical/oidc-bridge/internal/types"
)

// DirectoryInterface is the subset of the user directory the lookup
// service needs. It is implemented by internal/kratos.
type DirectoryInterface interface {
	FindByEmail(ctx context.Context, email string) ([]*types.User, error)
	FindByID(ctx context.Context, id string) (*types.User, error)
}

// ServiceInterface resolves provider claims to exactly one local user.
type ServiceInterface interface {
	LookupUser(ctx context.Context, claims types.Claims) (*types.User, error)
}
