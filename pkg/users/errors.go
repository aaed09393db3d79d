// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import "errors"

// Sentinel errors for user lookup. Callers match with errors.Is, the
// wrapped message carries the localized, user-facing detail.
var (
	ErrConfigurationMissing = errors.New("identity provider not configured")
	ErrUserNotFound         = errors.New("user not found")
	ErrAmbiguousUser        = errors.New("multiple users match")
	ErrBackendNotAllowed    = errors.New("user backend not allowed")
)
