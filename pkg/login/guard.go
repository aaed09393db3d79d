// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package login guards the conventional password login flow. Once the
// external provider is the intended authentication path, password
// logins stay available to guest accounts only.
package login

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/oidc-bridge/internal/i18n"
	"github.com/canonical/oidc-bridge/internal/logging"
	"github.com/canonical/oidc-bridge/internal/monitoring"
	"github.com/canonical/oidc-bridge/internal/tracing"
)

// TypePassword is the login type restricted to guest accounts.
const TypePassword = "password"

// ErrLoginTypeNotAllowed blocks the login attempt, it is surfaced to
// the caller rather than swallowed.
var ErrLoginTypeNotAllowed = errors.New("login type not allowed")

// DirectoryInterface is the guest-classification capability of the
// user directory.
type DirectoryInterface interface {
	IsGuestAccount(ctx context.Context, id string) (bool, error)
}

type GuardInterface interface {
	EnsurePasswordLoginOnlyForGuests(ctx context.Context, loginType, uid string) error
}

type Guard struct {
	directory  DirectoryInterface
	translator i18n.TranslatorInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewGuard(
	directory DirectoryInterface,
	translator i18n.TranslatorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Guard {
	return &Guard{
		directory:  directory,
		translator: translator,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}

// EnsurePasswordLoginOnlyForGuests fails for password logins by
// non-guest accounts and is a no-op for everything else.
func (g *Guard) EnsurePasswordLoginOnlyForGuests(ctx context.Context, loginType, uid string) error {
	ctx, span := g.tracer.Start(ctx, "login.Guard.EnsurePasswordLoginOnlyForGuests")
	defer span.End()

	if loginType != TypePassword {
		return nil
	}

	guest, err := g.directory.IsGuestAccount(ctx, uid)
	if err != nil {
		return fmt.Errorf("failed to classify account %s: %w", uid, err)
	}

	if !guest {
		g.logger.Security().AuthzFailure(uid, "password_login")
		return fmt.Errorf("%s: %w",
			g.translator.Sprintf("Password login is only allowed for guest accounts"),
			ErrLoginTypeNotAllowed)
	}

	return nil
}
