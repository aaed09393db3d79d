// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package webhooks receives Kratos self-service hooks and applies the
// login policy before the flow completes.
package webhooks

import (
	"context"
	"fmt"

	"github.com/canonical/oidc-bridge/internal/logging"
	"github.com/canonical/oidc-bridge/internal/monitoring"
	"github.com/canonical/oidc-bridge/internal/tracing"
)

type Service struct {
	guard GuardInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	guard GuardInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		guard:   guard,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HandleLogin applies the login policy to a completed credentials
// check. A returned error rejects the Kratos flow.
func (s *Service) HandleLogin(ctx context.Context, identityID, method string) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleLogin")
	defer span.End()

	s.logger.Debugf("Handling login hook for identity %s with method %s", identityID, method)

	if identityID == "" {
		return fmt.Errorf("identity ID is empty")
	}

	if err := s.guard.EnsurePasswordLoginOnlyForGuests(ctx, method, identityID); err != nil {
		return err
	}

	return nil
}
