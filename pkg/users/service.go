// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"
	"fmt"
	"slices"

	"github.com/canonical/oidc-bridge/internal/i18n"
	"github.com/canonical/oidc-bridge/internal/logging"
	"github.com/canonical/oidc-bridge/internal/monitoring"
	"github.com/canonical/oidc-bridge/internal/tracing"
	"github.com/canonical/oidc-bridge/internal/types"
)

const (
	ModeEmail  = "email"
	ModeUserID = "userid"

	defaultIdentityClaim   = "email"
	defaultSearchAttribute = "sub"
)

// Config is the lookup policy. ProviderConfigured distinguishes
// "feature disabled" from an ordinary lookup miss.
type Config struct {
	ProviderConfigured bool
	Mode               string
	IdentityClaim      string
	SearchAttribute    string
	AllowedBackends    []string
}

type Service struct {
	directory  DirectoryInterface
	config     Config
	translator i18n.TranslatorInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	directory DirectoryInterface,
	config Config,
	translator i18n.TranslatorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	if config.IdentityClaim == "" {
		config.IdentityClaim = defaultIdentityClaim
	}
	if config.SearchAttribute == "" {
		config.SearchAttribute = defaultSearchAttribute
	}
	if config.Mode == "" {
		config.Mode = ModeEmail
	}

	return &Service{
		directory:  directory,
		config:     config,
		translator: translator,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}

// LookupUser resolves the claims to exactly one local account.
// Ambiguity is a hard failure, never a heuristic pick.
func (s *Service) LookupUser(ctx context.Context, claims types.Claims) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.LookupUser")
	defer span.End()

	if !s.config.ProviderConfigured {
		return nil, fmt.Errorf("%s: %w",
			s.translator.Sprintf("Login with an external identity provider is not set up"),
			ErrConfigurationMissing)
	}

	var user *types.User
	var err error

	switch s.config.Mode {
	case ModeUserID:
		user, err = s.lookupByUserID(ctx, claims)
	default:
		user, err = s.lookupByEmail(ctx, claims)
	}
	if err != nil {
		return nil, err
	}

	if len(s.config.AllowedBackends) > 0 && !slices.Contains(s.config.AllowedBackends, user.Backend) {
		return nil, fmt.Errorf("%s: %w",
			s.translator.Sprintf("Login is not allowed for accounts from backend %s", user.Backend),
			ErrBackendNotAllowed)
	}

	return user, nil
}

func (s *Service) lookupByEmail(ctx context.Context, claims types.Claims) (*types.User, error) {
	email, err := claims.String(s.config.IdentityClaim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w",
			s.translator.Sprintf("The identity token does not carry the %s claim", s.config.IdentityClaim),
			ErrUserNotFound)
	}

	matches, err := s.directory.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to search directory for %s: %w", email, err)
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%s: %w",
			s.translator.Sprintf("No account found for %s", email),
			ErrUserNotFound)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%s: %w",
			s.translator.Sprintf("More than one account matches %s", email),
			ErrAmbiguousUser)
	}
}

func (s *Service) lookupByUserID(ctx context.Context, claims types.Claims) (*types.User, error) {
	id, err := claims.String(s.config.SearchAttribute)
	if err != nil {
		return nil, fmt.Errorf("%s: %w",
			s.translator.Sprintf("The identity token does not carry the %s claim", s.config.SearchAttribute),
			ErrUserNotFound)
	}

	user, err := s.directory.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user %s: %w", id, err)
	}
	if user == nil {
		return nil, fmt.Errorf("%s: %w",
			s.translator.Sprintf("No account found for %s", id),
			ErrUserNotFound)
	}

	return user, nil
}
