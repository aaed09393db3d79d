// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/oidc-bridge/internal/logging"
	"github.com/canonical/oidc-bridge/internal/monitoring"
	"github.com/canonical/oidc-bridge/internal/tracing"
)

type Config struct {
	Issuer       string
	ClientID     string
	ClientSecret string
}

// Client wraps the go-oidc provider with the three operations the
// authenticator needs: local verification, introspection and userinfo.
type Client struct {
	provider *oidc.Provider
	verifier *oidc.IDTokenVerifier

	introspectionURL string
	clientID         string
	clientSecret     string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.provider != nil
}

// NewClient discovers the provider's well-known configuration. An
// empty issuer, or a failed discovery, yields an unconfigured client:
// bearer authentication is then disabled rather than broken.
func NewClient(
	ctx context.Context,
	config Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Client {
	c := &Client{
		clientID:     config.ClientID,
		clientSecret: config.ClientSecret,
		tracer:       tracer,
		monitor:      monitor,
		logger:       logger,
	}

	if config.Issuer == "" {
		logger.Info("no OIDC issuer configured, bearer authentication is disabled")
		return c
	}

	provider, err := NewProvider(ctx, config.Issuer)
	if err != nil {
		logger.Warnf("OIDC discovery for %s failed, bearer authentication is disabled: %v", config.Issuer, err)
		monitor.SetDependencyAvailability(map[string]string{"component": "oidc_provider"}, 0)
		return c
	}

	monitor.SetDependencyAvailability(map[string]string{"component": "oidc_provider"}, 1)

	oidcConfig := &oidc.Config{
		ClientID:          config.ClientID,
		SkipClientIDCheck: config.ClientID == "",
		SkipIssuerCheck:   false,
	}

	c.provider = provider
	c.verifier = provider.Verifier(oidcConfig)

	var endpoints providerEndpoints
	if err := provider.Claims(&endpoints); err != nil {
		logger.Warnf("failed to read provider endpoints from discovery document: %v", err)
	}
	c.introspectionURL = endpoints.IntrospectionEndpoint

	logger.Infof("bearer authentication is enabled for issuer %s", config.Issuer)

	return c
}
