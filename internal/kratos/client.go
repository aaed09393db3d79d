// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	ory "github.com/ory/client-go"

	"github.com/canonical/oidc-bridge/internal/logging"
	"github.com/canonical/oidc-bridge/internal/monitoring"
	"github.com/canonical/oidc-bridge/internal/tracing"
	"github.com/canonical/oidc-bridge/internal/types"
)

type ClientInterface interface {
	FindByEmail(ctx context.Context, email string) ([]*types.User, error)
	FindByID(ctx context.Context, id string) (*types.User, error)
	IsGuestAccount(ctx context.Context, id string) (bool, error)
}

type Client struct {
	client        *ory.APIClient
	guestSchemaID string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(kratosAdminURL, guestSchemaID string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosAdminURL}}
	return &Client{
		client:        ory.NewAPIClient(conf),
		guestSchemaID: guestSchemaID,
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}

// FindByEmail returns every identity whose credentials identifier
// matches the email. The caller decides what more than one match means.
func (c *Client) FindByEmail(ctx context.Context, email string) ([]*types.User, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.FindByEmail")
	defer span.End()

	// NOTE: we are setting an empty page token because of https://github.com/ory/sdk/issues/461
	ids, r, err := c.client.IdentityAPI.ListIdentities(ctx).CredentialsIdentifier(email).PageToken("").Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list identities: %w", err)
	}

	users := make([]*types.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, identityToUser(&id))
	}

	return users, nil
}

// FindByID returns the identity with the given id, or nil when absent.
func (c *Client) FindByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.FindByID")
	defer span.End()

	// Kratos identity ids are UUIDs, reject anything else before
	// hitting the admin API.
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	identity, r, err := c.client.IdentityAPI.GetIdentity(ctx, id).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	return identityToUser(identity), nil
}

// IsGuestAccount reports whether the identity was created with the
// guest schema.
func (c *Client) IsGuestAccount(ctx context.Context, id string) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.IsGuestAccount")
	defer span.End()

	user, err := c.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}

	return user.Backend == c.guestSchemaID, nil
}

func identityToUser(identity *ory.Identity) *types.User {
	user := &types.User{
		ID:      identity.Id,
		Backend: identity.SchemaId,
	}

	if traits, ok := identity.Traits.(map[string]interface{}); ok {
		if email, ok := traits["email"].(string); ok {
			user.Email = email
		}
		if name, ok := traits["name"].(string); ok {
			user.DisplayName = name
		}
	}

	return user
}
