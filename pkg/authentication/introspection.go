// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/canonical/oidc-bridge/internal/types"
)

// Introspection is the provider's answer about a token's live
// validity (RFC 7662).
type Introspection struct {
	Active   bool   `json:"active"`
	Scope    string `json:"scope,omitempty"`
	ClientID string `json:"client_id,omitempty"`
	Sub      string `json:"sub,omitempty"`
	Exp      int64  `json:"exp,omitempty"`
	Iat      int64  `json:"iat,omitempty"`
	Iss      string `json:"iss,omitempty"`
}

// IntrospectToken posts the token to the introspection endpoint
// advertised in the discovery document, authenticating with the client
// credentials.
func (c *Client) IntrospectToken(ctx context.Context, rawToken string) (*Introspection, error) {
	ctx, span := c.tracer.Start(ctx, "authentication.Client.IntrospectToken")
	defer span.End()

	if c.introspectionURL == "" {
		return nil, fmt.Errorf("provider does not advertise an introspection endpoint")
	}

	form := url.Values{"token": {rawToken}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.introspectionURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build introspection request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.clientID, c.clientSecret)

	resp, err := otelHTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("introspection request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("introspection endpoint returned status %d", resp.StatusCode)
	}

	var result Introspection
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode introspection response: %w", err)
	}

	return &result, nil
}

// UserInfo fetches claims for the token's subject from the userinfo
// endpoint.
func (c *Client) UserInfo(ctx context.Context, rawToken string) (types.Claims, error) {
	ctx, span := c.tracer.Start(ctx, "authentication.Client.UserInfo")
	defer span.End()

	if !c.IsConfigured() {
		return nil, fmt.Errorf("OIDC provider is not configured")
	}

	ctx = oidc.ClientContext(ctx, &otelHTTPClient)

	source := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: rawToken,
		TokenType:   "Bearer",
	})

	userInfo, err := c.provider.UserInfo(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", err)
	}

	var claims types.Claims
	if err := userInfo.Claims(&claims); err != nil {
		return nil, fmt.Errorf("failed to extract userinfo claims: %w", err)
	}

	return claims, nil
}
