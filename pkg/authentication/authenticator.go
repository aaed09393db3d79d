// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/canonical/oidc-bridge/internal/logging"
	"github.com/canonical/oidc-bridge/internal/monitoring"
	"github.com/canonical/oidc-bridge/internal/tokencache"
	"github.com/canonical/oidc-bridge/internal/tracing"
	"github.com/canonical/oidc-bridge/internal/types"
)

const bearerPrefix = "Bearer "

var (
	errTokenInactive = errors.New("token is not active")
	errTokenExpired  = errors.New("token is expired")
)

// Authenticator runs the bearer-token pipeline: extract, cache check,
// verify or introspect, resolve to a local user. Every failure is
// normalized to "no authenticated user" so other mechanisms attached
// to the same request get a chance to run.
type Authenticator struct {
	oidc   OIDCClientInterface
	cache  tokencache.CacheInterface
	lookup UserLookupInterface

	useIntrospection bool
	cacheTTLCeiling  time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAuthenticator(
	oidcClient OIDCClientInterface,
	cache tokencache.CacheInterface,
	lookup UserLookupInterface,
	useIntrospection bool,
	cacheTTLCeiling time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Authenticator {
	return &Authenticator{
		oidc:             oidcClient,
		cache:            cache,
		lookup:           lookup,
		useIntrospection: useIntrospection,
		cacheTTLCeiling:  cacheTTLCeiling,
		tracer:           tracer,
		monitor:          monitor,
		logger:           logger,
	}
}

// Authenticate resolves the request's bearer token to a local user.
// A nil result means "no credentials for this mechanism", it is not an
// error: the request may authenticate some other way.
func (a *Authenticator) Authenticate(r *http.Request) *types.User {
	ctx, span := a.tracer.Start(r.Context(), "authentication.Authenticator.Authenticate")
	defer span.End()

	token, found := bearerToken(r.Header)
	if !found {
		return nil
	}

	if !a.oidc.IsConfigured() {
		// Feature disabled, not a failure.
		a.logger.Debugf("no OIDC provider configured, skipping bearer authentication")
		return nil
	}

	entry := a.cache.Get(ctx, token)
	if entry == nil {
		var err error
		entry, err = a.validateToken(ctx, token)
		if err != nil {
			a.logger.Debugf("bearer token rejected: %v", err)
			a.logger.Security().AuthnFailure(subjectOf(entry), err.Error())
			return nil
		}

		a.cache.Set(ctx, token, entry, a.cacheTTL(entry))
	}

	user, err := a.lookup.LookupUser(ctx, entry.Claims)
	if err != nil {
		a.logger.Errorf("could not resolve token to a local user: %v", err)
		a.logger.Security().AuthnFailure(subjectOf(entry), "user lookup failed")
		return nil
	}

	return user
}

// validateToken runs exactly one verification path. The choice is a
// configuration flag, there is no fallback from one path to the other.
func (a *Authenticator) validateToken(ctx context.Context, token string) (*tokencache.Entry, error) {
	if a.useIntrospection {
		return a.introspect(ctx, token)
	}

	claims, expiry, err := a.oidc.VerifyToken(ctx, token)
	if err != nil {
		return nil, err
	}

	return &tokencache.Entry{Claims: claims, Expiry: expiry}, nil
}

func (a *Authenticator) introspect(ctx context.Context, token string) (*tokencache.Entry, error) {
	result, err := a.oidc.IntrospectToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if !result.Active {
		return nil, errTokenInactive
	}

	expiry := time.Unix(result.Exp, 0)
	// A past exp wins over active:true.
	if result.Exp > 0 && expiry.Before(time.Now()) {
		return nil, errTokenExpired
	}

	claims, err := a.oidc.UserInfo(ctx, token)
	if err != nil {
		return nil, err
	}

	if sub, err := claims.Subject(); err != nil || sub != result.Sub {
		return nil, fmt.Errorf("userinfo subject does not match introspected subject")
	}

	if result.Exp == 0 {
		expiry = time.Now().Add(a.cacheTTLCeiling)
	}

	return &tokencache.Entry{Claims: claims, Expiry: expiry}, nil
}

// cacheTTL bounds the cache lifetime by the token's own expiry and the
// configured ceiling, whichever is sooner.
func (a *Authenticator) cacheTTL(entry *tokencache.Entry) time.Duration {
	ttl := a.cacheTTLCeiling
	if remaining := time.Until(entry.Expiry); remaining < ttl {
		ttl = remaining
	}
	return ttl
}

func bearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, bearerPrefix) {
		return "", false
	}

	return strings.TrimPrefix(bearer, bearerPrefix), true
}

func subjectOf(entry *tokencache.Entry) string {
	if entry == nil {
		return ""
	}
	sub, err := entry.Claims.Subject()
	if err != nil {
		return ""
	}
	return sub
}
