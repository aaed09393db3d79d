// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	// OIDC provider settings. An empty issuer means bearer
	// authentication is disabled and requests fall through.
	OIDCIssuer       string `envconfig:"oidc_issuer"`
	OIDCClientID     string `envconfig:"oidc_client_id"`
	OIDCClientSecret string `envconfig:"oidc_client_secret"`

	UseTokenIntrospection bool `envconfig:"use_token_introspection_endpoint" default:"false"`

	// User lookup policy.
	UserLookupMode      string   `envconfig:"user_lookup_mode" default:"email" validate:"oneof=email userid"`
	IdentityClaim       string   `envconfig:"identity_claim" default:"email"`
	SearchAttribute     string   `envconfig:"search_attribute" default:"sub"`
	AllowedUserBackends []string `envconfig:"allowed_user_backends"`

	// Token validity cache. An empty redis URL selects the in-process
	// LRU cache.
	TokenCacheTTL  time.Duration `envconfig:"token_cache_ttl" default:"60s"`
	TokenCacheSize int           `envconfig:"token_cache_size" default:"1024" validate:"gt=0"`
	RedisURL       string        `envconfig:"redis_url"`

	KratosAdminURL string `envconfig:"kratos_admin_url" required:"true"`
	GuestSchemaID  string `envconfig:"guest_schema_id" default:"guest"`

	Locale string `envconfig:"locale" default:"en"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080" validate:"gt=0,lte=65535"`
}

// Validate checks cross-field constraints envconfig cannot express.
func (s *EnvSpec) Validate() error {
	return validator.New().Struct(s)
}
