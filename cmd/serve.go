// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/oidc-bridge/internal/config"
	"github.com/canonical/oidc-bridge/internal/i18n"
	"github.com/canonical/oidc-bridge/internal/kratos"
	"github.com/canonical/oidc-bridge/internal/logging"
	"github.com/canonical/oidc-bridge/internal/monitoring/prometheus"
	"github.com/canonical/oidc-bridge/internal/tokencache"
	"github.com/canonical/oidc-bridge/internal/tracing"
	"github.com/canonical/oidc-bridge/pkg/authentication"
	"github.com/canonical/oidc-bridge/pkg/login"
	"github.com/canonical/oidc-bridge/pkg/users"
	"github.com/canonical/oidc-bridge/pkg/web"
	"github.com/canonical/oidc-bridge/pkg/webhooks"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}
	if err := specs.Validate(); err != nil {
		panic(fmt.Errorf("invalid configuration: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("oidc-bridge", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	var cache tokencache.CacheInterface
	if specs.RedisURL != "" {
		redisCache, err := tokencache.NewRedisCache(specs.RedisURL, logger)
		if err != nil {
			return fmt.Errorf("failed to create redis token cache: %v", err)
		}
		defer redisCache.Close()
		cache = redisCache
		logger.Info("Using redis token cache")
	} else {
		cache = tokencache.NewMemoryCache(specs.TokenCacheSize, specs.TokenCacheTTL, logger)
		logger.Info("Using in-memory token cache")
	}

	kratosClient := kratos.NewClient(
		specs.KratosAdminURL,
		specs.GuestSchemaID,
		tracer,
		monitor,
		logger,
	)

	translator := i18n.NewTranslator(specs.Locale)

	oidcClient := authentication.NewClient(
		context.Background(),
		authentication.Config{
			Issuer:       specs.OIDCIssuer,
			ClientID:     specs.OIDCClientID,
			ClientSecret: specs.OIDCClientSecret,
		},
		tracer,
		monitor,
		logger,
	)

	userService := users.NewService(
		kratosClient,
		users.Config{
			ProviderConfigured: oidcClient.IsConfigured(),
			Mode:               specs.UserLookupMode,
			IdentityClaim:      specs.IdentityClaim,
			SearchAttribute:    specs.SearchAttribute,
			AllowedBackends:    specs.AllowedUserBackends,
		},
		translator,
		tracer,
		monitor,
		logger,
	)

	var authenticator authentication.AuthenticatorInterface
	if specs.Debug {
		authenticator = authentication.NewNoopAuthenticator()
		logger.Warn("Using noop authenticator, bearer tokens are treated as user IDs")
	} else {
		authenticator = authentication.NewAuthenticator(
			oidcClient,
			cache,
			userService,
			specs.UseTokenIntrospection,
			specs.TokenCacheTTL,
			tracer,
			monitor,
			logger,
		)
	}

	loginGuard := login.NewGuard(kratosClient, translator, tracer, monitor, logger)
	webhookService := webhooks.NewService(loginGuard, tracer, monitor, logger)

	router := web.NewRouter(
		authenticator,
		webhookService,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
