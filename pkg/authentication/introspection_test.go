// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/oidc-bridge/internal/logging"
	"github.com/canonical/oidc-bridge/internal/monitoring"
	"github.com/canonical/oidc-bridge/internal/tracing"
)

func newIntrospectionClient(endpoint string) *Client {
	return &Client{
		introspectionURL: endpoint,
		clientID:         "bridge",
		clientSecret:     "secret",
		tracer:           tracing.NewNoopTracer(),
		monitor:          monitoring.NewNoopMonitor(),
		logger:           logging.NewNoopLogger(),
	}
}

func TestClient_IntrospectToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}

		user, pass, ok := r.BasicAuth()
		if !ok || user != "bridge" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch r.PostForm.Get("token") {
		case "active-token":
			json.NewEncoder(w).Encode(Introspection{Active: true, Sub: "user-1", Exp: 4102444800})
		default:
			json.NewEncoder(w).Encode(Introspection{Active: false})
		}
	}))
	defer srv.Close()

	c := newIntrospectionClient(srv.URL)

	t.Run("active token", func(t *testing.T) {
		result, err := c.IntrospectToken(t.Context(), "active-token")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Active || result.Sub != "user-1" {
			t.Errorf("unexpected result: %+v", result)
		}
	})

	t.Run("revoked token reported inactive", func(t *testing.T) {
		result, err := c.IntrospectToken(t.Context(), "revoked-token")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Active {
			t.Error("expected inactive result")
		}
	})
}

func TestClient_IntrospectToken_Errors(t *testing.T) {
	t.Run("no endpoint advertised", func(t *testing.T) {
		c := newIntrospectionClient("")

		if _, err := c.IntrospectToken(t.Context(), "token"); err == nil {
			t.Error("expected error when no introspection endpoint is configured")
		}
	})

	t.Run("provider error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		if _, err := newIntrospectionClient(srv.URL).IntrospectToken(t.Context(), "token"); err == nil {
			t.Error("expected error on provider failure")
		}
	})
}

func TestClient_IsConfigured(t *testing.T) {
	var nilClient *Client
	if nilClient.IsConfigured() {
		t.Error("nil client must report unconfigured")
	}

	if (&Client{}).IsConfigured() {
		t.Error("client without provider must report unconfigured")
	}
}
