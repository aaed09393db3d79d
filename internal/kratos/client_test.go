// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/oidc-bridge/internal/logging"
	"github.com/canonical/oidc-bridge/internal/monitoring"
	"github.com/canonical/oidc-bridge/internal/tracing"
)

const (
	memberID = "8b4b9dc6-9f4b-4aeb-b6c5-7cd95c1b95da"
	guestID  = "2f0de5ca-2c9b-4c3d-a9c9-0d2f70a9c9c1"
)

type identityPayload struct {
	ID        string                 `json:"id"`
	SchemaID  string                 `json:"schema_id"`
	SchemaURL string                 `json:"schema_url"`
	Traits    map[string]interface{} `json:"traits"`
}

func newTestClient(url string) *Client {
	return NewClient(url, "guest", tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func newKratosStub(t *testing.T) *httptest.Server {
	t.Helper()

	member := identityPayload{
		ID:        memberID,
		SchemaID:  "default",
		SchemaURL: "http://kratos/schemas/default",
		Traits:    map[string]interface{}{"email": "admin@example.com", "name": "Admin"},
	}
	guest := identityPayload{
		ID:        guestID,
		SchemaID:  "guest",
		SchemaURL: "http://kratos/schemas/guest",
		Traits:    map[string]interface{}{"email": "guest@example.com"},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /admin/identities", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("credentials_identifier") {
		case "admin@example.com":
			json.NewEncoder(w).Encode([]identityPayload{member})
		case "shared@example.com":
			json.NewEncoder(w).Encode([]identityPayload{member, guest})
		default:
			json.NewEncoder(w).Encode([]identityPayload{})
		}
	})
	mux.HandleFunc("GET /admin/identities/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.PathValue("id") {
		case memberID:
			json.NewEncoder(w).Encode(member)
		case guestID:
			json.NewEncoder(w).Encode(guest)
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]interface{}{"error": map[string]interface{}{"code": 404}})
		}
	})

	return httptest.NewServer(mux)
}

func TestClient_FindByEmail(t *testing.T) {
	srv := newKratosStub(t)
	defer srv.Close()

	client := newTestClient(srv.URL)

	t.Run("single match", func(t *testing.T) {
		users, err := client.FindByEmail(t.Context(), "admin@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(users) != 1 {
			t.Fatalf("expected 1 user, got %d", len(users))
		}
		if users[0].ID != memberID || users[0].Email != "admin@example.com" || users[0].DisplayName != "Admin" {
			t.Errorf("unexpected user: %+v", users[0])
		}
		if users[0].Backend != "default" {
			t.Errorf("expected backend default, got %q", users[0].Backend)
		}
	})

	t.Run("multiple matches returned as-is", func(t *testing.T) {
		users, err := client.FindByEmail(t.Context(), "shared@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(users) != 2 {
			t.Fatalf("expected 2 users, got %d", len(users))
		}
	})

	t.Run("no match", func(t *testing.T) {
		users, err := client.FindByEmail(t.Context(), "nobody@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(users) != 0 {
			t.Errorf("expected no users, got %d", len(users))
		}
	})
}

func TestClient_FindByID(t *testing.T) {
	srv := newKratosStub(t)
	defer srv.Close()

	client := newTestClient(srv.URL)

	t.Run("present", func(t *testing.T) {
		user, err := client.FindByID(t.Context(), memberID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user == nil || user.ID != memberID {
			t.Errorf("expected user %s, got %+v", memberID, user)
		}
	})

	t.Run("absent", func(t *testing.T) {
		user, err := client.FindByID(t.Context(), "e2b8f2d0-0000-0000-0000-000000000000")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user != nil {
			t.Errorf("expected nil user, got %+v", user)
		}
	})

	t.Run("non-uuid id short-circuits", func(t *testing.T) {
		user, err := client.FindByID(t.Context(), "not-a-uuid")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user != nil {
			t.Errorf("expected nil user, got %+v", user)
		}
	})
}

func TestClient_IsGuestAccount(t *testing.T) {
	srv := newKratosStub(t)
	defer srv.Close()

	client := newTestClient(srv.URL)

	tests := []struct {
		name     string
		id       string
		expected bool
	}{
		{name: "guest schema", id: guestID, expected: true},
		{name: "regular schema", id: memberID, expected: false},
		{name: "unknown identity", id: "e2b8f2d0-0000-0000-0000-000000000000", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guest, err := client.IsGuestAccount(t.Context(), tt.id)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if guest != tt.expected {
				t.Errorf("expected guest=%v, got %v", tt.expected, guest)
			}
		})
	}
}
