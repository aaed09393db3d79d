// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/oidc-bridge/internal/logging"
	"github.com/canonical/oidc-bridge/internal/monitoring"
	"github.com/canonical/oidc-bridge/internal/tracing"
	"github.com/canonical/oidc-bridge/internal/types"
)

func TestMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name         string
		setupMocks   func(*gomock.Controller) AuthenticatorInterface
		expectedUser string
	}{
		{
			name: "unresolved request passes through without user",
			setupMocks: func(ctrl *gomock.Controller) AuthenticatorInterface {
				mockAuthenticator := NewMockAuthenticatorInterface(ctrl)
				mockAuthenticator.EXPECT().Authenticate(gomock.Any()).Return(nil)
				return mockAuthenticator
			},
		},
		{
			name: "resolved user is injected into context",
			setupMocks: func(ctrl *gomock.Controller) AuthenticatorInterface {
				mockAuthenticator := NewMockAuthenticatorInterface(ctrl)
				mockAuthenticator.EXPECT().Authenticate(gomock.Any()).Return(&types.User{ID: "user-123"})
				return mockAuthenticator
			},
			expectedUser: "user-123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			middleware := NewMiddleware(
				tt.setupMocks(ctrl),
				tracing.NewNoopTracer(),
				monitoring.NewNoopMonitor(),
				logging.NewNoopLogger(),
			)

			var gotUser *types.User
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, _ = GetUser(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			rr := httptest.NewRecorder()

			middleware.Authenticate()(handler).ServeHTTP(rr, req)

			if rr.Code != http.StatusOK {
				t.Errorf("expected status 200, got %d", rr.Code)
			}

			if tt.expectedUser == "" {
				if gotUser != nil {
					t.Errorf("expected no user in context, got %+v", gotUser)
				}
				return
			}

			if gotUser == nil || gotUser.ID != tt.expectedUser {
				t.Errorf("expected user %s in context, got %+v", tt.expectedUser, gotUser)
			}
		})
	}
}

func TestMiddleware_RequireUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	middleware := NewMiddleware(
		NewMockAuthenticatorInterface(ctrl),
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	})

	t.Run("no user in context - rejects request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		rr := httptest.NewRecorder()

		middleware.RequireUser()(handler).ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", rr.Code)
		}
	})

	t.Run("user in context - passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req = req.WithContext(WithUser(req.Context(), &types.User{ID: "user-123"}))
		rr := httptest.NewRecorder()

		middleware.RequireUser()(handler).ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", rr.Code)
		}
		if rr.Body.String() != "success" {
			t.Errorf("expected body success, got %q", rr.Body.String())
		}
	})
}

func TestNoopAuthenticator(t *testing.T) {
	a := NewNoopAuthenticator()

	if user := a.Authenticate(httptest.NewRequest(http.MethodGet, "/test", nil)); user != nil {
		t.Errorf("expected nil user without bearer header, got %+v", user)
	}

	user := a.Authenticate(newBearerRequest("user-123"))
	if user == nil || user.ID != "user-123" {
		t.Errorf("expected token used as user ID, got %+v", user)
	}
}
